package services

import "github.com/vytor/matchtracker/internal/errors"

// storeError passes AppErrors through unchanged and reports every other
// repository failure as the store being unavailable.
func storeError(err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.NewStoreUnavailableError(err)
}
