package api

import (
	"net/http"

	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		// Wrap unknown errors as internal errors
		appErr = errors.NewInternalError(err)
	}

	// Log based on status code
	if appErr.Status >= 500 {
		log.Error().Err(appErr).Msg("server error")
	} else if appErr.Status >= 400 {
		log.Warn().Err(appErr).Msg("client error")
	} else {
		log.Debug().Err(appErr).Msg("error")
	}

	writeJSON(w, r, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
