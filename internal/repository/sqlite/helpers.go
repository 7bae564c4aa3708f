package sqlite

import (
	"context"
	"database/sql"

	"github.com/vytor/matchtracker/internal/logger"
)

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.WithPrefix(logger.FromContext(ctx), "repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug().Err(err).Msg("transaction rolled back")
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")
		return err
	}
	log.Debug().Msg("transaction committed")
	return nil
}
