package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/vytor/matchtracker/internal/errors"
	"github.com/vytor/matchtracker/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the single owning handle on the match store.
type DB struct {
	*sql.DB
	log zerolog.Logger
}

// Open connects to the SQLite file at path and applies pending migrations.
// Any failure is reported as a StoreUnavailable error.
func Open(path string) (*DB, error) {
	log := logger.WithPrefix(logger.Default(), "db")

	log.Info().Str("path", path).Msg("opening database")

	sqlDB, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		log.Error().Err(err).Msg("failed to open database")
		return nil, errors.NewStoreUnavailableError(err)
	}
	sqlDB.SetMaxOpenConns(1) // one writer, one handle

	db := &DB{DB: sqlDB, log: log}

	if err := db.Ping(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Debug().Msg("applying migrations")
	if err := db.applyMigrations(); err != nil {
		log.Error().Err(err).Msg("failed to apply migrations")
		_ = sqlDB.Close()
		return nil, errors.NewStoreUnavailableError(err)
	}

	log.Info().Msg("database ready")
	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path, sep)
}

// Ping checks that the store can still be reached.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		db.log.Error().Err(err).Msg("database ping failed")
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Close releases the handle.
func (db *DB) Close() error {
	db.log.Debug().Msg("closing database connection")
	return db.DB.Close()
}

func (db *DB) applyMigrations() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log: db.log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("run goose migrations: %w", err)
	}
	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSuffix(format, "\n"), v...)
}

// Fatalf is logged at error level; goose.Up still returns the error to Open.
func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error().Msgf(strings.TrimSuffix(format, "\n"), v...)
}
