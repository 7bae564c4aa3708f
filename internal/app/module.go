// Package app wires the tracker's components into an fx application.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/vytor/matchtracker/internal/api"
	"github.com/vytor/matchtracker/internal/config"
	"github.com/vytor/matchtracker/internal/db"
	"github.com/vytor/matchtracker/internal/locale"
	"github.com/vytor/matchtracker/internal/logger"
	"github.com/vytor/matchtracker/internal/repository"
	"github.com/vytor/matchtracker/internal/repository/sqlite"
	"github.com/vytor/matchtracker/internal/services"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Options(
	fx.Provide(ProvideConfig),
	fx.Provide(ProvideLogger),
	fx.WithLogger(func(log zerolog.Logger) fxevent.Logger {
		return &fxLogger{log: logger.WithPrefix(log, "fx")}
	}),
	fx.Provide(ProvideDB),
	fx.Provide(ProvideCatalog),
	// repos
	fx.Provide(ProvideMatchRepository),
	// svc
	fx.Provide(services.NewMatchService),
	fx.Provide(services.NewStatsService),
	// server
	fx.Provide(ProvideServer),
	fx.Provide(ProvideHTTPServer),
)

// ProvideConfig loads and validates the configuration.
func ProvideConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// ProvideLogger builds the root logger and installs it as the default.
func ProvideLogger(cfg config.Config) zerolog.Logger {
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
	)
	logger.SetDefault(log)

	log.Info().Msg("configuration loaded")
	log.Debug().
		Str("addr", cfg.Addr).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Str("timezone", cfg.Timezone).
		Str("language", cfg.Language).
		Strs("cors_origins", cfg.CORSOrigins).
		Msg("settings")
	return log
}

// ProvideDB opens the single store handle and closes it when the app stops.
func ProvideDB(lc fx.Lifecycle, cfg config.Config, log zerolog.Logger) (*db.DB, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := database.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing database connection")
				return err
			}
			return nil
		},
	})
	return database, nil
}

// ProvideCatalog returns the configured default display language.
func ProvideCatalog(cfg config.Config) (*locale.Catalog, error) {
	return locale.ParseLanguage(cfg.Language)
}

func ProvideMatchRepository(database *db.DB) repository.MatchRepository {
	return sqlite.NewMatchRepository(database.DB)
}

func ProvideServer(
	cfg config.Config,
	database *db.DB,
	catalog *locale.Catalog,
	matchService services.MatchService,
	statsService services.StatsService,
) (*api.Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &api.Server{
		MatchService: matchService,
		StatsService: statsService,
		DB:           database,
		Catalog:      catalog,
		Location:     loc,
		CORSOrigins:  cfg.CORSOrigins,
	}, nil
}

func ProvideHTTPServer(cfg config.Config, srv *api.Server) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
