package main

import (
	"context"
	"net"
	"net/http"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/rs/zerolog"
	"github.com/vytor/matchtracker/internal/app"
	"go.uber.org/fx"
)

const shutdownTimeout = 30 * time.Second

func main() {
	fx.New(
		app.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(lc fx.Lifecycle, srv *http.Server, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				log.Error().Err(err).Str("addr", srv.Addr).Msg("failed to listen")
				return err
			}
			log.Info().Str("addr", srv.Addr).Msg("Match Tracker listening")
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("HTTP server shutdown error")
				return err
			}
			log.Info().Msg("Match Tracker stopped")
			return nil
		},
	})
}
