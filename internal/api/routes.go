package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(securityHeadersMiddleware)
	if len(s.CORSOrigins) > 0 {
		r.Use(corsMiddleware(s.CORSOrigins))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/factions", s.handleFactions)
		r.Get("/labels", s.handleLabels)
		r.Get("/days", s.handleDays)
		r.Delete("/days/{day}", s.handleDeleteDay)
		r.Get("/matches", s.handleListMatches)
		r.Post("/matches", s.handleCreateMatch)
		r.Get("/history", s.handleHistory)
		r.Get("/stats", s.handleStats)
	})
	return r
}
