package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func SetupRoutes(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	// Wizard screens
	r.Get("/", s.Entry)
	r.Post("/start", s.Start)
	r.Get("/maps", s.Maps)
	r.Get("/sides", s.Sides)
	r.Get("/healthz", Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/steps", s.GetSteps)
		r.Post("/teams/validate", s.ValidateTeams)
		r.Post("/veto", s.ReplayVeto)
		r.Post("/sides", s.ReplaySides)
	})

	// Map and side imagery, only when a directory is configured
	if s.staticDir != "" {
		files := http.FileServer(http.Dir(s.staticDir))
		r.Handle("/maps/*", files)
		r.Handle("/tside.webp", files)
		r.Handle("/ctside.jpg", files)
	}
	return r
}
