// Package server assembles the HTTP router for the exercise tracker.
package server

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/exercises"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/middleware"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/users"
)

// Options configures NewRouter.
type Options struct {
	Users       *users.Handler
	Exercises   *exercises.Handler
	CORSOrigins []string
	ViewsDir    string
	PublicDir   string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Landing page and its assets
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(opts.ViewsDir, "index.html"))
	})
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(opts.PublicDir))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", opts.Users.Create)
		r.Get("/", opts.Users.List)
		r.Post("/{_id}/exercises", opts.Exercises.Create)
		r.Get("/{_id}/logs", opts.Exercises.Logs)
	})

	return r
}
