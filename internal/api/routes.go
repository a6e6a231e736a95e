package api

import (
	"net/http"
	"time"

	"valentine.share/config"
	"valentine.share/internal/service"
	"valentine.share/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(svc *service.SurpriseService, cfg *config.Config) *chi.Mux {
	h := NewHandler(svc, cfg)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	r.Use(CORS(CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	// Health
	r.Get("/health", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/create-surprise", h.CreateSurprise)
		r.Get("/get-surprise/{id}", h.GetSurprise)
		r.Get("/check-surprise/{id}", h.CheckSurprise)
	})

	// Frontend
	r.Get("/", h.Index)
	r.Get("/valentine.html", h.ValentinePage)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	return r
}
