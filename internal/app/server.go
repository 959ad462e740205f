package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/anny12sstr/converter-analyses/internal/api/handlers"
	"github.com/anny12sstr/converter-analyses/internal/config"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewRouter builds and wires all routes. The pre-signed upload endpoints are
// registered only when object storage is configured.
func NewRouter(convert *handlers.ConvertHandler, upload *handlers.UploadHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8888"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Route("/api", func(api chi.Router) {
		api.Post("/convert", convert.Convert)

		if upload != nil {
			api.Get("/uploads/url", upload.GenerateUploadURL)
			api.Post("/convert/object", convert.ProcessObject)
		}
	})

	return r
}

func NewServer(cfg *config.Config, convert *handlers.ConvertHandler, upload *handlers.UploadHandler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: NewRouter(convert, upload),
		},
	}
}

// Start runs the HTTP server until shutdown.
func (s *Server) Start() error {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
