package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/docmark/docmark/internal/config"
	"github.com/docmark/docmark/internal/ingest"
	"github.com/docmark/docmark/internal/session"
)

// Server is the HTTP API for the highlight service.
type Server struct {
	router   chi.Router
	col      *session.Collection
	ingestor *ingest.Ingestor
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(col *session.Collection, ing *ingest.Ingestor, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		col:      col,
		ingestor: ing,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/documents", s.handleUpload)
		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)

		r.Get("/api/documents/{docID}/highlights", s.handleListHighlights)
		r.Post("/api/documents/{docID}/highlights/sentence", s.handleToggleSentence)
		r.Post("/api/documents/{docID}/highlights/cell", s.handleToggleCell)
		r.Delete("/api/documents/{docID}/highlights", s.handleClearHighlights)

		r.Get("/api/documents/{docID}/export", s.handleExport)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
