package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sullhouse/sullstice/internal/archive"
	"github.com/sullhouse/sullstice/internal/content"
	"github.com/sullhouse/sullstice/internal/database"
	"github.com/sullhouse/sullstice/internal/models"
	"github.com/sullhouse/sullstice/internal/notify"
	"github.com/sullhouse/sullstice/internal/responder"
)

// ResponderService generates replies for RSVP submissions and
// questions. Implemented by responder.Responder.
type ResponderService interface {
	RespondToRSVP(ctx context.Context, rsvp models.RsvpRecord) responder.GeneratedResponse
	AnswerQuestion(ctx context.Context, question string) string
}

type Server struct {
	db        *database.DB
	responder ResponderService
	mailer    notify.Mailer
	content   content.Provider
	archive   archive.Store
	httpSrv   *http.Server
	log       zerolog.Logger
	port      int
	hostEmail string
}

// Config holds everything the server needs at construction time.
type Config struct {
	DB        *database.DB
	Responder ResponderService
	Mailer    notify.Mailer
	Content   content.Provider
	Archive   archive.Store
	Port      int
	HostEmail string
}

func New(cfg Config) *Server {
	s := &Server{
		db:        cfg.DB,
		responder: cfg.Responder,
		mailer:    cfg.Mailer,
		content:   cfg.Content,
		archive:   cfg.Archive,
		port:      cfg.Port,
		hostEmail: cfg.HostEmail,
		log:       zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger(),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealthCheck)

	mux.HandleFunc("POST /rsvp", s.handleRSVP)
	mux.HandleFunc("POST /questions", s.handleQuestions)
	mux.HandleFunc("GET /updated_event_details_html", s.handleUpdatedDetails)
}

func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler for testing purposes
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// corsMiddleware adds CORS headers so the static event site can call
// the API from the browser.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-access-token")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
