// Package server exposes lesson generation and the quiz session as a JSON
// HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/abhisek/capisco/internal/config"
	"github.com/abhisek/capisco/internal/logging"
	"github.com/abhisek/capisco/internal/pipeline"
	"github.com/abhisek/capisco/internal/session"
)

// Server wires the HTTP routes to a lesson pipeline and one quiz session.
type Server struct {
	pipeline *pipeline.Pipeline
	session  *session.Session
	cors     config.CORSConfig
	log      *slog.Logger
	router   *mux.Router
}

// New creates a Server. A nil logger uses slog.Default.
func New(p *pipeline.Pipeline, sess *session.Session, cors config.CORSConfig, log *slog.Logger) *Server {
	s := &Server{
		pipeline: p,
		session:  sess,
		cors:     cors,
		log:      logging.OrDefault(log).With("component", "server"),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.corsMiddleware)
	r.Use(noCacheMiddleware)
	r.Use(s.logMiddleware)

	r.HandleFunc("/health", s.health).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/lessons", s.createLesson).Methods("POST", "OPTIONS")
	v1.HandleFunc("/topics", s.listTopics).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/next", s.nextItem).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/answer", s.submitAnswer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/skip", s.skipItem).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/score", s.score).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/end", s.endSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/progress/review", s.reviewQueue).Methods("GET", "OPTIONS")

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
