// Package web exposes terminal sessions over a small JSON API for a
// browser front end. Each session owns its own interpreter; effects are
// returned to the client to carry out.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/poi5en/termfolio/internal/config"
	"github.com/poi5en/termfolio/internal/terminal"
)

// Scoreboard is the score source for GET /api/scores.
type Scoreboard = terminal.Scoreboard

// Server is the HTTP API.
type Server struct {
	cfg      config.Config
	engine   *gin.Engine
	sessions *SessionStore
	scores   Scoreboard
	logger   *log.Logger
}

// NewServer builds the router. scores may be nil.
func NewServer(cfg config.Config, scores Scoreboard, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		scores: scores,
		logger: logger,
	}
	s.sessions = NewSessionStore(cfg.Server.SessionTTL(), s.newInterpreter)

	r := gin.New()
	r.Use(gin.Recovery(), s.loggingMiddleware())

	api := r.Group("/api")
	api.GET("/commands", s.handleCommands)
	api.GET("/scores", s.handleScores)
	api.POST("/sessions", s.handleCreateSession)
	api.DELETE("/sessions/:id", s.handleDeleteSession)

	sess := api.Group("/sessions/:id", s.requireSession)
	sess.POST("/submit", s.handleSubmit)
	sess.GET("/complete", s.handleComplete)
	sess.POST("/history/prev", s.handleRecall(true))
	sess.POST("/history/next", s.handleRecall(false))

	s.engine = r
	return s
}

func (s *Server) newInterpreter() *terminal.Interpreter {
	return terminal.New(
		terminal.DefaultTable(s.cfg.Profile, s.scores),
		terminal.WithLogger(s.logger),
		terminal.WithWelcome(s.cfg.Terminal.Welcome...),
	)
}

// Handler returns the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Sessions returns the session store.
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// ListenAndServe serves on addr until ctx is cancelled, sweeping idle
// sessions in the background.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, time.Minute, func(n int) {
		s.logger.Info("expired sessions", "count", n)
	})

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loggingMiddleware logs each request through the application logger.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
