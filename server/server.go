package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/newsdesk/newsdesk/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/rewriter.go -pkg mocks -skip-ensure -fmt goimports . Rewriter

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	db       Database
	rewriter Rewriter
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	Schema(ctx context.Context) (domain.Schema, error)
	UserSettings(ctx context.Context, userID string) (map[string]string, error)
	SaveUserSettings(ctx context.Context, userID string, values map[string]string) error
	CreateRecord(ctx context.Context, userID, text string, settings domain.Settings) (int64, error)
	CompleteRecord(ctx context.Context, id int64, processedText string, duration time.Duration) error
	FailRecord(ctx context.Context, id int64, errMsg string, duration time.Duration) error
	History(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error)
	Statistics(ctx context.Context, userID string) (*domain.Statistics, error)
}

// Rewriter turns a complete prompt into a rewritten article
type Rewriter interface {
	Rewrite(ctx context.Context, prompt, format string) (*domain.ProcessResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetDefaultUser() string
	GetHistoryLimit() int
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, rewriter Rewriter, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		db:       db,
		rewriter: rewriter,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used by tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdesk", "newsdesk", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /prompt/config", s.promptConfigHandler)
		r.HandleFunc("GET /prompt/user-settings", s.getUserSettingsHandler)
		r.HandleFunc("POST /prompt/user-settings", s.saveUserSettingsHandler)
		r.HandleFunc("POST /prompt/build-complete-prompt", s.buildPromptHandler)

		r.HandleFunc("POST /process-news", s.processNewsHandler)
		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("GET /statistics", s.statisticsHandler)
	})
}
