// Package server exposes the briefing service over a JSON HTTP API: run
// status, manual runs, settings, and the summary history.
package server

import (
	"context"
	"encoding/json"
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

	"morning-brief/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/coordinator.go -pkg mocks -skip-ensure -fmt goimports . Coordinator
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/settings_manager.go -pkg mocks -skip-ensure -fmt goimports . SettingsManager
//go:generate moq -out mocks/history_manager.go -pkg mocks -skip-ensure -fmt goimports . HistoryManager

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	coordinator Coordinator
	scheduler   Scheduler
	settings    SettingsManager
	history     HistoryManager
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Coordinator interface for run operations
type Coordinator interface {
	Start(ctx context.Context) error
	Status() domain.RunStatus
	Logs() []domain.LogEntry
}

// Scheduler interface for schedule info
type Scheduler interface {
	TimeUntilNextRun() string
}

// SettingsManager interface for settings operations
type SettingsManager interface {
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
	ClearLastRun(ctx context.Context) error
}

// HistoryManager interface for summary history operations
type HistoryManager interface {
	List(ctx context.Context) ([]domain.Summary, error)
	Get(ctx context.Context, id string) (*domain.Summary, error)
	DeleteAll(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params contains server dependencies
type Params struct {
	Config      ConfigProvider
	Coordinator Coordinator
	Scheduler   Scheduler
	Settings    SettingsManager
	History     HistoryManager
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:      params.Config,
		coordinator: params.Coordinator,
		scheduler:   params.Scheduler,
		settings:    params.Settings,
		history:     params.History,
		version:     params.Version,
		debug:       params.Debug,
		router:      routegroup.New(http.NewServeMux()),
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
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("morning-brief", "morning-brief", s.version))
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
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /run", s.runHandler)
		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.saveSettingsHandler)
		r.HandleFunc("GET /summaries", s.listSummariesHandler)
		r.HandleFunc("GET /summaries/{id}", s.getSummaryHandler)
		r.HandleFunc("GET /summaries/{id}/download", s.downloadSummaryHandler)
		r.HandleFunc("DELETE /summaries", s.clearHistoryHandler)
	})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
