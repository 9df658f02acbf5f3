package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"morning-brief/pkg/coordinator"
	"morning-brief/pkg/domain"
	"morning-brief/pkg/export"
)

// statusResponse is the payload of GET /api/v1/status
type statusResponse struct {
	Status     domain.RunStatus  `json:"status"`
	NextRunIn  string            `json:"next_run_in"`
	Logs       []domain.LogEntry `json:"logs"`
	Version    string            `json:"version"`
	ServerTime time.Time         `json:"server_time"`
}

// statusHandler returns the run status, time until the next scheduled run
// and recent notifications
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:     s.coordinator.Status(),
		NextRunIn:  s.scheduler.TimeUntilNextRun(),
		Logs:       s.coordinator.Logs(),
		Version:    s.version,
		ServerTime: time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// runHandler starts a manual generation, same contract as a scheduled run
func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	// the generation outlives the request, detach from its cancellation
	err := s.coordinator.Start(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, coordinator.ErrAlreadyRunning):
		RenderError(w, r, err, http.StatusConflict)
	case errors.Is(err, coordinator.ErrNoAPIKey):
		RenderError(w, r, err, http.StatusBadRequest)
	case err != nil:
		RenderError(w, r, err, http.StatusInternalServerError)
	default:
		RenderJSON(w, r, http.StatusAccepted, map[string]string{"result": "started"})
	}
}

// settingsResponse masks the api key, reporting only its presence
type settingsResponse struct {
	domain.Settings
	APIKeySet bool `json:"api_key_set"`
}

// getSettingsHandler returns current settings with the api key masked
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Settings(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := settingsResponse{Settings: settings, APIKeySet: settings.APIKey != ""}
	resp.Settings.APIKey = ""
	RenderJSON(w, r, http.StatusOK, resp)
}

// saveSettingsHandler validates and persists settings. An empty api key in
// the request keeps the stored one, since responses never include it.
func (s *Server) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		RenderError(w, r, fmt.Errorf("invalid settings payload: %w", err), http.StatusBadRequest)
		return
	}

	if err := settings.Validate(); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	if settings.APIKey == "" {
		current, err := s.settings.Settings(r.Context())
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		settings.APIKey = current.APIKey
	}

	if err := s.settings.SaveSettings(r.Context(), settings); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	lgr.Printf("[INFO] settings updated, scheduled time %s", settings.ScheduledTime)
	RenderJSON(w, r, http.StatusOK, map[string]string{"result": "saved"})
}

// listSummariesHandler returns the history, newest first
func (s *Server) listSummariesHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.history.List(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, summaries)
}

// getSummaryHandler returns a single summary by id
func (s *Server) getSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if summary == nil {
		RenderError(w, r, fmt.Errorf("summary not found"), http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, summary)
}

// downloadSummaryHandler serves a summary as a markdown attachment using the
// deterministic export filename
func (s *Server) downloadSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if summary == nil {
		RenderError(w, r, fmt.Errorf("summary not found"), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(*summary)))
	if _, err := w.Write([]byte(summary.Content)); err != nil {
		lgr.Printf("[WARN] failed to write summary download: %v", err)
	}
}

// clearHistoryHandler removes all summaries and the last-run marker
func (s *Server) clearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.history.DeleteAll(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if err := s.settings.ClearLastRun(r.Context()); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] history cleared")
	RenderJSON(w, r, http.StatusOK, map[string]string{"result": "cleared"})
}
