// Package coordinator owns the single in-flight briefing generation: the
// status state machine, the start contract with its re-entrancy guard, and
// all success and failure side effects.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"morning-brief/pkg/briefing"
	"morning-brief/pkg/domain"
)

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/settings_store.go -pkg mocks -skip-ensure -fmt goimports . SettingsStore
//go:generate moq -out mocks/history_store.go -pkg mocks -skip-ensure -fmt goimports . HistoryStore
//go:generate moq -out mocks/exporter.go -pkg mocks -skip-ensure -fmt goimports . Exporter

// start errors reported to callers without a run attempt
var (
	ErrAlreadyRunning = errors.New("a briefing generation is already in progress")
	ErrNoAPIKey       = errors.New("missing api key, configure settings first")
)

// Generator produces one briefing for a settings snapshot
type Generator interface {
	Generate(ctx context.Context, settings domain.Settings) (*briefing.Result, error)
}

// SettingsStore provides user settings and the last-run marker
type SettingsStore interface {
	Settings(ctx context.Context) (domain.Settings, error)
	SetLastRun(ctx context.Context, date string) error
}

// HistoryStore persists generated summaries
type HistoryStore interface {
	Add(ctx context.Context, summary *domain.Summary) error
}

// Exporter writes a summary to a markdown file
type Exporter interface {
	Save(summary domain.Summary) (string, error)
}

// logRingSize bounds the transient notification ring
const logRingSize = 10

// Params contains coordinator dependencies and tunables
type Params struct {
	Generator      Generator
	Settings       SettingsStore
	History        HistoryStore
	Exporter       Exporter
	CompletedReset time.Duration // how long completed status is shown before idle
}

// Coordinator executes at most one generation attempt at a time
type Coordinator struct {
	generator Generator
	settings  SettingsStore
	history   HistoryStore
	exporter  Exporter

	completedReset time.Duration
	timeNow        func() time.Time // for testing
	newID          func() string    // for testing

	mu     sync.Mutex
	status domain.RunStatus
	logs   []domain.LogEntry
	latest *domain.Summary

	wg sync.WaitGroup
}

// New creates a coordinator in the idle state
func New(params Params) *Coordinator {
	if params.CompletedReset == 0 {
		params.CompletedReset = 3 * time.Second
	}
	return &Coordinator{
		generator:      params.Generator,
		settings:       params.Settings,
		history:        params.History,
		exporter:       params.Exporter,
		completedReset: params.CompletedReset,
		timeNow:        time.Now,
		newID:          uuid.NewString,
		status:         domain.StatusIdle,
	}
}

// Start begins one generation attempt. Preconditions are checked
// synchronously: a second call while a run is in flight is a no-op returning
// ErrAlreadyRunning, and a missing api key fails fast with ErrNoAPIKey
// without touching the network or leaving the idle state. On success the
// generation itself continues in the background; scheduled and manual
// invocations share this exact path.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()

	// re-entrancy guard, checked and flipped under the same lock so two
	// concurrent calls can never both proceed
	if c.status.Running() {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}

	settings, err := c.settings.Settings(ctx)
	if err != nil {
		c.mu.Unlock()
		c.addLog(domain.LogError, "failed to load settings: %v", err)
		return fmt.Errorf("load settings: %w", err)
	}

	if settings.APIKey == "" {
		// configuration error, not a run failure: status stays idle
		c.mu.Unlock()
		c.addLog(domain.LogError, "missing API key, please configure settings")
		return ErrNoAPIKey
	}

	c.status = domain.StatusSearching
	c.mu.Unlock()

	c.addLog(domain.LogInfo, "starting daily search cycle")

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, settings)
	}()

	return nil
}

// run performs the network call and applies all side effects
func (c *Coordinator) run(ctx context.Context, settings domain.Settings) {
	result, err := c.generator.Generate(ctx, settings)
	if err != nil {
		c.setStatus(domain.StatusError)
		c.addLog(domain.LogError, "briefing generation failed: %v", err)
		return
	}

	// request answered, the provider performs search and summarize as one
	// atomic call so this state is informational
	c.setStatus(domain.StatusSummarizing)

	now := c.timeNow()
	today := now.Format("2006-01-02")
	usage := result.Usage
	summary := &domain.Summary{
		ID:            c.newID(),
		Date:          today,
		Content:       result.Content,
		Sources:       domain.DedupSources(result.Sources),
		Timestamp:     now,
		Usage:         &usage,
		EstimatedCost: result.EstimatedCost,
	}

	if err := c.history.Add(ctx, summary); err != nil {
		c.setStatus(domain.StatusError)
		c.addLog(domain.LogError, "failed to store briefing: %v", err)
		return
	}

	// marker update after the history write; losing it mid-sequence only
	// means a duplicate attempt later, deduplicated by the guard
	if err := c.settings.SetLastRun(ctx, today); err != nil {
		c.addLog(domain.LogError, "failed to update last run marker: %v", err)
	}

	c.mu.Lock()
	c.latest = summary
	c.status = domain.StatusCompleted
	c.mu.Unlock()

	c.addLog(domain.LogSuccess, "briefing generated successfully")

	if settings.AutoDownload {
		c.addLog(domain.LogInfo, "downloading summary file")
		if path, err := c.exporter.Save(*summary); err != nil {
			c.addLog(domain.LogError, "failed to export briefing: %v", err)
		} else {
			lgr.Printf("[DEBUG] briefing exported to %s", path)
		}
	}

	// keep completed visible for a moment before resting at idle
	time.AfterFunc(c.completedReset, func() {
		c.mu.Lock()
		if c.status == domain.StatusCompleted {
			c.status = domain.StatusIdle
		}
		c.mu.Unlock()
	})
}

// Stop waits for an in-flight generation to finish
func (c *Coordinator) Stop() {
	c.wg.Wait()
}

// Status returns the current run status
func (c *Coordinator) Status() domain.RunStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Latest returns the most recently generated summary of this process,
// nil before the first successful run
func (c *Coordinator) Latest() *domain.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Logs returns recent notifications, newest first
func (c *Coordinator) Logs() []domain.LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.LogEntry, len(c.logs))
	copy(out, c.logs)
	return out
}

func (c *Coordinator) setStatus(status domain.RunStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

func (c *Coordinator) addLog(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch level {
	case domain.LogError:
		lgr.Printf("[WARN] %s", msg)
	default:
		lgr.Printf("[INFO] %s", msg)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry := domain.LogEntry{Timestamp: c.timeNow(), Message: msg, Level: level}
	c.logs = append([]domain.LogEntry{entry}, c.logs...)
	if len(c.logs) > logRingSize {
		c.logs = c.logs[:logRingSize]
	}
}
