// Package scheduler decides when a new briefing generation should start
// automatically. It polls the wall clock at a coarse fixed interval, reads
// the live settings on every check, and fires the coordinator when the
// scheduled minute arrives and no run happened today.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"morning-brief/pkg/coordinator"
	"morning-brief/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner
//go:generate moq -out mocks/settings_reader.go -pkg mocks -skip-ensure -fmt goimports . SettingsReader

// Runner starts a generation and reports the run state
type Runner interface {
	Start(ctx context.Context) error
	Status() domain.RunStatus
}

// SettingsReader provides the current settings and last-run marker. Read on
// every check so schedule edits take effect without a restart.
type SettingsReader interface {
	Settings(ctx context.Context) (domain.Settings, error)
	LastRun(ctx context.Context) (string, error)
}

// Params contains scheduler dependencies and tunables
type Params struct {
	Runner       Runner
	Settings     SettingsReader
	PollInterval time.Duration
}

// Scheduler polls the clock and triggers scheduled runs
type Scheduler struct {
	runner       Runner
	settings     SettingsReader
	pollInterval time.Duration
	timeNow      func() time.Time // for testing

	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu        sync.Mutex
	nextRunIn string
	firedAt   string // minute latch, "2006-01-02 15:04" of the last trigger
}

// New creates a scheduler instance
func New(params Params) *Scheduler {
	if params.PollInterval == 0 {
		params.PollInterval = 10 * time.Second
	}
	return &Scheduler{
		runner:       params.Runner,
		settings:     params.Settings,
		pollInterval: params.PollInterval,
		timeNow:      time.Now,
	}
}

// Start begins the polling loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.worker(ctx)

	lgr.Printf("[INFO] scheduler started with poll interval %v", s.pollInterval)
}

// Stop cancels the polling loop and waits for it to exit
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// TimeUntilNextRun returns the remaining time to the next scheduled run as a
// display string, computed on the most recent check
func (s *Scheduler) TimeUntilNextRun() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRunIn
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// run immediately on start
	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check evaluates the trigger condition once. It fires a run when the
// current hour and minute equal the scheduled hour and minute exactly, the
// last-run marker is not today, and the coordinator is idle. A per-minute
// latch prevents repeated triggers within the same matching minute.
func (s *Scheduler) check(ctx context.Context) {
	settings, err := s.settings.Settings(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduler failed to load settings: %v", err)
		return
	}

	hour, minute, err := settings.ScheduledClock()
	if err != nil {
		lgr.Printf("[WARN] scheduler skipping check: %v", err)
		s.setNextRunIn("--")
		return
	}

	now := s.timeNow()

	// next occurrence of the scheduled time: today if still ahead, else tomorrow
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	remaining := next.Sub(now)
	s.setNextRunIn(fmt.Sprintf("%dh %dm", int(remaining.Hours()), int(remaining.Minutes())%60))

	if now.Hour() != hour || now.Minute() != minute {
		return
	}

	minuteKey := now.Format("2006-01-02 15:04")
	s.mu.Lock()
	alreadyFired := s.firedAt == minuteKey
	s.mu.Unlock()
	if alreadyFired {
		return
	}

	lastRun, err := s.settings.LastRun(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduler failed to read last run marker: %v", err)
		return
	}
	today := now.Format("2006-01-02")
	if lastRun == today {
		return
	}

	if s.runner.Status() != domain.StatusIdle {
		return
	}

	s.mu.Lock()
	s.firedAt = minuteKey
	s.mu.Unlock()

	lgr.Printf("[INFO] scheduled run triggered at %s", minuteKey)
	if err := s.runner.Start(ctx); err != nil && !errors.Is(err, coordinator.ErrAlreadyRunning) {
		lgr.Printf("[WARN] scheduled run not started: %v", err)
	}
}

func (s *Scheduler) setNextRunIn(v string) {
	s.mu.Lock()
	s.nextRunIn = v
	s.mu.Unlock()
}
