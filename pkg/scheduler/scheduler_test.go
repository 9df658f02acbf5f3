package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morning-brief/pkg/domain"
	"morning-brief/pkg/scheduler/mocks"
)

func testReader(lastRun string) *mocks.SettingsReaderMock {
	return &mocks.SettingsReaderMock{
		SettingsFunc: func(ctx context.Context) (domain.Settings, error) {
			return domain.DefaultSettings(), nil // scheduled at 08:00
		},
		LastRunFunc: func(ctx context.Context) (string, error) { return lastRun, nil },
	}
}

func idleRunner() *mocks.RunnerMock {
	return &mocks.RunnerMock{
		StartFunc:  func(ctx context.Context) error { return nil },
		StatusFunc: func() domain.RunStatus { return domain.StatusIdle },
	}
}

func newTestScheduler(runner *mocks.RunnerMock, reader *mocks.SettingsReaderMock, now time.Time) *Scheduler {
	s := New(Params{Runner: runner, Settings: reader, PollInterval: 10 * time.Second})
	s.timeNow = func() time.Time { return now }
	return s
}

func TestScheduler_CheckTriggersOnExactMinute(t *testing.T) {
	runner := idleRunner()
	s := newTestScheduler(runner, testReader(""), time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	s.check(context.Background())

	require.Len(t, runner.StartCalls(), 1)
}

func TestScheduler_CheckNoTriggerOutsideMinute(t *testing.T) {
	for _, tc := range []struct {
		name string
		now  time.Time
	}{
		{"one minute early", time.Date(2025, 6, 15, 7, 59, 0, 0, time.UTC)},
		{"one minute late", time.Date(2025, 6, 15, 8, 1, 0, 0, time.UTC)},
		{"wrong hour", time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			runner := idleRunner()
			s := newTestScheduler(runner, testReader(""), tc.now)

			s.check(context.Background())

			assert.Empty(t, runner.StartCalls())
		})
	}
}

func TestScheduler_CheckNoTriggerWhenAlreadyRanToday(t *testing.T) {
	runner := idleRunner()
	s := newTestScheduler(runner, testReader("2025-06-15"), time.Date(2025, 6, 15, 8, 0, 30, 0, time.UTC))

	s.check(context.Background())

	assert.Empty(t, runner.StartCalls())
}

func TestScheduler_CheckTriggerWhenLastRunYesterday(t *testing.T) {
	runner := idleRunner()
	s := newTestScheduler(runner, testReader("2025-06-14"), time.Date(2025, 6, 15, 8, 0, 30, 0, time.UTC))

	s.check(context.Background())

	assert.Len(t, runner.StartCalls(), 1)
}

func TestScheduler_CheckNoTriggerWhileRunning(t *testing.T) {
	runner := &mocks.RunnerMock{
		StartFunc:  func(ctx context.Context) error { return nil },
		StatusFunc: func() domain.RunStatus { return domain.StatusSearching },
	}
	s := newTestScheduler(runner, testReader(""), time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	s.check(context.Background())

	assert.Empty(t, runner.StartCalls())
}

func TestScheduler_CheckLatchPreventsRepeatWithinMinute(t *testing.T) {
	runner := idleRunner()
	s := New(Params{Runner: runner, Settings: testReader(""), PollInterval: 10 * time.Second})

	// several polls land inside the same scheduled minute while the marker
	// is still unset, only the first fires
	for _, sec := range []int{0, 10, 20, 50} {
		now := time.Date(2025, 6, 15, 8, 0, sec, 0, time.UTC)
		s.timeNow = func() time.Time { return now }
		s.check(context.Background())
	}

	assert.Len(t, runner.StartCalls(), 1)

	// next day the latch resets
	s.timeNow = func() time.Time { return time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC) }
	s.check(context.Background())
	assert.Len(t, runner.StartCalls(), 2)
}

func TestScheduler_TimeUntilNextRun(t *testing.T) {
	for _, tc := range []struct {
		name     string
		now      time.Time
		expected string
	}{
		{"same day ahead", time.Date(2025, 6, 15, 6, 30, 0, 0, time.UTC), "1h 30m"},
		{"already passed, tomorrow", time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), "23h 0m"},
		{"just before", time.Date(2025, 6, 15, 7, 59, 30, 0, time.UTC), "0h 0m"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScheduler(idleRunner(), testReader("2025-06-15"), tc.now)
			s.check(context.Background())
			assert.Equal(t, tc.expected, s.TimeUntilNextRun())
		})
	}
}

func TestScheduler_CheckInvalidScheduledTime(t *testing.T) {
	runner := idleRunner()
	reader := &mocks.SettingsReaderMock{
		SettingsFunc: func(ctx context.Context) (domain.Settings, error) {
			settings := domain.DefaultSettings()
			settings.ScheduledTime = "not-a-time"
			return settings, nil
		},
		LastRunFunc: func(ctx context.Context) (string, error) { return "", nil },
	}
	s := newTestScheduler(runner, reader, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	s.check(context.Background())

	assert.Empty(t, runner.StartCalls())
	assert.Equal(t, "--", s.TimeUntilNextRun())
}

func TestScheduler_CheckReadsLiveSettings(t *testing.T) {
	runner := idleRunner()
	scheduled := "09:30"
	reader := &mocks.SettingsReaderMock{
		SettingsFunc: func(ctx context.Context) (domain.Settings, error) {
			settings := domain.DefaultSettings()
			settings.ScheduledTime = scheduled
			return settings, nil
		},
		LastRunFunc: func(ctx context.Context) (string, error) { return "", nil },
	}
	s := newTestScheduler(runner, reader, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	s.check(context.Background())
	assert.Empty(t, runner.StartCalls())

	// user moved the schedule to the current minute, next check picks it up
	scheduled = "08:00"
	s.check(context.Background())
	assert.Len(t, runner.StartCalls(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	runner := idleRunner()
	s := New(Params{Runner: runner, Settings: testReader(""), PollInterval: 10 * time.Millisecond})
	s.timeNow = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return s.TimeUntilNextRun() != "" },
		time.Second, 5*time.Millisecond)
	s.Stop()
}
