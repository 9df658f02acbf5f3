package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"morning-brief/pkg/domain"
)

// fixed keys in the settings table
const (
	keySettings = "settings"
	keyLastRun  = "last_run"
)

// SettingRepository handles setting-related database operations, including
// the typed user settings record and the last-run marker
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a raw setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a raw setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO settings (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		_, err := r.db.ExecContext(ctx, query, key, value)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	})
}

// DeleteSetting removes a setting, missing key is not an error
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}

// Settings loads the user settings record. Absent or malformed stored data
// falls back to defaults, and fields missing from the stored JSON keep their
// default values (lenient merge, not strict parsing).
func (r *SettingRepository) Settings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	value, err := r.GetSetting(ctx, keySettings)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if value == "" {
		return settings, nil
	}

	// unmarshal over defaults so missing fields keep them, malformed data is
	// treated the same as absent
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings persists the user settings record
func (r *SettingRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := r.SetSetting(ctx, keySettings, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// LastRun returns the calendar date of the most recent successful run,
// empty string if no run happened yet
func (r *SettingRepository) LastRun(ctx context.Context) (string, error) {
	return r.GetSetting(ctx, keyLastRun)
}

// SetLastRun stores the calendar date of the most recent successful run
func (r *SettingRepository) SetLastRun(ctx context.Context, date string) error {
	return r.SetSetting(ctx, keyLastRun, date)
}

// ClearLastRun removes the last-run marker
func (r *SettingRepository) ClearLastRun(ctx context.Context) error {
	return r.DeleteSetting(ctx, keyLastRun)
}
