package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morning-brief/pkg/domain"
)

func TestSettingRepository_RawOperations(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	// missing key returns empty string, not an error
	value, err := repos.Setting.GetSetting(ctx, "nonexistent")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, repos.Setting.SetSetting(ctx, "greeting", "hello"))
	value, err = repos.Setting.GetSetting(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	// upsert overwrites
	require.NoError(t, repos.Setting.SetSetting(ctx, "greeting", "hi"))
	value, err = repos.Setting.GetSetting(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hi", value)

	require.NoError(t, repos.Setting.DeleteSetting(ctx, "greeting"))
	value, err = repos.Setting.GetSetting(ctx, "greeting")
	require.NoError(t, err)
	assert.Empty(t, value)

	// deleting a missing key is fine
	require.NoError(t, repos.Setting.DeleteSetting(ctx, "greeting"))
}

func TestSettingRepository_SettingsDefaults(t *testing.T) {
	repos := setupTestRepos(t)

	settings, err := repos.Setting.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingRepository_SettingsRoundTrip(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	settings := domain.DefaultSettings()
	settings.APIKey = "test-key"
	settings.ScheduledTime = "06:45"
	settings.Topics = []string{"AI", "Climate"}
	settings.PreferredDomains = []string{"reuters.com"}
	settings.SummaryLength = "long"
	settings.AutoDownload = false
	require.NoError(t, repos.Setting.SaveSettings(ctx, settings))

	loaded, err := repos.Setting.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingRepository_SettingsPartialStored(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	// only some fields present, the rest keep defaults
	require.NoError(t, repos.Setting.SetSetting(ctx, "settings", `{"scheduled_time":"07:15"}`))

	settings, err := repos.Setting.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "07:15", settings.ScheduledTime)
	assert.Equal(t, domain.DefaultSettings().Model, settings.Model)
	assert.Equal(t, domain.DefaultSettings().Topics, settings.Topics)
	assert.True(t, settings.AutoDownload)
}

func TestSettingRepository_SettingsMalformedStored(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Setting.SetSetting(ctx, "settings", "{not json"))

	settings, err := repos.Setting.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestSettingRepository_LastRunMarker(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	lastRun, err := repos.Setting.LastRun(ctx)
	require.NoError(t, err)
	assert.Empty(t, lastRun)

	require.NoError(t, repos.Setting.SetLastRun(ctx, "2025-06-15"))
	lastRun, err = repos.Setting.LastRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", lastRun)

	require.NoError(t, repos.Setting.ClearLastRun(ctx))
	lastRun, err = repos.Setting.LastRun(ctx)
	require.NoError(t, err)
	assert.Empty(t, lastRun)
}
