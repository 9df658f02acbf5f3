package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Empty(t, settings.APIKey)
	assert.Equal(t, "gemini-3-flash-preview", settings.Model)
	assert.Equal(t, "08:00", settings.ScheduledTime)
	assert.Equal(t, DefaultTopics, settings.Topics)
	assert.Equal(t, LengthMedium, settings.SummaryLength)
	assert.Equal(t, "English", settings.Language)
	assert.True(t, settings.AutoDownload)

	// returned topics are a copy, mutating them must not touch the defaults
	settings.Topics[0] = "changed"
	assert.Equal(t, "Artificial Intelligence", DefaultTopics[0])
}

func TestSettings_ScheduledClock(t *testing.T) {
	for _, tc := range []struct {
		time   string
		hour   int
		minute int
		ok     bool
	}{
		{"08:00", 8, 0, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"7:05", 7, 5, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1:30", 0, 0, false},
		{"0800", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"", 0, 0, false},
	} {
		t.Run(tc.time, func(t *testing.T) {
			s := Settings{ScheduledTime: tc.time}
			hour, minute, err := s.ScheduledClock()
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.minute, minute)
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := DefaultSettings()
	require.NoError(t, valid.Validate())

	badTime := valid
	badTime.ScheduledTime = "25:00"
	assert.Error(t, badTime.Validate())

	badLength := valid
	badLength.SummaryLength = "huge"
	assert.Error(t, badLength.Validate())

	noTopics := valid
	noTopics.Topics = nil
	assert.Error(t, noTopics.Validate())
}
