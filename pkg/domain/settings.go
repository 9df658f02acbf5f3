package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// summary length options
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// DefaultTopics used until the user picks their own
var DefaultTopics = []string{
	"Artificial Intelligence",
	"Global Economy",
	"Technology Startups",
	"Climate Change",
	"Space Exploration",
}

// Settings holds the user-editable briefing configuration. Exactly one record
// exists per installation, stored as a single JSON value in the settings table.
type Settings struct {
	APIKey           string   `json:"api_key"`
	Model            string   `json:"model"`
	ScheduledTime    string   `json:"scheduled_time"` // "HH:MM", 24h
	Topics           []string `json:"topics"`
	PreferredDomains []string `json:"preferred_domains"`
	SummaryLength    string   `json:"summary_length"` // short, medium or long
	Language         string   `json:"language"`
	AutoDownload     bool     `json:"auto_download"`
}

// DefaultSettings returns settings used before the user saved anything,
// also the fallback for fields missing from a stored record.
func DefaultSettings() Settings {
	return Settings{
		Model:            "gemini-3-flash-preview",
		ScheduledTime:    "08:00",
		Topics:           append([]string(nil), DefaultTopics...),
		PreferredDomains: []string{},
		SummaryLength:    LengthMedium,
		Language:         "English",
		AutoDownload:     true,
	}
}

// ScheduledClock parses ScheduledTime into hour and minute
func (s Settings) ScheduledClock() (hour, minute int, err error) {
	parts := strings.SplitN(s.ScheduledTime, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid scheduled time %q", s.ScheduledTime)
	}
	if hour, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid scheduled hour %q: %w", parts[0], err)
	}
	if minute, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid scheduled minute %q: %w", parts[1], err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("scheduled time %q out of range", s.ScheduledTime)
	}
	return hour, minute, nil
}

// Validate checks user settings before save
func (s Settings) Validate() error {
	if _, _, err := s.ScheduledClock(); err != nil {
		return err
	}
	switch s.SummaryLength {
	case LengthShort, LengthMedium, LengthLong:
	default:
		return fmt.Errorf("invalid summary length %q", s.SummaryLength)
	}
	if len(s.Topics) == 0 {
		return fmt.Errorf("at least one topic required")
	}
	return nil
}
