package domain

import "time"

// log entry levels
const (
	LogInfo    = "info"
	LogSuccess = "success"
	LogError   = "error"
)

// LogEntry is a transient user-visible notification, kept in a small
// in-memory ring with no durability
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
}
