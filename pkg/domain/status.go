package domain

// RunStatus describes the state of the single generation cycle. It is
// process-wide, never persisted, and always starts as Idle.
type RunStatus string

// run status values
const (
	StatusIdle        RunStatus = "idle"
	StatusSearching   RunStatus = "searching"
	StatusSummarizing RunStatus = "summarizing"
	StatusCompleted   RunStatus = "completed"
	StatusError       RunStatus = "error"
)

// Running reports whether a generation is in flight
func (s RunStatus) Running() bool {
	return s == StatusSearching || s == StatusSummarizing
}
