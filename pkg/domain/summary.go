package domain

import "time"

// SummarySource is a single grounding citation returned with a briefing
type SummarySource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// TokenUsage reports token counts for one generation call
type TokenUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Summary is one generated briefing with its citations. Immutable once
// created; history keeps the 50 most recent, newest first.
type Summary struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // calendar date label, "2006-01-02"
	Content       string          `json:"content"`
	Sources       []SummarySource `json:"sources"`
	Timestamp     time.Time       `json:"timestamp"`
	Usage         *TokenUsage     `json:"usage,omitempty"`
	EstimatedCost float64         `json:"estimated_cost,omitempty"`
}

// DedupSources drops sources with a repeated URI, keeping the first
// occurrence and the original order
func DedupSources(sources []SummarySource) []SummarySource {
	seen := make(map[string]struct{}, len(sources))
	result := make([]SummarySource, 0, len(sources))
	for _, s := range sources {
		if _, ok := seen[s.URI]; ok {
			continue
		}
		seen[s.URI] = struct{}{}
		result = append(result, s)
	}
	return result
}
