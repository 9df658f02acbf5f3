// Package briefing implements generation clients producing one web-grounded
// daily briefing from the user settings. Two providers are available: Gemini
// with Google Search grounding and any OpenAI-compatible endpoint.
package briefing

import (
	"context"
	"fmt"

	"morning-brief/pkg/config"
	"morning-brief/pkg/domain"
)

// Result is the outcome of one successful generation call
type Result struct {
	Content       string
	Sources       []domain.SummarySource
	Usage         domain.TokenUsage
	EstimatedCost float64
}

// Generator produces one briefing for the given settings snapshot
type Generator interface {
	Generate(ctx context.Context, settings domain.Settings) (*Result, error)
}

// NewGenerator creates the generation client selected by the configuration
func NewGenerator(cfg config.GenerationConfig) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(cfg), nil
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown generation provider %q", cfg.Provider)
	}
}
