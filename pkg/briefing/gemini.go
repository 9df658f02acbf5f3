package briefing

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"morning-brief/pkg/config"
	"morning-brief/pkg/domain"
)

// GeminiClient generates briefings through the Gemini API with Google Search
// grounding. The client is created per call because the api key lives in the
// user settings and may change between runs.
type GeminiClient struct {
	cfg     config.GenerationConfig
	timeNow func() time.Time // for testing
}

// NewGeminiClient creates a Gemini generation client
func NewGeminiClient(cfg config.GenerationConfig) *GeminiClient {
	return &GeminiClient{cfg: cfg, timeNow: time.Now}
}

// Generate performs one search-grounded generation round trip
func (c *GeminiClient) Generate(ctx context.Context, settings domain.Settings) (*Result, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("api key is missing")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction(settings.Language)}}},
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		Temperature:       genai.Ptr(float32(c.cfg.Temperature)),
	}

	prompt := buildPrompt(settings, c.timeNow())
	resp, err := client.Models.GenerateContent(ctx, settings.Model, genai.Text(prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("generate briefing: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("no summary generated")
	}

	usage := domain.TokenUsage{}
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Result{
		Content:       text,
		Sources:       domain.DedupSources(groundingSources(resp)),
		Usage:         usage,
		EstimatedCost: EstimateCost(settings.Model, usage.PromptTokens, usage.OutputTokens),
	}, nil
}

// groundingSources collects per-article attribution from grounding metadata
func groundingSources(resp *genai.GenerateContentResponse) []domain.SummarySource {
	var sources []domain.SummarySource
	for _, cand := range resp.Candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
				continue
			}
			sources = append(sources, domain.SummarySource{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}
	return sources
}
