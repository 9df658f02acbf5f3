package briefing

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/sashabaranov/go-openai"

	"morning-brief/pkg/config"
	"morning-brief/pkg/domain"
)

// OpenAIClient generates briefings through an OpenAI-compatible endpoint,
// typically a self-hosted model. No search grounding is available here, so
// sources come from the inline citations the model emits.
type OpenAIClient struct {
	cfg     config.GenerationConfig
	timeNow func() time.Time // for testing
}

// NewOpenAIClient creates an OpenAI-compatible generation client
func NewOpenAIClient(cfg config.GenerationConfig) *OpenAIClient {
	return &OpenAIClient{cfg: cfg, timeNow: time.Now}
}

// Generate performs one generation round trip
func (c *OpenAIClient) Generate(ctx context.Context, settings domain.Settings) (*Result, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("api key is missing")
	}

	clientConfig := openai.DefaultConfig(settings.APIKey)
	if c.cfg.Endpoint != "" {
		clientConfig.BaseURL = c.cfg.Endpoint
	}
	client := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       settings.Model,
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemInstruction(settings.Language),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(settings, c.timeNow()),
			},
		},
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate briefing: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no summary generated")
	}
	content := resp.Choices[0].Message.Content

	usage := domain.TokenUsage{
		PromptTokens: resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	return &Result{
		Content:       content,
		Sources:       domain.DedupSources(inlineSources(content)),
		Usage:         usage,
		EstimatedCost: EstimateCost(settings.Model, usage.PromptTokens, usage.OutputTokens),
	}, nil
}

var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)

// inlineSources extracts markdown link citations from generated content
func inlineSources(content string) []domain.SummarySource {
	matches := markdownLinkRe.FindAllStringSubmatch(content, -1)
	sources := make([]domain.SummarySource, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, domain.SummarySource{Title: m[1], URI: m[2]})
	}
	return sources
}
