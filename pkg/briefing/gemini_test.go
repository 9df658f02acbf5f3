package briefing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"morning-brief/pkg/domain"
)

func TestGeminiClient_GenerateMissingKey(t *testing.T) {
	client := NewGeminiClient(testGenerationConfig(""))

	_, err := client.Generate(context.Background(), domain.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is missing")
}

func TestGroundingSources(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{Title: "Reuters", URI: "https://reuters.com/story"}},
						{Web: &genai.GroundingChunkWeb{Title: "", URI: "https://missing-title.example.com"}},
						{Web: &genai.GroundingChunkWeb{Title: "No URI", URI: ""}},
						{Web: nil},
						{Web: &genai.GroundingChunkWeb{Title: "AP News", URI: "https://apnews.com/story"}},
					},
				},
			},
			{GroundingMetadata: nil},
		},
	}

	sources := groundingSources(resp)
	require.Len(t, sources, 2)
	assert.Equal(t, domain.SummarySource{Title: "Reuters", URI: "https://reuters.com/story"}, sources[0])
	assert.Equal(t, domain.SummarySource{Title: "AP News", URI: "https://apnews.com/story"}, sources[1])
}

func TestGroundingSources_Empty(t *testing.T) {
	assert.Empty(t, groundingSources(&genai.GenerateContentResponse{}))
}
