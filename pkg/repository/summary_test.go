package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"morning-brief/pkg/domain"
)

func makeSummary(i int, createdAt time.Time) *domain.Summary {
	return &domain.Summary{
		ID:      fmt.Sprintf("summary-%03d", i),
		Date:    createdAt.Format("2006-01-02"),
		Content: fmt.Sprintf("## Morning Brief %d", i),
		Sources: []domain.SummarySource{
			{Title: fmt.Sprintf("Article %d", i), URI: fmt.Sprintf("https://example.com/%d", i)},
		},
		Timestamp:     createdAt,
		Usage:         &domain.TokenUsage{PromptTokens: 100 + i, OutputTokens: 200 + i, TotalTokens: 300 + 2*i},
		EstimatedCost: 0.001 * float64(i),
	}
}

func TestSummaryRepository_AddAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	summary := makeSummary(1, created)
	require.NoError(t, repos.Summary.Add(ctx, summary))

	got, err := repos.Summary.Get(ctx, summary.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, summary.ID, got.ID)
	assert.Equal(t, "2025-06-15", got.Date)
	assert.Equal(t, summary.Content, got.Content)
	assert.Equal(t, summary.Sources, got.Sources)
	assert.True(t, created.Equal(got.Timestamp), "timestamp mismatch: %v vs %v", created, got.Timestamp)
	require.NotNil(t, got.Usage)
	assert.Equal(t, 101, got.Usage.PromptTokens)
	assert.Equal(t, 201, got.Usage.OutputTokens)
	assert.Equal(t, 302, got.Usage.TotalTokens)
	assert.InDelta(t, 0.001, got.EstimatedCost, 1e-9)
}

func TestSummaryRepository_GetMissing(t *testing.T) {
	repos := setupTestRepos(t)

	got, err := repos.Summary.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryRepository_AddWithoutUsage(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	summary := &domain.Summary{
		ID:        "no-usage",
		Date:      "2025-06-15",
		Content:   "brief without token counts",
		Timestamp: time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.Summary.Add(ctx, summary))

	got, err := repos.Summary.Get(ctx, "no-usage")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Usage)
	assert.Empty(t, got.Sources)
}

func TestSummaryRepository_ListNewestFirst(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		require.NoError(t, repos.Summary.Add(ctx, makeSummary(i, base.AddDate(0, 0, i))))
	}

	summaries, err := repos.Summary.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "summary-003", summaries[0].ID)
	assert.Equal(t, "summary-002", summaries[1].ID)
	assert.Equal(t, "summary-001", summaries[2].ID)
}

func TestSummaryRepository_Latest(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	latest, err := repos.Summary.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Summary.Add(ctx, makeSummary(1, base)))
	require.NoError(t, repos.Summary.Add(ctx, makeSummary(2, base.AddDate(0, 0, 1))))

	latest, err = repos.Summary.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "summary-002", latest.ID)
}

func TestSummaryRepository_HistoryCap(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= historyLimit+5; i++ {
		require.NoError(t, repos.Summary.Add(ctx, makeSummary(i, base.AddDate(0, 0, i))))
	}

	summaries, err := repos.Summary.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, historyLimit)

	// the 5 oldest entries were trimmed, newest first
	assert.Equal(t, fmt.Sprintf("summary-%03d", historyLimit+5), summaries[0].ID)
	assert.Equal(t, fmt.Sprintf("summary-%03d", 6), summaries[historyLimit-1].ID)

	// trimmed entries are gone
	got, err := repos.Summary.Get(ctx, "summary-001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryRepository_DeleteAll(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		require.NoError(t, repos.Summary.Add(ctx, makeSummary(i, base.AddDate(0, 0, i))))
	}

	require.NoError(t, repos.Summary.DeleteAll(ctx))

	summaries, err := repos.Summary.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
