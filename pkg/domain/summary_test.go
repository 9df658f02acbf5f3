package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupSources(t *testing.T) {
	sources := []SummarySource{
		{Title: "Reuters", URI: "https://reuters.com/a"},
		{Title: "AP", URI: "https://apnews.com/b"},
		{Title: "Reuters again", URI: "https://reuters.com/a"},
		{Title: "BBC", URI: "https://bbc.com/c"},
		{Title: "AP dup", URI: "https://apnews.com/b"},
	}

	deduped := DedupSources(sources)
	assert.Equal(t, []SummarySource{
		{Title: "Reuters", URI: "https://reuters.com/a"},
		{Title: "AP", URI: "https://apnews.com/b"},
		{Title: "BBC", URI: "https://bbc.com/c"},
	}, deduped)
}

func TestDedupSources_Empty(t *testing.T) {
	assert.Empty(t, DedupSources(nil))
	assert.Empty(t, DedupSources([]SummarySource{}))
}

func TestRunStatus_Running(t *testing.T) {
	assert.True(t, StatusSearching.Running())
	assert.True(t, StatusSummarizing.Running())
	assert.False(t, StatusIdle.Running())
	assert.False(t, StatusCompleted.Running())
	assert.False(t, StatusError.Running())
}
