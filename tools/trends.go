package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/resumecoach/backend/trends"
)

// FetchTrendsTool fetches current market trend snippets
type FetchTrendsTool struct {
	fetcher      trends.Fetcher
	defaultQuery string
}

// NewFetchTrendsTool creates a new trend tool
func NewFetchTrendsTool(fetcher trends.Fetcher, defaultQuery string) *FetchTrendsTool {
	return &FetchTrendsTool{
		fetcher:      fetcher,
		defaultQuery: defaultQuery,
	}
}

func (t *FetchTrendsTool) Name() string {
	return "fetch_job_trends"
}

func (t *FetchTrendsTool) Description() string {
	return `Fetch up to five current job market trend snippets from web search.
Input is an optional search query; a default query about in-demand skills is used when empty.
Returns the snippets, or a single fallback message with degraded=true when nothing was found.`
}

func (t *FetchTrendsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": stringProperty("Search query (e.g., 'top skills for AI engineering roles in 2025')"),
		},
	}
}

// FetchTrendsInput represents the input for trend fetching
type FetchTrendsInput struct {
	Query string `json:"query"`
}

// FetchTrendsOutput represents the trend tool result
type FetchTrendsOutput struct {
	Query    string   `json:"query"`
	Trends   []string `json:"trends"`
	Degraded bool     `json:"degraded,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

func (t *FetchTrendsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in FetchTrendsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(err.Error())
	}

	query := strings.TrimSpace(in.Query)
	if query == "" {
		query = t.defaultQuery
	}

	result := trends.Resolve(ctx, t.fetcher, query)
	return NewSuccessResult(FetchTrendsOutput{
		Query:    query,
		Trends:   result.Trends,
		Degraded: result.Degraded,
		Reason:   result.Reason,
	})
}
