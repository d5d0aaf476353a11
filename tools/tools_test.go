package tools

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/embedding"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/rag"
	"github.com/resumecoach/backend/retrieval"
	"github.com/resumecoach/backend/trends"
)

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) Chat(context.Context, string, []models.ChatMessage) (string, error) {
	return f.reply, f.err
}

func (f *fakeGenerator) ModelName() string { return "fake" }
func (f *fakeGenerator) Close() error      { return nil }

type fakeFetcher struct {
	snippets []string
	err      error
	queries  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, query string) ([]string, error) {
	f.queries = append(f.queries, query)
	return f.snippets, f.err
}

func decodeResult(t *testing.T, raw json.RawMessage, data interface{}) ToolResult {
	t.Helper()
	var result ToolResult
	require.NoError(t, json.Unmarshal(raw, &result))
	if result.Success && data != nil {
		require.NoError(t, json.Unmarshal(result.Data, data))
	}
	return result
}

func TestToolRegistry(t *testing.T) {
	registry := NewToolRegistry()
	registry.Register(NewExtractSectionsTool())
	registry.Register(NewFetchTrendsTool(&fakeFetcher{}, "q"))

	tool, ok := registry.Get("extract_sections")
	require.True(t, ok)
	assert.Equal(t, "extract_sections", tool.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)

	names := []string{}
	for _, tool := range registry.List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"extract_sections", "fetch_job_trends"}, names)

	defs := registry.GetToolDefinitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "extract_sections", defs[0]["name"])
	assert.NotNil(t, defs[0]["parameters"])
}

func TestFetchTrendsTool(t *testing.T) {
	t.Run("default query", func(t *testing.T) {
		fetcher := &fakeFetcher{snippets: []string{"GenAI"}}
		raw, err := NewFetchTrendsTool(fetcher, "default").Execute(context.Background(), nil)
		require.NoError(t, err)

		var out FetchTrendsOutput
		result := decodeResult(t, raw, &out)
		assert.True(t, result.Success)
		assert.Equal(t, "default", out.Query)
		assert.Equal(t, []string{"GenAI"}, out.Trends)
		assert.Equal(t, []string{"default"}, fetcher.queries)
	})

	t.Run("fallback", func(t *testing.T) {
		fetcher := &fakeFetcher{err: trends.ErrNoTrends}
		raw, err := NewFetchTrendsTool(fetcher, "default").Execute(context.Background(), json.RawMessage(`{"query":"cobol"}`))
		require.NoError(t, err)

		var out FetchTrendsOutput
		decodeResult(t, raw, &out)
		assert.Equal(t, []string{trends.FallbackMessage}, out.Trends)
		assert.True(t, out.Degraded)
	})

	t.Run("bad input", func(t *testing.T) {
		raw, err := NewFetchTrendsTool(&fakeFetcher{}, "default").Execute(context.Background(), json.RawMessage(`{"query":`))
		require.NoError(t, err)
		result := decodeResult(t, raw, nil)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "invalid input")
	})
}

func TestExtractSectionsTool(t *testing.T) {
	tool := NewExtractSectionsTool()

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"text":"Summary\nHello\nExperience\nAcme Corp\nSkills\nGo"}`))
	require.NoError(t, err)

	var out ExtractSectionsOutput
	result := decodeResult(t, raw, &out)
	require.True(t, result.Success)
	assert.Equal(t, []string{"experience", "skills"}, out.Labels)
	assert.Equal(t, "Acme Corp", out.Sections["experience"])

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"text":""}`))
	require.NoError(t, err)
	assert.False(t, decodeResult(t, raw, nil).Success)
}

func TestResumeFeedbackTool(t *testing.T) {
	gen := &fakeGenerator{reply: "Rewrite your summary"}
	tool := NewResumeFeedbackTool(coach.NewCoach(gen, &fakeFetcher{snippets: []string{"GenAI"}}))

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"resume_text":"Skills: Go","jd_text":"Requires: Python","mode":"Detailed Rewrite"}`))
	require.NoError(t, err)

	var out models.FeedbackResponse
	result := decodeResult(t, raw, &out)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Rewrite your summary", out.Feedback)
	assert.Equal(t, string(models.ModeDetailedRewrite), out.Mode)
	require.Len(t, gen.prompts, 1)

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"resume_text":"cv","jd_text":"jd","mode":"poem"}`))
	require.NoError(t, err)
	assert.False(t, decodeResult(t, raw, nil).Success)

	gen.err = apperr.Newf(apperr.KindLLM, "llm.generate", "down")
	raw, err = tool.Execute(context.Background(), json.RawMessage(`{"resume_text":"cv","jd_text":"jd"}`))
	require.NoError(t, err)
	result = decodeResult(t, raw, nil)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "down")
}

func TestAskDocumentsTool(t *testing.T) {
	gen := &fakeGenerator{reply: "AWS"}
	svc := rag.NewService(
		document.NewExtractor(),
		document.NewChunker(10),
		retrieval.NewRetriever(embedding.NewHashEmbedder(embedding.DefaultHashDimensions), 3),
		gen, nil,
	)
	require.NoError(t, svc.IndexText(context.Background(), "cv.txt", "Ran workloads on AWS"))
	tool := NewAskDocumentsTool(svc)

	raw, err := tool.Execute(context.Background(), json.RawMessage(`{"query":"Which cloud?"}`))
	require.NoError(t, err)

	var out models.AskResponse
	result := decodeResult(t, raw, &out)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "AWS", out.Answer)
	require.Len(t, out.Sources, 1)
	assert.Equal(t, "cv.txt", out.Sources[0].Source)

	raw, err = tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.False(t, decodeResult(t, raw, nil).Success)
}
