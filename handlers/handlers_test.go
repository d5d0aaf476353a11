package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/auth"
	"github.com/resumecoach/backend/chat"
	"github.com/resumecoach/backend/coach"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/embedding"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/rag"
	"github.com/resumecoach/backend/retrieval"
	"github.com/resumecoach/backend/tools"
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

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type formFile struct {
	field, name, content string
}

func doMultipart(t *testing.T, router http.Handler, path string, fields map[string]string, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{apperr.Newf(apperr.KindInvalidInput, "op", "bad"), http.StatusBadRequest},
		{apperr.Newf(apperr.KindNotFound, "op", "gone"), http.StatusNotFound},
		{apperr.Newf(apperr.KindIO, "op", "unreadable"), http.StatusUnprocessableEntity},
		{apperr.Newf(apperr.KindLLM, "op", "down"), http.StatusBadGateway},
		{apperr.Newf(apperr.KindEmbedding, "op", "down"), http.StatusBadGateway},
		{apperr.Newf(apperr.KindConfig, "op", "missing key"), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, statusFor(tt.err))
		})
	}
}

func newFeedbackRouter(gen *fakeGenerator, fetcher *fakeFetcher) *gin.Engine {
	c := coach.NewCoach(gen, fetcher)
	h := NewFeedbackHandler(c, document.NewExtractor(), 1)
	router := gin.New()
	router.POST("/feedback", h.Feedback)
	return router
}

func TestFeedback_JSON(t *testing.T) {
	gen := &fakeGenerator{reply: "- Learn Kubernetes"}
	fetcher := &fakeFetcher{snippets: []string{"GenAI"}}
	router := newFeedbackRouter(gen, fetcher)

	w := doJSON(t, router, http.MethodPost, "/feedback", models.FeedbackRequest{
		ResumeText: "Skills\nGo, Rust",
		JDText:     "Skills\nRequires: Python, Kubernetes",
		Mode:       "detailed",
		TrendQuery: "go jobs",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.FeedbackResponse](t, w)
	assert.Equal(t, "- Learn Kubernetes", resp.Feedback)
	assert.Equal(t, string(models.ModeDetailedRewrite), resp.Mode)
	assert.Equal(t, []string{"GenAI"}, resp.Trends)
	assert.Equal(t, "Go, Rust", resp.ResumeSections["skills"])
	assert.Equal(t, []string{"go jobs"}, fetcher.queries)
	require.Len(t, gen.prompts, 1)
}

func TestFeedback_Multipart(t *testing.T) {
	gen := &fakeGenerator{reply: "tips"}
	router := newFeedbackRouter(gen, &fakeFetcher{snippets: []string{"x"}})

	w := doMultipart(t, router, "/feedback",
		map[string]string{"jd_text": "Requires: Python", "mode": "Concise Tips"},
		formFile{"resume_file", "resume.txt", "Skills: Go, Rust"},
	)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Skills: Go, Rust")
	assert.Contains(t, gen.prompts[0], "Requires: Python")
}

func TestFeedback_Errors(t *testing.T) {
	t.Run("missing resume", func(t *testing.T) {
		router := newFeedbackRouter(&fakeGenerator{}, &fakeFetcher{})
		w := doJSON(t, router, http.MethodPost, "/feedback", models.FeedbackRequest{JDText: "jd"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing job description", func(t *testing.T) {
		router := newFeedbackRouter(&fakeGenerator{}, &fakeFetcher{})
		w := doJSON(t, router, http.MethodPost, "/feedback", models.FeedbackRequest{ResumeText: "cv"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		router := newFeedbackRouter(&fakeGenerator{}, &fakeFetcher{})
		w := doJSON(t, router, http.MethodPost, "/feedback", models.FeedbackRequest{ResumeText: "cv", JDText: "jd", Mode: "haiku"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported upload", func(t *testing.T) {
		gen := &fakeGenerator{}
		router := newFeedbackRouter(gen, &fakeFetcher{})
		w := doMultipart(t, router, "/feedback",
			map[string]string{"jd_text": "jd"},
			formFile{"resume_file", "resume.docx", "binary"},
		)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, gen.prompts)
	})

	t.Run("generator failure", func(t *testing.T) {
		gen := &fakeGenerator{err: apperr.Newf(apperr.KindLLM, "llm.generate", "rate limited")}
		router := newFeedbackRouter(gen, &fakeFetcher{snippets: []string{"x"}})
		w := doJSON(t, router, http.MethodPost, "/feedback", models.FeedbackRequest{ResumeText: "cv", JDText: "jd"}, nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decode[models.ErrorResponse](t, w)
		assert.Contains(t, resp.Details, "rate limited")
	})
}

func newDocumentRouter(fetcher trends.Fetcher) *gin.Engine {
	h := NewDocumentHandler(document.NewExtractor(), fetcher, "default query", 1)
	router := gin.New()
	router.POST("/sections", h.Sections)
	router.POST("/trends", h.Trends)
	return router
}

func TestSections(t *testing.T) {
	router := newDocumentRouter(&fakeFetcher{})

	t.Run("json", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sections", models.SectionsRequest{
			Text: "Education\nBSc Computer Science\nSkills\nGo",
		}, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[models.SectionsResponse](t, w)
		assert.Equal(t, "BSc Computer Science", resp.Sections["education"])
		assert.Equal(t, "Go", resp.Sections["skills"])
		assert.Equal(t, []string{"education", "skills"}, resp.Labels)
	})

	t.Run("file", func(t *testing.T) {
		w := doMultipart(t, router, "/sections", nil, formFile{"file", "cv.txt", "Experience\nAcme Corp"})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[models.SectionsResponse](t, w)
		assert.Equal(t, "Acme Corp", resp.Sections["experience"])
	})

	t.Run("empty", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sections", models.SectionsRequest{Text: "  "}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTrends(t *testing.T) {
	t.Run("default query", func(t *testing.T) {
		fetcher := &fakeFetcher{snippets: []string{"GenAI", "MLOps"}}
		router := newDocumentRouter(fetcher)

		w := doJSON(t, router, http.MethodPost, "/trends", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[models.TrendsResponse](t, w)
		assert.Equal(t, "default query", resp.Query)
		assert.Equal(t, []string{"GenAI", "MLOps"}, resp.Trends)
		assert.False(t, resp.Degraded)
		assert.Equal(t, []string{"default query"}, fetcher.queries)
	})

	t.Run("failure degrades", func(t *testing.T) {
		router := newDocumentRouter(&fakeFetcher{err: apperr.Newf(apperr.KindTrends, "trends.fetch", "blocked")})

		w := doJSON(t, router, http.MethodPost, "/trends", models.TrendsRequest{Query: "rust"}, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[models.TrendsResponse](t, w)
		assert.Equal(t, []string{trends.FallbackMessage}, resp.Trends)
		assert.True(t, resp.Degraded)
		assert.Contains(t, resp.Reason, "blocked")
	})
}

func newRAGService(t *testing.T, gen *fakeGenerator) *rag.Service {
	t.Helper()
	svc := rag.NewService(
		document.NewExtractor(),
		document.NewChunker(5),
		retrieval.NewRetriever(embedding.NewHashEmbedder(embedding.DefaultHashDimensions), 3),
		gen, nil,
	)
	require.NoError(t, svc.IndexText(context.Background(), "cv.txt", "Deployed services on Google Cloud and AWS"))
	return svc
}

func TestAsk(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		router := gin.New()
		router.POST("/ask", NewAskHandler(nil).Ask)

		w := doJSON(t, router, http.MethodPost, "/ask", models.AskRequest{Query: "cloud?"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("answers with sources", func(t *testing.T) {
		gen := &fakeGenerator{reply: " Google Cloud and AWS "}
		h := NewAskHandler(newRAGService(t, gen))
		router := gin.New()
		router.POST("/ask", h.Ask)
		router.GET("/documents", h.Documents)

		w := doJSON(t, router, http.MethodPost, "/ask", models.AskRequest{Query: "Which cloud platforms?"}, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[models.AskResponse](t, w)
		assert.Equal(t, "Google Cloud and AWS", resp.Answer)
		assert.NotEmpty(t, resp.Sources)

		w = doJSON(t, router, http.MethodGet, "/documents", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cv.txt")
	})

	t.Run("empty query", func(t *testing.T) {
		router := gin.New()
		router.POST("/ask", NewAskHandler(newRAGService(t, &fakeGenerator{})).Ask)

		w := doJSON(t, router, http.MethodPost, "/ask", models.AskRequest{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func newChatRouter(gen *fakeGenerator) *gin.Engine {
	jwtService := auth.NewJWTService(&config.Config{SessionSecret: "test", SessionTTLHours: 1})
	h := NewChatHandler(chat.NewStore(gen, "system", 0), jwtService)

	router := gin.New()
	router.POST("/chat/sessions", h.CreateSession)
	session := router.Group("/chat", auth.SessionMiddleware(jwtService))
	session.DELETE("/sessions", h.EndSession)
	session.POST("/messages", h.SendMessage)
	session.GET("/messages", h.GetHistory)
	session.DELETE("/messages", h.ClearHistory)
	return router
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestChat_SessionLifecycle(t *testing.T) {
	gen := &fakeGenerator{reply: "Sure, here is a better summary."}
	router := newChatRouter(gen)

	w := doJSON(t, router, http.MethodPost, "/chat/sessions", nil, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.CreateSessionResponse](t, w)
	require.NotEmpty(t, created.Token)
	hdr := bearer(created.Token)

	w = doJSON(t, router, http.MethodPost, "/chat/messages", models.ChatRequest{Message: "Improve my summary"}, hdr)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Sure, here is a better summary.", decode[models.ChatResponse](t, w).Reply)

	w = doJSON(t, router, http.MethodGet, "/chat/messages", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[models.ChatHistoryResponse](t, w)
	assert.Equal(t, created.SessionID, history.SessionID)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, models.RoleUser, history.Messages[0].Role)
	assert.Equal(t, models.RoleAssistant, history.Messages[1].Role)

	w = doJSON(t, router, http.MethodDelete, "/chat/messages", nil, hdr)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/chat/messages", nil, hdr)
	assert.Empty(t, decode[models.ChatHistoryResponse](t, w).Messages)

	w = doJSON(t, router, http.MethodDelete, "/chat/sessions", nil, hdr)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/chat/messages", nil, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChat_Errors(t *testing.T) {
	gen := &fakeGenerator{err: apperr.Newf(apperr.KindLLM, "llm.chat", "quota exceeded")}
	router := newChatRouter(gen)

	w := doJSON(t, router, http.MethodPost, "/chat/messages", models.ChatRequest{Message: "hi"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/chat/sessions", models.CreateSessionRequest{SystemPrompt: "Be brief"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	hdr := bearer(decode[models.CreateSessionResponse](t, w).Token)

	w = doJSON(t, router, http.MethodPost, "/chat/messages", models.ChatRequest{Message: "  "}, hdr)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/chat/messages", models.ChatRequest{Message: "hi"}, hdr)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "Error getting response", resp.Error)
	assert.Contains(t, resp.Details, "quota exceeded")

	w = doJSON(t, router, http.MethodGet, "/chat/messages", nil, hdr)
	assert.Empty(t, decode[models.ChatHistoryResponse](t, w).Messages)
}

func TestHealthAndTools(t *testing.T) {
	registry := tools.NewToolRegistry()
	registry.Register(tools.NewExtractSectionsTool())

	router := gin.New()
	router.GET("/health", HealthCheck)
	router.GET("/tools", NewToolsHandler(registry).GetTools)

	w := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[models.HealthResponse](t, w)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, Version, health.Version)
	assert.NotEmpty(t, health.Timestamp)

	w = doJSON(t, router, http.MethodGet, "/tools", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"extract_sections"`))
}
