package rag

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/embedding"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/retrieval"
)

type fakeGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) Chat(context.Context, string, []models.ChatMessage) (string, error) {
	return f.reply, f.err
}

func (f *fakeGenerator) ModelName() string { return "fake" }
func (f *fakeGenerator) Close() error      { return nil }

type fakeSource struct {
	objects map[string]string
	listErr error
}

func (f *fakeSource) List(context.Context, string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	names := make([]string, 0, len(f.objects))
	for name := range f.objects {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeSource) Download(_ context.Context, name string) ([]byte, error) {
	data, ok := f.objects[name]
	if !ok {
		return nil, errors.New("object not found")
	}
	return []byte(data), nil
}

func newService(gen *fakeGenerator) *Service {
	return NewService(
		document.NewExtractor(),
		document.NewChunker(4),
		retrieval.NewRetriever(embedding.NewHashEmbedder(256), 3),
		gen,
		nil,
	)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestService_IndexDirAndAsk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "resume.txt", "Built kubernetes operators in Go\nMaintained helm charts for payments")
	writeFile(t, dir, "notes.txt", "Enjoys hiking and watercolor painting on weekends")
	writeFile(t, dir, "ignored.md", "kubernetes kubernetes kubernetes")
	writeFile(t, dir, "broken.pdf", "not a pdf")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o700))

	gen := &fakeGenerator{reply: "  The candidate built kubernetes operators.  "}
	s := newService(gen)

	n, err := s.IndexDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"resume.txt", "notes.txt"}, s.Files())
	assert.Equal(t, 5, s.Len())

	answer, err := s.Ask(context.Background(), "kubernetes operators")
	require.NoError(t, err)

	assert.Equal(t, "The candidate built kubernetes operators.", answer.Text)
	require.Len(t, answer.Sources, 3)
	assert.Equal(t, "resume.txt", answer.Sources[0].Source)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Question: kubernetes operators\nAnswer:")
	assert.Contains(t, gen.prompts[0], "Built kubernetes operators in")
}

func TestService_IndexDirMissing(t *testing.T) {
	s := newService(&fakeGenerator{})

	_, err := s.IndexDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}

func TestService_AskEmptyCollection(t *testing.T) {
	gen := &fakeGenerator{reply: "I don't know."}
	s := newService(gen)

	answer, err := s.Ask(context.Background(), "anything")

	require.NoError(t, err)
	assert.Equal(t, "I don't know.", answer.Text)
	assert.Empty(t, answer.Sources)
	assert.Equal(t, "Context:\n\n\nQuestion: anything\nAnswer:", gen.prompts[0])
}

func TestService_AskErrors(t *testing.T) {
	gen := &fakeGenerator{err: apperr.New(apperr.KindLLM, "llm.groq", errors.New("down"))}
	s := newService(gen)

	_, err := s.Ask(context.Background(), " ")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	_, err = s.Ask(context.Background(), "q")
	assert.Equal(t, apperr.KindLLM, apperr.KindOf(err))
}

func TestService_IndexBucket(t *testing.T) {
	src := &fakeSource{objects: map[string]string{
		"docs/resume.txt": "Go developer with gRPC experience",
		"docs/photo.png":  "binary",
		"docs/bad.pdf":    "not a pdf",
	}}
	s := newService(&fakeGenerator{})

	n, err := s.IndexBucket(context.Background(), src, "docs/")

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"docs/resume.txt"}, s.Files())
	assert.Equal(t, 2, s.Len())

	_, err = s.IndexBucket(context.Background(), &fakeSource{listErr: errors.New("denied")}, "")
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}
