package rag

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/document"
	"github.com/resumecoach/backend/llm"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/retrieval"
)

// DocumentSource lists and downloads documents from remote storage
type DocumentSource interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Download(ctx context.Context, name string) ([]byte, error)
}

// Answer is a generated reply together with the passages it was grounded on
type Answer struct {
	Text    string
	Sources []models.ScoredChunk
}

// Service answers questions over an in-memory collection of document chunks
type Service struct {
	extractor *document.Extractor
	chunker   *document.Chunker
	retriever *retrieval.Retriever
	generator llm.Generator
	prompts   *llm.Prompts

	mu     sync.RWMutex
	chunks []models.EmbeddedChunk
	files  []string
}

// NewService creates an empty question-answering service
func NewService(extractor *document.Extractor, chunker *document.Chunker, retriever *retrieval.Retriever, gen llm.Generator, prompts *llm.Prompts) *Service {
	if prompts == nil {
		prompts = llm.DefaultPrompts()
	}
	return &Service{
		extractor: extractor,
		chunker:   chunker,
		retriever: retriever,
		generator: gen,
		prompts:   prompts,
	}
}

// IsIndexable reports whether a file name is picked up by folder indexing
func IsIndexable(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".pdf" || ext == ".txt"
}

// IndexDir extracts, chunks and embeds every .pdf and .txt file directly
// inside dir. Files that fail to extract are logged and skipped.
func (s *Service) IndexDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, apperr.New(apperr.KindIO, "rag.index", fmt.Errorf("failed to read folder %s: %w", dir, err))
	}

	indexed := 0
	for _, entry := range entries {
		if entry.IsDir() || !IsIndexable(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		log.Printf("[RAG] Processing %s...", path)

		text, err := s.extractor.ExtractFile(path)
		if err != nil {
			log.Printf("[RAG] Skipping %s: %v", path, err)
			continue
		}
		if err := s.IndexText(ctx, entry.Name(), text); err != nil {
			return indexed, err
		}
		indexed++
	}

	log.Printf("[RAG] Indexed %d files from %s (%d chunks total)", indexed, dir, s.Len())
	return indexed, nil
}

// IndexBucket indexes every .pdf and .txt object under prefix in src
func (s *Service) IndexBucket(ctx context.Context, src DocumentSource, prefix string) (int, error) {
	names, err := src.List(ctx, prefix)
	if err != nil {
		return 0, apperr.New(apperr.KindIO, "rag.index", fmt.Errorf("failed to list documents: %w", err))
	}

	indexed := 0
	for _, name := range names {
		if !IsIndexable(name) {
			continue
		}
		log.Printf("[RAG] Processing %s...", name)

		data, err := src.Download(ctx, name)
		if err != nil {
			log.Printf("[RAG] Skipping %s: %v", name, err)
			continue
		}

		text, err := s.extractor.ExtractUpload(bytes.NewReader(data), name)
		if err != nil {
			log.Printf("[RAG] Skipping %s: %v", name, err)
			continue
		}
		if err := s.IndexText(ctx, name, text); err != nil {
			return indexed, err
		}
		indexed++
	}

	log.Printf("[RAG] Indexed %d objects under %q (%d chunks total)", indexed, prefix, s.Len())
	return indexed, nil
}

// IndexText chunks and embeds text from one document and adds it to the collection
func (s *Service) IndexText(ctx context.Context, source, text string) error {
	embedded, err := s.retriever.Embed(ctx, s.chunker.Split(text, source))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, embedded...)
	s.files = append(s.files, source)
	return nil
}

// Ask retrieves the most similar chunks and answers query from them
func (s *Service) Ask(ctx context.Context, query string) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Newf(apperr.KindInvalidInput, "rag.ask", "query is required")
	}

	s.mu.RLock()
	chunks := s.chunks
	s.mu.RUnlock()

	hits, err := s.retriever.Search(ctx, query, chunks)
	if err != nil {
		return nil, err
	}

	contexts := make([]string, len(hits))
	for i, hit := range hits {
		contexts[i] = hit.Text
	}

	text, err := llm.AnswerWith(ctx, s.generator, s.prompts, query, contexts)
	if err != nil {
		return nil, err
	}
	return &Answer{Text: text, Sources: hits}, nil
}

// Len returns the number of indexed chunks
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Files returns the names of indexed documents in indexing order
func (s *Service) Files() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.files...)
}
