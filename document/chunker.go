package document

import (
	"strings"

	"github.com/resumecoach/backend/models"
)

// DefaultChunkSize is the number of tokens per chunk when none is configured
const DefaultChunkSize = 500

// ChunkText splits text on whitespace and groups the tokens into windows of
// size tokens joined by single spaces. Only the last window may be shorter.
func ChunkText(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}

// Chunker produces indexed chunks tagged with their source document
type Chunker struct {
	size int
}

// NewChunker creates a chunker; size <= 0 selects DefaultChunkSize
func NewChunker(size int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &Chunker{size: size}
}

// Size returns the configured window size
func (c *Chunker) Size() int {
	return c.size
}

// Split chunks text and tags every chunk with source
func (c *Chunker) Split(text, source string) []models.Chunk {
	texts := ChunkText(text, c.size)
	chunks := make([]models.Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = models.Chunk{Index: i, Text: t, Source: source}
	}
	return chunks
}
