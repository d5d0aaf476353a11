package retrieval

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/embedding"
	"github.com/resumecoach/backend/models"
)

// DefaultTopK is the number of chunks returned by a search
const DefaultTopK = 3

// CosineSimilarity returns dot(a, b) / (|a| * |b|). A zero-norm vector on
// either side yields 0. Vectors of different length are compared over the
// shorter prefix.
func CosineSimilarity(a, b []float32) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopK ranks chunks by similarity to query and returns the best k. Equal
// scores keep collection order. A collection smaller than k is returned whole.
func TopK(query []float32, chunks []models.EmbeddedChunk, k int) []models.ScoredChunk {
	if k <= 0 {
		k = DefaultTopK
	}

	scored := make([]models.ScoredChunk, len(chunks))
	for i, c := range chunks {
		scored[i] = models.ScoredChunk{Chunk: c.Chunk, Score: CosineSimilarity(query, c.Vector)}
	}

	slices.SortStableFunc(scored, func(a, b models.ScoredChunk) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return scored[:min(k, len(scored))]
}

// Retriever embeds queries and chunks with one Embedder so their vectors are comparable
type Retriever struct {
	embedder embedding.Embedder
	k        int
}

// NewRetriever creates a retriever returning k results; k <= 0 selects DefaultTopK
func NewRetriever(embedder embedding.Embedder, k int) *Retriever {
	if k <= 0 {
		k = DefaultTopK
	}
	return &Retriever{embedder: embedder, k: k}
}

// Embed attaches vectors to chunks with a single batch call
func (r *Retriever) Embed(ctx context.Context, chunks []models.Chunk) ([]models.EmbeddedChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, apperr.Newf(apperr.KindEmbedding, "retrieval.embed", "expected %d vectors, got %d", len(chunks), len(vectors))
	}

	embedded := make([]models.EmbeddedChunk, len(chunks))
	for i, c := range chunks {
		embedded[i] = models.EmbeddedChunk{Chunk: c, Vector: vectors[i]}
	}
	return embedded, nil
}

// Search embeds query and returns the top-k chunks by cosine similarity
func (r *Retriever) Search(ctx context.Context, query string, chunks []models.EmbeddedChunk) ([]models.ScoredChunk, error) {
	if len(chunks) == 0 {
		return []models.ScoredChunk{}, nil
	}

	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return TopK(vec, chunks, r.k), nil
}

// K returns the number of results per search
func (r *Retriever) K() int {
	return r.k
}
