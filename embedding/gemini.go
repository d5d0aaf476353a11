package embedding

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
)

const (
	DefaultGeminiEmbeddingModel = "text-embedding-004"

	// Upper bound on contents per BatchEmbedContents request
	maxBatchSize = 100
)

// GeminiEmbedder embeds text with a hosted Gemini embedding model
type GeminiEmbedder struct {
	client    *genai.Client
	model     *genai.EmbeddingModel
	modelName string
}

// NewGeminiEmbedder creates the client and model handle once; they are reused
// for every call until Close.
func NewGeminiEmbedder(ctx context.Context, apiKey, modelName string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, apperr.New(apperr.KindConfig, "embedding.gemini",
			&config.ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required for Gemini embeddings"})
	}
	if modelName == "" {
		modelName = DefaultGeminiEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperr.New(apperr.KindEmbedding, "embedding.gemini", fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return &GeminiEmbedder{
		client:    client,
		model:     client.EmbeddingModel(modelName),
		modelName: modelName,
	}, nil
}

// Embed returns the embedding for a single text
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, apperr.New(apperr.KindEmbedding, "embedding.embed", fmt.Errorf("failed to embed content: %w", err))
	}
	if res.Embedding == nil {
		return nil, apperr.Newf(apperr.KindEmbedding, "embedding.embed", "empty embedding in response")
	}
	return res.Embedding.Values, nil
}

// EmbedBatch embeds texts in request-sized batches, preserving order
func (e *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += maxBatchSize {
		end := min(start+maxBatchSize, len(texts))

		batch := e.model.NewBatch()
		for _, text := range texts[start:end] {
			batch.AddContent(genai.Text(text))
		}

		res, err := e.model.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, apperr.New(apperr.KindEmbedding, "embedding.batch", fmt.Errorf("failed to embed batch: %w", err))
		}
		if len(res.Embeddings) != end-start {
			return nil, apperr.Newf(apperr.KindEmbedding, "embedding.batch",
				"expected %d embeddings, got %d", end-start, len(res.Embeddings))
		}

		for _, emb := range res.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	log.Printf("[Embedding] Embedded %d texts with %s", len(texts), e.modelName)
	return vectors, nil
}

// ModelName returns the embedding model name
func (e *GeminiEmbedder) ModelName() string {
	return e.modelName
}

// Close closes the underlying client
func (e *GeminiEmbedder) Close() error {
	return e.client.Close()
}
