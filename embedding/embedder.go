package embedding

import (
	"context"
	"fmt"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
)

// Embedder maps text to fixed-length vectors. Implementations own their model
// handle; callers must Close them when done.
type Embedder interface {
	// Embed returns the vector for a single text
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one vector per text, in input order
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName identifies the model producing the vectors
	ModelName() string

	// Close releases the model handle
	Close() error
}

// New builds the embedder selected by cfg.EmbeddingProvider
func New(ctx context.Context, cfg *config.Config) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.EmbeddingGemini:
		return NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	case config.EmbeddingLocal, "":
		return NewHashEmbedder(DefaultHashDimensions), nil
	default:
		return nil, apperr.New(apperr.KindConfig, "embedding.new",
			&config.ConfigError{Field: "EMBEDDING_PROVIDER", Message: fmt.Sprintf("unsupported EMBEDDING_PROVIDER: %s", cfg.EmbeddingProvider)})
	}
}
