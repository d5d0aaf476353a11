package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/models"
)

// Generator sends prompts to a hosted chat-completion model
type Generator interface {
	// Generate sends a single user prompt and returns the reply
	Generate(ctx context.Context, prompt string) (string, error)

	// Chat sends a system prompt plus the conversation so far; the last
	// message must be from the user
	Chat(ctx context.Context, system string, history []models.ChatMessage) (string, error)

	// ModelName returns the model identifier
	ModelName() string

	// Close releases the client
	Close() error
}

// New creates the generator selected by cfg.LLMProvider. A missing
// credential fails here, before any network call.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	var (
		gen Generator
		err error
	)

	switch cfg.LLMProvider {
	case config.ProviderGroq, "":
		gen, err = NewGroqClient(GroqConfig{
			APIKey:  cfg.GroqAPIKey,
			Model:   cfg.GroqModel,
			BaseURL: cfg.GroqBaseURL,
			Timeout: timeoutFrom(cfg),
		})
	case config.ProviderGemini:
		gen, err = NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderVertex:
		gen, err = NewVertexClient(ctx, cfg.ProjectID, cfg.Location, cfg.GeminiModel)
	default:
		err = apperr.New(apperr.KindConfig, "llm.new",
			&config.ConfigError{Field: "LLM_PROVIDER", Message: fmt.Sprintf("unsupported LLM_PROVIDER: %s", cfg.LLMProvider)})
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[LLM] Using %s model %s", cfg.LLMProvider, gen.ModelName())
	return gen, nil
}

// Answer formats contexts and query with the default answer template and
// returns the trimmed reply.
func Answer(ctx context.Context, gen Generator, query string, contexts []string) (string, error) {
	return AnswerWith(ctx, gen, DefaultPrompts(), query, contexts)
}

// AnswerWith is Answer using custom prompt templates
func AnswerWith(ctx context.Context, gen Generator, prompts *Prompts, query string, contexts []string) (string, error) {
	reply, err := gen.Generate(ctx, prompts.FormatAnswer(contexts, query))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func missingCredential(op, field, message string) error {
	return apperr.New(apperr.KindConfig, op, &config.ConfigError{Field: field, Message: message})
}

func lastUserMessage(op string, history []models.ChatMessage) (models.ChatMessage, error) {
	if len(history) == 0 || history[len(history)-1].Role != models.RoleUser {
		return models.ChatMessage{}, apperr.Newf(apperr.KindInvalidInput, op, "conversation must end with a user message")
	}
	return history[len(history)-1], nil
}
