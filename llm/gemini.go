package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/models"
)

// GeminiClient wraps the Gemini API client authenticated by API key
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, missingCredential("llm.gemini", "GEMINI_API_KEY", "GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, apperr.New(apperr.KindLLM, "llm.gemini", fmt.Errorf("failed to create Gemini client: %w", err))
	}

	return &GeminiClient{
		client:    client,
		model:     configureGeminiModel(client.GenerativeModel(modelName)),
		modelName: modelName,
	}, nil
}

func configureGeminiModel(model *genai.GenerativeModel) *genai.GenerativeModel {
	model.SetTemperature(0.2)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)
	return model
}

// Generate implements Generator
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyRPC("llm.gemini", err)
	}
	return geminiText("llm.gemini", resp)
}

// Chat implements Generator. A model handle is derived per call so the
// system instruction does not leak between sessions.
func (c *GeminiClient) Chat(ctx context.Context, system string, history []models.ChatMessage) (string, error) {
	last, err := lastUserMessage("llm.gemini", history)
	if err != nil {
		return "", err
	}

	model := configureGeminiModel(c.client.GenerativeModel(c.modelName))
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	for _, msg := range history[:len(history)-1] {
		cs.History = append(cs.History, &genai.Content{
			Role:  geminiRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", classifyRPC("llm.gemini", err)
	}
	return geminiText("llm.gemini", resp)
}

// ModelName implements Generator
func (c *GeminiClient) ModelName() string {
	return c.modelName
}

// Close implements Generator
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func geminiRole(role string) string {
	if role == models.RoleAssistant {
		return "model"
	}
	return "user"
}

func geminiText(op string, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperr.New(apperr.KindLLM, op, ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", apperr.New(apperr.KindLLM, op, ErrEmptyResponse)
	}
	return strings.TrimSpace(sb.String()), nil
}
