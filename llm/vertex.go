package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/models"
)

// VertexClient wraps the Vertex AI Gemini client
type VertexClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewVertexClient creates a Vertex AI client using application default credentials
func NewVertexClient(ctx context.Context, projectID, location, modelName string) (*VertexClient, error) {
	if projectID == "" {
		return nil, missingCredential("llm.vertex", "PROJECT_ID", "PROJECT_ID is required for Vertex AI")
	}

	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, apperr.New(apperr.KindConfig, "llm.vertex", fmt.Errorf("failed to create Vertex AI client: %w", err))
	}

	return &VertexClient{
		client:    client,
		model:     configureVertexModel(client.GenerativeModel(modelName)),
		projectID: projectID,
		location:  location,
		modelName: modelName,
	}, nil
}

func configureVertexModel(model *genai.GenerativeModel) *genai.GenerativeModel {
	model.SetTemperature(0.2)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)
	return model
}

// Generate implements Generator
func (c *VertexClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyRPC("llm.vertex", err)
	}
	return vertexText(resp)
}

// Chat implements Generator
func (c *VertexClient) Chat(ctx context.Context, system string, history []models.ChatMessage) (string, error) {
	last, err := lastUserMessage("llm.vertex", history)
	if err != nil {
		return "", err
	}

	model := configureVertexModel(c.client.GenerativeModel(c.modelName))
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	for _, msg := range history[:len(history)-1] {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(msg.Content)}})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", classifyRPC("llm.vertex", err)
	}
	return vertexText(resp)
}

// ModelName implements Generator
func (c *VertexClient) ModelName() string {
	return c.modelName
}

// Close closes the Vertex AI client
func (c *VertexClient) Close() error {
	return c.client.Close()
}

func vertexText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperr.New(apperr.KindLLM, "llm.vertex", ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", apperr.New(apperr.KindLLM, "llm.vertex", ErrEmptyResponse)
	}
	return strings.TrimSpace(sb.String()), nil
}
