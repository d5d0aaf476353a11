package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resumecoach/backend/apperr"
	"github.com/resumecoach/backend/config"
	"github.com/resumecoach/backend/models"
	"github.com/resumecoach/backend/utils"
)

// Groq defaults
const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.1-8b-instant"
	DefaultTimeout     = 120 * time.Second
)

// GroqConfig holds configuration for the Groq chat-completion client
type GroqConfig struct {
	// APIKey is required
	APIKey string

	// BaseURL of the OpenAI-compatible API
	BaseURL string

	Model   string
	Timeout time.Duration

	// Temperature 0 leaves the provider default
	Temperature float64
}

// GroqClient talks to Groq's OpenAI-compatible /chat/completions endpoint
type GroqClient struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
}

type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	Temperature float64             `json:"temperature,omitempty"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewGroqClient creates a Groq client; an empty API key is a config error
func NewGroqClient(cfg GroqConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, missingCredential("llm.groq", "GROQ_API_KEY",
			"GROQ_API_KEY not found in environment variables. Please set it in your .env file.")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGroqBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGroqModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &GroqClient{
		client:      utils.NewHTTPClient(cfg.Timeout, ""),
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Generate implements Generator
func (c *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.chatCompletion(ctx, []chatCompletionMsg{{Role: "user", Content: prompt}})
}

// Chat implements Generator
func (c *GroqClient) Chat(ctx context.Context, system string, history []models.ChatMessage) (string, error) {
	if _, err := lastUserMessage("llm.groq", history); err != nil {
		return "", err
	}

	messages := make([]chatCompletionMsg, 0, len(history)+1)
	if system != "" {
		messages = append(messages, chatCompletionMsg{Role: "system", Content: system})
	}
	for _, msg := range history {
		messages = append(messages, chatCompletionMsg{Role: msg.Role, Content: msg.Content})
	}
	return c.chatCompletion(ctx, messages)
}

func (c *GroqClient) chatCompletion(ctx context.Context, messages []chatCompletionMsg) (string, error) {
	jsonBody, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", apperr.New(apperr.KindLLM, "llm.groq", fmt.Errorf("marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", apperr.New(apperr.KindLLM, "llm.groq", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperr.New(apperr.KindLLM, "llm.groq", fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperr.New(apperr.KindLLM, "llm.groq", fmt.Errorf("read response: %w", err))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", classifyHTTP("llm.groq", resp.StatusCode, string(body))
		}
		return "", apperr.New(apperr.KindLLM, "llm.groq", fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		message := string(body)
		if chatResp.Error != nil {
			message = chatResp.Error.Message
		}
		return "", classifyHTTP("llm.groq", resp.StatusCode, message)
	}
	if chatResp.Error != nil {
		return "", apperr.Newf(apperr.KindLLM, "llm.groq", "groq error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", apperr.New(apperr.KindLLM, "llm.groq", ErrEmptyResponse)
	}
	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// ModelName implements Generator
func (c *GroqClient) ModelName() string {
	return c.model
}

// Close implements Generator
func (c *GroqClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func timeoutFrom(cfg *config.Config) time.Duration {
	if cfg.HTTPTimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
}
