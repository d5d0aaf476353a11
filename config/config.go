package config

import (
	"os"
	"strconv"
	"strings"
)

// Supported LLM providers
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
)

// Supported embedding providers
const (
	EmbeddingGemini = "gemini"
	EmbeddingLocal  = "local"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// Answer generation
	LLMProvider string
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Gemini API (API key) and Vertex AI (project credentials)
	GeminiAPIKey string
	GeminiModel  string
	ProjectID    string
	Location     string

	// Embeddings
	EmbeddingProvider string
	EmbeddingModel    string

	// Market trends
	PSEAPIKey         string
	PSEEngineID       string
	TrendSearchURL    string
	DefaultTrendQuery string

	// Timeouts and limits
	HTTPTimeoutSeconds int
	ChunkSize          int
	TopK               int
	MaxUploadMB        int

	// Document folder / bucket used by the question answering chat
	DocsDir    string
	DocsBucket string
	DocsPrefix string

	// Chat sessions
	SessionSecret   string
	SessionTTLHours int

	// Optional YAML file overriding prompt templates
	PromptsFile string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Answer generation
		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ProjectID:    getEnv("PROJECT_ID", ""),
		Location:     getEnv("LOCATION", "us-central1"),

		// Embeddings
		EmbeddingProvider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", EmbeddingLocal)),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-004"),

		// Market trends
		PSEAPIKey:         getEnv("PSE_API_KEY", ""),
		PSEEngineID:       getEnv("PSE_ENGINE_ID", ""),
		TrendSearchURL:    getEnv("TREND_SEARCH_URL", "https://www.google.com/search"),
		DefaultTrendQuery: getEnv("DEFAULT_TREND_QUERY", "top skills for AI engineering roles in 2025"),

		// Timeouts and limits
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		ChunkSize:          getEnvInt("CHUNK_SIZE", 500),
		TopK:               getEnvInt("TOP_K", 3),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 10),

		DocsDir:    getEnv("DOCS_DIR", ""),
		DocsBucket: getEnv("DOCS_BUCKET", ""),
		DocsPrefix: getEnv("DOCS_PREFIX", ""),

		// Chat sessions
		SessionSecret:   getEnv("SESSION_SECRET", "change-me-in-production"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		PromptsFile: getEnv("PROMPTS_FILE", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGroq:
		if c.GroqAPIKey == "" {
			return &ConfigError{Field: "GROQ_API_KEY", Message: "GROQ_API_KEY is required when LLM_PROVIDER=groq"}
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required when LLM_PROVIDER=gemini"}
		}
	case ProviderVertex:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI"}
		}
	default:
		return &ConfigError{Field: "LLM_PROVIDER", Message: "unsupported LLM_PROVIDER: " + c.LLMProvider}
	}

	switch c.EmbeddingProvider {
	case EmbeddingLocal:
	case EmbeddingGemini:
		if c.GeminiAPIKey == "" {
			return &ConfigError{Field: "GEMINI_API_KEY", Message: "GEMINI_API_KEY is required when EMBEDDING_PROVIDER=gemini"}
		}
	default:
		return &ConfigError{Field: "EMBEDDING_PROVIDER", Message: "unsupported EMBEDDING_PROVIDER: " + c.EmbeddingProvider}
	}

	// PSE needs both halves or neither
	if (c.PSEAPIKey == "") != (c.PSEEngineID == "") {
		return &ConfigError{Field: "PSE_ENGINE_ID", Message: "PSE_API_KEY and PSE_ENGINE_ID must be set together"}
	}

	if c.ChunkSize <= 0 {
		return &ConfigError{Field: "CHUNK_SIZE", Message: "CHUNK_SIZE must be positive"}
	}
	if c.TopK <= 0 {
		return &ConfigError{Field: "TOP_K", Message: "TOP_K must be positive"}
	}

	return nil
}

// UsePSE reports whether trends should come from the Programmable Search API
func (c *Config) UsePSE() bool {
	return c.PSEAPIKey != "" && c.PSEEngineID != ""
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
