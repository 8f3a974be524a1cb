package llm

import (
	"context"
	"fmt"
	"os"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is the interface over the external text-generation APIs.
type Provider interface {
	Chat(ctx context.Context, systemPrompt string, history []Message) (string, error)
	GetProviderName() string
}

// ProviderType selects the backing API.
type ProviderType string

const (
	ProviderNVIDIA ProviderType = "nvidia"
	ProviderOpenAI ProviderType = "openai"
	ProviderClaude ProviderType = "claude"
)

// ProviderConfig configures the provider factory.
type ProviderConfig struct {
	Type ProviderType

	// API keys
	NVIDIAKey string
	OpenAIKey string
	ClaudeKey string

	// Model configs
	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider creates the configured LLM provider.
func NewProvider(cfg *ProviderConfig) (Provider, error) {
	switch cfg.Type {
	case ProviderNVIDIA:
		if cfg.NVIDIAKey == "" {
			return nil, fmt.Errorf("NVIDIA_API_KEY is required")
		}
		return NewNVIDIAProvider(cfg.NVIDIAKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	case ProviderClaude:
		if cfg.ClaudeKey == "" {
			return nil, fmt.Errorf("CLAUDE_API_KEY is required")
		}
		return NewClaudeProvider(cfg.ClaudeKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// LoadProviderFromEnv loads provider config from environment variables.
func LoadProviderFromEnv() (*ProviderConfig, error) {
	providerType := os.Getenv("AI_PROVIDER")
	if providerType == "" {
		providerType = "nvidia" // default
	}

	cfg := &ProviderConfig{
		Type:      ProviderType(providerType),
		NVIDIAKey: os.Getenv("NVIDIA_API_KEY"),
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		ClaudeKey: os.Getenv("CLAUDE_API_KEY"),
	}

	if model := os.Getenv("AI_MODEL"); model != "" {
		cfg.Model = model
	} else {
		// Provider-specific defaults
		switch cfg.Type {
		case ProviderNVIDIA:
			cfg.Model = "meta/llama-3.3-70b-instruct"
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		case ProviderClaude:
			cfg.Model = "claude-3-5-sonnet-20241022"
		}
	}

	// Answers quote figures from the grounding context, so keep sampling cool.
	cfg.Temperature = 0.3
	cfg.MaxTokens = 1024

	return cfg, nil
}
