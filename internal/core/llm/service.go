package llm

import (
	"context"
	"log"
)

// Service wraps an LLM provider for dependency injection.
type Service struct {
	provider Provider
	model    string
}

// NewService creates an LLM service with the provider from environment.
func NewService() *Service {
	cfg, err := LoadProviderFromEnv()
	if err != nil {
		log.Fatalf("❌ Failed to load LLM config: %v", err)
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create LLM provider: %v", err)
	}

	log.Printf("🤖 Using LLM provider: %s (model: %s)", provider.GetProviderName(), cfg.Model)

	return &Service{provider: provider, model: cfg.Model}
}

// NewServiceWithProvider creates a service with a custom provider (for testing).
func NewServiceWithProvider(provider Provider) *Service {
	return &Service{provider: provider}
}

// Chat sends the conversation to the provider and returns the reply.
func (s *Service) Chat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	return s.provider.Chat(ctx, systemPrompt, history)
}

// GetProviderName returns the current provider name.
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}

// GetModel returns the configured model identifier.
func (s *Service) GetModel() string {
	return s.model
}
