package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// nvidiaBaseURL is NVIDIA NIM's OpenAI-compatible endpoint.
const nvidiaBaseURL = "https://integrate.api.nvidia.com/v1"

// OpenAIProvider talks to any OpenAI-compatible chat-completions API.
type OpenAIProvider struct {
	client      *openai.Client
	name        string
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIProvider creates a provider against api.openai.com.
func NewOpenAIProvider(apiKey string, model string, temperature float32, maxTokens int) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newCompatProvider(openai.NewClient(apiKey), "OpenAI", model, temperature, maxTokens)
}

// NewNVIDIAProvider creates a provider against NVIDIA NIM, which serves the
// Llama/Nemotron family behind the OpenAI wire protocol.
func NewNVIDIAProvider(apiKey string, model string, temperature float32, maxTokens int) *OpenAIProvider {
	if model == "" {
		model = "meta/llama-3.3-70b-instruct"
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = nvidiaBaseURL
	return newCompatProvider(openai.NewClientWithConfig(cfg), "NVIDIA NIM", model, temperature, maxTokens)
}

func newCompatProvider(client *openai.Client, name, model string, temperature float32, maxTokens int) *OpenAIProvider {
	if temperature == 0 {
		temperature = 0.3
	}
	if maxTokens == 0 {
		maxTokens = 1024
	}
	return &OpenAIProvider{
		client:      client,
		name:        name,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (p *OpenAIProvider) GetProviderName() string {
	return p.name
}

func (p *OpenAIProvider) Chat(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s error: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}
