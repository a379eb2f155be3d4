package openai

import (
	"context"
	"fmt"

	"math-agent-be/pkg/llm"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAIProvider speaks to any OpenAI-compatible chat API via langchaingo.
type OpenAIProvider struct {
	client *openai.LLM
	model  string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, modelName string) (*OpenAIProvider, error) {
	opts := []openai.Option{
		openai.WithModel(modelName),
	}
	if apiKey != "" {
		opts = append(opts, openai.WithToken(apiKey))
	} else {
		// Local OpenAI-compatible services don't require authentication
		opts = append(opts, openai.WithToken("none"))
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}

	return &OpenAIProvider{
		client: client,
		model:  modelName,
	}, nil
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.2,
	}
	for _, opt := range opts {
		opt(options)
	}

	content := make([]llms.MessageContent, 0, len(history))
	for _, msg := range history {
		var role llms.ChatMessageType
		switch msg.Role {
		case "system":
			role = llms.ChatMessageTypeSystem
		case "assistant", "model":
			role = llms.ChatMessageTypeAI
		default:
			role = llms.ChatMessageTypeHuman
		}
		content = append(content, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(msg.Content)},
		})
	}

	callOpts := []llms.CallOption{
		llms.WithTemperature(options.Temperature),
	}
	if options.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(options.MaxTokens))
	}
	if options.Model != "" {
		callOpts = append(callOpts, llms.WithModel(options.Model))
	}

	response, err := p.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(response.Choices) < 1 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return response.Choices[0].Content, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func (p *OpenAIProvider) ModelName() string {
	return p.model
}
