package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"recruittrack/internal/config"
	"recruittrack/internal/logger"
)

// Client is the chat-completion interface the MOS suggester consumes.
// The zero value of Disabled is returned when no API key is configured.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Enabled() bool
}

type groqClient struct {
	client *openai.Client
	model  string
}

type disabledClient struct{}

// NewClient builds a chat client against the configured OpenAI-compatible
// endpoint (Groq by default). Without an API key the client is disabled
// and callers fall back to local heuristics.
func NewClient(cfg config.LLMConfig) Client {
	if cfg.APIKey == "" {
		logger.GetLogger().Warn("LLM API key not set, AI suggestions disabled")
		return disabledClient{}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &groqClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

func (g *groqClient) Enabled() bool { return true }

func (g *groqClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (disabledClient) Enabled() bool { return false }

func (disabledClient) Complete(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("LLM client is not configured")
}
