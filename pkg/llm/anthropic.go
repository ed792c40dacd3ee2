package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client  *anthropic.Client
	model   anthropic.Model
	prompts prompts
}

func NewAnthropicClient(apiKey, model, topic string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	chatModel := anthropic.ModelClaudeHaiku4_5
	if model != "" {
		chatModel = anthropic.Model(model)
	}

	return &AnthropicClient{
		client:  &client,
		model:   chatModel,
		prompts: newPrompts(topic),
	}
}

func (c *AnthropicClient) Summarize(ctx context.Context, digest, question string) (string, error) {
	return c.complete(ctx, c.prompts.summarizeSystem, c.prompts.summarizeUser(digest, question), summarizeMaxTokens, summarizeTemperature)
}

func (c *AnthropicClient) Blend(ctx context.Context, question, summary string) (string, error) {
	return c.complete(ctx, c.prompts.blendSystem, c.prompts.blendUser(question, summary), blendMaxTokens, blendTemperature)
}

func (c *AnthropicClient) Direct(ctx context.Context, question string) (string, error) {
	return c.complete(ctx, c.prompts.directSystem, question, directMaxTokens, directTemperature)
}

func (c *AnthropicClient) complete(ctx context.Context, system, user string, maxTokens int64, temperature float64) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return strings.TrimSpace(resp.Content[0].Text), nil
}
