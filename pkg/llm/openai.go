package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client  *openai.Client
	model   openai.ChatModel
	prompts prompts
}

func NewOpenAIClient(apiKey, model, topic string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	chatModel := openai.ChatModelGPT4oMini
	if model != "" {
		chatModel = openai.ChatModel(model)
	}

	return &OpenAIClient{
		client:  &client,
		model:   chatModel,
		prompts: newPrompts(topic),
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, digest, question string) (string, error) {
	return c.complete(ctx, c.prompts.summarizeSystem, c.prompts.summarizeUser(digest, question), summarizeMaxTokens, summarizeTemperature)
}

func (c *OpenAIClient) Blend(ctx context.Context, question, summary string) (string, error) {
	return c.complete(ctx, c.prompts.blendSystem, c.prompts.blendUser(question, summary), blendMaxTokens, blendTemperature)
}

func (c *OpenAIClient) Direct(ctx context.Context, question string) (string, error) {
	return c.complete(ctx, c.prompts.directSystem, question, directMaxTokens, directTemperature)
}

func (c *OpenAIClient) complete(ctx context.Context, system, user string, maxTokens int64, temperature float64) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
