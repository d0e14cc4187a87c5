package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Answers should stay close to the dataset, so sampling is kept low.
const temperature = 0.2

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

func NewOpenAIClient(apiKey, model string, log *zap.Logger) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temperature,
	})
	if err != nil {
		c.log.Error("openai request failed", zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("openai returned no choices", zap.String("model", c.model))
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
