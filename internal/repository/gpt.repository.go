package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	// SummarizePerformance returns a short plain-text commentary on a
	// client's performance summary.
	SummarizePerformance(ctx context.Context, summaryMarkdown string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const performancePrompt = `
You are writing a short note from a trading advisor to their client. You will be given a markdown summary
of the client's recommended trades and their returns. Write two or three plain sentences that describe
how the recommendations performed. Do not give investment advice, do not predict prices, and do not
invent numbers that are not in the summary. Output plain text only.
`

func (h gptRepositoryHandler) SummarizePerformance(ctx context.Context, summaryMarkdown string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: performancePrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: summaryMarkdown,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get performance commentary: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to get performance commentary: no choices returned")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
