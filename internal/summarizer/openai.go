package summarizer

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

type implOpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed summarizer using chat completions.
func NewOpenAI(apiKey, model string) Backend {
	return &implOpenAI{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

func (b *implOpenAI) Name() string { return BackendOpenAI }

func (b *implOpenAI) Summarize(ctx context.Context, text string, style Style) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a helpful assistant that summarizes presentation slides."),
			openai.UserMessage(buildPrompt(style, text)),
		},
	})
	if err != nil {
		return "", &Error{Backend: BackendOpenAI, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Backend: BackendOpenAI, Err: errors.New("empty response")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
