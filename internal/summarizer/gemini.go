package summarizer

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

type implGemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini-backed summarizer.
func NewGemini(apiKey, model string) Backend {
	return &implGemini{apiKey: apiKey, model: model}
}

func (b *implGemini) Name() string { return BackendGemini }

func (b *implGemini) Summarize(ctx context.Context, text string, style Style) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &Error{Backend: BackendGemini, Err: err}
	}

	prompt := buildPrompt(style, text)
	result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &Error{Backend: BackendGemini, Err: err}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &Error{Backend: BackendGemini, Err: errors.New("empty response")}
	}

	var out strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			out.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(out.String()) == "" {
		return "", &Error{Backend: BackendGemini, Err: errors.New("empty response")}
	}
	return strings.TrimSpace(out.String()), nil
}
