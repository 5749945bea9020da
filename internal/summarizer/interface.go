package summarizer

import "context"

// Backend produces a natural-language summary of one slide's extracted text
// by calling a remote LLM provider.
type Backend interface {
	Name() string
	Summarize(ctx context.Context, text string, style Style) (string, error)
}
