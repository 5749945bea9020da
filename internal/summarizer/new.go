package summarizer

import (
	"time"

	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
)

const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Credentials carries the per-run provider settings. UI-supplied keys
// override environment ones before this struct is built.
type Credentials struct {
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// NewBackend selects and constructs the backend named by provider. A missing
// API key for the selected provider is a *ConfigError, reported before any
// deck work begins.
func NewBackend(provider string, creds Credentials) (Backend, error) {
	switch provider {
	case BackendOpenAI:
		if creds.OpenAIKey == "" {
			return nil, &ConfigError{Backend: BackendOpenAI, Reason: "OPENAI_API_KEY is not set"}
		}
		return NewOpenAI(creds.OpenAIKey, creds.OpenAIModel), nil
	case BackendGemini:
		if creds.GeminiKey == "" {
			return nil, &ConfigError{Backend: BackendGemini, Reason: "GEMINI_API_KEY is not set"}
		}
		return NewGemini(creds.GeminiKey, creds.GeminiModel), nil
	}
	return nil, &ConfigError{Backend: provider, Reason: "unknown backend"}
}

// NewClient wraps a backend with style selection, the empty-text shortcut
// and inter-call pacing.
func NewClient(backend Backend, style Style, delay time.Duration, log logger.Logger) *Client {
	return &Client{
		backend: backend,
		style:   style,
		pacer:   newPacer(delay),
		logger:  log,
	}
}
