package summarizer

import (
	"context"
	"strings"

	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
)

const (
	// NoTextPlaceholder is recorded for slides where OCR found nothing.
	// No backend call is made for such slides.
	NoTextPlaceholder = "[No text detected]"

	// FailedPlaceholder is recorded for slides whose backend call failed.
	FailedPlaceholder = "[Error processing slide]"
)

// Client turns one slide's extracted text into a summary. It applies the
// empty-text shortcut, the configured style and the shared inter-call pacer.
type Client struct {
	backend Backend
	style   Style
	pacer   *pacer
	logger  logger.Logger
}

// Summarize returns the summary for one slide's text. An empty (or
// whitespace-only) input short-circuits to NoTextPlaceholder without
// touching the backend. A backend failure is returned as *Error so the
// caller can record a placeholder and continue with the next slide.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return NoTextPlaceholder, nil
	}

	if err := c.pacer.wait(ctx); err != nil {
		return "", err
	}

	summary, err := c.backend.Summarize(ctx, text, c.style)
	if err != nil {
		c.logger.Warn(ctx, "Backend %s call failed: %v", c.backend.Name(), err)
		return "", err
	}
	return summary, nil
}

// Backend exposes the selected backend's name for logging.
func (c *Client) Backend() string { return c.backend.Name() }
