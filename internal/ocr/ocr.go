package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Error reports a failure of the OCR engine itself. It is slide-local:
// the pipeline records a placeholder for the slide and moves on.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("ocr failed for %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Extract runs Tesseract over one slide image. A fresh client per image
// keeps extraction stateless across slides.
func (x *implExtractor) Extract(ctx context.Context, imagePath string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(x.languages) > 0 {
		if err := client.SetLanguage(x.languages...); err != nil {
			return "", &Error{Path: imagePath, Err: fmt.Errorf("set languages: %w", err)}
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", &Error{Path: imagePath, Err: fmt.Errorf("set image: %w", err)}
	}

	text, err := client.Text()
	if err != nil {
		return "", &Error{Path: imagePath, Err: err}
	}
	return strings.TrimSpace(text), nil
}
