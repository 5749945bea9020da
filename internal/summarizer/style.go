package summarizer

import "fmt"

// Style selects one of the prompt templates.
type Style string

const (
	StyleConcise  Style = "concise"
	StyleDetailed Style = "detailed"
	StyleBullets  Style = "bullet-points"
)

// ParseStyle validates a user-supplied style name.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleConcise, StyleDetailed, StyleBullets:
		return Style(s), nil
	case "":
		return StyleConcise, nil
	}
	return "", fmt.Errorf("unknown summary style %q", s)
}

const (
	concisePrompt = `Below is OCR-extracted text from a presentation slide.
Provide a concise 2-3 sentence summary focusing on the key points:

%s`

	detailedPrompt = `Below is OCR-extracted text from a presentation slide.
Provide a detailed summary covering every point on the slide, including
supporting details and any figures or numbers that appear:

%s`

	bulletsPrompt = `Below is OCR-extracted text from a presentation slide.
Summarize the content as a short bullet list, one bullet per key point,
using markdown "-" bullets:

%s`
)

// buildPrompt renders the template for the given style.
func buildPrompt(style Style, text string) string {
	switch style {
	case StyleDetailed:
		return fmt.Sprintf(detailedPrompt, text)
	case StyleBullets:
		return fmt.Sprintf(bulletsPrompt, text)
	default:
		return fmt.Sprintf(concisePrompt, text)
	}
}
