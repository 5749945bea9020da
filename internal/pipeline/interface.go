package pipeline

import "context"

// Pipeline runs one deck end to end: convert, rasterize, extract, summarize.
type Pipeline interface {
	Process(ctx context.Context, deckPath string, sum Summarizer) (*Result, error)
}

// Summarizer is the per-slide summarization capability the pipeline depends
// on. Satisfied by *summarizer.Client.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Slide is one page of the converted deck. Fields are populated as the
// pipeline advances; the struct lives only for the duration of one run.
type Slide struct {
	Index   int    // 1-based, contiguous, matches PDF page order
	Image   string // thumbnail file name, e.g. "slide-1.png"
	PNG     []byte // rasterized page, kept after the scratch dir is removed
	Text    string // OCR output, may be empty
	Summary string
}

// Result is the outcome of one run.
type Result struct {
	Slides []Slide
}
