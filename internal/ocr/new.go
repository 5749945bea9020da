package ocr

type implExtractor struct {
	languages []string
}

// New creates a Tesseract-backed Extractor with the given language hints.
func New(languages ...string) Extractor {
	return &implExtractor{languages: languages}
}
