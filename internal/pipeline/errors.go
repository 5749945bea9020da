package pipeline

import "fmt"

// ConversionError reports a failed deck-to-PDF conversion. Fatal to the run.
type ConversionError struct {
	Deck string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to pdf: %v", e.Deck, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// RasterizationError reports a failed PDF-to-image conversion. Fatal to the run.
type RasterizationError struct {
	PDF string
	Err error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("rasterize %s: %v", e.PDF, e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }
