package ocr

import "context"

// Extractor pulls text out of one rasterized slide image. An image with no
// recognizable text yields an empty string, not an error.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}
