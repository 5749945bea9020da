package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Sooowayydh/ppt-to-doc/internal/summarizer"
)

// Process runs one deck through the full pipeline. Conversion and
// rasterization failures abort the run; OCR and summarization failures are
// slide-local and recorded as placeholder summaries. The per-run scratch
// directory is removed on every exit path.
func (p *implPipeline) Process(ctx context.Context, deckPath string, sum Summarizer) (*Result, error) {
	startTime := time.Now()

	workDir, err := p.makeWorkDir()
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer p.cleanupWorkDir(ctx, workDir)

	p.logger.Info(ctx, "Starting deck processing: %s", deckPath)

	pdfPath, err := p.convertToPDF(ctx, deckPath, workDir)
	if err != nil {
		return nil, err
	}

	images, err := p.rasterize(ctx, pdfPath, workDir)
	if err != nil {
		return nil, err
	}

	slides := make([]Slide, 0, len(images))
	for i, imagePath := range images {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		slide := Slide{
			Index: i + 1,
			Image: filepath.Base(imagePath),
		}

		png, err := os.ReadFile(imagePath)
		if err != nil {
			return nil, &RasterizationError{PDF: pdfPath, Err: fmt.Errorf("read page image: %w", err)}
		}
		slide.PNG = png

		text, err := p.extractor.Extract(ctx, imagePath)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			p.logger.Error(ctx, "OCR failed on slide %d: %v", slide.Index, err)
			slide.Summary = summarizer.FailedPlaceholder
			slides = append(slides, slide)
			continue
		}
		slide.Text = text

		summary, err := sum.Summarize(ctx, text)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			p.logger.Error(ctx, "Summarization failed on slide %d: %v", slide.Index, err)
			summary = summarizer.FailedPlaceholder
		}
		slide.Summary = summary

		p.logger.Info(ctx, "[%d/%d] Slide processed", slide.Index, len(images))
		slides = append(slides, slide)
	}

	p.logger.Info(ctx, "Deck processed: %d slides in %s", len(slides), time.Since(startTime))
	return &Result{Slides: slides}, nil
}

// makeWorkDir creates the per-run scratch directory holding the converted
// PDF and the page images.
func (p *implPipeline) makeWorkDir() (string, error) {
	base := p.cfg.Paths.Work
	if base == "" {
		base = os.TempDir()
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return "", err
	}
	dir := filepath.Join(base, "deck-"+uuid.NewString())
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func (p *implPipeline) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to clean up work dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up work dir: %s", dir)
	}
}
