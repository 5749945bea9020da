package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// convertToPDF converts the uploaded deck to a single PDF inside workDir
// using LibreOffice headless. The output file name follows LibreOffice's
// rule: deck stem plus ".pdf".
func (p *implPipeline) convertToPDF(ctx context.Context, deckPath, workDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(deckPath))
	if ext != ".ppt" && ext != ".pptx" {
		return "", &ConversionError{Deck: deckPath, Err: fmt.Errorf("unsupported deck format %q", ext)}
	}

	timeout := time.Duration(p.cfg.Converter.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p.logger.Info(ctx, "Converting deck to PDF: %s", deckPath)

	args := []string{
		"--headless",
		"--convert-to", "pdf",
		"--outdir", workDir,
		deckPath,
	}
	if _, err := p.executor.Execute(ctx, p.cfg.Converter.BinaryPath, args...); err != nil {
		return "", &ConversionError{Deck: deckPath, Err: err}
	}

	stem := strings.TrimSuffix(filepath.Base(deckPath), filepath.Ext(deckPath))
	pdfPath := filepath.Join(workDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &ConversionError{Deck: deckPath, Err: fmt.Errorf("converter produced no output: %w", err)}
	}

	p.logger.Info(ctx, "Deck converted: %s", pdfPath)
	return pdfPath, nil
}
