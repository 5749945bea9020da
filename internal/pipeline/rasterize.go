package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const slidePrefix = "slide"

// rasterize converts each PDF page to a PNG inside workDir and returns the
// image paths in page order. pdftoppm names pages slide-1.png, slide-2.png
// (zero-padded for larger decks), so ordering needs a numeric sort.
func (p *implPipeline) rasterize(ctx context.Context, pdfPath, workDir string) ([]string, error) {
	p.logger.Info(ctx, "Rasterizing PDF pages: %s", pdfPath)

	args := []string{
		"-png",
		"-r", strconv.Itoa(p.cfg.Raster.DPI),
		pdfPath,
		filepath.Join(workDir, slidePrefix),
	}
	if _, err := p.executor.Execute(ctx, p.cfg.Raster.BinaryPath, args...); err != nil {
		return nil, &RasterizationError{PDF: pdfPath, Err: err}
	}

	entries, err := os.ReadDir(workDir)
	if err != nil {
		return nil, &RasterizationError{PDF: pdfPath, Err: err}
	}

	var images []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, slidePrefix+"-") && strings.HasSuffix(name, ".png") {
			images = append(images, filepath.Join(workDir, name))
		}
	}
	if len(images) == 0 {
		return nil, &RasterizationError{PDF: pdfPath, Err: fmt.Errorf("no pages produced")}
	}

	sort.Slice(images, func(i, j int) bool {
		return pageNumber(images[i]) < pageNumber(images[j])
	})

	p.logger.Info(ctx, "Rasterized %d pages", len(images))
	return images, nil
}

// pageNumber extracts the trailing page number from a pdftoppm output name.
func pageNumber(path string) int {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	end := len(name)
	for end > 0 && name[end-1] >= '0' && name[end-1] <= '9' {
		end--
	}
	if end == len(name) {
		return 0
	}
	n, _ := strconv.Atoi(name[end:])
	return n
}
