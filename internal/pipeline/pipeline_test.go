package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sooowayydh/ppt-to-doc/internal/config"
	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
	"github.com/Sooowayydh/ppt-to-doc/internal/ocr"
	"github.com/Sooowayydh/ppt-to-doc/internal/summarizer"
)

// fakeExecutor stands in for soffice and pdftoppm by writing the files the
// real tools would produce.
type fakeExecutor struct {
	pages       int
	failConvert bool
	failRaster  bool
	workDir     string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	switch name {
	case "fake-soffice":
		if f.failConvert {
			return "", errors.New("soffice exploded")
		}
		outDir := ""
		for i, a := range args {
			if a == "--outdir" && i+1 < len(args) {
				outDir = args[i+1]
			}
		}
		f.workDir = outDir
		deck := args[len(args)-1]
		stem := strings.TrimSuffix(filepath.Base(deck), filepath.Ext(deck))
		return "", os.WriteFile(filepath.Join(outDir, stem+".pdf"), []byte("%PDF-fake"), 0644)
	case "fake-pdftoppm":
		if f.failRaster {
			return "", errors.New("pdftoppm exploded")
		}
		prefix := args[len(args)-1]
		for i := 1; i <= f.pages; i++ {
			path := fmt.Sprintf("%s-%d.png", prefix, i)
			if err := os.WriteFile(path, []byte(fmt.Sprintf("png-%d", i)), 0644); err != nil {
				return "", err
			}
		}
		return "", nil
	}
	return "", fmt.Errorf("unexpected command %q", name)
}

// fakeExtractor maps page images to canned text by page number.
type fakeExtractor struct {
	texts  map[int]string
	failOn int
}

func (f *fakeExtractor) Extract(ctx context.Context, imagePath string) (string, error) {
	n := pageNumber(imagePath)
	if n == f.failOn {
		return "", &ocr.Error{Path: imagePath, Err: errors.New("unreadable image")}
	}
	return f.texts[n], nil
}

type echoBackend struct{ calls int }

func (b *echoBackend) Name() string { return "echo" }

func (b *echoBackend) Summarize(ctx context.Context, text string, style summarizer.Style) (string, error) {
	b.calls++
	return "summary of: " + text, nil
}

type failingBackend struct {
	failOn string
	calls  int
}

func (b *failingBackend) Name() string { return "failing" }

func (b *failingBackend) Summarize(ctx context.Context, text string, style summarizer.Style) (string, error) {
	b.calls++
	if text == b.failOn {
		return "", &summarizer.Error{Backend: "failing", Err: errors.New("network down")}
	}
	return "summary of: " + text, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Converter.BinaryPath = "fake-soffice"
	cfg.Raster.BinaryPath = "fake-pdftoppm"
	cfg.Paths.Work = t.TempDir()
	return cfg
}

func testDeck(t *testing.T) string {
	t.Helper()
	deck := filepath.Join(t.TempDir(), "talk.pptx")
	if err := os.WriteFile(deck, []byte("PK-fake"), 0644); err != nil {
		t.Fatal(err)
	}
	return deck
}

func testClient(backend summarizer.Backend) *summarizer.Client {
	return summarizer.NewClient(backend, summarizer.StyleConcise, 0, logger.New("error"))
}

func TestProcess(t *testing.T) {
	exec := &fakeExecutor{pages: 3}
	extractor := &fakeExtractor{texts: map[int]string{
		1: "intro slide",
		2: "", // no text on slide 2
		3: "closing slide",
	}}
	backend := &echoBackend{}

	p := New(testConfig(t), exec, extractor, logger.New("error"))
	result, err := p.Process(context.Background(), testDeck(t), testClient(backend))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(result.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(result.Slides))
	}
	for i, s := range result.Slides {
		if s.Index != i+1 {
			t.Errorf("slide[%d].Index = %d, want %d", i, s.Index, i+1)
		}
		if len(s.PNG) == 0 {
			t.Errorf("slide[%d] has no thumbnail bytes", i)
		}
	}

	if got := result.Slides[0].Summary; got != "summary of: intro slide" {
		t.Errorf("slide 1 summary = %q", got)
	}
	if got := result.Slides[1].Summary; got != summarizer.NoTextPlaceholder {
		t.Errorf("slide 2 summary = %q, want placeholder", got)
	}
	if got := result.Slides[2].Summary; got != "summary of: closing slide" {
		t.Errorf("slide 3 summary = %q", got)
	}
	if backend.calls != 2 {
		t.Errorf("backend called %d times, want 2 (empty slide skipped)", backend.calls)
	}
}

func TestProcessPageOrder(t *testing.T) {
	// 11 pages exposes lexicographic ordering bugs (slide-10 before slide-2).
	exec := &fakeExecutor{pages: 11}
	texts := map[int]string{}
	for i := 1; i <= 11; i++ {
		texts[i] = fmt.Sprintf("page %d", i)
	}

	p := New(testConfig(t), exec, &fakeExtractor{texts: texts}, logger.New("error"))
	result, err := p.Process(context.Background(), testDeck(t), testClient(&echoBackend{}))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(result.Slides) != 11 {
		t.Fatalf("got %d slides, want 11", len(result.Slides))
	}
	for i, s := range result.Slides {
		want := fmt.Sprintf("summary of: page %d", i+1)
		if s.Summary != want {
			t.Errorf("slide[%d].Summary = %q, want %q", i, s.Summary, want)
		}
	}
}

func TestProcessBackendFailureIsSlideLocal(t *testing.T) {
	exec := &fakeExecutor{pages: 3}
	extractor := &fakeExtractor{texts: map[int]string{1: "one", 2: "two", 3: "three"}}
	backend := &failingBackend{failOn: "two"}

	p := New(testConfig(t), exec, extractor, logger.New("error"))
	result, err := p.Process(context.Background(), testDeck(t), testClient(backend))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := []string{"summary of: one", summarizer.FailedPlaceholder, "summary of: three"}
	for i := range want {
		if result.Slides[i].Summary != want[i] {
			t.Errorf("slide[%d].Summary = %q, want %q", i, result.Slides[i].Summary, want[i])
		}
	}
}

func TestProcessOCRFailureIsSlideLocal(t *testing.T) {
	exec := &fakeExecutor{pages: 2}
	extractor := &fakeExtractor{texts: map[int]string{1: "one", 2: "two"}, failOn: 2}

	p := New(testConfig(t), exec, extractor, logger.New("error"))
	result, err := p.Process(context.Background(), testDeck(t), testClient(&echoBackend{}))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if got := result.Slides[0].Summary; got != "summary of: one" {
		t.Errorf("slide 1 summary = %q", got)
	}
	if got := result.Slides[1].Summary; got != summarizer.FailedPlaceholder {
		t.Errorf("slide 2 summary = %q, want placeholder", got)
	}
}

func TestProcessConversionFailure(t *testing.T) {
	exec := &fakeExecutor{failConvert: true}
	p := New(testConfig(t), exec, &fakeExtractor{}, logger.New("error"))

	_, err := p.Process(context.Background(), testDeck(t), testClient(&echoBackend{}))
	var cerr *ConversionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *ConversionError", err, err)
	}
}

func TestProcessRejectsUnknownFormat(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "notes.docx")
	if err := os.WriteFile(deck, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	p := New(testConfig(t), &fakeExecutor{pages: 1}, &fakeExtractor{}, logger.New("error"))
	_, err := p.Process(context.Background(), deck, testClient(&echoBackend{}))
	var cerr *ConversionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v (%T), want *ConversionError", err, err)
	}
}

func TestProcessRasterizationFailure(t *testing.T) {
	exec := &fakeExecutor{failRaster: true}
	p := New(testConfig(t), exec, &fakeExtractor{}, logger.New("error"))

	_, err := p.Process(context.Background(), testDeck(t), testClient(&echoBackend{}))
	var rerr *RasterizationError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v (%T), want *RasterizationError", err, err)
	}
}

func TestProcessCleansWorkDir(t *testing.T) {
	for _, fail := range []bool{false, true} {
		name := "success"
		if fail {
			name = "raster failure"
		}
		t.Run(name, func(t *testing.T) {
			exec := &fakeExecutor{pages: 1, failRaster: fail}
			extractor := &fakeExtractor{texts: map[int]string{1: "hello"}}

			p := New(testConfig(t), exec, extractor, logger.New("error"))
			_, _ = p.Process(context.Background(), testDeck(t), testClient(&echoBackend{}))

			if exec.workDir == "" {
				t.Fatal("fake executor never saw a work dir")
			}
			if _, err := os.Stat(exec.workDir); !os.IsNotExist(err) {
				t.Errorf("work dir %s still exists after run", exec.workDir)
			}
		})
	}
}

func TestPageNumber(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/tmp/x/slide-1.png", 1},
		{"/tmp/x/slide-10.png", 10},
		{"/tmp/x/slide-007.png", 7},
		{"/tmp/x/slide.png", 0},
	}
	for _, tt := range tests {
		if got := pageNumber(tt.path); got != tt.want {
			t.Errorf("pageNumber(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
