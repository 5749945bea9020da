package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Sooowayydh/ppt-to-doc/internal/config"
	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
	"github.com/Sooowayydh/ppt-to-doc/internal/ocr"
	"github.com/Sooowayydh/ppt-to-doc/internal/pipeline"
	"github.com/Sooowayydh/ppt-to-doc/internal/report"
	"github.com/Sooowayydh/ppt-to-doc/internal/summarizer"
	"github.com/Sooowayydh/ppt-to-doc/internal/watcher"
	"github.com/Sooowayydh/ppt-to-doc/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	deckPath := flag.String("deck", "", "deck file to process (one-shot mode)")
	backend := flag.String("backend", "", "summary backend: openai or gemini (overrides config)")
	style := flag.String("style", "", "summary style: concise, detailed or bullet-points (overrides config)")
	delay := flag.Float64("delay", -1, "seconds between summary calls (overrides config)")
	watch := flag.Bool("watch", false, "watch the input directory for new decks")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *backend != "" {
		cfg.Summary.Backend = *backend
	}
	if *style != "" {
		cfg.Summary.Style = *style
	}
	if *delay >= 0 {
		cfg.Summary.DelaySeconds = *delay
	}

	log := logger.New(cfg.Logging.Level)

	client, err := buildClient(cfg, log)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	exec := executor.New()
	extractor := ocr.New(cfg.OCR.Languages...)
	pl := pipeline.New(cfg, exec, extractor, log)

	run := func(ctx context.Context, deck string) error {
		return processDeck(ctx, cfg, pl, client, log, deck)
	}

	switch {
	case *watch:
		if err := watchDecks(ctx, cfg, run, log); err != nil && err != context.Canceled {
			log.Error(ctx, "Watch failed: %v", err)
			os.Exit(1)
		}
	case *deckPath != "":
		if err := run(ctx, *deckPath); err != nil {
			log.Error(ctx, "Failed to process %s: %v", *deckPath, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: pass -deck <file> for a single run, or -watch to monitor the input directory")
		os.Exit(2)
	}
}

func buildClient(cfg *config.Config, log logger.Logger) (*summarizer.Client, error) {
	be, err := summarizer.NewBackend(cfg.Summary.Backend, summarizer.Credentials{
		OpenAIKey:   cfg.Summary.OpenAIKey,
		OpenAIModel: cfg.Summary.OpenAIModel,
		GeminiKey:   cfg.Summary.GeminiKey,
		GeminiModel: cfg.Summary.GeminiModel,
	})
	if err != nil {
		return nil, err
	}
	st, err := summarizer.ParseStyle(cfg.Summary.Style)
	if err != nil {
		return nil, err
	}
	delay := time.Duration(cfg.Summary.DelaySeconds * float64(time.Second))
	return summarizer.NewClient(be, st, delay, log), nil
}

// processDeck runs the pipeline for one deck and writes the slide images,
// the Markdown report and the DOCX report under a per-deck output directory.
func processDeck(ctx context.Context, cfg *config.Config, pl pipeline.Pipeline, client *summarizer.Client, log logger.Logger, deck string) error {
	start := time.Now()

	result, err := pl.Process(ctx, deck, client)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(deck), filepath.Ext(deck))
	outDir := filepath.Join(cfg.Paths.Output, stem)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	rep := report.New(filepath.Base(deck))
	for _, s := range result.Slides {
		image := filepath.Base(s.Image)
		if err := os.WriteFile(filepath.Join(outDir, image), s.PNG, 0644); err != nil {
			return fmt.Errorf("write slide image: %w", err)
		}
		rep.Add(s.Index, s.Summary, image)
		fmt.Printf("Slide %d: %s\n", s.Index, s.Summary)
	}

	if err := os.WriteFile(filepath.Join(outDir, "summary.md"), rep.Markdown(), 0644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	if err := rep.Docx(filepath.Join(outDir, "summary.docx")); err != nil {
		return fmt.Errorf("write docx report: %w", err)
	}

	log.Info(ctx, "Processed %s (%d slides) in %s, output in %s",
		deck, len(result.Slides), time.Since(start).Round(time.Millisecond), outDir)
	return nil
}

func watchDecks(ctx context.Context, cfg *config.Config, run watcher.EventHandler, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Input, run, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	err = w.Start(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
