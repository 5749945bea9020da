package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sooowayydh/ppt-to-doc/internal/config"
	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
	"github.com/Sooowayydh/ppt-to-doc/internal/ocr"
	"github.com/Sooowayydh/ppt-to-doc/internal/pipeline"
	"github.com/Sooowayydh/ppt-to-doc/internal/server"
	"github.com/Sooowayydh/ppt-to-doc/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "Slide summarizer server starting")
	log.Info(ctx, "Summary backend: %s (style: %s)", cfg.Summary.Backend, cfg.Summary.Style)

	exec := executor.New()
	extractor := ocr.New(cfg.OCR.Languages...)
	pl := pipeline.New(cfg, exec, extractor, log)

	handler := server.NewHandler(cfg, pl, log)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info(ctx, "Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "Server stopped")
}
