package pipeline

import (
	"github.com/Sooowayydh/ppt-to-doc/internal/config"
	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
	"github.com/Sooowayydh/ppt-to-doc/internal/ocr"
	"github.com/Sooowayydh/ppt-to-doc/pkg/executor"
)

type implPipeline struct {
	cfg       *config.Config
	executor  executor.Executor
	extractor ocr.Extractor
	logger    logger.Logger
}

// New creates a Pipeline instance
func New(cfg *config.Config, exec executor.Executor, extractor ocr.Extractor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:       cfg,
		executor:  exec,
		extractor: extractor,
		logger:    log,
	}
}
