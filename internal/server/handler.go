package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sooowayydh/ppt-to-doc/internal/config"
	"github.com/Sooowayydh/ppt-to-doc/internal/logger"
	"github.com/Sooowayydh/ppt-to-doc/internal/pipeline"
	"github.com/Sooowayydh/ppt-to-doc/internal/report"
	"github.com/Sooowayydh/ppt-to-doc/internal/summarizer"
)

type Handler struct {
	cfg            *config.Config
	pipeline       pipeline.Pipeline
	logger         logger.Logger
	maxUploadBytes int64
}

func NewHandler(cfg *config.Config, pl pipeline.Pipeline, log logger.Logger) *Handler {
	return &Handler{
		cfg:            cfg,
		pipeline:       pl,
		logger:         log,
		maxUploadBytes: int64(cfg.Server.MaxUploadMB) * 1024 * 1024,
	}
}

type slideResponse struct {
	Index     int    `json:"index"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail"` // base64-encoded PNG
	Image     string `json:"image"`     // file name used as report reference
}

type summarizeResponse struct {
	Filename string          `json:"filename"`
	Backend  string          `json:"backend"`
	Style    string          `json:"style"`
	Slides   []slideResponse `json:"slides"`
}

// summarize runs one synchronous end-to-end pipeline run for the uploaded
// deck. Fatal failures return a single error message; per-slide failures
// appear inline as placeholder summaries.
func (h *Handler) summarize(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".ppt" && ext != ".pptx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .ppt and .pptx files are accepted"})
		return
	}

	opts, err := h.runOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The backend is constructed before any conversion work so a missing
	// API key fails fast.
	backend, err := summarizer.NewBackend(opts.provider, opts.creds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deckPath, cleanup, err := h.saveUpload(c, fileHeader, ext)
	if err != nil {
		h.logger.Error(ctx, "Failed to persist upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer cleanup()

	client := summarizer.NewClient(backend, opts.style, opts.delay, h.logger)
	result, err := h.pipeline.Process(ctx, deckPath, client)
	if err != nil {
		h.logger.Error(ctx, "Run failed for %s: %v", fileHeader.Filename, err)
		status := http.StatusInternalServerError
		var cerr *pipeline.ConversionError
		if errors.As(err, &cerr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := summarizeResponse{
		Filename: fileHeader.Filename,
		Backend:  opts.provider,
		Style:    string(opts.style),
		Slides:   make([]slideResponse, 0, len(result.Slides)),
	}
	for _, s := range result.Slides {
		resp.Slides = append(resp.Slides, slideResponse{
			Index:     s.Index,
			Summary:   s.Summary,
			Thumbnail: base64.StdEncoding.EncodeToString(s.PNG),
			Image:     s.Image,
		})
	}
	c.JSON(http.StatusOK, resp)
}

type runOptions struct {
	provider string
	style    summarizer.Style
	delay    time.Duration
	creds    summarizer.Credentials
}

// runOptions folds the form fields over the configured defaults. The result
// is fixed for the duration of the run.
func (h *Handler) runOptions(c *gin.Context) (runOptions, error) {
	opts := runOptions{
		provider: c.DefaultPostForm("backend", h.cfg.Summary.Backend),
		creds: summarizer.Credentials{
			OpenAIKey:   h.cfg.Summary.OpenAIKey,
			OpenAIModel: h.cfg.Summary.OpenAIModel,
			GeminiKey:   h.cfg.Summary.GeminiKey,
			GeminiModel: h.cfg.Summary.GeminiModel,
		},
	}

	style, err := summarizer.ParseStyle(c.DefaultPostForm("style", h.cfg.Summary.Style))
	if err != nil {
		return runOptions{}, err
	}
	opts.style = style

	delayField := c.DefaultPostForm("delay", strconv.FormatFloat(h.cfg.Summary.DelaySeconds, 'f', -1, 64))
	delaySeconds, err := strconv.ParseFloat(delayField, 64)
	if err != nil {
		return runOptions{}, fmt.Errorf("invalid delay %q", delayField)
	}
	if delaySeconds < 0 {
		return runOptions{}, fmt.Errorf("delay must not be negative")
	}
	opts.delay = time.Duration(delaySeconds * float64(time.Second))

	// Per-run key overrides from the form take precedence over environment keys.
	if v := c.PostForm("openai_key"); v != "" {
		opts.creds.OpenAIKey = v
	}
	if v := c.PostForm("gemini_key"); v != "" {
		opts.creds.GeminiKey = v
	}
	return opts, nil
}

func (h *Handler) saveUpload(c *gin.Context, fileHeader *multipart.FileHeader, ext string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "deck-upload-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	stem := strings.TrimSuffix(filepath.Base(fileHeader.Filename), filepath.Ext(fileHeader.Filename))
	if stem == "" {
		stem = "deck"
	}
	path := filepath.Join(dir, stem+ext)
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

type reportRequest struct {
	Title   string         `json:"title"`
	Entries []report.Entry `json:"entries" binding:"required"`
}

func (r *reportRequest) build() *report.Report {
	rep := report.New(r.Title)
	for _, e := range r.Entries {
		rep.Add(e.Index, e.Summary, e.Thumbnail)
	}
	return rep
}

// downloadMarkdown renders the posted (index, summary) pairs as a Markdown
// document attachment.
func (h *Handler) downloadMarkdown(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="summary.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", req.build().Markdown())
}

// downloadDocx renders the posted report as a Word document attachment.
func (h *Handler) downloadDocx(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
		return
	}

	dir, err := os.MkdirTemp("", "report-docx-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build document"})
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "summary.docx")
	if err := req.build().Docx(path); err != nil {
		h.logger.Error(c.Request.Context(), "DOCX export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build document"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="summary.docx"`)
	c.File(path)
}
