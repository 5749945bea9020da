package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// index serves the upload form with the configured defaults pre-selected.
func (h *Handler) index(c *gin.Context) {
	data := gin.H{
		"Backend": h.cfg.Summary.Backend,
		"Style":   h.cfg.Summary.Style,
		"Delay":   h.cfg.Summary.DelaySeconds,
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, data); err != nil {
		h.logger.Error(c.Request.Context(), "Failed to render index page: %v", err)
	}
}
