package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the UI page, the summarize endpoint and the report
// download endpoints.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(h.cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = h.cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", h.index)

	api := router.Group("/api")
	api.POST("/summarize", h.summarize)
	api.POST("/report/markdown", h.downloadMarkdown)
	api.POST("/report/docx", h.downloadDocx)

	return router
}
