package site

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/neuroscale/neuroscale-site/internal/handlers"
)

var errNotFound = errors.New("Document not found")

// NewRouter assembles the renderer's routes: the landing page, the two legal
// pages, static assets and the JSON endpoints behind the contact form and
// the content service's revalidation webhook.
func NewRouter(h *Handlers, staticDir string) *gin.Engine {
	router := gin.Default()

	router.GET("/healthcheck", handlers.HealthCheck)

	router.GET("/", h.Home)
	router.GET("/privacy", h.Document("privacy"))
	router.GET("/consent", h.Document("consent"))

	if staticDir != "" {
		router.Static("/static", staticDir)
	}

	api := router.Group("/api")
	{
		api.POST("/client", h.CreateClient)
		api.POST("/revalidate", h.Revalidate)
	}

	return router
}
