package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/senthilk/party-pulse/app/cfg"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS: the site is public and read-only
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	api := r.Group("/api")
	{
		api.GET("/issues", handler.GetIssues)
		api.GET("/protests", handler.GetProtests)
		api.GET("/press", handler.GetPress)
		api.GET("/conferences", handler.GetConferences)
		api.GET("/aggregate", handler.GetAggregate)
	}

	r.GET("/health", handler.GetHealth)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Party Pulse",
			"version":     cfg.GetVersion(),
			"description": "Read-only political-activity statistics sourced from a spreadsheet backend",
			"endpoints": map[string]string{
				"issues":      "/api/issues",
				"protests":    "/api/protests",
				"press":       "/api/press",
				"conferences": "/api/conferences",
				"aggregate":   "/api/aggregate",
				"health":      "/health",
			},
			"query_parameters": map[string]string{
				"q":         "substring search on the category's text field",
				"party":     "both | ntk-only | tvk-only",
				"preset":    "1m | 3m | 6m | 1y | all",
				"from":      "range start (D/M/Y or ISO), overrides preset",
				"to":        "range end (D/M/Y or ISO), overrides preset",
				"sort":      "asc | desc (default desc, by date)",
				"page":      "page number, resets to 1 when out of range",
				"page_size": "rows per page, max 100",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
