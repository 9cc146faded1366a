package server

import (
	"net/http"

	"github.com/08Abhinay/portfolio/internal/config"
	"github.com/08Abhinay/portfolio/internal/contact"
	"github.com/08Abhinay/portfolio/internal/content"
	"github.com/08Abhinay/portfolio/internal/metrics"
	"github.com/08Abhinay/portfolio/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Config  config.Server
	Log     *zap.Logger
	Contact contact.ContactHandlerInterface
	Content *content.ContentHandler
}

// NewRouter wires middleware and routes. The engine is built in release
// mode unless the app runs in development.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
		metrics.Middleware(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(
		middleware.TimeoutMiddleware(d.Config.RequestTimeout),
		middleware.ErrorHandler(),
	)

	api.GET("/sections", d.Content.List)
	api.GET("/sections/:id", d.Content.Get)
	api.POST("/contact", middleware.BodyLimit(d.Config.MaxBodyBytes), d.Contact.Submit)

	return r
}
