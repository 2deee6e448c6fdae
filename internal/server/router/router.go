package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockdesk/dashboard/internal/server/handlers"
	"github.com/stockdesk/dashboard/internal/session"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Catalog   *handlers.CatalogHandler
	Inventory *handlers.InventoryHandler
	Analytics *handlers.AnalyticsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, store session.Store, cookieName string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	views := r.Group("/views")
	views.Use(handlers.RequireSession(store, cookieName, logger))
	{
		views.GET("/me", h.Auth.Me)

		views.GET("/products", h.Catalog.List)
		views.POST("/products", h.Catalog.Create)
		views.PUT("/products/:id", h.Catalog.Update)
		views.DELETE("/products/:id", h.Catalog.Delete)

		views.GET("/inventory", h.Inventory.View)
		views.POST("/inventory/transactions", h.Inventory.LogTransaction)

		views.GET("/dashboard", h.Analytics.Dashboard)
		views.GET("/analytics", h.Analytics.Page)
		views.GET("/analytics/forecast", h.Analytics.Forecast)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
