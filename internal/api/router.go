package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/cocosmart/shopcore/internal/api/handlers"
	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/config"
	"github.com/cocosmart/shopcore/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, store *cart.Store, checkouts *service.CheckoutService, cur currency.Unit, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "CocoSmart shop core",
			"endpoints": []string{
				"GET /health",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"DELETE /v1/cart/items/:productID",
				"GET /v1/cart/total",
				"POST /v1/checkout",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/cart", handlers.HandleGetCart(store, cur, logger))
		v1.POST("/cart/items", handlers.HandleAddCartItem(store, cur, logger))
		v1.DELETE("/cart/items/:productID", handlers.HandleRemoveCartItem(store, cur, logger))
		v1.GET("/cart/total", handlers.HandleGetCartTotal(store, cur, logger))
		v1.POST("/checkout", handlers.HandleCheckout(store, checkouts, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
