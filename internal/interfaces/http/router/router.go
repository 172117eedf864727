package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/logger"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/interfaces/http/middleware"
)

// RouteRegistrar mounts a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// New builds the gin engine with middleware and all registered routes
func New(log *zap.Logger, production bool, registrars ...RouteRegistrar) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.GinRecovery(log),
		middleware.CORS(),
	)

	api := engine.Group("/api/v1")
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}
	return engine
}
