package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/api/chat"
	"github.com/netcoach-ai/netcoach/internal/api/middleware"
	"github.com/netcoach-ai/netcoach/internal/api/sessions"
	"github.com/netcoach-ai/netcoach/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	sessionService *service.SessionService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.Credential())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chatHandler := chat.NewHandler(chatService, logger)
	chatHandler.RegisterRoutes(r)

	sessionHandler := sessions.NewHandler(sessionService, logger)
	sessionHandler.RegisterRoutes(r)

	return r
}
