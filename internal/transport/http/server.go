package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/borderchat-server/internal/config"
	"github.com/vovakirdan/borderchat-server/internal/core"
)

// NewServer builds the HTTP server with REST and websocket routes.
func NewServer(svc *core.Service, hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)

	chat := NewChatHandlers(svc, newRateLimiter(cfg.PostRateLimit), logger)
	api := router.Group("/api")
	api.GET("/chat/:roomName", chat.GetHistory)
	api.POST("/chat/:roomName", chat.PostMessage)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	fmt.Fprint(c.Writer, "ok")
}
