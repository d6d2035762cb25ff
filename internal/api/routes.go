package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"message_board/internal/api/handlers"
	"message_board/internal/middleware"
	"message_board/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, log zerolog.Logger) {
	// 初始化 handlers
	messageHandler := handlers.NewMessageHandler(services.Message, log)

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// 路徑存在但方法不對時返回 405
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	messages := r.Group("/messages")
	{
		messages.GET("", messageHandler.ListMessages)
		messages.POST("", messageHandler.CreateMessage)
		messages.GET("/:id", messageHandler.GetMessage)
		messages.PATCH("/:id", messageHandler.UpdateMessage)
		messages.DELETE("/:id", messageHandler.DeleteMessage)
	}
}
