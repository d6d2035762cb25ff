package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"message_board/internal/metrics"
)

// Metrics 統計基礎請求指標，路徑使用路由模板避免 id 造成標籤爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{"method": c.Request.Method, "path": path, "status": status}
		metrics.HttpRequestsTotal.With(labels).Inc()
		metrics.HttpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
