package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

var (
	MessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "message_board_messages_total",
		Help: "Total number of successful message writes by operation",
	}, []string{"operation"})
	HttpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(MessagesTotal, HttpRequestsTotal, HttpRequestDuration)
}

// RecordWrite 記錄一次成功的留言寫入
func RecordWrite(operation string) {
	MessagesTotal.WithLabelValues(operation).Inc()
}
