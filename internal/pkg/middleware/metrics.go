package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计 HTTP 请求量和耗时, web 和 admin 两个 server 共用
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder(server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	summaryVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:        "boutique_http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "boutique_http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		status := strconv.Itoa(ctx.Writer.Status())

		b.summaryVec.WithLabelValues(method, path, status).Observe(duration)
		b.counterVec.WithLabelValues(method, path, status).Inc()
	}
}
