package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute 用于未命中路由的请求，避免原始路径撑爆标签基数。
const unmatchedRoute = "unmatched"

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "designhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求耗时分布（秒）。",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status_class"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "designhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP 请求总数（按路由模板统计）。",
		},
		[]string{"method", "route", "status_class"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "designhub",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "当前正在处理的 HTTP 请求数量。",
		},
	)

	storeErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "designhub",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "持久层返回的非预期错误数量。",
		},
		[]string{"operation"},
	)
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal, requestsInFlight, storeErrorsTotal)
	})
}

// GinMiddleware 为 Gin 路由注册 Prometheus 指标采集逻辑。
func GinMiddleware() gin.HandlerFunc {
	register()

	return func(c *gin.Context) {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		labels := prometheus.Labels{
			"method":       c.Request.Method,
			"route":        route,
			"status_class": fmt.Sprintf("%dxx", c.Writer.Status()/100),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
	}
}

// ObserveStoreError 记录一次持久层失败。
func ObserveStoreError(operation string) {
	register()
	storeErrorsTotal.WithLabelValues(operation).Inc()
}

// Handler 暴露 Prometheus 抓取端点。
func Handler() gin.HandlerFunc {
	register()
	return gin.WrapH(promhttp.Handler())
}
