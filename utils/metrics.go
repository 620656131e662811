package utils

import "github.com/prometheus/client_golang/prometheus"

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthmate_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "healthmate_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	LogCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthmate_logs_created_total",
			Help: "Health log entries created, by tracker type",
		},
		[]string{"tracker"},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, LogCount)
}
