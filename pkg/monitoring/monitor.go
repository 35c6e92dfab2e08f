package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ImportRowAccepted = "accepted"
	ImportRowSkipped  = "skipped"
	ImportRowRejected = "rejected"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	// TrainingReports 按趋势统计生成的训练报告
	TrainingReports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_reports_total",
			Help: "Total number of generated training reports by trend",
		},
		[]string{"trend"},
	)

	// ImportRows 训练表格导入行数
	ImportRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "training_import_rows_total",
			Help: "Total number of imported spreadsheet rows by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(TrainingReports)
		prometheus.MustRegister(ImportRows)
	})
}

func RecordReport(trend string) {
	TrainingReports.WithLabelValues(trend).Inc()
}

func RecordImportRows(result string, n int) {
	if n <= 0 {
		return
	}
	ImportRows.WithLabelValues(result).Add(float64(n))
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
