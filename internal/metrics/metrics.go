package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namespace = "chartparse"

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	chartRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_requests_total",
			Help:      "Chart parse requests by chart type and outcome",
		},
		[]string{"chart_type", "status"},
	)

	inferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Model completion call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"chart_type"},
	)

	poolInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_in_flight",
			Help:      "Inference calls currently holding a pool slot",
		},
	)

	poolWaiting = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_waiting",
			Help:      "Requests waiting for a pool slot",
		},
	)
)

func ChartRequest(chartType, status string) {
	chartRequestsTotal.With(prometheus.Labels{
		"chart_type": chartType,
		"status":     status,
	}).Inc()
}

func InferenceDuration(chartType string, duration time.Duration) {
	inferenceDuration.With(prometheus.Labels{
		"chart_type": chartType,
	}).Observe(duration.Seconds())
}

func PoolSlotAcquired() { poolInFlight.Inc() }
func PoolSlotReleased() { poolInFlight.Dec() }
func PoolWaitStarted()  { poolWaiting.Inc() }
func PoolWaitEnded()    { poolWaiting.Dec() }

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusResponseWriter{w, 200}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		httpRequestsTotal.With(prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
			"code":   strconv.Itoa(ww.status),
		}).Inc()
		httpRequestDuration.With(prometheus.Labels{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Observe(duration.Seconds())
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
