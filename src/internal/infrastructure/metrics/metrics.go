package metrics

import (
	"net/http"
	"time"

	"github.com/jackyeh168/qa_forum/src/internal/domain/shared"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 論壇的 Prometheus 指標
//
// 事件部分實作 shared.DispatchObserver，HTTP 部分由 gin 中介層呼叫。
// 指標註冊在傳入的 Registry 上，測試可以各自建立 Registry。
type Metrics struct {
	registry *prometheus.Registry

	EventsDispatched *prometheus.CounterVec
	HandlerFailures  *prometheus.CounterVec
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
}

// New 建立並註冊所有指標
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		EventsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forum_domain_events_dispatched_total",
			Help: "Total number of domain events dispatched to all handlers",
		}, []string{"kind"}),
		HandlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forum_domain_event_handler_failures_total",
			Help: "Total number of domain event handler failures",
		}, []string{"kind"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forum_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forum_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}

	registry.MustRegister(m.EventsDispatched, m.HandlerFailures, m.RequestsTotal, m.RequestDuration)
	return m
}

// EventDispatched 記錄一個事件已交給所有處理器
func (m *Metrics) EventDispatched(kind shared.EventKind, _ int) {
	m.EventsDispatched.WithLabelValues(kind.String()).Inc()
}

// HandlerFailed 記錄處理器失敗
func (m *Metrics) HandlerFailed(kind shared.EventKind, _ error) {
	m.HandlerFailures.WithLabelValues(kind.String()).Inc()
}

// ObserveRequest 記錄一個 HTTP 請求
// start 為請求開始時間
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// Handler 返回 /metrics 的 HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
