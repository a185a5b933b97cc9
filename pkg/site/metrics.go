package site

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics for page rendering and serving.
type Metrics struct {
	renders  *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	bytes    *prometheus.HistogramVec
}

// NewMetrics registers the site metrics with the given registerer.
// Passing nil uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "draftml",
			Name:      "renders_total",
			Help:      "Total page renders.",
		}, []string{"page"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "draftml",
			Name:      "render_errors_total",
			Help:      "Total page renders that returned an error.",
		}, []string{"page"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "draftml",
			Name:      "render_duration_seconds",
			Help:      "Page render duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),
		bytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "draftml",
			Name:      "render_bytes",
			Help:      "Rendered document size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}, []string{"page"}),
	}
}

// ObserveRender records one render of the named page.
func (m *Metrics) ObserveRender(page string, d time.Duration, size int, err error) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(page).Inc()
	m.duration.WithLabelValues(page).Observe(d.Seconds())
	if err != nil {
		m.errors.WithLabelValues(page).Inc()
		return
	}
	m.bytes.WithLabelValues(page).Observe(float64(size))
}
