package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	analysesTotal           *prometheus.CounterVec
	ruleMatchesTotal        *prometheus.CounterVec
	extractionFailuresTotal *prometheus.CounterVec
	requestDuration         *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "scamshield_analyses_total", Help: "Total completed analyses"},
			[]string{"source", "verdict"},
		),
		ruleMatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "scamshield_rule_matches_total", Help: "Total rule matches"},
			[]string{"rule"},
		),
		extractionFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "scamshield_extraction_failures_total", Help: "Total uploads with no readable content"},
			[]string{"format"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scamshield_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.analysesTotal,
		m.ruleMatchesTotal,
		m.extractionFailuresTotal,
		m.requestDuration,
	)

	return m
}

func (m *Metrics) Handler(reg *prometheus.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveAnalysis(source string, legit bool, warnings []string) {
	if m == nil {
		return
	}

	verdict := "scam"
	if legit {
		verdict = "legit"
	}
	m.analysesTotal.WithLabelValues(source, verdict).Inc()

	for _, warning := range warnings {
		m.ruleMatchesTotal.WithLabelValues(warning).Inc()
	}
}

func (m *Metrics) ObserveExtractionFailure(format string) {
	if m == nil {
		return
	}
	m.extractionFailuresTotal.WithLabelValues(format).Inc()
}

func (m *Metrics) ObserveRequest(endpoint string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
