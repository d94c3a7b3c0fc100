// Package metrics exports scoring and persistence telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jvdt"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	assessments     *prometheus.CounterVec
	scoringDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
}

// New registers the collectors with reg, or the default registerer when reg is nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_scored_total",
			Help:      "Assessments submitted for scoring, by methodology and outcome.",
		}, []string{"methodology", "outcome"}),
		scoringDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Time spent scoring and persisting a submission.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"methodology"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kv_cache_lookups_total",
			Help:      "Key-value cache lookups, by result.",
		}, []string{"result"}),
	}

	var err error
	if m.assessments, err = register(reg, m.assessments); err != nil {
		return nil, err
	}
	if m.scoringDuration, err = register(reg, m.scoringDuration); err != nil {
		return nil, err
	}
	if m.cacheLookups, err = register(reg, m.cacheLookups); err != nil {
		return nil, err
	}
	return m, nil
}

// register returns the already-registered collector when one with the same
// descriptor exists.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// MustNew is New that panics on registration failure.
func MustNew(reg prometheus.Registerer) *Metrics {
	m, err := New(reg)
	if err != nil {
		panic(err)
	}
	return m
}

// RecordAssessment counts one submission and observes its duration.
func (m *Metrics) RecordAssessment(methodology string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.assessments.WithLabelValues(methodology, outcome).Inc()
	m.scoringDuration.WithLabelValues(methodology).Observe(d.Seconds())
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
