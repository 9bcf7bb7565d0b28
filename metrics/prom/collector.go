// Package prom exports submodular metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	fn, _ := submodular.New(eval, submodular.WithMetricsCollector(prom.NewCollector(reg)))
package prom

import (
	"time"

	"github.com/hupe1980/submodular"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Collector implements submodular.MetricsCollector with Prometheus metrics.
type Collector struct {
	evaluations       *prometheus.CounterVec
	evaluationLatency prometheus.Histogram
	operations        *prometheus.CounterVec
	operationLatency  *prometheus.HistogramVec
	operationSize     *prometheus.HistogramVec
}

var _ submodular.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace string
	subsystem string
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace (default "submodular").
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithSubsystem sets the metric subsystem (default empty). Use it to tell
// several functions apart when they register with one registry.
func WithSubsystem(s string) Option {
	return func(o *options) { o.subsystem = s }
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg creates unregistered metrics. Registering twice under the same
// namespace and subsystem panics, as with promauto.
func NewCollector(reg prometheus.Registerer, optFns ...Option) *Collector {
	o := options{namespace: "submodular"}
	for _, fn := range optFns {
		fn(&o)
	}

	factory := promauto.With(reg)

	return &Collector{
		// Labels: status (success, error)
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "evaluations_total",
			Help:      "Total calls to the evaluation primitive",
		}, []string{"status"}),

		evaluationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Latency of single set evaluations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),

		// Labels: op (operation name), status (success, error)
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "operations_total",
			Help:      "Total derived operations by kind and status",
		}, []string{"op", "status"}),

		// Labels: op
		operationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Latency of derived operations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"op"}),

		// Labels: op
		operationSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "operation_size",
			Help:      "Number of sets or candidates per derived operation",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"op"}),
	}
}

// RecordEvaluate implements submodular.MetricsCollector.
func (c *Collector) RecordEvaluate(duration time.Duration, err error) {
	c.evaluations.WithLabelValues(status(err)).Inc()
	c.evaluationLatency.Observe(duration.Seconds())
}

// RecordOperation implements submodular.MetricsCollector.
func (c *Collector) RecordOperation(op submodular.Operation, size int, duration time.Duration, err error) {
	name := op.String()
	c.operations.WithLabelValues(name, status(err)).Inc()
	c.operationLatency.WithLabelValues(name).Observe(duration.Seconds())
	c.operationSize.WithLabelValues(name).Observe(float64(size))
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}
