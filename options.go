package submodular

import (
	"log/slog"

	"github.com/hupe1980/submodular/resource"
)

type options struct {
	workerCount      int
	detect           func() int
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	strict           bool
}

// Option configures a Function.
type Option func(*options)

// WithWorkerCount sets the maximum number of evaluations a batch operation
// may run concurrently.
//
// Values below 1 select the detected hardware concurrency (the default).
func WithWorkerCount(n int) Option {
	return func(o *options) {
		o.workerCount = n
	}
}

// WithConcurrencyDetector replaces the hardware concurrency query used when
// the worker count is unset or invalid. Mainly useful in tests.
//
// If nil is passed, the default detector is used.
func WithConcurrencyDetector(detect func() int) Option {
	return func(o *options) {
		if detect == nil {
			detect = DetectConcurrency
		}
		o.detect = detect
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &submodular.BasicMetricsCollector{}
//	fn, _ := submodular.New(eval, submodular.WithMetricsCollector(metrics))
//	// ... use fn ...
//	stats := metrics.GetStats()
//	fmt.Printf("Evaluations: %d, Avg latency: %dns\n", stats.EvaluateCount, stats.EvaluateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := submodular.NewJSONLogger(slog.LevelDebug)
//	fn, _ := submodular.New(eval, submodular.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithController shares a resource controller between functions, bounding
// concurrent evaluations and evaluation rate across all of them.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithStrictUtilities rejects negative, NaN and infinite utilities returned
// by the evaluator with *ErrInvalidUtility.
func WithStrictUtilities() Option {
	return func(o *options) {
		o.strict = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workerCount:      0,
		detect:           DetectConcurrency,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
