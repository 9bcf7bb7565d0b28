package submodular

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Operation identifies a Function operation for logging and metrics.
type Operation int

const (
	OpMarginalGain Operation = iota
	OpEvaluateBatch
	OpMarginalGainMulti
	OpMarginalGainCandidates
)

func (o Operation) String() string {
	switch o {
	case OpMarginalGain:
		return "marginal_gain"
	case OpEvaluateBatch:
		return "evaluate_batch"
	case OpMarginalGainMulti:
		return "marginal_gain_multi"
	case OpMarginalGainCandidates:
		return "marginal_gain_candidates"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see the
// metrics/prom package for a Prometheus implementation.
//
// Implementations must be safe for concurrent use: RecordEvaluate is called
// from batch workers.
type MetricsCollector interface {
	// RecordEvaluate is called after each call to the evaluation primitive.
	// duration is the time taken, err is nil if successful.
	RecordEvaluate(duration time.Duration, err error)

	// RecordOperation is called after each derived operation.
	// size is the number of sets or candidates in the request.
	RecordOperation(op Operation, size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEvaluate(time.Duration, error)                  {}
func (NoopMetricsCollector) RecordOperation(Operation, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EvaluateCount      atomic.Int64
	EvaluateErrors     atomic.Int64
	EvaluateTotalNanos atomic.Int64
	OperationCount     atomic.Int64
	OperationErrors    atomic.Int64
	OperationItems     atomic.Int64
	CandidateCount     atomic.Int64
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(duration time.Duration, err error) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluateErrors.Add(1)
	}
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(op Operation, size int, duration time.Duration, err error) {
	b.OperationCount.Add(1)
	b.OperationItems.Add(int64(size))
	if op == OpMarginalGainCandidates {
		b.CandidateCount.Add(int64(size))
	}
	if err != nil {
		b.OperationErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EvaluateCount:    b.EvaluateCount.Load(),
		EvaluateErrors:   b.EvaluateErrors.Load(),
		EvaluateAvgNanos: b.getAvgEvaluateNanos(),
		OperationCount:   b.OperationCount.Load(),
		OperationErrors:  b.OperationErrors.Load(),
		OperationItems:   b.OperationItems.Load(),
		CandidateCount:   b.CandidateCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEvaluateNanos() int64 {
	count := b.EvaluateCount.Load()
	if count == 0 {
		return 0
	}
	return b.EvaluateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EvaluateCount    int64
	EvaluateErrors   int64
	EvaluateAvgNanos int64
	OperationCount   int64
	OperationErrors  int64
	OperationItems   int64
	CandidateCount   int64
}
