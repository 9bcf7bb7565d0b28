package submodular

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hupe1980/submodular/internal/parallel"
	"github.com/hupe1980/submodular/resource"
)

// Evaluable is the evaluation primitive every submodular function provides.
//
// Evaluate returns the utility f(S), a finite value >= 0. Repeated calls with
// equal collections must return equal values. When a Function runs with more
// than one worker, Evaluate is called concurrently and must be safe for that.
type Evaluable[T Scalar] interface {
	Evaluate(S Collection[T]) (T, error)
}

// EvaluatorFunc adapts an ordinary function to Evaluable.
type EvaluatorFunc[T Scalar] func(S Collection[T]) (T, error)

// Evaluate calls fn(S).
func (fn EvaluatorFunc[T]) Evaluate(S Collection[T]) (T, error) { return fn(S) }

// MarginalGainer is implemented by evaluators with a cheaper closed form
// for Δf(e|S) than two full evaluations.
type MarginalGainer[T Scalar] interface {
	MarginalGain(S Collection[T], e []T) (T, error)
}

// BatchEvaluator is implemented by evaluators that evaluate many sets at
// once, e.g. on an accelerator. Both batch marginal-gain operations use it.
// A native batch takes one controller slot, and strict utility checks apply
// to every value it returns.
type BatchEvaluator[T Scalar] interface {
	EvaluateBatch(multi []Collection[T]) ([]T, error)
}

// MultiMarginalGainer is implemented by evaluators that compute Δf(e|S_i)
// for many sets directly.
type MultiMarginalGainer[T Scalar] interface {
	MarginalGainMulti(multi []Collection[T], e []T) ([]T, error)
}

// CandidateMarginalGainer is implemented by evaluators that compute
// Δf(e_j|S) for many candidates directly.
type CandidateMarginalGainer[T Scalar] interface {
	MarginalGainCandidates(S Collection[T], elems [][]T) ([]T, error)
}

// Function derives marginal gains and batch evaluations from an Evaluable.
//
// Operations the evaluator implements itself (MarginalGainer, BatchEvaluator,
// MultiMarginalGainer, CandidateMarginalGainer) replace the derived defaults.
// Element widths are validated before either path runs.
//
// A Function is safe for concurrent use if its evaluator is.
type Function[T Scalar] struct {
	eval       Evaluable[T]
	workers    atomic.Int64
	detect     func() int
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
	strict     bool
}

// New creates a Function over eval.
//
// Without WithWorkerCount the worker count is the detected hardware concurrency.
func New[T Scalar](eval Evaluable[T], optFns ...Option) (*Function[T], error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}

	o := applyOptions(optFns)

	f := &Function[T]{
		eval:       eval,
		detect:     o.detect,
		logger:     o.logger,
		metrics:    o.metricsCollector,
		controller: o.controller,
		strict:     o.strict,
	}
	f.workers.Store(int64(resolveWorkerCount(o.workerCount, o.detect)))

	return f, nil
}

// Evaluate returns f(S), calling the evaluator on the caller's goroutine.
func (f *Function[T]) Evaluate(S Collection[T]) (T, error) {
	return f.evaluate(context.Background(), -1, S)
}

// MarginalGain returns Δf(e|S) = f(S ∪ {e}) - f(S).
//
// It fails with *ErrDimensionMismatch if len(e) != S.Dim(). The default
// costs two evaluations; S itself is not modified.
func (f *Function[T]) MarginalGain(S Collection[T], e []T) (gain T, err error) {
	start := time.Now()
	defer func() { f.observe(OpMarginalGain, 1, 1, S.Dim(), start, err) }()

	if !S.Compatible(e) {
		return gain, &ErrDimensionMismatch{Expected: S.Dim(), Actual: len(e), Index: -1}
	}

	if mg, ok := f.eval.(MarginalGainer[T]); ok {
		g, err := mg.MarginalGain(S, e)
		if err != nil {
			return gain, evaluationError(-1, err)
		}
		return g, nil
	}

	ctx := context.Background()
	withE, err := f.evaluate(ctx, -1, S.With(e))
	if err != nil {
		return gain, err
	}
	base, err := f.evaluate(ctx, -1, S)
	if err != nil {
		return gain, err
	}
	return withE - base, nil
}

// EvaluateBatch returns f(multi[i]) for every i, in input order.
//
// Up to WorkerCount evaluations run concurrently. The call blocks until all
// have finished; the first failure aborts the batch and no results are returned.
func (f *Function[T]) EvaluateBatch(multi []Collection[T]) (vals []T, err error) {
	workers := f.WorkerCount()
	start := time.Now()
	defer func() { f.observe(OpEvaluateBatch, len(multi), workers, 0, start, err) }()

	return f.evaluateBatch(multi, workers)
}

func (f *Function[T]) evaluateBatch(multi []Collection[T], workers int) ([]T, error) {
	if len(multi) == 0 {
		return []T{}, nil
	}

	if be, ok := f.eval.(BatchEvaluator[T]); ok {
		return f.evaluateNative(be, multi)
	}

	return parallel.Map(len(multi), workers, func(ctx context.Context, i int) (T, error) {
		return f.evaluate(ctx, i, multi[i])
	})
}

// evaluateNative hands the whole batch to the evaluator. The batch holds one
// controller slot and counts as one evaluation.
func (f *Function[T]) evaluateNative(be BatchEvaluator[T], multi []Collection[T]) ([]T, error) {
	if err := f.controller.AcquireEvaluation(context.Background()); err != nil {
		return nil, err
	}
	defer f.controller.ReleaseEvaluation()

	start := time.Now()
	vals, err := be.EvaluateBatch(multi)
	f.metrics.RecordEvaluate(time.Since(start), err)

	if err != nil {
		return nil, evaluationError(-1, err)
	}
	if err := checkResultLen(len(vals), len(multi)); err != nil {
		return nil, err
	}

	if f.strict {
		for i, v := range vals {
			if err := checkUtility(i, v); err != nil {
				return nil, err
			}
		}
	}

	return vals, nil
}

// evaluate calls the primitive under the controller's limits. index tags
// errors with the batch position, or -1.
func (f *Function[T]) evaluate(ctx context.Context, index int, S Collection[T]) (T, error) {
	var zero T

	if err := f.controller.AcquireEvaluation(ctx); err != nil {
		return zero, err
	}
	defer f.controller.ReleaseEvaluation()

	start := time.Now()
	v, err := f.eval.Evaluate(S)
	f.metrics.RecordEvaluate(time.Since(start), err)

	if err != nil {
		return zero, evaluationError(index, err)
	}

	if f.strict {
		if err := checkUtility(index, v); err != nil {
			return zero, err
		}
	}

	return v, nil
}

// observe records op and logs it with its count, workers and, when known,
// the element dimension.
func (f *Function[T]) observe(op Operation, size, workers, dim int, start time.Time, err error) {
	d := time.Since(start)
	f.metrics.RecordOperation(op, size, d, err)

	if err == nil && !f.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	l := f.logger.WithCount(size).WithWorkers(workers)
	if dim > 0 {
		l = l.WithDimension(dim)
	}
	l.LogOperation(op, d, err)
}

// checkUtility rejects NaN, infinite and negative utilities.
func checkUtility[T Scalar](index int, v T) error {
	if fv := float64(v); math.IsNaN(fv) || math.IsInf(fv, 0) || fv < 0 {
		return &ErrInvalidUtility{Index: index, Value: fv}
	}
	return nil
}

func checkResultLen(got, want int) error {
	if got != want {
		return &ErrEvaluation{Index: -1, cause: fmt.Errorf("evaluator returned %d results for %d inputs", got, want)}
	}
	return nil
}
