package testutil

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/submodular"
)

// Sum returns an evaluator computing the sum of all entries of S.
// It is modular, which makes marginal gains exact: Δf(e|S) = sum(e).
func Sum[T submodular.Scalar]() submodular.EvaluatorFunc[T] {
	return func(S submodular.Collection[T]) (T, error) {
		var total T
		for _, row := range S.Rows() {
			for _, v := range row {
				total += v
			}
		}
		return total, nil
	}
}

// Counting wraps an evaluator and counts calls, in total and per set size.
type Counting[T submodular.Scalar] struct {
	Inner submodular.Evaluable[T]

	calls atomic.Int64
	mu    sync.Mutex
	byLen map[int]int
}

// NewCounting wraps inner.
func NewCounting[T submodular.Scalar](inner submodular.Evaluable[T]) *Counting[T] {
	return &Counting[T]{Inner: inner, byLen: make(map[int]int)}
}

// Evaluate implements submodular.Evaluable.
func (c *Counting[T]) Evaluate(S submodular.Collection[T]) (T, error) {
	c.calls.Add(1)
	c.mu.Lock()
	c.byLen[S.Len()]++
	c.mu.Unlock()
	return c.Inner.Evaluate(S)
}

// Calls returns the total number of evaluations.
func (c *Counting[T]) Calls() int {
	return int(c.calls.Load())
}

// CallsWithLen returns the number of evaluations of sets with n rows.
func (c *Counting[T]) CallsWithLen(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byLen[n]
}

// Failing wraps an evaluator and returns Err for every set FailIf selects.
type Failing[T submodular.Scalar] struct {
	Inner  submodular.Evaluable[T]
	FailIf func(S submodular.Collection[T]) bool
	Err    error
}

// Evaluate implements submodular.Evaluable.
func (f *Failing[T]) Evaluate(S submodular.Collection[T]) (T, error) {
	if f.FailIf != nil && f.FailIf(S) {
		var zero T
		return zero, f.Err
	}
	return f.Inner.Evaluate(S)
}

// Tracking wraps an evaluator, holds every call for Delay and records the
// peak number of concurrent calls.
type Tracking[T submodular.Scalar] struct {
	Inner submodular.Evaluable[T]
	Delay time.Duration

	inFlight atomic.Int64
	peak     atomic.Int64
}

// Evaluate implements submodular.Evaluable.
func (t *Tracking[T]) Evaluate(S submodular.Collection[T]) (T, error) {
	cur := t.inFlight.Add(1)
	defer t.inFlight.Add(-1)

	for {
		p := t.peak.Load()
		if cur <= p || t.peak.CompareAndSwap(p, cur) {
			break
		}
	}

	if t.Delay > 0 {
		time.Sleep(t.Delay)
	}
	return t.Inner.Evaluate(S)
}

// Peak returns the highest number of concurrent calls observed.
func (t *Tracking[T]) Peak() int {
	return int(t.peak.Load())
}
