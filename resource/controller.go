package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds evaluation limits.
type Config struct {
	// MaxConcurrentEvaluations is the maximum number of evaluations in flight.
	// If 0, concurrency is only tracked.
	MaxConcurrentEvaluations int64

	// EvaluationsPerSecond is the sustained evaluation rate.
	// If 0, unlimited.
	EvaluationsPerSecond float64

	// Burst is the token bucket size for EvaluationsPerSecond.
	// If 0, defaults to max(1, EvaluationsPerSecond).
	Burst int
}

// Controller manages evaluation resources shared across functions.
type Controller struct {
	cfg Config

	evalSem   *semaphore.Weighted // nil if unlimited
	inFlight  atomic.Int64
	completed atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentEvaluations > 0 {
		c.evalSem = semaphore.NewWeighted(cfg.MaxConcurrentEvaluations)
	}

	if cfg.EvaluationsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = max(1, int(cfg.EvaluationsPerSecond))
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.EvaluationsPerSecond), burst)
	}

	return c
}

// Config returns the configuration the controller was created with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireEvaluation reserves an evaluation slot, waiting for both the
// concurrency limit and the rate limit. It blocks until a slot is available
// or ctx is canceled.
func (c *Controller) AcquireEvaluation(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.evalSem != nil {
		if err := c.evalSem.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquireEvaluation attempts to reserve an evaluation slot without blocking.
func (c *Controller) TryAcquireEvaluation() bool {
	if c == nil {
		return true
	}

	if c.limiter != nil && !c.limiter.Allow() {
		return false
	}

	if c.evalSem != nil && !c.evalSem.TryAcquire(1) {
		return false
	}

	c.inFlight.Add(1)
	return true
}

// ReleaseEvaluation releases a slot reserved by AcquireEvaluation or TryAcquireEvaluation.
func (c *Controller) ReleaseEvaluation() {
	if c == nil {
		return
	}
	if c.evalSem != nil {
		c.evalSem.Release(1)
	}
	c.inFlight.Add(-1)
	c.completed.Add(1)
}

// InFlight returns the number of evaluations currently holding a slot.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// Completed returns the number of released slots since creation.
func (c *Controller) Completed() int64 {
	if c == nil {
		return 0
	}
	return c.completed.Load()
}
