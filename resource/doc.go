// Package resource implements a Controller for process-wide evaluation limits.
//
// A Controller may be shared by any number of submodular Functions. It governs
// two resources:
//
//   - Concurrency: an upper bound on evaluations in flight across all Functions
//     using the controller (weighted semaphore).
//   - Throughput: a token-bucket limit on evaluations per second, for evaluators
//     backed by a remote service or an accelerator queue.
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentEvaluations: 8,
//	    EvaluationsPerSecond:     500,
//	})
//
//	fa, _ := submodular.New(coverage, submodular.WithController(rc))
//	fb, _ := submodular.New(diversity, submodular.WithController(rc))
//
// A per-Function worker count still bounds each batch; the controller bounds
// the sum over all batches.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: they become no-ops.
package resource
