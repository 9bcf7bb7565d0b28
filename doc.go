// Package submodular provides the evaluation core for submodular set functions.
//
// A submodular function maps a set of vectors S to a non-negative utility f(S)
// with diminishing marginal returns. Optimizers (greedy, lazy greedy, stochastic
// greedy) spend nearly all their time asking for marginal gains
// Δf(e|S) = f(S ∪ {e}) - f(S) over large candidate pools. This package fixes
// that hot path once so every concrete function only has to implement Evaluate.
//
// # Quick Start
//
//	sum := submodular.EvaluatorFunc[float64](func(S submodular.Collection[float64]) (float64, error) {
//	    var total float64
//	    for _, row := range S.Rows() {
//	        for _, v := range row {
//	            total += v
//	        }
//	    }
//	    return total, nil
//	})
//
//	fn, _ := submodular.New[float64](sum, submodular.WithWorkerCount(8))
//
//	S, _ := submodular.FromRows([][]float64{{1, 0}, {0, 1}})
//	gain, _ := fn.MarginalGain(S, []float64{1, 1}) // 2
//
// # Operations
//
//	fn.Evaluate(S)                        // f(S)
//	fn.MarginalGain(S, e)                 // Δf(e|S)
//	fn.EvaluateBatch(multi)               // f(S_1), ..., f(S_n), in parallel
//	fn.MarginalGainMulti(multi, e)        // Δf(e|S_1), ..., Δf(e|S_n)
//	fn.MarginalGainCandidates(S, elems)   // Δf(e_1|S), ..., Δf(e_m|S)
//
// MarginalGainCandidates is the greedy hot path: S is evaluated once, and the
// m augmented sets are evaluated as one parallel batch.
//
// # Overriding Defaults
//
// The derived operations are correctness fallbacks. An evaluator with a
// closed-form marginal gain or a native batch kernel implements MarginalGainer,
// BatchEvaluator, MultiMarginalGainer or CandidateMarginalGainer and the
// Function dispatches to it. Dimension checks still run first. A native
// batch takes one controller slot and its values pass the strict utility check.
//
// # Concurrency
//
// Batch operations fan out to at most WorkerCount concurrent Evaluate calls
// and join before returning; results always follow input order. Everything
// else runs on the caller's goroutine. Evaluators with mutable state (e.g. a
// memoization cache) must synchronize it themselves. A resource.Controller
// shared through WithController bounds evaluations across many Functions.
//
// # Errors
//
// Width mismatches fail with *ErrDimensionMismatch, evaluator failures are
// wrapped in *ErrEvaluation (the cause stays reachable through errors.Is and
// errors.As). KindOf classifies any returned error. A failure aborts the whole
// batch; there are no partial results and no retries.
package submodular
