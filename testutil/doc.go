// Package testutil provides testing utilities for submodular.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random ground sets and reference
// evaluators with observable behavior.
//
// # Random Ground Sets
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 16)   // uniform [0, 1)
//	S := rng.Collection(10, 16)            // submodular.Collection[float64]
//
// # Reference Evaluators
//
//	sum := testutil.Sum[float64]()               // f(S) = sum of all entries
//	counting := testutil.NewCounting(sum)        // counts calls per set size
//	tracking := &testutil.Tracking[float64]{     // records peak concurrency
//	    Inner: sum,
//	    Delay: time.Millisecond,
//	}
package testutil
