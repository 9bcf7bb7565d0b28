package submodular

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// DetectConcurrency returns the number of logical cores of the machine.
// It reports cpuid's logical core count and falls back to runtime.NumCPU
// when the processor does not expose it.
func DetectConcurrency() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// resolveWorkerCount maps a requested worker count to an effective one.
// n >= 1 is kept; anything else resolves to detect(), or 1 if that reports nothing.
func resolveWorkerCount(n int, detect func() int) int {
	if n >= 1 {
		return n
	}
	if detect != nil {
		if d := detect(); d > 0 {
			return d
		}
	}
	return 1
}

// WorkerCount returns the current upper bound on concurrent evaluations
// during batch operations.
func (f *Function[T]) WorkerCount() int {
	return int(f.workers.Load())
}

// SetWorkerCount updates the worker count. Values below 1 select the
// detected hardware concurrency. The change applies to batch operations
// started afterwards; batches already in flight are unaffected.
func (f *Function[T]) SetWorkerCount(n int) {
	resolved := resolveWorkerCount(n, f.detect)
	f.workers.Store(int64(resolved))
	f.logger.LogWorkerCount(n, resolved)
}
