package submodular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constDetector(n int) func() int {
	return func() int { return n }
}

func TestResolveWorkerCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		detect   func() int
		expected int
	}{
		{"Explicit", 5, constDetector(4), 5},
		{"One", 1, constDetector(4), 1},
		{"Zero", 0, constDetector(4), 4},
		{"Negative", -1, constDetector(4), 4},
		{"DetectZero", 0, constDetector(0), 1},
		{"DetectNegative", -3, constDetector(-2), 1},
		{"NilDetector", 0, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveWorkerCount(tt.n, tt.detect))
		})
	}
}

func TestSetWorkerCount(t *testing.T) {
	sum := EvaluatorFunc[float64](func(Collection[float64]) (float64, error) { return 0, nil })

	f, err := New[float64](sum, WithConcurrencyDetector(constDetector(4)))
	require.NoError(t, err)
	assert.Equal(t, 4, f.WorkerCount())

	f.SetWorkerCount(5)
	assert.Equal(t, 5, f.WorkerCount())

	f.SetWorkerCount(0)
	assert.Equal(t, 4, f.WorkerCount())

	f.SetWorkerCount(-1)
	assert.Equal(t, 4, f.WorkerCount())
}

func TestNew_WorkerCount(t *testing.T) {
	sum := EvaluatorFunc[float64](func(Collection[float64]) (float64, error) { return 0, nil })

	f, err := New[float64](sum, WithWorkerCount(3), WithConcurrencyDetector(constDetector(16)))
	require.NoError(t, err)
	assert.Equal(t, 3, f.WorkerCount())

	f, err = New[float64](sum, WithWorkerCount(-7), WithConcurrencyDetector(constDetector(16)))
	require.NoError(t, err)
	assert.Equal(t, 16, f.WorkerCount())
}

func TestDetectConcurrency(t *testing.T) {
	// Machine dependent; only the lower bound is stable.
	assert.GreaterOrEqual(t, DetectConcurrency(), 1)

	sum := EvaluatorFunc[float64](func(Collection[float64]) (float64, error) { return 0, nil })
	f, err := New[float64](sum, WithConcurrencyDetector(nil))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f.WorkerCount(), 1)
}
