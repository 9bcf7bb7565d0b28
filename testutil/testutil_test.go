package testutil

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/submodular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.LessOrEqual(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestUniformVectors32(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors32(4, 16)

	assert.Equal(t, 4, len(v))
	assert.Equal(t, 16, len(v[3]))
}

func TestClusteredVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.ClusteredVectors(100, 32, 5, 0.1)

	assert.Equal(t, 100, len(v))
	assert.Equal(t, 32, len(v[0]))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10)

	rng.Reset()
	v2 := rng.UniformVectors(1, 10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestCollections(t *testing.T) {
	rng := NewRNG(1)

	cs := rng.Collections(20, 2, 5, 3)
	require.Len(t, cs, 20)
	for _, c := range cs {
		assert.Equal(t, 3, c.Dim())
		assert.GreaterOrEqual(t, c.Len(), 2)
		assert.LessOrEqual(t, c.Len(), 5)
	}
}

func TestSum(t *testing.T) {
	S := MustCollection([][]float64{{1, 2}, {3, 4}})

	v, err := Sum[float64]().Evaluate(S)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	empty, err := submodular.NewCollection[float32](2)
	require.NoError(t, err)
	v32, err := Sum[float32]().Evaluate(empty)
	require.NoError(t, err)
	assert.Equal(t, float32(0), v32)
}

func TestCounting(t *testing.T) {
	c := NewCounting[float64](Sum[float64]())

	_, _ = c.Evaluate(MustCollection([][]float64{{1}}))
	_, _ = c.Evaluate(MustCollection([][]float64{{1}, {2}}))
	_, _ = c.Evaluate(MustCollection([][]float64{{3}, {4}}))

	assert.Equal(t, 3, c.Calls())
	assert.Equal(t, 1, c.CallsWithLen(1))
	assert.Equal(t, 2, c.CallsWithLen(2))
	assert.Equal(t, 0, c.CallsWithLen(3))
}

func TestFailing(t *testing.T) {
	boom := errors.New("boom")
	f := &Failing[float64]{
		Inner:  Sum[float64](),
		FailIf: func(S submodular.Collection[float64]) bool { return S.Len() > 1 },
		Err:    boom,
	}

	v, err := f.Evaluate(MustCollection([][]float64{{2}}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = f.Evaluate(MustCollection([][]float64{{2}, {3}}))
	assert.ErrorIs(t, err, boom)
}

func TestTracking(t *testing.T) {
	tr := &Tracking[float64]{Inner: Sum[float64](), Delay: 5 * time.Millisecond}
	S := MustCollection([][]float64{{1}})

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tr.Evaluate(S)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, tr.Peak(), 1)
	assert.LessOrEqual(t, tr.Peak(), 3)
}
