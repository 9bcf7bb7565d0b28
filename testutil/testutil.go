package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/submodular"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// UniformVectors32 is UniformVectors for float32 data.
func (r *RNG) UniformVectors32(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors around random centroids in [0, 1)^dim.
// Useful for exercising evaluators on non-uniform ground sets.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)

	for i := range num {
		centroid := centroids[i%clusters]
		vec := data[i*dim : (i+1)*dim]

		for j := range dim {
			vec[j] = centroid[j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
	}

	return vectors
}

// Collection generates a collection of num uniform rows.
func (r *RNG) Collection(num, dim int) submodular.Collection[float64] {
	c, err := submodular.NewCollection(dim, r.UniformVectors(num, dim)...)
	if err != nil {
		panic(err)
	}
	return c
}

// Collections generates count independent collections with sizes in [minLen, maxLen].
func (r *RNG) Collections(count, minLen, maxLen, dim int) []submodular.Collection[float64] {
	out := make([]submodular.Collection[float64], count)
	for i := range out {
		out[i] = r.Collection(minLen+r.Intn(maxLen-minLen+1), dim)
	}
	return out
}

// MustCollection builds a collection from rows and panics on error.
func MustCollection[T submodular.Scalar](rows [][]T) submodular.Collection[T] {
	c, err := submodular.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return c
}
