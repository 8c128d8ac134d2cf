package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/plango/space"
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

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoint generates one random point with values in [minVal, maxVal).
func (r *RNG) UniformPoint(dim int, minVal, maxVal float64) []float64 {
	q := make([]float64, dim)
	r.FillUniformRange(q, minVal, maxVal)
	return q
}

// UniformPoints generates random points with values in [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dim int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := 0; i < num; i++ {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points grouped around evenly spread centroids.
// Useful for exercising proximity structures on non-uniform data.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UniformPoints(clusters, dim, 0, 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := 0; i < num; i++ {
		c := centroids[i%clusters]
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = c[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// Box2D builds a two-dimensional square space over [lo, hi]^2 with the
// given validity checker. A nil checker leaves the whole box free.
func Box2D(lo, hi float64, valid func(x, y float64) bool, seed int64) *space.RealVector {
	sp, err := space.NewRealVector(space.NewBounds(2, lo, hi), func(o *space.RealVectorOptions) {
		o.Seed = seed
		if valid != nil {
			o.Checker = func(q []float64) bool { return valid(q[0], q[1]) }
		}
	})
	if err != nil {
		panic(fmt.Sprintf("testutil: box space: %v", err))
	}

	return sp
}
