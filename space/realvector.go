package space

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
)

// Compile-time check to ensure RealVector satisfies the Space interface.
var _ Space = (*RealVector)(nil)

// Bounds are axis-aligned limits of a real-vector space.
type Bounds struct {
	Low  []float64
	High []float64
}

// NewBounds returns uniform bounds [low, high] in every of the dim axes.
func NewBounds(dim int, low, high float64) Bounds {
	b := Bounds{
		Low:  make([]float64, dim),
		High: make([]float64, dim),
	}
	for i := 0; i < dim; i++ {
		b.Low[i] = low
		b.High[i] = high
	}
	return b
}

// Dimension returns the number of axes.
func (b Bounds) Dimension() int { return len(b.Low) }

// Contains reports whether q lies inside the bounds.
func (b Bounds) Contains(q []float64) bool {
	for i, v := range q {
		if v < b.Low[i] || v > b.High[i] {
			return false
		}
	}
	return true
}

// Extent returns the diagonal length of the bounded box.
func (b Bounds) Extent() float64 {
	var sum float64
	for i := range b.Low {
		d := b.High[i] - b.Low[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (b Bounds) validate() error {
	if len(b.Low) == 0 || len(b.Low) != len(b.High) {
		return fmt.Errorf("%w: %d low values, %d high values", ErrInvalidBounds, len(b.Low), len(b.High))
	}
	for i := range b.Low {
		if b.Low[i] > b.High[i] {
			return fmt.Errorf("%w: low %v above high %v at axis %d", ErrInvalidBounds, b.Low[i], b.High[i], i)
		}
	}
	return nil
}

// RealVectorState is the configuration type of RealVector. Reading a freed
// state panics.
type RealVectorState struct {
	values []float64
	freed  bool
}

// Values returns the coordinate slice. Callers must not modify it.
func (s *RealVectorState) Values() []float64 { return s.values }

// At returns the i-th coordinate.
func (s *RealVectorState) At(i int) float64 { return s.values[i] }

// RealVectorOptions contains configuration options for a RealVector space.
type RealVectorOptions struct {
	// Checker reports whether an in-bounds configuration is valid. nil means
	// every in-bounds configuration is valid.
	Checker func(q []float64) bool

	// CheckResolution is the absolute step used to discretize motions in
	// CheckMotion. 0 derives it as 1% of the bounds diagonal.
	CheckResolution float64

	// Seed seeds the sampling RNG.
	Seed int64
}

// DefaultRealVectorOptions contains the default configuration options for a
// RealVector space.
var DefaultRealVectorOptions = RealVectorOptions{
	CheckResolution: 0,
	Seed:            1,
}

// RealVector is an n-dimensional box space with Euclidean metric. It keeps a
// live-state count so ownership bugs surface in tests.
type RealVector struct {
	bounds Bounds
	opts   RealVectorOptions
	res    float64

	mu   sync.Mutex
	rand *rand.Rand

	live atomic.Int64
}

// NewRealVector creates a real-vector space over the given bounds.
func NewRealVector(bounds Bounds, optFns ...func(o *RealVectorOptions)) (*RealVector, error) {
	if err := bounds.validate(); err != nil {
		return nil, err
	}

	opts := DefaultRealVectorOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	res := opts.CheckResolution
	if res <= 0 {
		res = bounds.Extent() * 0.01
	}

	return &RealVector{
		bounds: bounds,
		opts:   opts,
		res:    res,
		rand:   rand.New(rand.NewSource(opts.Seed)),
	}, nil
}

// Dimension returns the number of axes.
func (rv *RealVector) Dimension() int { return rv.bounds.Dimension() }

// Bounds returns the space limits.
func (rv *RealVector) Bounds() Bounds { return rv.bounds }

// NewState allocates a state with the given coordinates. The caller owns it.
func (rv *RealVector) NewState(values ...float64) (State, error) {
	if len(values) != rv.Dimension() {
		return nil, &ErrDimensionMismatch{Expected: rv.Dimension(), Actual: len(values)}
	}
	return rv.alloc(values), nil
}

// MustState is NewState that panics on a dimension mismatch.
func (rv *RealVector) MustState(values ...float64) State {
	s, err := rv.NewState(values...)
	if err != nil {
		panic(err)
	}
	return s
}

// SampleUniform returns a uniformly random in-bounds state.
func (rv *RealVector) SampleUniform() State {
	q := make([]float64, rv.Dimension())
	rv.mu.Lock()
	for i := range q {
		q[i] = rv.bounds.Low[i] + rv.rand.Float64()*(rv.bounds.High[i]-rv.bounds.Low[i])
	}
	rv.mu.Unlock()
	rv.live.Add(1)
	return &RealVectorState{values: q}
}

// SampleUniformNear returns a random state with every coordinate within
// radius of near, clamped to the bounds.
func (rv *RealVector) SampleUniformNear(near State, radius float64) State {
	c := rv.valuesOf(near)
	q := make([]float64, len(c))
	rv.mu.Lock()
	for i := range q {
		v := c[i] + (rv.rand.Float64()*2-1)*radius
		q[i] = math.Max(rv.bounds.Low[i], math.Min(rv.bounds.High[i], v))
	}
	rv.mu.Unlock()
	rv.live.Add(1)
	return &RealVectorState{values: q}
}

// IsValid reports whether s is in bounds and passes the validity checker.
func (rv *RealVector) IsValid(s State) bool {
	return rv.validValues(rv.valuesOf(s))
}

// Distance returns the Euclidean distance between a and b.
func (rv *RealVector) Distance(a, b State) float64 {
	return euclidean(rv.valuesOf(a), rv.valuesOf(b))
}

// Clone returns a caller-owned copy of s.
func (rv *RealVector) Clone(s State) State {
	return rv.alloc(rv.valuesOf(s))
}

// Free releases s. Freeing nil is a no-op; double frees panic.
func (rv *RealVector) Free(s State) {
	if s == nil {
		return
	}
	st, ok := s.(*RealVectorState)
	if !ok {
		panic(fmt.Sprintf("space: foreign state %T", s))
	}
	if st.freed {
		panic("space: state freed twice")
	}
	st.freed = true
	st.values = nil
	rv.live.Add(-1)
}

// CheckMotion walks the segment from a to b at the check resolution and
// reports whether every probed configuration is valid.
func (rv *RealVector) CheckMotion(a, b State) bool {
	av, bv := rv.valuesOf(a), rv.valuesOf(b)
	if !rv.validValues(av) || !rv.validValues(bv) {
		return false
	}
	steps := int(math.Ceil(euclidean(av, bv) / rv.res))
	q := make([]float64, len(av))
	for k := 1; k < steps; k++ {
		t := float64(k) / float64(steps)
		for i := range q {
			q[i] = av[i] + t*(bv[i]-av[i])
		}
		if !rv.validValues(q) {
			return false
		}
	}
	return true
}

// LiveStates returns the number of states allocated and not yet freed.
func (rv *RealVector) LiveStates() int64 { return rv.live.Load() }

func (rv *RealVector) alloc(values []float64) *RealVectorState {
	vals := make([]float64, len(values))
	copy(vals, values)
	rv.live.Add(1)
	return &RealVectorState{values: vals}
}

// valuesOf is the access barrier: foreign and freed states panic here.
func (rv *RealVector) valuesOf(s State) []float64 {
	st, ok := s.(*RealVectorState)
	if !ok {
		panic(fmt.Sprintf("space: foreign state %T", s))
	}
	if st.freed {
		panic("space: use of freed state")
	}
	return st.values
}

func (rv *RealVector) validValues(q []float64) bool {
	if !rv.bounds.Contains(q) {
		return false
	}
	return rv.opts.Checker == nil || rv.opts.Checker(q)
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
