package space

import (
	"errors"
	"fmt"
)

// State is an opaque configuration handle. States are allocated, cloned and
// freed by the Space that produced them; a holder owns exactly the clones it
// made and must release them through the same Space.
type State any

// Space is the configuration-space port. Implementations must be safe for
// concurrent use: the planner samples and checks validity outside its lock.
type Space interface {
	// Dimension returns the number of coordinates of a configuration.
	Dimension() int

	// SampleUniform returns a new uniformly random state owned by the caller.
	// Validity is not guaranteed.
	SampleUniform() State

	// SampleUniformNear returns a new random state near the given one, with
	// every coordinate within radius of it. The caller owns the result.
	SampleUniformNear(near State, radius float64) State

	// IsValid reports whether the state lies in the valid subset.
	IsValid(s State) bool

	// Distance returns the metric distance between two states.
	Distance(a, b State) float64

	// Clone returns a new state with the same values, owned by the caller.
	Clone(s State) State

	// Free releases a state. Freeing nil is a no-op; freeing a state twice
	// or freeing a state of a foreign space is a programming error.
	Free(s State)

	// CheckMotion reports whether the straight local motion from a to b
	// stays inside the valid subset.
	CheckMotion(a, b State) bool
}

var (
	// ErrSamplingExhausted is returned when no valid state was found within
	// the attempt budget.
	ErrSamplingExhausted = errors.New("sampling exhausted")

	// ErrInvalidBounds is returned for degenerate or mismatched bounds.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// ErrDimensionMismatch indicates a configuration with the wrong number of
// coordinates.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ValidSampler draws valid states from a Space with a bounded number of
// attempts per call.
type ValidSampler struct {
	sp       Space
	attempts int
}

// NewValidSampler creates a sampler that gives up after attempts tries.
func NewValidSampler(sp Space, attempts int) *ValidSampler {
	if attempts < 1 {
		attempts = 1
	}
	return &ValidSampler{sp: sp, attempts: attempts}
}

// Sample returns a newly allocated valid state, or ErrSamplingExhausted when
// the attempt budget runs out.
func (vs *ValidSampler) Sample() (State, error) {
	for i := 0; i < vs.attempts; i++ {
		s := vs.sp.SampleUniform()
		if vs.sp.IsValid(s) {
			return s, nil
		}
		vs.sp.Free(s)
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrSamplingExhausted, vs.attempts)
}
