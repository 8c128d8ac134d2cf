package plango

import (
	"fmt"

	"github.com/hupe1980/plango/neighbor"
	"github.com/hupe1980/plango/neighbor/linear"
)

// Options contains configuration options for the SPARS planner.
type Options struct {
	// StretchFactor bounds roadmap path quality: any detour the sparse
	// graph forces between two nearby regions stays within this
	// multiplicative factor of the recorded interface span. Must be
	// greater than 1.
	StretchFactor float64

	// SparseDelta is the guard visibility radius. A sample within this
	// distance of a guard, with an unobstructed motion to it, counts as
	// covered by that guard.
	SparseDelta float64

	// DenseDelta is the interface support radius: the scale at which
	// close representatives are probed and at which stale interface
	// evidence is scrubbed when a guard is added. Zero derives
	// SparseDelta * 0.1.
	DenseDelta float64

	// MaxFailures is the failure budget. A solve run stops growing the
	// roadmap after this many consecutive rejected samples.
	MaxFailures int

	// NearSamplePoints is the number of probes cast around an admitted
	// candidate when searching for nearby representatives. Zero derives
	// twice the space dimension.
	NearSamplePoints int

	// SampleAttempts bounds the draws per valid sample.
	SampleAttempts int

	// NewIndex builds the proximity structure backing the roadmap's
	// neighborhood queries.
	NewIndex neighbor.Factory

	// Simplifier post-processes solution paths and spliced repair paths.
	// Nil keeps paths as extracted.
	Simplifier Simplifier

	// Logger receives structured planner events. Nil discards them.
	Logger *Logger

	// Metrics receives operational metrics. Nil discards them.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration options for the
// SPARS planner.
var DefaultOptions = Options{
	StretchFactor:  3.0,
	SparseDelta:    1.0,
	MaxFailures:    5000,
	SampleAttempts: 100,
	NewIndex:       linear.New,
	Simplifier:     &VertexReducer{},
}

func (o *Options) validate() error {
	if o.StretchFactor <= 1 {
		return &ErrInvalidOption{Option: "StretchFactor", Reason: fmt.Sprintf("must be greater than 1, got %v", o.StretchFactor)}
	}
	if o.SparseDelta <= 0 {
		return &ErrInvalidOption{Option: "SparseDelta", Reason: fmt.Sprintf("must be positive, got %v", o.SparseDelta)}
	}
	if o.DenseDelta <= 0 || o.DenseDelta >= o.SparseDelta {
		return &ErrInvalidOption{Option: "DenseDelta", Reason: fmt.Sprintf("must be in (0, SparseDelta), got %v", o.DenseDelta)}
	}
	if o.MaxFailures < 0 {
		return &ErrInvalidOption{Option: "MaxFailures", Reason: "must not be negative"}
	}
	if o.NearSamplePoints < 0 {
		return &ErrInvalidOption{Option: "NearSamplePoints", Reason: "must not be negative"}
	}
	if o.SampleAttempts < 1 {
		return &ErrInvalidOption{Option: "SampleAttempts", Reason: "must be positive"}
	}
	if o.NewIndex == nil {
		return &ErrInvalidOption{Option: "NewIndex", Reason: "must not be nil"}
	}
	return nil
}
