package plango

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/plango/roadmap"
	"github.com/hupe1980/plango/space"
)

// Status describes the outcome of a solve run.
type Status int

const (
	// StatusUnknown means the run failed before planning started.
	StatusUnknown Status = iota
	// StatusTimeout means the run stopped without finding a solution,
	// either on the termination condition or on the failure budget.
	StatusTimeout
	// StatusExactSolution means a path from a start to a goal was found.
	StatusExactSolution
)

// String returns a human readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusTimeout:
		return "timeout"
	case StatusExactSolution:
		return "exact solution"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// SPARS is a sparse roadmap spanner planner. It grows a compact roadmap
// of guards whose solution paths stay within a configured stretch
// factor of what a dense roadmap would offer, and it knows when to stop:
// a long streak of rejected samples is evidence that further sampling
// will not improve the roadmap.
//
// The roadmap persists across queries. All methods are safe for
// concurrent use.
type SPARS struct {
	sp   space.Space
	opts Options

	mu      sync.Mutex
	g       *roadmap.Graph
	sampler *space.ValidSampler
	pdef    *ProblemDefinition

	startIDs []roadmap.ID
	goalIDs  []roadmap.ID

	nearSamplePoints int
	setup            bool

	totalIterations int
	totalSolves     int
}

// NewSPARS creates a new SPARS planner over the given space.
func NewSPARS(sp space.Space, optFns ...func(o *Options)) (*SPARS, error) {
	if sp == nil {
		return nil, errors.New("plango: space must not be nil")
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.DenseDelta == 0 {
		opts.DenseDelta = opts.SparseDelta * 0.1
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = &NoopMetricsCollector{}
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &SPARS{sp: sp, opts: opts}, nil
}

// Setup prepares the planner's internal structures. It is called
// automatically by Solve; calling it again is a no-op.
func (s *SPARS) Setup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setupLocked()
}

func (s *SPARS) setupLocked() {
	if s.setup {
		return
	}

	s.nearSamplePoints = s.opts.NearSamplePoints
	if s.nearSamplePoints == 0 {
		s.nearSamplePoints = 2 * s.sp.Dimension()
	}

	s.g = roadmap.New(s.sp, s.opts.DenseDelta, s.opts.NewIndex)
	s.sampler = space.NewValidSampler(s.sp, s.opts.SampleAttempts)
	s.setup = true
}

// SetProblemDefinition sets the problem to solve and resets the current
// query. The roadmap built so far is kept.
func (s *SPARS) SetProblemDefinition(pd *ProblemDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pdef = pd
	s.clearQueryLocked()
}

// ProblemDefinition returns the current problem definition, or nil.
func (s *SPARS) ProblemDefinition() *ProblemDefinition {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pdef
}

// ClearQuery drops the current query's start and goal bindings and the
// problem's solution, keeping the roadmap. The next Solve re-ingests
// the start and goal states and plans again on the existing roadmap.
func (s *SPARS) ClearQuery() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearQueryLocked()
	if s.pdef != nil {
		s.pdef.ClearSolution()
	}
}

func (s *SPARS) clearQueryLocked() {
	s.startIDs = nil
	s.goalIDs = nil
}

// Clear discards the entire roadmap and all lifetime counters. The
// problem definition is kept; the planner can be reused.
func (s *SPARS) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.g != nil {
		s.g.Clear()
	}
	s.clearQueryLocked()
	s.totalIterations = 0
	s.totalSolves = 0
}

// Space returns the space the planner operates on.
func (s *SPARS) Space() space.Space {
	return s.sp
}

// MilestoneCount returns the number of guards in the roadmap.
func (s *SPARS) MilestoneCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.g == nil {
		return 0
	}
	return s.g.MilestoneCount()
}

// EdgeCount returns the number of edges in the roadmap.
func (s *SPARS) EdgeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.g == nil {
		return 0
	}
	return s.g.EdgeCount()
}

// Solution returns the current problem's solution path, or nil.
func (s *SPARS) Solution() *Path {
	s.mu.Lock()
	pd := s.pdef
	s.mu.Unlock()

	if pd == nil {
		return nil
	}
	return pd.Solution()
}
