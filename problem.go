package plango

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hupe1980/plango/space"
)

// ProblemDefinition describes one planning query: the start states, the
// goal states, and the solution once one is found.
//
// The definition takes ownership of every state handed to AddStart and
// AddGoal and of the solution path; Clear releases them. It is safe for
// concurrent use.
type ProblemDefinition struct {
	id       string
	sp       space.Space
	mu       sync.Mutex
	starts   []space.State
	goals    []space.State
	solution *Path
}

// NewProblemDefinition creates an empty problem definition over the
// given space.
func NewProblemDefinition(sp space.Space) *ProblemDefinition {
	return &ProblemDefinition{
		id: uuid.NewString(),
		sp: sp,
	}
}

// ID returns the unique identifier of the problem definition.
func (pd *ProblemDefinition) ID() string {
	return pd.id
}

// AddStart adds a start state. The definition takes ownership of st.
func (pd *ProblemDefinition) AddStart(st space.State) {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	pd.starts = append(pd.starts, st)
}

// AddGoal adds a goal state. The definition takes ownership of st.
func (pd *ProblemDefinition) AddGoal(st space.State) {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	pd.goals = append(pd.goals, st)
}

// Starts returns the start states. The definition retains ownership;
// callers must not free them.
func (pd *ProblemDefinition) Starts() []space.State {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	out := make([]space.State, len(pd.starts))
	copy(out, pd.starts)

	return out
}

// Goals returns the goal states. The definition retains ownership;
// callers must not free them.
func (pd *ProblemDefinition) Goals() []space.State {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	out := make([]space.State, len(pd.goals))
	copy(out, pd.goals)

	return out
}

// Solution returns the current solution path, or nil if none has been
// found. The definition retains ownership.
func (pd *ProblemDefinition) Solution() *Path {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	return pd.solution
}

// SetSolution stores p as the solution, freeing any previous one. The
// definition takes ownership of p.
func (pd *ProblemDefinition) SetSolution(p *Path) {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	if pd.solution != nil && pd.solution != p {
		pd.solution.Free()
	}
	pd.solution = p
}

// ClearSolution discards the current solution, if any.
func (pd *ProblemDefinition) ClearSolution() {
	pd.SetSolution(nil)
}

// Clear releases all start states, goal states and the solution. The
// definition can be reused afterwards.
func (pd *ProblemDefinition) Clear() {
	pd.mu.Lock()
	defer pd.mu.Unlock()

	for _, st := range pd.starts {
		pd.sp.Free(st)
	}
	pd.starts = nil

	for _, st := range pd.goals {
		pd.sp.Free(st)
	}
	pd.goals = nil

	if pd.solution != nil {
		pd.solution.Free()
		pd.solution = nil
	}
}
