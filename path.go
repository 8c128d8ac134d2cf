package plango

import (
	"github.com/hupe1980/plango/space"
)

// Path is a sequence of states in a space, interpreted as straight
// motions between consecutive states.
//
// A path owns its states: constructors clone their inputs and Free
// releases them. Paths are not safe for concurrent use.
type Path struct {
	sp     space.Space
	states []space.State
}

// NewPath creates a path over the given states. The states are cloned;
// the caller keeps ownership of its inputs.
func NewPath(sp space.Space, states ...space.State) *Path {
	cloned := make([]space.State, len(states))
	for i, st := range states {
		cloned[i] = sp.Clone(st)
	}

	return &Path{sp: sp, states: cloned}
}

// Len returns the number of states on the path.
func (p *Path) Len() int {
	return len(p.states)
}

// State returns the i-th state. The path retains ownership.
func (p *Path) State(i int) space.State {
	return p.states[i]
}

// States returns the states in order. The path retains ownership of the
// states; the returned slice is the caller's.
func (p *Path) States() []space.State {
	out := make([]space.State, len(p.states))
	copy(out, p.states)

	return out
}

// Cost returns the summed length of the path's motions. An empty or
// single-state path has cost zero.
func (p *Path) Cost() float64 {
	var cost float64
	for i := 1; i < len(p.states); i++ {
		cost += p.sp.Distance(p.states[i-1], p.states[i])
	}

	return cost
}

// Valid reports whether every state is valid and every motion between
// consecutive states is collision free. An empty path is invalid.
func (p *Path) Valid() bool {
	if len(p.states) == 0 {
		return false
	}
	if len(p.states) == 1 {
		return p.sp.IsValid(p.states[0])
	}

	for i := 1; i < len(p.states); i++ {
		if !p.sp.CheckMotion(p.states[i-1], p.states[i]) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	return NewPath(p.sp, p.states...)
}

// Free releases all states held by the path. The path must not be used
// afterwards.
func (p *Path) Free() {
	for _, st := range p.states {
		p.sp.Free(st)
	}
	p.states = nil
}

// RemoveBetween drops and frees the states strictly between indices i
// and j, keeping both endpoints. Order of i and j does not matter; the
// call is a no-op when fewer than one state lies between them.
func (p *Path) RemoveBetween(i, j int) {
	if j < i {
		i, j = j, i
	}
	if j-i < 2 {
		return
	}

	for k := i + 1; k < j; k++ {
		p.sp.Free(p.states[k])
	}
	p.states = append(p.states[:i+1], p.states[j:]...)
}
