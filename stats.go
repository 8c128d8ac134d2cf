package plango

import (
	"github.com/hupe1980/plango/roadmap"
	"github.com/hupe1980/plango/space"
)

// Stats is a snapshot of the planner's lifetime counters and the
// current roadmap size.
type Stats struct {
	Milestones      int
	Edges           int
	Components      int
	GuardsByType    map[roadmap.GuardType]int
	TotalIterations int
	TotalSolves     int
}

// Stats returns current planner statistics.
func (s *SPARS) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{GuardsByType: make(map[roadmap.GuardType]int)}
	st.TotalIterations = s.totalIterations
	st.TotalSolves = s.totalSolves

	if s.g == nil {
		return st
	}

	st.Milestones = s.g.MilestoneCount()
	st.Edges = s.g.EdgeCount()
	st.Components = s.g.ComponentCount()
	for kind := roadmap.GuardStart; kind <= roadmap.GuardQuality; kind++ {
		if n := s.g.KindCount(kind); n > 0 {
			st.GuardsByType[kind] = n
		}
	}

	return st
}

// GuardSnapshot describes one guard in a roadmap snapshot.
type GuardSnapshot struct {
	ID     roadmap.ID
	Kind   roadmap.GuardType
	Degree int
}

// RoadmapSnapshot is a structural export of the roadmap: every guard
// with its kind and degree, every edge, and the component count. States
// are not included; use CloneGuardState for those.
type RoadmapSnapshot struct {
	Guards     []GuardSnapshot
	Edges      []roadmap.Edge
	Components int
}

// Snapshot exports the current roadmap structure.
func (s *SPARS) Snapshot() RoadmapSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap RoadmapSnapshot
	if s.g == nil {
		return snap
	}

	n := s.g.MilestoneCount()
	snap.Guards = make([]GuardSnapshot, 0, n)
	for id := roadmap.ID(0); id < roadmap.ID(n); id++ {
		snap.Guards = append(snap.Guards, GuardSnapshot{
			ID:     id,
			Kind:   s.g.KindOf(id),
			Degree: s.g.Degree(id),
		})
	}
	snap.Edges = s.g.Edges()
	snap.Components = s.g.ComponentCount()

	return snap
}

// CloneGuardState returns a copy of the given guard's state. The caller
// owns the clone and must free it. Reports false when the guard does
// not exist.
func (s *SPARS) CloneGuardState(id roadmap.ID) (space.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.g == nil || int(id) >= s.g.MilestoneCount() {
		return nil, false
	}

	return s.sp.Clone(s.g.StateOf(id)), true
}
