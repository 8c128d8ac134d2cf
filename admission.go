package plango

import (
	"context"

	"github.com/hupe1980/plango/roadmap"
	"github.com/hupe1980/plango/space"
)

// evaluateSampleLocked runs the four admission criteria on qNew in order
// and reports whether the roadmap was mutated. Coverage is checked
// first, then connectivity, then interfaces, then path quality; the
// first criterion that admits wins. The caller retains ownership of
// qNew.
func (s *SPARS) evaluateSampleLocked(ctx context.Context, qNew space.State) bool {
	graphNbh, visibleNbh := s.findGraphNeighborsLocked(qNew)

	if s.checkAddCoverage(ctx, qNew, visibleNbh) {
		return true
	}
	if s.checkAddConnectivity(ctx, qNew, visibleNbh) {
		return true
	}
	if s.checkAddInterface(ctx, qNew, graphNbh, visibleNbh) {
		return true
	}
	return s.checkAddQuality(ctx, qNew, visibleNbh)
}

// findGraphNeighborsLocked returns the guards within SparseDelta of q,
// closest first, and the subset reachable from q by a valid motion.
func (s *SPARS) findGraphNeighborsLocked(q space.State) (graph, visible []roadmap.ID) {
	graph = s.g.NearestR(q, s.opts.SparseDelta)
	for _, v := range graph {
		if s.sp.CheckMotion(q, s.g.StateOf(v)) {
			visible = append(visible, v)
		}
	}

	return graph, visible
}

func (s *SPARS) addGuardLocked(ctx context.Context, st space.State, kind roadmap.GuardType) roadmap.ID {
	id := s.g.AddGuard(st, kind)
	s.opts.Metrics.RecordGuard(kind)
	s.opts.Logger.LogGuardAdded(ctx, id, kind, s.g.MilestoneCount())

	return id
}

func (s *SPARS) connectLocked(a, b roadmap.ID) bool {
	if !s.g.Connect(a, b) {
		return false
	}
	s.opts.Metrics.RecordEdge()

	return true
}

// checkAddCoverage admits qNew when no guard covers it.
func (s *SPARS) checkAddCoverage(ctx context.Context, qNew space.State, visible []roadmap.ID) bool {
	if len(visible) > 0 {
		return false
	}

	s.addGuardLocked(ctx, s.sp.Clone(qNew), roadmap.GuardCoverage)

	return true
}

// checkAddConnectivity admits qNew when it sees guards from two or more
// disconnected components, linking the closest visible guard of each.
func (s *SPARS) checkAddConnectivity(ctx context.Context, qNew space.State, visible []roadmap.ID) bool {
	if len(visible) < 2 {
		return false
	}

	var reps []roadmap.ID
	for _, v := range visible {
		seen := false
		for _, r := range reps {
			if s.g.SameComponent(v, r) {
				seen = true
				break
			}
		}
		if !seen {
			reps = append(reps, v)
		}
	}
	if len(reps) < 2 {
		return false
	}

	id := s.addGuardLocked(ctx, s.sp.Clone(qNew), roadmap.GuardConnectivity)
	for _, r := range reps {
		s.connectLocked(id, r)
	}

	return true
}

// checkAddInterface acts when qNew lies on the interface between its two
// closest guards: both are visible, both are the two nearest overall,
// and they are not yet adjacent. The guards are linked directly when the
// motion between them is valid; otherwise qNew itself is admitted to
// bridge them.
func (s *SPARS) checkAddInterface(ctx context.Context, qNew space.State, graph, visible []roadmap.ID) bool {
	if len(graph) < 2 || len(visible) < 2 {
		return false
	}
	if graph[0] != visible[0] || graph[1] != visible[1] {
		return false
	}

	v0, v1 := visible[0], visible[1]
	if s.g.Adjacent(v0, v1) {
		return false
	}

	if s.sp.CheckMotion(s.g.StateOf(v0), s.g.StateOf(v1)) {
		s.connectLocked(v0, v1)
		s.opts.Logger.LogInterfaceBridge(ctx, v0, v1)
		return true
	}

	id := s.addGuardLocked(ctx, s.sp.Clone(qNew), roadmap.GuardInterface)
	s.connectLocked(id, v0)
	s.connectLocked(id, v1)
	s.opts.Logger.LogInterfaceBridge(ctx, v0, v1)

	return true
}

// closeRep pairs a nearby representative guard with the probe it was
// discovered through. The probe is owned by the collector and freed by
// checkAddQuality.
type closeRep struct {
	rep   roadmap.ID
	probe space.State
}

// checkAddQuality refreshes the interface evidence around qNew's
// representative and repairs any spanner bound violation that evidence
// reveals. Reports whether the roadmap was mutated.
func (s *SPARS) checkAddQuality(ctx context.Context, qNew space.State, visible []roadmap.ID) bool {
	if len(visible) == 0 {
		return false
	}
	repV := visible[0]

	reps, mutated := s.findCloseRepresentatives(ctx, qNew, repV)
	defer func() {
		for _, cr := range reps {
			s.sp.Free(cr.probe)
		}
	}()

	for _, cr := range reps {
		s.updatePairPoints(repV, qNew, cr.rep, cr.probe)
		s.updatePairPoints(cr.rep, cr.probe, repV, qNew)
	}

	if s.checkAddPath(ctx, repV) {
		mutated = true
	} else {
		for _, cr := range reps {
			if s.checkAddPath(ctx, cr.rep) {
				mutated = true
			}
		}
	}

	return mutated
}

// findCloseRepresentatives probes the dense neighborhood of qNew for
// guards other than repV that represent nearby samples. A probe no
// guard covers exposes a coverage gap: it is admitted on the spot, the
// collected probes are dropped, and the search stops. The second return
// reports that mutation.
func (s *SPARS) findCloseRepresentatives(ctx context.Context, qNew space.State, repV roadmap.ID) ([]closeRep, bool) {
	var reps []closeRep

	for i := 0; i < s.nearSamplePoints; i++ {
		probe, ok := s.sampleNearValid(qNew)
		if !ok {
			break
		}

		rep, covered := s.representativeOf(probe)
		if !covered {
			s.addGuardLocked(ctx, probe, roadmap.GuardCoverage)
			for _, cr := range reps {
				s.sp.Free(cr.probe)
			}
			return nil, true
		}

		if rep == repV {
			s.sp.Free(probe)
			continue
		}

		dup := false
		for _, cr := range reps {
			if cr.rep == rep {
				dup = true
				break
			}
		}
		if dup {
			s.sp.Free(probe)
			continue
		}

		reps = append(reps, closeRep{rep: rep, probe: probe})
	}

	return reps, false
}

// sampleNearValid draws one valid state within DenseDelta of q that q
// can reach by a direct motion, within the per-sample attempt budget.
func (s *SPARS) sampleNearValid(q space.State) (space.State, bool) {
	for attempt := 0; attempt < s.opts.SampleAttempts; attempt++ {
		probe := s.sp.SampleUniformNear(q, s.opts.DenseDelta)
		if s.sp.IsValid(probe) && s.sp.Distance(q, probe) <= s.opts.DenseDelta && s.sp.CheckMotion(q, probe) {
			return probe, true
		}
		s.sp.Free(probe)
	}

	return nil, false
}

// checkAddPath scans v's neighborhood pairs for spanner bound
// violations and repairs the first one it can. The midpoint estimate
// over the third-order candidates is the longest detour the roadmap
// currently forces through v; the recorded interface span says how
// close the regions actually are.
func (s *SPARS) checkAddPath(ctx context.Context, v roadmap.ID) bool {
	for _, r := range s.g.Neighbors(v) {
		for _, rp := range s.g.CandidateVPP(v, r) {
			var rm float64
			for _, rpp := range s.candidateX(v, r, rp) {
				d := (s.sp.Distance(s.g.StateOf(r), s.g.StateOf(v)) + s.sp.Distance(s.g.StateOf(v), s.g.StateOf(rpp))) / 2
				if d > rm {
					rm = d
				}
			}

			data := s.g.GetData(v, r, rp)
			if rm <= s.opts.StretchFactor*data.D() {
				continue
			}

			if s.repairSpanner(ctx, v, r, rp, data) {
				return true
			}
		}
	}

	return false
}

// repairSpanner restores the bound between r and rp: a direct edge when
// the motion between them is valid, otherwise a chain of quality guards
// spliced along the recorded interface evidence through v. A splice
// whose path cannot be validated leaves the roadmap untouched.
func (s *SPARS) repairSpanner(ctx context.Context, v, r, rp roadmap.ID, data *roadmap.InterfaceData) bool {
	if s.sp.CheckMotion(s.g.StateOf(r), s.g.StateOf(rp)) {
		s.connectLocked(r, rp)
		s.opts.Logger.LogSpannerRepair(ctx, r, rp, false)
		return true
	}

	// Evidence order follows the pair orientation: the side belonging
	// to r comes first.
	var states []space.State
	if r < rp {
		states = []space.State{data.Sigma1(), data.Point1(), s.g.StateOf(v), data.Point2(), data.Sigma2()}
	} else {
		states = []space.State{data.Sigma2(), data.Point2(), s.g.StateOf(v), data.Point1(), data.Sigma1()}
	}

	p := NewPath(s.sp, states...)
	defer p.Free()

	if s.opts.Simplifier != nil {
		s.opts.Simplifier.Simplify(ctx, p)
	}
	if !p.Valid() {
		return false
	}

	prior := r
	for _, st := range p.States() {
		id := s.addGuardLocked(ctx, s.sp.Clone(st), roadmap.GuardQuality)
		s.connectLocked(prior, id)
		prior = id
	}
	s.connectLocked(prior, rp)
	s.opts.Logger.LogSpannerRepair(ctx, r, rp, true)

	return true
}
