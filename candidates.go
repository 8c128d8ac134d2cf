package plango

import (
	"github.com/hupe1980/plango/roadmap"
	"github.com/hupe1980/plango/space"
)

// candidateX returns the third-order candidates around the pair formed
// by vp and vpp as seen from v: neighbors of vpp that are adjacent to v,
// not adjacent to vp, and that carry interface evidence on vpp's side of
// their pair with vpp. vpp itself is always a candidate.
func (s *SPARS) candidateX(v, vp, vpp roadmap.ID) []roadmap.ID {
	var xs []roadmap.ID

	for _, cx := range s.g.Neighbors(vpp) {
		if !s.g.Adjacent(cx, v) || s.g.Adjacent(cx, vp) {
			continue
		}
		data := s.g.GetData(v, vpp, cx)
		if (vpp < cx && data.HasPoint1()) || (cx < vpp && data.HasPoint2()) {
			xs = append(xs, cx)
		}
	}

	return append(xs, vpp)
}

// updatePairPoints refreshes the interface evidence held at rep for
// every pair (r, rp) with rp a second-order candidate of r around rep.
// q is the sample represented by rep, probe the sample represented by r.
func (s *SPARS) updatePairPoints(rep roadmap.ID, q space.State, r roadmap.ID, probe space.State) {
	for _, rp := range s.g.CandidateVPP(rep, r) {
		s.distanceCheck(rep, q, r, probe, rp)
	}
}

// distanceCheck offers (q, probe) as interface evidence for the pair
// (r, rp) observed from rep. The side belonging to r is filled when
// empty and replaced only when the new support tightens the recorded
// span; with no opposing support yet there is nothing to compare
// against, so an occupied side is kept.
func (s *SPARS) distanceCheck(rep roadmap.ID, q space.State, r roadmap.ID, probe space.State, rp roadmap.ID) {
	data := s.g.GetData(rep, r, rp)

	if r < rp {
		if !data.HasPoint1() {
			data.SetFirst(s.sp, q, probe)
		} else if data.HasPoint2() && s.sp.Distance(q, data.Point2()) < data.D() {
			data.SetFirst(s.sp, q, probe)
		}
	} else {
		if !data.HasPoint2() {
			data.SetSecond(s.sp, q, probe)
		} else if data.HasPoint1() && s.sp.Distance(q, data.Point1()) < data.D() {
			data.SetSecond(s.sp, q, probe)
		}
	}
}

// representativeOf returns the closest guard that covers st, if any.
func (s *SPARS) representativeOf(st space.State) (roadmap.ID, bool) {
	for _, v := range s.g.NearestR(st, s.opts.SparseDelta) {
		if s.sp.CheckMotion(st, s.g.StateOf(v)) {
			return v, true
		}
	}

	return 0, false
}
