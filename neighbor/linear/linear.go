// Package linear provides an exact exhaustive-scan nearest-neighbor index.
package linear

import (
	"sort"

	"github.com/hupe1980/plango/neighbor"
	"github.com/hupe1980/plango/space"
)

// Compile-time check to ensure Linear satisfies the Index interface.
var _ neighbor.Index = (*Linear)(nil)

// Linear scans every stored id per query. Exact and predictable; the right
// choice for small roadmaps and as the oracle for other indexes.
type Linear struct {
	sp     space.Space
	states neighbor.StateFunc
	ids    []uint32
}

// New creates an empty linear index. The signature matches neighbor.Factory.
func New(sp space.Space, states neighbor.StateFunc) neighbor.Index {
	return &Linear{sp: sp, states: states}
}

// Insert adds an id to the index.
func (l *Linear) Insert(id uint32) {
	l.ids = append(l.ids, id)
}

// NearestK returns up to k ids closest to q.
func (l *Linear) NearestK(q space.State, k int) []uint32 {
	if k <= 0 || len(l.ids) == 0 {
		return nil
	}
	cands := l.scan(q)
	if len(cands) > k {
		cands = cands[:k]
	}
	out := make([]uint32, len(cands))
	for i, c := range cands {
		out[i] = c.id
	}
	return out
}

// NearestR returns every id within radius r of q.
func (l *Linear) NearestR(q space.State, r float64) []uint32 {
	var out []uint32
	for _, c := range l.scan(q) {
		if c.dist > r {
			break
		}
		out = append(out, c.id)
	}
	return out
}

// List returns all stored ids in ascending order.
func (l *Linear) List() []uint32 {
	out := append([]uint32(nil), l.ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of stored ids.
func (l *Linear) Len() int { return len(l.ids) }

// Clear removes all stored ids.
func (l *Linear) Clear() { l.ids = l.ids[:0] }

type candidate struct {
	id   uint32
	dist float64
}

func (l *Linear) scan(q space.State) []candidate {
	cands := make([]candidate, len(l.ids))
	for i, id := range l.ids {
		cands[i] = candidate{id: id, dist: l.sp.Distance(q, l.states(id))}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].id < cands[j].id
	})
	return cands
}
