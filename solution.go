package plango

import (
	"container/heap"
	"context"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/plango/queue"
	"github.com/hupe1980/plango/roadmap"
	"github.com/hupe1980/plango/space"
)

// constructSolutionLocked extracts the cheapest roadmap path between
// the two guards, simplifies it, and stores it on the problem
// definition. Reports whether a path was stored.
func (s *SPARS) constructSolutionLocked(ctx context.Context, pd *ProblemDefinition, start, goal roadmap.ID) bool {
	ids, ok := s.shortestPathLocked(start, goal)
	if !ok {
		return false
	}

	states := make([]space.State, len(ids))
	for i, id := range ids {
		states[i] = s.g.StateOf(id)
	}

	path := NewPath(s.sp, states...)
	if s.opts.Simplifier != nil {
		s.opts.Simplifier.Simplify(ctx, path)
	}
	pd.SetSolution(path)

	return true
}

// shortestPathLocked runs Dijkstra over the roadmap and returns the
// guard sequence of the cheapest path from one guard to another,
// inclusive of both. Decrease-key is done lazily: a node may sit in
// the queue several times and stale entries are skipped via the
// settled set.
func (s *SPARS) shortestPathLocked(from, to roadmap.ID) ([]roadmap.ID, bool) {
	n := s.g.MilestoneCount()

	const noPrev = ^roadmap.ID(0)

	dist := make([]float64, n)
	prev := make([]roadmap.ID, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = noPrev
	}

	settled := bitset.New(uint(n))
	pq := &queue.PriorityQueue{}

	dist[from] = 0
	heap.Push(pq, &queue.Item{Node: from})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*queue.Item)
		if settled.Test(uint(cur.Node)) {
			continue
		}
		settled.Set(uint(cur.Node))

		if cur.Node == to {
			break
		}

		for _, nb := range s.g.Neighbors(cur.Node) {
			if settled.Test(uint(nb)) {
				continue
			}
			w, ok := s.g.Weight(cur.Node, nb)
			if !ok {
				continue
			}
			if nd := dist[cur.Node] + w; nd < dist[nb] {
				dist[nb] = nd
				prev[nb] = cur.Node
				heap.Push(pq, &queue.Item{Node: nb, Distance: nd})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil, false
	}

	var ids []roadmap.ID
	for cur := to; ; cur = prev[cur] {
		ids = append(ids, cur)
		if cur == from {
			break
		}
		if prev[cur] == noPrev {
			return nil, false
		}
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids, true
}
