// Package gnat implements a geometric near-neighbor access tree: a metric
// tree with pivot fan-out and per-child distance ranges. It answers exact
// radius and k-nearest queries using only the space metric, so it works for
// any configuration space.
package gnat

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/hupe1980/plango/neighbor"
	"github.com/hupe1980/plango/space"
)

// Compile-time check to ensure GNAT satisfies the Index interface.
var _ neighbor.Index = (*GNAT)(nil)

// Options contains configuration options for the tree.
type Options struct {
	// Degree is the pivot fan-out of split nodes.
	Degree int

	// BucketSize is the number of ids a leaf accumulates before it splits.
	BucketSize int
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	Degree:     8,
	BucketSize: 50,
}

// GNAT stores ids in leaf buckets until they split into pivot-anchored
// subtrees. Each split node keeps, per pivot and child, the range of
// distances from that pivot to the child's members; queries prune children
// whose ranges cannot intersect the search ball.
type GNAT struct {
	sp     space.Space
	states neighbor.StateFunc
	opts   Options
	root   *node
	size   int
}

type node struct {
	bucket   []uint32
	pivots   []uint32
	children []*node
	// lo[i][j] and hi[i][j] bound Distance(pivots[i], x) over every x stored
	// under children[j], with pivots[j] counted as a member of child j.
	lo, hi [][]float64
}

// New creates an empty tree.
func New(sp space.Space, states neighbor.StateFunc, optFns ...func(o *Options)) (*GNAT, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Degree < 2 {
		return nil, fmt.Errorf("gnat: degree must be at least 2, got %d", opts.Degree)
	}
	if opts.BucketSize < opts.Degree {
		return nil, fmt.Errorf("gnat: bucket size must be at least the degree, got %d", opts.BucketSize)
	}

	return &GNAT{sp: sp, states: states, opts: opts, root: &node{}}, nil
}

// Factory adapts New to the neighbor.Factory signature. Invalid options
// panic.
func Factory(optFns ...func(o *Options)) neighbor.Factory {
	return func(sp space.Space, states neighbor.StateFunc) neighbor.Index {
		g, err := New(sp, states, optFns...)
		if err != nil {
			panic(err)
		}
		return g
	}
}

// Insert adds an id to the tree.
func (g *GNAT) Insert(id uint32) {
	st := g.states(id)
	n := g.root
	for len(n.children) > 0 {
		dists := make([]float64, len(n.pivots))
		best := 0
		for i, p := range n.pivots {
			dists[i] = g.sp.Distance(st, g.states(p))
			if dists[i] < dists[best] {
				best = i
			}
		}
		for i := range n.pivots {
			if dists[i] < n.lo[i][best] {
				n.lo[i][best] = dists[i]
			}
			if dists[i] > n.hi[i][best] {
				n.hi[i][best] = dists[i]
			}
		}
		n = n.children[best]
	}
	n.bucket = append(n.bucket, id)
	g.size++
	if len(n.bucket) > g.opts.BucketSize {
		g.split(n)
	}
}

// split promotes Degree bucket members to pivots, chosen greedily for
// max-min spread, and distributes the rest to their nearest pivot's child.
func (g *GNAT) split(n *node) {
	bucket := n.bucket
	k := g.opts.Degree

	used := make([]bool, len(bucket))
	used[0] = true
	pivotIdx := []int{0}
	minDist := make([]float64, len(bucket))
	for i := range bucket {
		minDist[i] = g.dist(bucket[i], bucket[0])
	}
	for len(pivotIdx) < k {
		best := -1
		for i := range bucket {
			if used[i] {
				continue
			}
			if best == -1 || minDist[i] > minDist[best] {
				best = i
			}
		}
		if best == -1 {
			break
		}
		used[best] = true
		pivotIdx = append(pivotIdx, best)
		for i := range bucket {
			if used[i] {
				continue
			}
			if d := g.dist(bucket[i], bucket[best]); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	k = len(pivotIdx)
	n.pivots = make([]uint32, k)
	n.children = make([]*node, k)
	for j, bi := range pivotIdx {
		n.pivots[j] = bucket[bi]
		n.children[j] = &node{}
	}
	n.lo = make([][]float64, k)
	n.hi = make([][]float64, k)
	for i := 0; i < k; i++ {
		n.lo[i] = make([]float64, k)
		n.hi[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			d := g.dist(n.pivots[i], n.pivots[j])
			n.lo[i][j] = d
			n.hi[i][j] = d
		}
	}

	for bi, id := range bucket {
		if used[bi] {
			continue
		}
		dists := make([]float64, k)
		best := 0
		for i, p := range n.pivots {
			dists[i] = g.dist(id, p)
			if dists[i] < dists[best] {
				best = i
			}
		}
		for i := range n.pivots {
			if dists[i] < n.lo[i][best] {
				n.lo[i][best] = dists[i]
			}
			if dists[i] > n.hi[i][best] {
				n.hi[i][best] = dists[i]
			}
		}
		n.children[best].bucket = append(n.children[best].bucket, id)
	}
	n.bucket = nil
}

// NearestK returns up to k ids closest to q.
func (g *GNAT) NearestK(q space.State, k int) []uint32 {
	if k <= 0 || g.size == 0 {
		return nil
	}
	h := &resultHeap{}
	g.knnSearch(g.root, q, k, h)
	out := make([]uint32, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(hit).id
	}
	return out
}

// NearestR returns every id within radius r of q.
func (g *GNAT) NearestR(q space.State, r float64) []uint32 {
	if g.size == 0 {
		return nil
	}
	var hits []hit
	g.rangeSearch(g.root, q, r, &hits)
	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].id < hits[j].id
	})
	out := make([]uint32, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}

// List returns all stored ids in ascending order.
func (g *GNAT) List() []uint32 {
	out := make([]uint32, 0, g.size)
	var walk func(n *node)
	walk = func(n *node) {
		out = append(out, n.bucket...)
		out = append(out, n.pivots...)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(g.root)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of stored ids.
func (g *GNAT) Len() int { return g.size }

// Clear removes all stored ids.
func (g *GNAT) Clear() {
	g.root = &node{}
	g.size = 0
}

func (g *GNAT) dist(a, b uint32) float64 {
	return g.sp.Distance(g.states(a), g.states(b))
}

func (g *GNAT) rangeSearch(n *node, q space.State, r float64, hits *[]hit) {
	for _, id := range n.bucket {
		if d := g.sp.Distance(q, g.states(id)); d <= r {
			*hits = append(*hits, hit{id: id, dist: d})
		}
	}
	if len(n.children) == 0 {
		return
	}
	dq := make([]float64, len(n.pivots))
	for i, p := range n.pivots {
		dq[i] = g.sp.Distance(q, g.states(p))
		if dq[i] <= r {
			*hits = append(*hits, hit{id: p, dist: dq[i]})
		}
	}
	for j := range n.children {
		if prunable(n, dq, j, r) {
			continue
		}
		g.rangeSearch(n.children[j], q, r, hits)
	}
}

func (g *GNAT) knnSearch(n *node, q space.State, k int, h *resultHeap) {
	for _, id := range n.bucket {
		offer(h, k, hit{id: id, dist: g.sp.Distance(q, g.states(id))})
	}
	if len(n.children) == 0 {
		return
	}
	dq := make([]float64, len(n.pivots))
	for i, p := range n.pivots {
		dq[i] = g.sp.Distance(q, g.states(p))
		offer(h, k, hit{id: p, dist: dq[i]})
	}
	// Nearest pivot first; the bound tightens as results accumulate.
	order := make([]int, len(n.children))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return dq[order[a]] < dq[order[b]] })
	for _, j := range order {
		tau := math.Inf(1)
		if h.Len() == k {
			tau = (*h)[0].dist
		}
		if prunable(n, dq, j, tau) {
			continue
		}
		g.knnSearch(n.children[j], q, k, h)
	}
}

// prunable reports whether child j cannot hold anything within radius r of
// the query, by the triangle inequality against every pivot.
func prunable(n *node, dq []float64, j int, r float64) bool {
	for i := range dq {
		if dq[i]-r > n.hi[i][j] || dq[i]+r < n.lo[i][j] {
			return true
		}
	}
	return false
}

// offer pushes a candidate into the bounded best-k heap.
func offer(h *resultHeap, k int, c hit) {
	if h.Len() < k {
		heap.Push(h, c)
		return
	}
	worst := (*h)[0]
	if c.dist < worst.dist || (c.dist == worst.dist && c.id < worst.id) {
		(*h)[0] = c
		heap.Fix(h, 0)
	}
}

type hit struct {
	id   uint32
	dist float64
}

// resultHeap is a max-heap on (distance, id); the worst candidate on top.
type resultHeap []hit

func (h resultHeap) Len() int { return len(h) }

func (h resultHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist > h[j].dist
	}
	return h[i].id > h[j].id
}

func (h resultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x any) { *h = append(*h, x.(hit)) }

func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
