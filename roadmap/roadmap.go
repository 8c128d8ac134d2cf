package roadmap

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/plango/neighbor"
	"github.com/hupe1980/plango/space"
)

// ID identifies a guard in the graph. It aliases uint32 so ids flow into
// roaring bitmaps and neighbor indexes without conversion.
type ID = uint32

// GuardType records why a guard was admitted into the roadmap.
type GuardType int

const (
	GuardStart GuardType = iota
	GuardGoal
	GuardCoverage
	GuardConnectivity
	GuardInterface
	GuardQuality
)

const guardTypeCount = 6

func (gt GuardType) String() string {
	switch gt {
	case GuardStart:
		return "start"
	case GuardGoal:
		return "goal"
	case GuardCoverage:
		return "coverage"
	case GuardConnectivity:
		return "connectivity"
	case GuardInterface:
		return "interface"
	case GuardQuality:
		return "quality"
	default:
		return fmt.Sprintf("Unknown(%d)", int(gt))
	}
}

type guard struct {
	state  space.State
	kind   GuardType
	ifaces map[PairKey]*InterfaceData
}

// Edge is one undirected roadmap connection.
type Edge struct {
	A, B   ID
	Weight float64
}

// Graph is the sparse roadmap.
type Graph struct {
	sp            space.Space
	abandonRadius float64
	guards        []guard
	adj           []*roaring.Bitmap
	weights       map[PairKey]float64
	ds            *DisjointSet
	nn            neighbor.Index
	kindCount     [guardTypeCount]int
}

// New creates an empty roadmap over sp. Adding a guard drops the interface
// bookkeeping of every guard within abandonRadius of it. newIndex builds
// the proximity structure backing all neighborhood queries.
func New(sp space.Space, abandonRadius float64, newIndex neighbor.Factory) *Graph {
	g := &Graph{
		sp:            sp,
		abandonRadius: abandonRadius,
		weights:       make(map[PairKey]float64),
		ds:            NewDisjointSet(),
	}
	g.nn = newIndex(sp, g.stateOf)

	return g
}

func (g *Graph) stateOf(id uint32) space.State {
	return g.guards[id].state
}

// AddGuard admits st as a new guard and returns its id. The graph takes
// ownership of st; callers must not free it afterward.
func (g *Graph) AddGuard(st space.State, kind GuardType) ID {
	g.AbandonLists(st)

	id := ID(len(g.guards))
	g.guards = append(g.guards, guard{state: st, kind: kind})
	g.adj = append(g.adj, roaring.New())
	g.ds.MakeSet()
	g.kindCount[kind]++
	g.nn.Insert(id)

	return id
}

// Connect adds the undirected edge (a, b) weighted by state distance and
// merges the endpoints' components. Self loops and duplicate edges are
// rejected.
func (g *Graph) Connect(a, b ID) bool {
	if a == b || g.adj[a].Contains(b) {
		return false
	}

	g.adj[a].Add(b)
	g.adj[b].Add(a)
	g.weights[MakePairKey(a, b)] = g.sp.Distance(g.guards[a].state, g.guards[b].state)
	g.ds.Union(a, b)

	return true
}

// UniteComponents merges the components containing a and b.
func (g *Graph) UniteComponents(a, b ID) {
	g.ds.Union(a, b)
}

// SameComponent reports whether a and b are connected in the roadmap.
func (g *Graph) SameComponent(a, b ID) bool {
	return g.ds.SameSet(a, b)
}

// Adjacent reports whether the edge (a, b) exists.
func (g *Graph) Adjacent(a, b ID) bool {
	return a != b && g.adj[a].Contains(b)
}

// Neighbors returns the ids adjacent to v in ascending order.
func (g *Graph) Neighbors(v ID) []ID {
	return g.adj[v].ToArray()
}

// Degree returns the number of edges at v.
func (g *Graph) Degree(v ID) int {
	return int(g.adj[v].GetCardinality())
}

// Weight returns the stored weight of edge (a, b).
func (g *Graph) Weight(a, b ID) (float64, bool) {
	w, ok := g.weights[MakePairKey(a, b)]
	return w, ok
}

// StateOf returns the state owned by guard v. Callers must not free it.
func (g *Graph) StateOf(v ID) space.State {
	return g.guards[v].state
}

// KindOf returns the guard type of v.
func (g *Graph) KindOf(v ID) GuardType {
	return g.guards[v].kind
}

// MilestoneCount returns the number of guards.
func (g *Graph) MilestoneCount() int { return len(g.guards) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return len(g.weights) }

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int { return g.ds.Count() }

// KindCount returns the number of guards admitted as kind.
func (g *Graph) KindCount(kind GuardType) int { return g.kindCount[kind] }

// Edges returns every edge ordered by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.weights))
	for k, w := range g.weights {
		out = append(out, Edge{A: k.A, B: k.B, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// NearestR returns the guards within radius r of q, closest first.
func (g *Graph) NearestR(q space.State, r float64) []ID {
	return g.nn.NearestR(q, r)
}

// NearestK returns up to k guards closest to q, closest first.
func (g *Graph) NearestK(q space.State, k int) []ID {
	return g.nn.NearestK(q, k)
}

// CandidateVPP returns the neighbors of v that are not adjacent to vp,
// excluding vp itself: the candidate far sides for an interface through v
// whose near side is vp.
func (g *Graph) CandidateVPP(v, vp ID) []ID {
	cand := g.adj[v].Clone()
	cand.AndNot(g.adj[vp])
	cand.Remove(vp)

	return cand.ToArray()
}

// GetData returns the interface record held at v for the unordered pair
// (vp, vpp), creating an empty one on first access.
func (g *Graph) GetData(v, vp, vpp ID) *InterfaceData {
	gd := &g.guards[v]
	if gd.ifaces == nil {
		gd.ifaces = make(map[PairKey]*InterfaceData)
	}

	key := MakePairKey(vp, vpp)

	data, ok := gd.ifaces[key]
	if !ok {
		data = NewInterfaceData()
		gd.ifaces[key] = data
	}

	return data
}

// AbandonLists drops the interface bookkeeping of every guard within
// abandonRadius of st.
func (g *Graph) AbandonLists(st space.State) {
	for _, id := range g.nn.NearestR(st, g.abandonRadius) {
		g.DeletePairInfo(id)
	}
}

// DeletePairInfo clears every interface record held at v.
func (g *Graph) DeletePairInfo(v ID) {
	gd := &g.guards[v]
	for _, data := range gd.ifaces {
		data.Clear(g.sp)
	}
	gd.ifaces = nil
}

// Clear removes every guard, edge, and interface record, freeing all owned
// states.
func (g *Graph) Clear() {
	for i := range g.guards {
		g.DeletePairInfo(ID(i))
		g.sp.Free(g.guards[i].state)
	}
	g.guards = nil
	g.adj = nil
	g.weights = make(map[PairKey]float64)
	g.ds = NewDisjointSet()
	g.nn.Clear()
	g.kindCount = [guardTypeCount]int{}
}
