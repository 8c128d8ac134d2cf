package roadmap

// DisjointSet tracks connected components over dense ids with union by
// size and path compression.
type DisjointSet struct {
	parent []ID
	size   []uint32
	count  int
}

// NewDisjointSet creates an empty structure.
func NewDisjointSet() *DisjointSet {
	return &DisjointSet{}
}

// MakeSet appends a new singleton set and returns its id.
func (ds *DisjointSet) MakeSet() ID {
	id := ID(len(ds.parent))
	ds.parent = append(ds.parent, id)
	ds.size = append(ds.size, 1)
	ds.count++
	return id
}

// Find returns the representative of x's set.
func (ds *DisjointSet) Find(x ID) ID {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		ds.parent[x], x = root, ds.parent[x]
	}
	return root
}

// Union merges the sets containing a and b. The smaller set is absorbed
// into the larger one; on ties b's set is absorbed into a's.
func (ds *DisjointSet) Union(a, b ID) {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
	ds.count--
}

// SameSet reports whether a and b belong to the same set.
func (ds *DisjointSet) SameSet(a, b ID) bool {
	return ds.Find(a) == ds.Find(b)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }

// Len returns the number of elements across all sets.
func (ds *DisjointSet) Len() int { return len(ds.parent) }
