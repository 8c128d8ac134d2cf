// Package neighbor defines the pluggable nearest-neighbor index used by the
// roadmap. Implementations are injected at construction time and stay fixed
// for the roadmap's lifetime.
package neighbor

import "github.com/hupe1980/plango/space"

// StateFunc resolves a stored id to its configuration. The returned state is
// borrowed; implementations must not free it.
type StateFunc func(id uint32) space.State

// Index is a nearest-neighbor structure over guard ids. Implementations need
// not be goroutine-safe; the planner serializes access. Ids are never
// removed individually, only dropped wholesale by Clear.
type Index interface {
	// Insert adds an id to the index.
	Insert(id uint32)

	// NearestK returns up to k ids closest to q, ordered by ascending
	// distance with ties broken by ascending id.
	NearestK(q space.State, k int) []uint32

	// NearestR returns every id within radius r of q (inclusive), ordered
	// by ascending distance with ties broken by ascending id.
	NearestR(q space.State, r float64) []uint32

	// List returns all stored ids in ascending order.
	List() []uint32

	// Len returns the number of stored ids.
	Len() int

	// Clear removes all stored ids.
	Clear()
}

// Factory constructs an Index bound to a space and an id resolver.
type Factory func(sp space.Space, states StateFunc) Index
