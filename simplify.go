package plango

import (
	"context"
)

// Simplifier shortens a path in place while keeping it valid.
type Simplifier interface {
	Simplify(ctx context.Context, p *Path)
}

// VertexReducer simplifies a path by removing interior states wherever
// the direct motion between two non-consecutive states is collision
// free. Longer jumps are attempted first, so a single pass can collapse
// a large portion of the path.
type VertexReducer struct {
	// Passes is the number of sweeps over the path. Zero derives 3.
	Passes int
}

var _ Simplifier = (*VertexReducer)(nil)

// Simplify runs the configured number of sweeps, stopping early when a
// sweep removes nothing, the path has fewer than three states, or ctx
// is done.
func (vr *VertexReducer) Simplify(ctx context.Context, p *Path) {
	passes := vr.Passes
	if passes == 0 {
		passes = 3
	}

	for pass := 0; pass < passes; pass++ {
		if ctx != nil && ctx.Err() != nil {
			return
		}
		if p.Len() < 3 || !vr.sweep(p) {
			return
		}
	}
}

// sweep attempts every shortcut from longest span to shortest and
// reports whether any state was removed.
func (vr *VertexReducer) sweep(p *Path) bool {
	removed := false

	for span := p.Len() - 1; span >= 2; span-- {
		for i := 0; i+span < p.Len(); i++ {
			j := i + span
			if p.sp.CheckMotion(p.State(i), p.State(j)) {
				p.RemoveBetween(i, j)
				removed = true
			}
		}
	}

	return removed
}
