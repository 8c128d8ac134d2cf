// Package plango provides sampling-based motion planning for Go.
//
// The central type is SPARS, an anytime planner that grows a sparse
// roadmap spanner over an arbitrary configuration space: a compact graph
// of guard configurations preserving coverage of the free space,
// connectivity between its regions, and path quality up to a configurable
// stretch factor. A sampled configuration is admitted only when it serves
// one of those duties; everything else is discarded, so the roadmap stays
// small enough to keep and re-query indefinitely.
//
// # Quick Start
//
//	sp, _ := space.NewRealVector(space.NewBounds(2, 0, 10), func(o *space.RealVectorOptions) {
//	    o.Checker = isCollisionFree
//	})
//
//	planner, _ := plango.NewSPARS(sp)
//
//	pd := plango.NewProblemDefinition(sp)
//	pd.AddStart(sp.MustState(1, 1))
//	pd.AddGoal(sp.MustState(9, 9))
//	planner.SetProblemDefinition(pd)
//
//	status, _ := planner.Solve(ctx, plango.After(5*time.Second))
//	if status == plango.StatusExactSolution {
//	    path := pd.Solution()
//	    // path.States() holds the waypoints
//	}
//
// Solve may be called repeatedly with new problem definitions; the roadmap
// persists across queries and keeps improving until its failure budget is
// exhausted.
//
// # Key Features
//
//   - Sparse roadmap spanner construction (coverage, connectivity,
//     interface, and quality guards)
//   - Anytime multi-query planning over one persistent roadmap
//   - Pluggable configuration spaces and proximity structures (GNAT,
//     exhaustive scan)
//   - Deterministic results under seeded sampling
//   - Structured logging, metrics hooks, and roadmap snapshots
package plango
