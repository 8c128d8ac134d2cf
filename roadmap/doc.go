// Package roadmap stores the sparse spanner graph: guard states held in an
// arena, adjacency as one bitmap per guard, edge weights, connected
// components, and the per-guard interface records that drive spanner
// repair.
//
// The graph owns every state handed to AddGuard and every clone captured
// inside interface records, and frees them all on Clear. It performs no
// locking of its own; callers serialize access.
package roadmap
