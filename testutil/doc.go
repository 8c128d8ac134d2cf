// Package testutil provides testing utilities for Plango.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random configurations and for
// building small two-dimensional worlds with known obstacles.
//
// # Random Configuration Generation
//
//	rng := testutil.NewRNG(seed)
//	q := rng.UniformPoint(2, 0, 10) // one point in [0, 10)^2
//
// # Worlds
//
//	sp := testutil.Box2D(0, 10, func(x, y float64) bool {
//		return x < 4 || x > 6 // vertical wall
//	}, seed)
package testutil
