package benchmark_test

import (
	"context"
	"math"
	"testing"

	"github.com/hupe1980/plango"
	"github.com/hupe1980/plango/neighbor"
	"github.com/hupe1980/plango/neighbor/gnat"
	"github.com/hupe1980/plango/neighbor/linear"
	"github.com/hupe1980/plango/space"
	"github.com/hupe1980/plango/testutil"
)

func BenchmarkSolve_FreeSpace(b *testing.B) {
	benchmarkSolve(b, nil)
}

func BenchmarkSolve_Obstacles(b *testing.B) {
	benchmarkSolve(b, func(x, y float64) bool {
		return math.Hypot(x-10, y-10) > 2.5
	})
}

func benchmarkSolve(b *testing.B, valid func(x, y float64) bool) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sp := testutil.Box2D(0, 20, valid, int64(i)+1)

		planner, err := plango.NewSPARS(sp, func(o *plango.Options) {
			o.SparseDelta = 4.0
		})
		if err != nil {
			b.Fatal(err)
		}

		pd := plango.NewProblemDefinition(sp)
		pd.AddStart(sp.MustState(2, 2))
		pd.AddGoal(sp.MustState(18, 18))
		planner.SetProblemDefinition(pd)

		status, err := planner.Solve(context.Background(), plango.Never())
		if err != nil {
			b.Fatal(err)
		}
		if status != plango.StatusExactSolution {
			b.Fatalf("unexpected status %s", status)
		}
	}
}

// BenchmarkMultiQuery_SharedRoadmap measures the amortized cost of a
// query once the roadmap has been paid for.
func BenchmarkMultiQuery_SharedRoadmap(b *testing.B) {
	b.ReportAllocs()

	sp := testutil.Box2D(0, 20, nil, 1)

	planner, err := plango.NewSPARS(sp, func(o *plango.Options) {
		o.SparseDelta = 4.0
	})
	if err != nil {
		b.Fatal(err)
	}

	sampler := space.NewValidSampler(sp, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start, err := sampler.Sample()
		if err != nil {
			b.Fatal(err)
		}
		goal, err := sampler.Sample()
		if err != nil {
			b.Fatal(err)
		}

		pd := plango.NewProblemDefinition(sp)
		pd.AddStart(start)
		pd.AddGoal(goal)
		planner.SetProblemDefinition(pd)

		if _, err := planner.Solve(context.Background(), plango.Never()); err != nil {
			b.Fatal(err)
		}
		pd.Clear()
	}
}

func BenchmarkNearestR_Linear(b *testing.B) {
	benchmarkNearestR(b, linear.New, false)
}

func BenchmarkNearestR_GNAT(b *testing.B) {
	benchmarkNearestR(b, gnat.Factory(), false)
}

func BenchmarkNearestR_Linear_Clustered(b *testing.B) {
	benchmarkNearestR(b, linear.New, true)
}

func BenchmarkNearestR_GNAT_Clustered(b *testing.B) {
	benchmarkNearestR(b, gnat.Factory(), true)
}

func benchmarkNearestR(b *testing.B, factory neighbor.Factory, clustered bool) {
	b.ReportAllocs()

	sp := testutil.Box2D(0, 1, nil, 1)
	rng := testutil.NewRNG(1)

	const n = 2000
	var points [][]float64
	if clustered {
		points = rng.ClusteredPoints(n, 2, 8, 0.05)
	} else {
		points = rng.UniformPoints(n, 2, 0, 1)
	}

	states := make([]space.State, n)
	for i, p := range points {
		states[i] = sp.MustState(p[0], p[1])
	}

	idx := factory(sp, func(id uint32) space.State { return states[id] })
	for i := uint32(0); i < n; i++ {
		idx.Insert(i)
	}

	q := sp.MustState(0.5, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.NearestR(q, 0.1)
	}
}
