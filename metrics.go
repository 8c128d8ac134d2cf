package plango

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/plango/roadmap"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    iterationCounter prometheus.Counter
//	    guardCounter     *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordIteration(accepted bool, duration time.Duration) {
//	    p.iterationCounter.Inc()
//	    // ... record acceptance, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIteration is called after each solver iteration.
	// accepted reports whether the sampled configuration was admitted,
	// duration is the time the iteration took.
	RecordIteration(accepted bool, duration time.Duration)

	// RecordGuard is called after each guard admission.
	RecordGuard(kind roadmap.GuardType)

	// RecordEdge is called after each new roadmap edge.
	RecordEdge()

	// RecordSolve is called after each solve run.
	// solved reports whether an exact solution was found.
	RecordSolve(duration time.Duration, solved bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(bool, time.Duration) {}
func (NoopMetricsCollector) RecordGuard(roadmap.GuardType)       {}
func (NoopMetricsCollector) RecordEdge()                         {}
func (NoopMetricsCollector) RecordSolve(time.Duration, bool)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationAccepted   atomic.Int64
	IterationTotalNanos atomic.Int64
	GuardCount          atomic.Int64
	EdgeCount           atomic.Int64
	SolveCount          atomic.Int64
	SolveSolved         atomic.Int64
	SolveTotalNanos     atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(accepted bool, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
	if accepted {
		b.IterationAccepted.Add(1)
	}
}

// RecordGuard implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGuard(kind roadmap.GuardType) {
	b.GuardCount.Add(1)
}

// RecordEdge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEdge() {
	b.EdgeCount.Add(1)
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(duration time.Duration, solved bool) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if solved {
		b.SolveSolved.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationAccepted: b.IterationAccepted.Load(),
		IterationAvgNanos: b.getAvgIterationNanos(),
		GuardCount:        b.GuardCount.Load(),
		EdgeCount:         b.EdgeCount.Load(),
		SolveCount:        b.SolveCount.Load(),
		SolveSolved:       b.SolveSolved.Load(),
		SolveAvgNanos:     b.getAvgSolveNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgIterationNanos() int64 {
	count := b.IterationCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterationTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationAccepted int64
	IterationAvgNanos int64
	GuardCount        int64
	EdgeCount         int64
	SolveCount        int64
	SolveSolved       int64
	SolveAvgNanos     int64
}
