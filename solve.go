package plango

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/plango/roadmap"
)

// Solve grows the roadmap until a start and a goal of the current
// problem land in the same connected component, the termination
// condition fires, ctx is done, or MaxFailures consecutive samples are
// rejected. On success the extracted path is simplified and stored on
// the problem definition.
//
// The roadmap is kept across calls; a later Solve on a harder query
// continues where the previous one left off. A problem that already
// carries a solution returns StatusExactSolution immediately; use
// ClearQuery to plan it again.
func (s *SPARS) Solve(ctx context.Context, cond TerminationCondition) (Status, error) {
	return s.solve(ctx, cond, s.opts.MaxFailures)
}

// SolveWithFailureLimit is Solve with a per-call failure budget
// overriding Options.MaxFailures.
func (s *SPARS) SolveWithFailureLimit(ctx context.Context, cond TerminationCondition, maxFailures int) (Status, error) {
	return s.solve(ctx, cond, maxFailures)
}

func (s *SPARS) solve(ctx context.Context, cond TerminationCondition, maxFailures int) (Status, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	terminated := func() bool {
		if ctx.Err() != nil {
			return true
		}
		return cond != nil && cond()
	}

	s.mu.Lock()
	s.setupLocked()

	if s.pdef == nil {
		s.mu.Unlock()
		return StatusUnknown, ErrNoProblemDefinition
	}
	pd := s.pdef

	if pd.Solution() != nil {
		s.mu.Unlock()
		return StatusExactSolution, nil
	}

	// An exhausted budget stops the run before any guard is added.
	if maxFailures <= 0 || terminated() {
		s.mu.Unlock()
		return StatusTimeout, nil
	}

	if err := s.ensureQueryLocked(ctx); err != nil {
		s.mu.Unlock()
		return StatusUnknown, err
	}

	s.opts.Logger.LogSolveStart(ctx, pd.ID(), s.g.MilestoneCount(), s.g.EdgeCount())
	started := time.Now()
	progress := rate.Sometimes{Interval: 5 * time.Second}

	failures := 0
	iterations := 0

	start, goal, solved := s.haveSolutionLocked()
	s.mu.Unlock()

	for !solved && failures < maxFailures && !terminated() {
		iterStart := time.Now()

		qNew, err := s.sampler.Sample()
		if err != nil {
			// An exhausted sampler is a failed iteration, not a fatal
			// error: the budget decides when to give up.
			failures++
			s.opts.Metrics.RecordIteration(false, time.Since(iterStart))
			continue
		}

		s.mu.Lock()
		accepted := s.evaluateSampleLocked(ctx, qNew)
		if accepted {
			failures = 0
			iterations++
			s.totalIterations++
			start, goal, solved = s.haveSolutionLocked()
		} else {
			failures++
		}
		milestones, edges := s.g.MilestoneCount(), s.g.EdgeCount()
		s.mu.Unlock()

		s.sp.Free(qNew)
		s.opts.Metrics.RecordIteration(accepted, time.Since(iterStart))

		progress.Do(func() {
			s.opts.Logger.LogSolveProgress(ctx, iterations, failures, milestones, edges)
		})
	}

	status := StatusTimeout

	s.mu.Lock()
	if solved && s.constructSolutionLocked(ctx, pd, start, goal) {
		status = StatusExactSolution
	}
	s.totalSolves++
	milestones, edges := s.g.MilestoneCount(), s.g.EdgeCount()
	s.mu.Unlock()

	elapsed := time.Since(started)
	s.opts.Metrics.RecordSolve(elapsed, status == StatusExactSolution)
	s.opts.Logger.LogSolveEnd(ctx, status, milestones, edges, elapsed)

	return status, nil
}

// ensureQueryLocked ingests the problem's start and goal states as
// roadmap guards, once per query. Invalid states are skipped with a
// warning; a query with no usable start or goal fails.
func (s *SPARS) ensureQueryLocked(ctx context.Context) error {
	if len(s.startIDs) == 0 {
		for i, st := range s.pdef.Starts() {
			if !s.sp.IsValid(st) {
				s.opts.Logger.WarnContext(ctx, "skipping invalid start state", "index", i)
				continue
			}
			s.startIDs = append(s.startIDs, s.addGuardLocked(ctx, s.sp.Clone(st), roadmap.GuardStart))
		}
		if len(s.startIDs) == 0 {
			return ErrNoStartState
		}
	}

	if len(s.goalIDs) == 0 {
		for i, st := range s.pdef.Goals() {
			if !s.sp.IsValid(st) {
				s.opts.Logger.WarnContext(ctx, "skipping invalid goal state", "index", i)
				continue
			}
			s.goalIDs = append(s.goalIDs, s.addGuardLocked(ctx, s.sp.Clone(st), roadmap.GuardGoal))
		}
		if len(s.goalIDs) == 0 {
			return ErrNoGoalState
		}
	}

	return nil
}

// haveSolutionLocked returns the first start/goal pair lying in the
// same connected component of the roadmap.
func (s *SPARS) haveSolutionLocked() (roadmap.ID, roadmap.ID, bool) {
	for _, st := range s.startIDs {
		for _, gl := range s.goalIDs {
			if s.g.SameComponent(st, gl) {
				return st, gl, true
			}
		}
	}

	return 0, 0, false
}
