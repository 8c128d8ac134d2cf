package plango

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SolveParallel races the given planners and returns the index of the
// first one to find an exact solution, cancelling the rest. Each
// planner must carry its own problem definition. When no planner
// solves, the index is -1 with StatusTimeout, or StatusUnknown with the
// first error if one failed. The termination condition, if given, must
// be safe for concurrent use.
func SolveParallel(ctx context.Context, cond TerminationCondition, planners ...*SPARS) (int, Status, error) {
	if len(planners) == 0 {
		return -1, StatusUnknown, errors.New("plango: no planners given")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu     sync.Mutex
		winner = -1
	)

	for i, p := range planners {
		i, p := i, p
		g.Go(func() error {
			status, err := p.Solve(ctx, cond)
			if err != nil {
				return err
			}

			if status == StatusExactSolution {
				mu.Lock()
				if winner == -1 {
					winner = i
				}
				mu.Unlock()
				cancel()
			}

			return nil
		})
	}

	err := g.Wait()

	if winner >= 0 {
		return winner, StatusExactSolution, nil
	}
	if err != nil {
		return -1, StatusUnknown, err
	}

	return -1, StatusTimeout, nil
}
