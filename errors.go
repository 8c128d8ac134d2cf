package plango

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProblemDefinition is returned by Solve when no problem
	// definition has been set.
	ErrNoProblemDefinition = errors.New("no problem definition set")

	// ErrNoStartState is returned when the problem definition holds no
	// valid start state.
	ErrNoStartState = errors.New("no valid start state")

	// ErrNoGoalState is returned when the problem definition holds no
	// valid goal state.
	ErrNoGoalState = errors.New("no valid goal state")
)

// ErrInvalidOption indicates a planner option set to an unusable value.
type ErrInvalidOption struct {
	Option string
	Reason string
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}
