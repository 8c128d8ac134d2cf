package plango

import "time"

// TerminationCondition reports whether a solve run should stop. It is
// polled between iterations, so a run ends at the next iteration
// boundary after the condition first returns true.
type TerminationCondition func() bool

// Never returns a condition that never fires. The run is bounded only
// by the failure budget and the caller's context.
func Never() TerminationCondition {
	return func() bool { return false }
}

// After returns a condition that fires once the given duration has
// elapsed, measured from the call to After.
func After(d time.Duration) TerminationCondition {
	deadline := time.Now().Add(d)

	return func() bool { return time.Now().After(deadline) }
}

// AnyOf returns a condition that fires as soon as any of the given
// conditions fires. Nil conditions are ignored.
func AnyOf(conds ...TerminationCondition) TerminationCondition {
	return func() bool {
		for _, c := range conds {
			if c != nil && c() {
				return true
			}
		}
		return false
	}
}
