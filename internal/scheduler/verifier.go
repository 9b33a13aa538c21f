// internal/scheduler/verifier.go
// C7: verifier. Cross-checks two independently computed plans for
// equality. Never mutates either argument; returns a bool, never an
// error — a preview-vs-generated mismatch is a fact to report, not a
// failure to propagate.

package scheduler

import "math"

const verifyTolerance = 1e-4

// Verify reports whether a and b represent the same schedule: equal
// TargetMinutesPerPlayer, equal event count, and pairwise-equal events in
// order (time within tolerance, same field/bench ids).
func Verify(a, b *SubstitutionPlan) bool {
	if a == nil || b == nil {
		return a == b
	}

	if math.Abs(a.TargetMinutesPerPlayer-b.TargetMinutesPerPlayer) > verifyTolerance {
		return false
	}

	if len(a.Events) != len(b.Events) {
		return false
	}

	for i := range a.Events {
		ea, eb := a.Events[i], b.Events[i]
		if math.Abs(ea.TimeMinutes-eb.TimeMinutes) > verifyTolerance {
			return false
		}
		if ea.FieldPlayerID != eb.FieldPlayerID {
			return false
		}
		if ea.BenchPlayerID != eb.BenchPlayerID {
			return false
		}
	}

	return true
}
