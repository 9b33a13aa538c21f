// internal/scheduler/errors.go
// Sentinel errors surfaced at the facade boundary. ScheduleInconsistent
// should never reach a caller outside of tests.

package scheduler

import "errors"

var (
	// ErrInvalidConfig covers non-positive G, W, R, or N = 0.
	ErrInvalidConfig = errors.New("scheduler: invalid config")

	// ErrInvalidRoster covers duplicate ids, empty AllowedPositions, or a
	// starting lineup that does not satisfy its own positional requirement.
	ErrInvalidRoster = errors.New("scheduler: invalid roster")

	// ErrScheduleInconsistent signals a programming error: the projection
	// engine replayed an event whose field player was not on the pitch, or
	// whose bench player was not on the bench, at event time.
	ErrScheduleInconsistent = errors.New("scheduler: schedule inconsistent")
)
