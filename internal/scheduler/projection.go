// internal/scheduler/projection.go
// C3: projection engine. Replays an event list against a starting on-field
// set to reconstruct, per player, minutes played, minutes on the bench,
// bench-event count, and on-field intervals.

package scheduler

import "fmt"

// Project replays events (must already be sorted ascending by TimeMinutes)
// against the starting on-field set and returns one PlayerProjection per
// player. It returns ErrScheduleInconsistent if an event's field player is
// not on the pitch, or its bench player is not on the bench, at event time
// — this indicates a caller bug (a hand-built or corrupted event list), not
// a condition the scheduler itself can produce.
func Project(players []Player, startingOnField map[string]bool, events []SubstitutionEvent, totalMatchMinutes float64) (map[string]PlayerProjection, error) {
	onField := make(map[string]bool, len(startingOnField))
	for id, v := range startingOnField {
		onField[id] = v
	}

	onMinutes := make(map[string]float64, len(players))
	offMinutes := make(map[string]float64, len(players))
	benchEvents := make(map[string]int, len(players))
	intervalStart := make(map[string]float64, len(players))
	intervals := make(map[string][][2]float64, len(players))

	for _, p := range players {
		if onField[p.ID] {
			intervalStart[p.ID] = 0
		}
	}

	lastTime := 0.0
	accrue := func(upTo float64) {
		delta := upTo - lastTime
		if delta < 0 {
			delta = 0
		}
		for _, p := range players {
			if onField[p.ID] {
				onMinutes[p.ID] += delta
			} else {
				offMinutes[p.ID] += delta
			}
		}
		lastTime = upTo
	}

	for _, ev := range events {
		accrue(ev.TimeMinutes)

		if !onField[ev.FieldPlayerID] {
			return nil, fmt.Errorf("%w: field player %s not on pitch at t=%.4f", ErrScheduleInconsistent, ev.FieldPlayerID, ev.TimeMinutes)
		}
		if onField[ev.BenchPlayerID] {
			return nil, fmt.Errorf("%w: bench player %s not on bench at t=%.4f", ErrScheduleInconsistent, ev.BenchPlayerID, ev.TimeMinutes)
		}

		if start, ok := intervalStart[ev.FieldPlayerID]; ok {
			intervals[ev.FieldPlayerID] = append(intervals[ev.FieldPlayerID], [2]float64{start, ev.TimeMinutes})
		}
		delete(intervalStart, ev.FieldPlayerID)
		intervalStart[ev.BenchPlayerID] = ev.TimeMinutes

		onField[ev.FieldPlayerID] = false
		onField[ev.BenchPlayerID] = true
		benchEvents[ev.FieldPlayerID]++
	}

	accrue(totalMatchMinutes)

	for id, start := range intervalStart {
		intervals[id] = append(intervals[id], [2]float64{start, totalMatchMinutes})
	}

	onFieldCount := 0
	for _, v := range startingOnField {
		if v {
			onFieldCount++
		}
	}
	target := targetMinutes(totalMatchMinutes, onFieldCount, len(players))

	out := make(map[string]PlayerProjection, len(players))
	for _, p := range players {
		out[p.ID] = PlayerProjection{
			PlayerID:         p.ID,
			ProjectedMinutes: onMinutes[p.ID],
			TargetMinutes:    target,
			Deviation:        onMinutes[p.ID] - target,
			ActualBenchCount: benchEvents[p.ID],
			OffFieldMinutes:  offMinutes[p.ID],
			OnFieldIntervals: intervals[p.ID],
		}
	}
	return out, nil
}
