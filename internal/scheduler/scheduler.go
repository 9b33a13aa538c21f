// internal/scheduler/scheduler.go
// C5: scheduler. Orchestrates rounds across the match, owns all mutable
// rotation state for the duration of one computation, and performs the
// single late balancing pass.

package scheduler

import (
	"math"
	"sort"
)

// Run computes a SubstitutionPlan for the given roster and config. It
// never fails on valid input; InvalidConfig/InvalidRoster are surfaced by
// the facade (C8) before Run is ever called. An internally inconsistent
// starting lineup (mismatched role counts against itself) cannot occur
// here since the requirement is derived from that same lineup.
func Run(players []Player, cfg PlanConfig) (*SubstitutionPlan, error) {
	n := len(players)
	roleOf := make(map[string]Role, n)
	onField := make(map[string]bool, n)
	allPlayers := make(map[string]Player, n)
	var onFieldIDs []string
	var orderedIDs []string

	for _, p := range players {
		roleOf[p.ID] = p.Role
		onField[p.ID] = p.IsOnField
		allPlayers[p.ID] = p
		orderedIDs = append(orderedIDs, p.ID)
		if p.IsOnField {
			onFieldIDs = append(onFieldIDs, p.ID)
		}
	}

	onFieldCount := len(onFieldIDs)
	benchCount0 := n - onFieldCount
	target := targetMinutes(cfg.TotalMatchMinutes, onFieldCount, n)

	plan := &SubstitutionPlan{
		Projections:            map[string]PlayerProjection{},
		TargetMinutesPerPlayer: target,
		IsFeasible:             true,
	}

	if n == 0 || onFieldCount == 0 {
		return plan, nil
	}

	if benchCount0 == 0 {
		plan.Warnings = append(plan.Warnings, "no bench players available; no substitutions possible")
		return finalizeNoSwaps(players, onField, cfg, plan)
	}

	numRounds := rounds(cfg.TotalMatchMinutes, cfg.WindowLengthMin)
	if numRounds == 0 {
		plan.Warnings = append(plan.Warnings, "window length exceeds match length; no substitution rounds scheduled")
		return finalizeNoSwaps(players, onField, cfg, plan)
	}

	intervals := intervalCount(numRounds)
	intervalMin := intervalLength(cfg.TotalMatchMinutes, intervals)
	slotsTotal := benchSlotsTotal(intervals, benchCount0)
	quotas := benchQuotas(orderedIDs, slotsTotal)

	slotRole := make(map[string]Role, n)
	for _, id := range onFieldIDs {
		slotRole[id] = roleOf[id]
	}

	minutesSoFar := make(map[string]float64, n)
	benchCount := make(map[string]int, n)
	cooldown := make(map[string]bool, n)
	lastStateChange := make(map[string]float64, n)
	for _, id := range orderedIDs {
		lastStateChange[id] = math.Inf(-1)
	}

	var events []SubstitutionEvent
	var roundSnapshots [][]string
	var strategyPerRound []Strategy

	previousRoundTime := 0.0
	for r := 1; r <= numRounds; r++ {
		t := roundTimestamp(r, cfg.WindowLengthMin, cfg.TotalMatchMinutes)
		delta := t - previousRoundTime

		for id, on := range onField {
			if on {
				minutesSoFar[id] += delta
			}
		}

		targetSoFar := t * float64(onFieldCount) / float64(n)

		in := roundInput{
			time:              t,
			totalMatchMinutes: cfg.TotalMatchMinutes,
			maxSubs:           cfg.MaxSubsPerWindow,
			players:           allPlayers,
			onField:           onField,
			slotRole:          slotRole,
			minutesSoFar:      minutesSoFar,
			targetSoFar:       targetSoFar,
			targetOverall:     target,
			benchCount:        benchCount,
			targetBenchCount:  quotas,
			cooldown:          cooldown,
			lastStateChange:   lastStateChange,
			minOnMinutes:      cfg.MinOnMinutes,
			minRestMinutes:    cfg.MinRestMinutes,
		}

		swaps, strategy := solveRound(in)

		benchedThisRound := make(map[string]bool, len(swaps))
		for _, sw := range swaps {
			events = append(events, SubstitutionEvent{
				TimeMinutes:   t,
				FieldPlayerID: sw.Off,
				BenchPlayerID: sw.On,
			})

			role := slotRole[sw.Off]
			delete(slotRole, sw.Off)
			slotRole[sw.On] = role

			onField[sw.Off] = false
			onField[sw.On] = true

			benchCount[sw.Off]++
			lastStateChange[sw.Off] = t
			lastStateChange[sw.On] = t
			cooldown[sw.Off] = true
			benchedThisRound[sw.Off] = true
		}

		for _, id := range orderedIDs {
			if !benchedThisRound[id] {
				cooldown[id] = false
			}
		}

		snapshot := make([]string, 0, onFieldCount)
		for id, on := range onField {
			if on {
				snapshot = append(snapshot, id)
			}
		}
		roundSnapshots = append(roundSnapshots, snapshot)
		strategyPerRound = append(strategyPerRound, strategy)

		previousRoundTime = t
	}

	for id, on := range onField {
		if on {
			minutesSoFar[id] += cfg.TotalMatchMinutes - previousRoundTime
		}
	}

	events = applyBalancingPass(
		players, onField, slotRole, minutesSoFar,
		cfg, target, intervalMin, previousRoundTime, events, &plan.Warnings,
	)

	projections, err := Project(players, startingOnFieldSet(players), events, cfg.TotalMatchMinutes)
	if err != nil {
		return nil, err
	}
	for id, proj := range projections {
		proj.TargetBenchCount = quotas[id]
		projections[id] = proj
	}

	plan.Events = events
	plan.Projections = projections
	plan.RoundSnapshots = roundSnapshots
	plan.StrategyPerRound = strategyPerRound
	return plan, nil
}

func startingOnFieldSet(players []Player) map[string]bool {
	out := make(map[string]bool, len(players))
	for _, p := range players {
		out[p.ID] = p.IsOnField
	}
	return out
}

// finalizeNoSwaps handles the B=0 and rounds=0 edge cases: on-field
// players receive the full match, bench players receive nothing.
func finalizeNoSwaps(players []Player, onField map[string]bool, cfg PlanConfig, plan *SubstitutionPlan) (*SubstitutionPlan, error) {
	projections, err := Project(players, onField, nil, cfg.TotalMatchMinutes)
	if err != nil {
		return nil, err
	}
	plan.Projections = projections
	return plan, nil
}

// applyBalancingPass implements a single late corrective swap. It finds
// the most-over and most-under players relative to tolerance
// τ = intervalMin/2 and, if an eligible pair exists, appends one more
// swap at t_bal = G - intervalMin, clamped to never precede the last
// scheduled round, and re-sorts events so the projection replay below
// still sees an ascending timeline. The caller re-runs the projection
// engine over the full event list afterward, so minutes here are only
// used to pick the pair — never patched in place.
func applyBalancingPass(
	players []Player,
	onField map[string]bool,
	slotRole map[string]Role,
	minutesSoFar map[string]float64,
	cfg PlanConfig,
	target float64,
	intervalMin float64,
	lastRoundTime float64,
	events []SubstitutionEvent,
	warnings *[]string,
) []SubstitutionEvent {
	tau := intervalMin / 2

	var overID, underID string
	overDev, underDev := tau, tau
	foundOver, foundUnder := false, false

	for _, p := range players {
		dev := minutesSoFar[p.ID] - target
		if dev > tau && (!foundOver || dev > overDev) {
			overID = p.ID
			overDev = dev
			foundOver = true
		}

		underDevCandidate := target - minutesSoFar[p.ID]
		if underDevCandidate > tau && (!foundUnder || underDevCandidate > underDev) {
			underID = p.ID
			underDev = underDevCandidate
			foundUnder = true
		}
	}

	if !foundOver || !foundUnder {
		return events
	}

	underPlayer := findPlayer(players, underID)

	if !onField[overID] || onField[underID] {
		*warnings = append(*warnings, "balancing pass skipped: over/under players not in expected on-field state")
		return events
	}
	if !underPlayer.CanPlay(slotRole[overID]) {
		*warnings = append(*warnings, "balancing pass skipped: no eligible role fit for the most under-played player")
		return events
	}

	tBal := cfg.TotalMatchMinutes - intervalMin
	if tBal < 0 {
		tBal = 0
	}
	if tBal < lastRoundTime {
		tBal = lastRoundTime
	}

	events = append(events, SubstitutionEvent{
		TimeMinutes:   tBal,
		FieldPlayerID: overID,
		BenchPlayerID: underID,
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TimeMinutes < events[j].TimeMinutes
	})

	return events
}

func findPlayer(players []Player, id string) Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return Player{}
}
