// internal/scheduler/facade.go
// C8: public facade. Validates inputs and dispatches to the scheduler
// (C5) or analyzer (C6). This is the only entry point external
// collaborators (persistence, HTTP handlers, the websocket hub) should
// call — they never reach into roundsolver.go or scheduler.go directly.

package scheduler

import "fmt"

// PlanOne validates the snapshot and config, then runs the scheduler
// once. On an infeasible starting lineup (no bench player can ever fill a
// required role), it returns a plan with empty events and IsFeasible set
// to false rather than an error — this is a degraded result, not a
// failure.
func PlanOne(players []Player, cfg PlanConfig) (*SubstitutionPlan, error) {
	if err := validateConfig(cfg, len(players)); err != nil {
		return nil, err
	}
	if err := validateRoster(players); err != nil {
		return nil, err
	}

	if !hasFeasibleBenchCoverage(players) {
		return planNoSwapInfeasible(players, cfg)
	}

	return Run(players, cfg)
}

// RecommendConfig validates the snapshot, then runs the analyzer (C6)
// for every k in [1, benchSize].
func RecommendConfig(players []Player, gameMinutes, windowLengthMin float64) (*MultiCombinationResult, error) {
	baseCfg := PlanConfig{
		TotalMatchMinutes: gameMinutes,
		MaxSubsPerWindow:  1,
		WindowLengthMin:   windowLengthMin,
	}
	if err := validateConfig(baseCfg, len(players)); err != nil {
		return nil, err
	}
	if err := validateRoster(players); err != nil {
		return nil, err
	}
	return Recommend(players, baseCfg)
}

func validateConfig(cfg PlanConfig, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: roster is empty", ErrInvalidConfig)
	}
	if cfg.TotalMatchMinutes <= 0 {
		return fmt.Errorf("%w: totalMatchMinutes must be positive", ErrInvalidConfig)
	}
	if cfg.MaxSubsPerWindow <= 0 {
		return fmt.Errorf("%w: maxSubsPerWindow must be positive", ErrInvalidConfig)
	}
	if cfg.WindowLengthMin <= 0 {
		return fmt.Errorf("%w: windowLengthMinutes must be positive", ErrInvalidConfig)
	}
	return nil
}

func validateRoster(players []Player) error {
	seen := make(map[string]bool, len(players))
	onFieldCount := 0

	for _, p := range players {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate player id %q", ErrInvalidRoster, p.ID)
		}
		seen[p.ID] = true

		if len(p.AllowedPositions) == 0 {
			return fmt.Errorf("%w: player %q has no allowed positions", ErrInvalidRoster, p.ID)
		}
		if p.IsOnField {
			onFieldCount++
		}
	}

	if onFieldCount == 0 {
		return nil // F = 0 (nobody starts on field) is handled by Run, not an error here
	}

	roleOf := make(map[string]Role, len(players))
	var onFieldIDs []string
	for _, p := range players {
		roleOf[p.ID] = p.Role
		if p.IsOnField {
			onFieldIDs = append(onFieldIDs, p.ID)
		}
	}
	requirement := requirementFromLineup(onFieldIDs, roleOf)

	candidate := make(map[string]bool, len(players))
	for _, id := range onFieldIDs {
		candidate[id] = true
	}
	if !isFeasibleLineup(candidate, roleOf, requirement) {
		return fmt.Errorf("%w: starting lineup does not satisfy its own derived positional requirement", ErrInvalidRoster)
	}

	return nil
}

// hasFeasibleBenchCoverage reports whether, for every role present in the
// starting requirement, at least one bench player can fill it — a
// necessary (not sufficient, but cheap and useful) condition for the
// match to be playable to completion without ever stranding a role.
func hasFeasibleBenchCoverage(players []Player) bool {
	requiredRoles := make(map[Role]bool)
	benchCanPlay := make(map[Role]bool)

	for _, p := range players {
		if p.IsOnField {
			requiredRoles[p.Role] = true
		} else {
			for role, ok := range p.AllowedPositions {
				if ok {
					benchCanPlay[role] = true
				}
			}
		}
	}

	for role := range requiredRoles {
		if !benchCanPlay[role] {
			return false
		}
	}
	return true
}

// planNoSwapInfeasible handles the infeasible-lineup disposition: empty
// events, projections computed for the no-swap world (every player keeps
// whatever on/off state they started in for the full match), exactly like
// the B=0 path in Run.
func planNoSwapInfeasible(players []Player, cfg PlanConfig) (*SubstitutionPlan, error) {
	onField := make(map[string]bool, len(players))
	onFieldCount := 0
	for _, p := range players {
		onField[p.ID] = p.IsOnField
		if p.IsOnField {
			onFieldCount++
		}
	}

	plan := &SubstitutionPlan{
		Projections:            map[string]PlayerProjection{},
		TargetMinutesPerPlayer: targetMinutes(cfg.TotalMatchMinutes, onFieldCount, len(players)),
		IsFeasible:             false,
		Warnings:               []string{"starting lineup is infeasible to maintain: no bench player can cover a required role"},
	}

	return finalizeNoSwaps(players, onField, cfg, plan)
}
