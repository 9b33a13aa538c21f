package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterOf(n, onField int) []Player {
	players := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		players = append(players, Player{
			ID:               id,
			Role:             RoleForward,
			IsOnField:        i < onField,
			AllowedPositions: map[Role]bool{RoleForward: true},
		})
	}
	return players
}

func TestRunWithNoBenchReturnsNoSwapsButProjections(t *testing.T) {
	players := rosterOf(5, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)

	assert.Empty(t, plan.Events)
	assert.NotEmpty(t, plan.Warnings)
	for _, proj := range plan.Projections {
		assert.Equal(t, 90.0, proj.ProjectedMinutes)
	}
}

func TestRunWithZeroOnFieldReturnsEmptyPlan(t *testing.T) {
	players := rosterOf(5, 0)
	cfg := PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)
	assert.Empty(t, plan.Projections)
}

func TestRunEqualizesMinutesAcrossARoster(t *testing.T) {
	players := rosterOf(7, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 2, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Events)

	target := plan.TargetMinutesPerPlayer
	for id, proj := range plan.Projections {
		assert.InDelta(t, target, proj.ProjectedMinutes, 20, "player %s deviates too far from target", id)
	}
}

func TestRunNeverExceedsBenchQuota(t *testing.T) {
	players := rosterOf(7, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 2, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)

	benchedCount := make(map[string]int)
	for _, ev := range plan.Events {
		benchedCount[ev.FieldPlayerID]++
	}

	quotas := benchQuotas(idsOf(players), benchSlotsTotal(intervalCount(rounds(90, 10)), 2))
	for id, count := range benchedCount {
		assert.LessOrEqual(t, count, quotas[id], "player %s benched more than its quota allows", id)
	}
}

func TestRunEveryRoundPreservesPositionalRequirement(t *testing.T) {
	players := []Player{
		{ID: "gk", Role: RoleGoalkeeper, IsOnField: true, AllowedPositions: map[Role]bool{RoleGoalkeeper: true}},
		{ID: "d1", Role: RoleDefender, IsOnField: true, AllowedPositions: map[Role]bool{RoleDefender: true}},
		{ID: "d2", Role: RoleDefender, IsOnField: true, AllowedPositions: map[Role]bool{RoleDefender: true}},
		{ID: "f1", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "bd", Role: RoleDefender, IsOnField: false, AllowedPositions: map[Role]bool{RoleDefender: true}},
		{ID: "bf", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
	cfg := PlanConfig{TotalMatchMinutes: 60, MaxSubsPerWindow: 1, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)

	roleOf := map[string]Role{"gk": RoleGoalkeeper, "d1": RoleDefender, "d2": RoleDefender, "f1": RoleForward, "bd": RoleDefender, "bf": RoleForward}
	requirement := PositionRequirement{RoleGoalkeeper: 1, RoleDefender: 2, RoleForward: 1}

	for _, snapshot := range plan.RoundSnapshots {
		candidate := make(map[string]bool)
		for _, id := range snapshot {
			candidate[id] = true
		}
		assert.True(t, isFeasibleLineup(candidate, roleOf, requirement), "snapshot %v violates positional requirement", snapshot)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	players := rosterOf(9, 6)
	cfg := PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 2, WindowLengthMin: 15}

	planA, err := Run(players, cfg)
	require.NoError(t, err)
	planB, err := Run(players, cfg)
	require.NoError(t, err)

	assert.True(t, Verify(planA, planB))
}

func TestRunEventsStayAscendingWhenBalancingPassFires(t *testing.T) {
	// G=40, W=10 is an exact multiple: the last regular round fires at
	// t=G, so a naive t_bal=G-intervalMin would append out of order.
	players := rosterOf(7, 5)
	cfg := PlanConfig{TotalMatchMinutes: 40, MaxSubsPerWindow: 1, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)

	for i := 1; i < len(plan.Events); i++ {
		assert.LessOrEqual(t, plan.Events[i-1].TimeMinutes, plan.Events[i].TimeMinutes, "events must be ascending by time")
	}
}

func TestRunConservesTotalMinutesWhenBalancingPassFires(t *testing.T) {
	players := rosterOf(7, 5)
	cfg := PlanConfig{TotalMatchMinutes: 40, MaxSubsPerWindow: 1, WindowLengthMin: 10}

	plan, err := Run(players, cfg)
	require.NoError(t, err)

	total := 0.0
	for _, proj := range plan.Projections {
		total += proj.ProjectedMinutes
	}
	assert.InDelta(t, cfg.TotalMatchMinutes*5, total, 1e-9, "sum of projected minutes must equal G x F exactly")
}

func idsOf(players []Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
