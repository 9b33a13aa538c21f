package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOneRejectsEmptyRoster(t *testing.T) {
	_, err := PlanOne(nil, PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPlanOneRejectsNonPositiveConfig(t *testing.T) {
	players := rosterOf(5, 5)
	_, err := PlanOne(players, PlanConfig{TotalMatchMinutes: 0, MaxSubsPerWindow: 1, WindowLengthMin: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPlanOneRejectsDuplicateIDs(t *testing.T) {
	players := []Player{
		{ID: "a", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "a", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
	_, err := PlanOne(players, PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoster)
}

func TestPlanOneRejectsPlayerWithNoAllowedPositions(t *testing.T) {
	players := []Player{
		{ID: "a", Role: RoleForward, IsOnField: true, AllowedPositions: nil},
	}
	_, err := PlanOne(players, PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoster)
}

func TestPlanOneReturnsInfeasibleWhenBenchCannotCoverARole(t *testing.T) {
	players := []Player{
		{ID: "gk", Role: RoleGoalkeeper, IsOnField: true, AllowedPositions: map[Role]bool{RoleGoalkeeper: true}},
		{ID: "f1", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "bf", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
	plan, err := PlanOne(players, PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 1, WindowLengthMin: 10})
	require.NoError(t, err)
	assert.False(t, plan.IsFeasible)
	assert.NotEmpty(t, plan.Warnings)
	assert.Empty(t, plan.Events)
}

func TestPlanOneHappyPath(t *testing.T) {
	players := rosterOf(7, 5)
	plan, err := PlanOne(players, PlanConfig{TotalMatchMinutes: 90, MaxSubsPerWindow: 2, WindowLengthMin: 10})
	require.NoError(t, err)
	assert.True(t, plan.IsFeasible)
	assert.NotEmpty(t, plan.Events)
}

func TestRecommendConfigValidatesInputs(t *testing.T) {
	_, err := RecommendConfig(nil, 90, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	players := rosterOf(6, 4)
	result, err := RecommendConfig(players, 90, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Combinations)
}
