package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFeasibleLineupMatchesExactCounts(t *testing.T) {
	roleOf := map[string]Role{
		"gk1": RoleGoalkeeper,
		"d1":  RoleDefender,
		"d2":  RoleDefender,
		"f1":  RoleForward,
	}
	requirement := PositionRequirement{
		RoleGoalkeeper: 1,
		RoleDefender:   2,
		RoleForward:    1,
	}
	candidate := map[string]bool{"gk1": true, "d1": true, "d2": true, "f1": true}

	assert.True(t, isFeasibleLineup(candidate, roleOf, requirement))
}

func TestIsFeasibleLineupRejectsShortfall(t *testing.T) {
	roleOf := map[string]Role{"gk1": RoleGoalkeeper, "d1": RoleDefender}
	requirement := PositionRequirement{RoleGoalkeeper: 1, RoleDefender: 2}
	candidate := map[string]bool{"gk1": true, "d1": true}

	assert.False(t, isFeasibleLineup(candidate, roleOf, requirement))
}

func TestIsFeasibleLineupRejectsExtraRole(t *testing.T) {
	roleOf := map[string]Role{"gk1": RoleGoalkeeper, "gk2": RoleGoalkeeper}
	requirement := PositionRequirement{RoleGoalkeeper: 1}
	candidate := map[string]bool{"gk1": true, "gk2": true}

	assert.False(t, isFeasibleLineup(candidate, roleOf, requirement))
}

func TestRequirementFromLineup(t *testing.T) {
	roleOf := map[string]Role{
		"gk1": RoleGoalkeeper,
		"d1":  RoleDefender,
		"d2":  RoleDefender,
	}
	req := requirementFromLineup([]string{"gk1", "d1", "d2"}, roleOf)

	assert.Equal(t, 1, req[RoleGoalkeeper])
	assert.Equal(t, 2, req[RoleDefender])
	assert.Equal(t, 0, req[RoleForward])
}
