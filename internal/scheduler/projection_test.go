package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlayers() []Player {
	return []Player{
		{ID: "a", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "b", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
}

func TestProjectNoEventsSplitsMinutesByStartingLineup(t *testing.T) {
	players := samplePlayers()
	starting := map[string]bool{"a": true, "b": false}

	projections, err := Project(players, starting, nil, 90)
	require.NoError(t, err)

	assert.Equal(t, 90.0, projections["a"].ProjectedMinutes)
	assert.Equal(t, 0.0, projections["b"].ProjectedMinutes)
	assert.Equal(t, 45.0, projections["a"].TargetMinutes)
}

func TestProjectOneSwapSplitsMinutesAtEventTime(t *testing.T) {
	players := samplePlayers()
	starting := map[string]bool{"a": true, "b": false}
	events := []SubstitutionEvent{
		{TimeMinutes: 60, FieldPlayerID: "a", BenchPlayerID: "b"},
	}

	projections, err := Project(players, starting, events, 90)
	require.NoError(t, err)

	assert.Equal(t, 60.0, projections["a"].ProjectedMinutes)
	assert.Equal(t, 30.0, projections["b"].ProjectedMinutes)
	assert.Equal(t, 1, projections["a"].ActualBenchCount)
	assert.Equal(t, [][2]float64{{0, 60}}, projections["a"].OnFieldIntervals)
	assert.Equal(t, [][2]float64{{60, 90}}, projections["b"].OnFieldIntervals)
}

func TestProjectRejectsEventWhenFieldPlayerAlreadyOffPitch(t *testing.T) {
	players := samplePlayers()
	starting := map[string]bool{"a": true, "b": false}
	events := []SubstitutionEvent{
		{TimeMinutes: 30, FieldPlayerID: "b", BenchPlayerID: "a"},
	}

	_, err := Project(players, starting, events, 90)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleInconsistent)
}

func TestProjectRejectsEventWhenBenchPlayerAlreadyOnPitch(t *testing.T) {
	players := samplePlayers()
	starting := map[string]bool{"a": true, "b": false}
	events := []SubstitutionEvent{
		{TimeMinutes: 30, FieldPlayerID: "a", BenchPlayerID: "a"},
	}

	_, err := Project(players, starting, events, 90)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScheduleInconsistent)
}
