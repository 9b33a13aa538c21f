package scheduler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func playerMap(players ...Player) map[string]Player {
	out := make(map[string]Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out
}

func TestSolveRoundPicksMostOverplayedOffAndMostUnderplayedOn(t *testing.T) {
	players := []Player{
		{ID: "over", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "bench1", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "bench2", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}

	in := roundInput{
		time:              30,
		totalMatchMinutes: 90,
		maxSubs:           1,
		players:           playerMap(players...),
		onField:           map[string]bool{"over": true, "bench1": false, "bench2": false},
		slotRole:          map[string]Role{"over": RoleForward},
		minutesSoFar:      map[string]float64{"over": 30, "bench1": 0, "bench2": 0},
		targetSoFar:       10,
		targetOverall:     30,
		benchCount:        map[string]int{},
		targetBenchCount:  map[string]int{"over": 2, "bench1": 2, "bench2": 2},
		cooldown:          map[string]bool{},
		lastStateChange:   map[string]float64{"over": math.Inf(-1), "bench1": math.Inf(-1), "bench2": math.Inf(-1)},
	}

	swaps, strategy := solveRound(in)
	assert.Equal(t, StrategyOptimal, strategy)
	if assert.Len(t, swaps, 1) {
		assert.Equal(t, "over", swaps[0].Off)
		assert.Contains(t, []string{"bench1", "bench2"}, swaps[0].On)
	}
}

func TestSolveRoundSkipsPlayerOverBenchQuota(t *testing.T) {
	players := []Player{
		{ID: "over", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "bench1", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
	in := roundInput{
		time:              30,
		totalMatchMinutes: 90,
		maxSubs:           1,
		players:           playerMap(players...),
		onField:           map[string]bool{"over": true, "bench1": false},
		slotRole:          map[string]Role{"over": RoleForward},
		minutesSoFar:      map[string]float64{"over": 30, "bench1": 0},
		targetSoFar:       10,
		targetOverall:     30,
		benchCount:        map[string]int{"over": 2},
		targetBenchCount:  map[string]int{"over": 2, "bench1": 2},
		cooldown:          map[string]bool{},
		lastStateChange:   map[string]float64{"over": math.Inf(-1), "bench1": math.Inf(-1)},
	}

	swaps, _ := solveRound(in)
	assert.Empty(t, swaps)
}

func TestSolveRoundRespectsCooldown(t *testing.T) {
	players := []Player{
		{ID: "a", Role: RoleForward, IsOnField: true, AllowedPositions: map[Role]bool{RoleForward: true}},
		{ID: "b", Role: RoleForward, IsOnField: false, AllowedPositions: map[Role]bool{RoleForward: true}},
	}
	in := roundInput{
		time:              30,
		totalMatchMinutes: 90,
		maxSubs:           1,
		players:           playerMap(players...),
		onField:           map[string]bool{"a": true, "b": false},
		slotRole:          map[string]Role{"a": RoleForward},
		minutesSoFar:      map[string]float64{"a": 30, "b": 0},
		targetSoFar:       10,
		targetOverall:     30,
		benchCount:        map[string]int{},
		targetBenchCount:  map[string]int{"a": 2, "b": 2},
		cooldown:          map[string]bool{"a": true},
		lastStateChange:   map[string]float64{"a": math.Inf(-1), "b": math.Inf(-1)},
	}

	swaps, _ := solveRound(in)
	assert.Empty(t, swaps)
}

func TestEnumerationCountFallsBackToGreedyBeyondBound(t *testing.T) {
	assert.Greater(t, enumerationCount(100, 3), maxEnumeratedSubsets)
}

func TestForEachSubsetVisitsEveryKSubsetOnce(t *testing.T) {
	var seen [][]string
	forEachSubset([]string{"a", "b", "c"}, 2, func(subset []string) {
		cp := append([]string(nil), subset...)
		seen = append(seen, cp)
	})

	assert.Len(t, seen, 3)
	assert.Contains(t, seen, []string{"a", "b"})
	assert.Contains(t, seen, []string{"a", "c"})
	assert.Contains(t, seen, []string{"b", "c"})
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, binomial(5, 0))
	assert.Equal(t, 5, binomial(5, 1))
	assert.Equal(t, 10, binomial(5, 2))
	assert.Equal(t, 0, binomial(5, 6))
}
