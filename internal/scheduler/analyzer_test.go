package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCoversEveryKUpToBenchSize(t *testing.T) {
	players := rosterOf(8, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, WindowLengthMin: 10}

	result, err := Recommend(players, cfg)
	require.NoError(t, err)

	assert.Len(t, result.Combinations, 3) // bench size = 3
	for i, combo := range result.Combinations {
		assert.Equal(t, i+1, combo.K)
		assert.GreaterOrEqual(t, combo.Variance, 0.0)
	}
}

func TestRecommendPicksLowestVarianceK(t *testing.T) {
	players := rosterOf(8, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, WindowLengthMin: 10}

	result, err := Recommend(players, cfg)
	require.NoError(t, err)

	var best Combination
	haveBest := false
	for _, combo := range result.Combinations {
		if !haveBest || combo.Variance < best.Variance {
			best = combo
			haveBest = true
		}
	}
	assert.Equal(t, best.K, result.RecommendedK)
}

func TestRecommendWithNoBenchReturnsSingleCombination(t *testing.T) {
	players := rosterOf(5, 5)
	cfg := PlanConfig{TotalMatchMinutes: 90, WindowLengthMin: 10}

	result, err := Recommend(players, cfg)
	require.NoError(t, err)

	assert.Len(t, result.Combinations, 1)
	assert.Equal(t, 0, result.RecommendedK)
}
