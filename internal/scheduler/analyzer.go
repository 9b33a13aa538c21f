// internal/scheduler/analyzer.go
// C6: multi-combination analyzer. Runs the scheduler for every
// k in [1, benchSize] and recommends the k with minimum variance in
// projected minutes.

package scheduler

import "gonum.org/v1/gonum/stat"

// Recommend runs the scheduler once per k in [1, benchSize] (bench size
// derived from the roster) and returns every combination's metrics plus
// the recommended k. Ties in variance are broken in favor of the smaller
// k.
func Recommend(players []Player, baseCfg PlanConfig) (*MultiCombinationResult, error) {
	onFieldCount := 0
	for _, p := range players {
		if p.IsOnField {
			onFieldCount++
		}
	}
	benchSize := len(players) - onFieldCount
	if benchSize <= 0 {
		plan, err := Run(players, baseCfg)
		if err != nil {
			return nil, err
		}
		combo, err := combinationFor(plan, 0)
		if err != nil {
			return nil, err
		}
		return &MultiCombinationResult{Combinations: []Combination{combo}, RecommendedK: 0}, nil
	}

	result := &MultiCombinationResult{}
	bestVariance := 0.0
	haveBest := false

	for k := 1; k <= benchSize; k++ {
		cfg := baseCfg
		cfg.MaxSubsPerWindow = k

		plan, err := Run(players, cfg)
		if err != nil {
			return nil, err
		}

		combo, err := combinationFor(plan, k)
		if err != nil {
			return nil, err
		}
		result.Combinations = append(result.Combinations, combo)

		if !haveBest || combo.Variance < bestVariance {
			haveBest = true
			bestVariance = combo.Variance
			result.RecommendedK = k
		}
	}

	return result, nil
}

// combinationFor computes the variance/min/max summary for one plan.
func combinationFor(plan *SubstitutionPlan, k int) (Combination, error) {
	if len(plan.Projections) == 0 {
		return Combination{K: k, Plan: plan}, nil
	}

	values := make([]float64, 0, len(plan.Projections))
	for _, proj := range plan.Projections {
		values = append(values, proj.ProjectedMinutes)
	}

	_, variance := stat.MeanVariance(values, nil)
	// stat.MeanVariance returns the sample variance (n-1 denominator);
	// we want population variance (1/N), so rescale.
	n := float64(len(values))
	if n > 1 {
		variance = variance * (n - 1) / n
	} else {
		variance = 0
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	return Combination{
		K:            k,
		Plan:         plan,
		Variance:     variance,
		MinProjected: minV,
		MaxProjected: maxV,
	}, nil
}
