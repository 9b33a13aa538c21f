// internal/scheduler/roundsolver.go
// C4: round solver. For one substitution round, enumerates feasible
// off/on combinations up to size maxSubs, scores each by projected total
// deviation assuming no further swaps this match, and returns the best.
// Falls back to a greedy strategy when enumeration would exceed the
// documented bound (see maxEnumeratedSubsets in arithmetic.go).

package scheduler

import (
	"math"
	"sort"
)

type swapPair struct {
	Off string
	On  string
}

// roundInput is the read-only view the solver needs for one round. The
// scheduler (C5) owns all of this state and passes a snapshot in; the
// solver never mutates it.
type roundInput struct {
	time              float64
	totalMatchMinutes float64
	maxSubs           int
	players           map[string]Player
	onField           map[string]bool
	slotRole          map[string]Role
	minutesSoFar      map[string]float64
	targetSoFar       float64
	targetOverall     float64
	benchCount        map[string]int
	targetBenchCount  map[string]int
	cooldown          map[string]bool
	lastStateChange   map[string]float64 // -Inf for players never yet swapped
	minOnMinutes      float64
	minRestMinutes    float64
}

// solveRound returns the chosen swap set (possibly empty) and which
// strategy produced it.
func solveRound(in roundInput) ([]swapPair, Strategy) {
	eligibleOff := eligibleOffPlayers(in)
	eligibleOn := eligibleOnPlayers(in)

	maxSubs := in.maxSubs
	if len(eligibleOff) < maxSubs {
		maxSubs = len(eligibleOff)
	}
	if len(eligibleOn) < maxSubs {
		maxSubs = len(eligibleOn)
	}
	if maxSubs <= 0 {
		return nil, StrategyOptimal
	}

	if enumerationCount(len(eligibleOff), maxSubs) > maxEnumeratedSubsets {
		return solveRoundGreedy(in, eligibleOff, eligibleOn, maxSubs), StrategyGreedy
	}

	onRanked := rankOnCandidates(in, eligibleOn)

	var bestScore float64
	var bestOffSet []string
	var bestAssignment map[string]string
	haveBest := false

	for k := 1; k <= maxSubs; k++ {
		forEachSubset(eligibleOff, k, func(subset []string) {
			assignment, ok := assignGreedyWithinSubset(in, subset, onRanked)
			if !ok {
				return
			}
			score := scoreSwapSet(in, assignment)

			if !haveBest || isBetterCandidate(score, len(subset), subset, bestScore, len(bestOffSet), bestOffSet) {
				haveBest = true
				bestScore = score
				bestOffSet = append([]string(nil), subset...)
				bestAssignment = assignment
			}
		})
	}

	if !haveBest {
		return nil, StrategyOptimal
	}

	swaps := make([]swapPair, 0, len(bestOffSet))
	for _, off := range bestOffSet {
		swaps = append(swaps, swapPair{Off: off, On: bestAssignment[off]})
	}
	return swaps, StrategyOptimal
}

// isBetterCandidate implements the tie-break order: lower score wins; on
// an exact tie, larger k wins; on a further tie, lexicographically
// smaller off-id set wins.
func isBetterCandidate(score float64, k int, offSet []string, bestScore float64, bestK int, bestOffSet []string) bool {
	const eps = 1e-9
	if score < bestScore-eps {
		return true
	}
	if score > bestScore+eps {
		return false
	}
	if k != bestK {
		return k > bestK
	}
	sortedA := append([]string(nil), offSet...)
	sortedB := append([]string(nil), bestOffSet...)
	sort.Strings(sortedA)
	sort.Strings(sortedB)
	for i := 0; i < len(sortedA) && i < len(sortedB); i++ {
		if sortedA[i] != sortedB[i] {
			return sortedA[i] < sortedB[i]
		}
	}
	return false
}

func eligibleOffPlayers(in roundInput) []string {
	var out []string
	for id, onField := range in.onField {
		if !onField {
			continue
		}
		p := in.players[id]
		if p.IsLocked {
			continue
		}
		if in.benchCount[id] >= in.targetBenchCount[id] {
			continue
		}
		if in.cooldown[id] {
			continue
		}
		elapsed := elapsedSince(in.time, in.lastStateChange[id])
		if elapsed < in.minOnMinutes {
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func eligibleOnPlayers(in roundInput) []string {
	var out []string
	for id, onField := range in.onField {
		if onField {
			continue
		}
		elapsed := elapsedSince(in.time, in.lastStateChange[id])
		if elapsed < in.minRestMinutes {
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func elapsedSince(now, last float64) float64 {
	if math.IsInf(last, -1) {
		return math.Inf(1)
	}
	return now - last
}

// fairnessError is minutesSoFar - targetSoFar: positive means overplayed.
func fairnessError(in roundInput, id string) float64 {
	return in.minutesSoFar[id] - in.targetSoFar
}

// rankOnCandidates orders bench candidates by smallest current fairness
// error (most underplayed first), tie-broken by longest time since last
// benched, then by id for determinism.
func rankOnCandidates(in roundInput, eligibleOn []string) []string {
	ranked := append([]string(nil), eligibleOn...)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		fa, fb := fairnessError(in, a), fairnessError(in, b)
		if fa != fb {
			return fa < fb
		}
		ra, rb := elapsedSince(in.time, in.lastStateChange[a]), elapsedSince(in.time, in.lastStateChange[b])
		if ra != rb {
			return ra > rb
		}
		return a < b
	})
	return ranked
}

// assignGreedyWithinSubset builds an off->on assignment for the given
// off-subset by walking the subset in lexicographic order and, for each
// off player, taking the first not-yet-used ranked on-candidate who may
// fill that slot's role. Returns ok=false if any off player in the
// subset cannot be matched.
func assignGreedyWithinSubset(in roundInput, subset []string, onRanked []string) (map[string]string, bool) {
	used := make(map[string]bool, len(subset))
	assignment := make(map[string]string, len(subset))

	for _, off := range subset {
		role := in.slotRole[off]
		found := false
		for _, on := range onRanked {
			if used[on] {
				continue
			}
			if !in.players[on].CanPlay(role) {
				continue
			}
			assignment[off] = on
			used[on] = true
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}

	if !postSwapFeasible(in, assignment) {
		return nil, false
	}
	return assignment, true
}

// postSwapFeasible applies the candidate assignment to a copy of the
// current lineup and role map and confirms the positional-fit invariant
// still holds.
// Every individual swap is role-preserving by construction (the on player
// inherits the off player's slot role), so this should always pass; it is
// kept as an explicit safety gate rather than an assumption.
func postSwapFeasible(in roundInput, assignment map[string]string) bool {
	candidate := make(map[string]bool, len(in.onField))
	roleOf := make(map[string]Role, len(in.slotRole))
	for id, v := range in.onField {
		candidate[id] = v
	}
	for id, r := range in.slotRole {
		roleOf[id] = r
	}

	requirement := make(PositionRequirement)
	for id, onField := range candidate {
		if onField {
			requirement[roleOf[id]]++
		}
	}

	for off, on := range assignment {
		candidate[off] = false
		candidate[on] = true
		roleOf[on] = roleOf[off]
	}

	return isFeasibleLineup(candidate, roleOf, requirement)
}

// scoreSwapSet computes Σ_p |projected(p) - T| where projected assumes the
// given assignment is applied now and no further swaps occur before G.
func scoreSwapSet(in roundInput, assignment map[string]string) float64 {
	afterSwap := make(map[string]bool, len(in.onField))
	for id, v := range in.onField {
		afterSwap[id] = v
	}
	for off, on := range assignment {
		afterSwap[off] = false
		afterSwap[on] = true
	}

	remaining := in.totalMatchMinutes - in.time
	score := 0.0
	for id := range in.players {
		projected := in.minutesSoFar[id]
		if afterSwap[id] {
			projected += remaining
		}
		score += math.Abs(projected - in.targetOverall)
	}
	return score
}

// enumerationCount sums C(n, i) for i in [1, k] — the total number of
// subset evaluations the optimal solver would perform.
func enumerationCount(n, k int) int {
	total := 0
	for i := 1; i <= k; i++ {
		c := binomial(n, i)
		total += c
		if total > maxEnumeratedSubsets {
			return total
		}
	}
	return total
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// forEachSubset calls fn once for every k-subset of items, in
// lexicographic index order (stable, deterministic).
func forEachSubset(items []string, k int, fn func(subset []string)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	subset := make([]string, k)
	for {
		for i, idx := range indices {
			subset[i] = items[idx]
		}
		fn(subset)

		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// solveRoundGreedy implements the documented fallback: sort off-candidates
// by descending fairness error (most overplayed first), tie-broken by
// longest current on-field stint; for each, take the on-candidate that
// minimizes fairness error among those who can fill the vacated role and
// have not already been used this round.
func solveRoundGreedy(in roundInput, eligibleOff, eligibleOn []string, maxSubs int) []swapPair {
	offSorted := append([]string(nil), eligibleOff...)
	sort.Slice(offSorted, func(i, j int) bool {
		a, b := offSorted[i], offSorted[j]
		fa, fb := fairnessError(in, a), fairnessError(in, b)
		if fa != fb {
			return fa > fb
		}
		sa, sb := elapsedSince(in.time, in.lastStateChange[a]), elapsedSince(in.time, in.lastStateChange[b])
		if sa != sb {
			return sa > sb
		}
		return a < b
	})

	onRanked := rankOnCandidates(in, eligibleOn)
	used := make(map[string]bool, maxSubs)

	var swaps []swapPair
	for _, off := range offSorted {
		if len(swaps) >= maxSubs {
			break
		}
		role := in.slotRole[off]
		for _, on := range onRanked {
			if used[on] {
				continue
			}
			if !in.players[on].CanPlay(role) {
				continue
			}
			swaps = append(swaps, swapPair{Off: off, On: on})
			used[on] = true
			break
		}
	}
	return swaps
}
