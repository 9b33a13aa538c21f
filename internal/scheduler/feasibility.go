// internal/scheduler/feasibility.go
// C2: feasibility oracle. Role counts on the pitch are a match-day
// contract with the coach; they must never drift during play.

package scheduler

// isFeasibleLineup reports whether the candidate on-field set, assigning
// each id the role held by the corresponding entry in `roleOf`, matches
// the required count for every role exactly.
//
// This does not consult a player's AllowedPositions — that check belongs
// to the round solver (C4), which verifies an incoming player may fill the
// slot vacated by the outgoing one. Here, "role" means the slot a player
// currently occupies on the candidate lineup.
func isFeasibleLineup(candidate map[string]bool, roleOf map[string]Role, requirement PositionRequirement) bool {
	counts := make(map[Role]int, len(requirement))
	for id, onField := range candidate {
		if !onField {
			continue
		}
		counts[roleOf[id]]++
	}

	for role, required := range requirement {
		if counts[role] != required {
			return false
		}
	}
	// Any role present in counts but not in requirement means an extra
	// role slipped onto the pitch — also infeasible.
	for role, count := range counts {
		if count != requirement[role] {
			return false
		}
	}
	return true
}

// requirementFromLineup derives the PositionRequirement from a starting
// on-field set — used to validate InvalidRoster (the starting lineup must
// satisfy its own derived requirement, trivially true unless roles are
// inconsistent) and as the fixed contract for the rest of the match.
func requirementFromLineup(onFieldIDs []string, roleOf map[string]Role) PositionRequirement {
	req := make(PositionRequirement)
	for _, id := range onFieldIDs {
		req[roleOf[id]]++
	}
	return req
}
