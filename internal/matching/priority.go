package matching

import "strings"

// priorityTierWeight converts a rank in [1,10] to its tier: rank 1 → 1000,
// rank 10 → 100. Ranks are clamped at parse time so the band holds.
func priorityTierWeight(rank int) int {
	return (11 - rank) * 100
}

// priorityScore computes the value that dominates sort order. With ranked
// priorities it is the single best-matching declared interest's tier plus any
// boost — max across pairs, never a sum. Without priorities it falls back to
// a flat count of tag/interest intersections.
func priorityScore(p StudentProfile, c CandidateOffering, filteredInterests []string) int {
	if len(c.Tags) == 0 || len(filteredInterests) == 0 {
		return 0
	}
	loweredTags := c.loweredTags()

	if p.HasPriorities {
		best := 0
		for _, ranked := range p.InterestPriorities {
			if !interestMatchesTags(ranked.Interest, loweredTags) {
				continue
			}
			current := priorityTierWeight(ranked.Priority)
			if cat, ok := LookupCategory(ranked.Interest); ok && containsAny(loweredTags, cat.BoostTags) {
				current += cat.boostAmount()
			}
			if current > best {
				best = current
			}
		}
		return best
	}

	return 100 * len(interestIntersection(loweredTags, filteredInterests))
}

// interestMatchesTags applies the taxonomy rule for known interests and a
// literal tag-equality test for everything else.
func interestMatchesTags(interest string, loweredTags []string) bool {
	if cat, ok := LookupCategory(interest); ok {
		return cat.MatchesTags(loweredTags)
	}
	lowered := strings.ToLower(strings.TrimSpace(interest))
	for _, tag := range loweredTags {
		if tag == lowered {
			return true
		}
	}
	return false
}
