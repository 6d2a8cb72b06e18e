package matching

import (
	"fmt"
	"strings"
)

// Additive score deltas. The gate is a hard cutoff: anything under
// scoreThreshold is dropped from the result set, not merely ranked lower.
const (
	academicBonus      = 30
	groupDirectBonus   = 35
	groupOverrideBonus = 25
	groupPenalty       = 20
	budgetBonus        = 20
	locationBonus      = 10
	interestBonus      = 25
	scoreThreshold     = 50
)

// scoreOffering computes the additive match score for one candidate. Pure and
// deterministic: same profile and candidate always yield the same score,
// explanations, and compatibility flag.
func scoreOffering(p StudentProfile, c CandidateOffering, filteredInterests []string) (int, []string, bool) {
	score := 0
	var explanations []string
	academic := p.AcademicScore()

	if academic >= c.MinScorePct {
		score += academicBonus
		explanations = append(explanations, fmt.Sprintf("Academic score (%.1f%%) meets requirement (%.1f%%)", academic, c.MinScorePct))
	} else {
		explanations = append(explanations, fmt.Sprintf("Academic score (%.1f%%) below requirement (%.1f%%)", academic, c.MinScorePct))
	}

	// The subject stage is skipped entirely when either side is silent:
	// no declared group or no group requirement on the offering.
	subjectCompatible := false
	if len(c.RequiredGroups) > 0 && p.Group != GroupUnknown {
		if groupListed(p.Group, c.RequiredGroups) {
			score += groupDirectBonus
			subjectCompatible = true
			explanations = append(explanations, fmt.Sprintf("Subject group (%s) matches program requirement", p.Group))
		} else if p.Group.CompatibleWithTags(c.Tags) {
			score += groupOverrideBonus
			subjectCompatible = true
			explanations = append(explanations, fmt.Sprintf("Subject group (%s) is compatible with program field", p.Group))
		} else {
			score -= groupPenalty
			explanations = append(explanations, fmt.Sprintf("Subject group (%s) may not be suitable for this program", p.Group))
		}
	}

	if p.Budget >= c.AnnualFee {
		score += budgetBonus
		explanations = append(explanations, fmt.Sprintf("Budget (PKR %d) covers annual fees (PKR %d)", p.Budget, c.AnnualFee))
	} else {
		explanations = append(explanations, fmt.Sprintf("Budget (PKR %d) below annual fees (PKR %d)", p.Budget, c.AnnualFee))
	}

	if p.PreferredLocation != "" && strings.Contains(strings.ToLower(c.City), strings.ToLower(p.PreferredLocation)) {
		score += locationBonus
		explanations = append(explanations, fmt.Sprintf("Location preference (%s) matches campus city (%s)", p.PreferredLocation, c.City))
	}

	if len(c.Tags) > 0 && len(filteredInterests) > 0 {
		matches := interestIntersection(c.loweredTags(), filteredInterests)
		if len(matches) > 0 {
			score += interestBonus
			explanations = append(explanations, "Interest match: "+strings.Join(matches, ", "))
		} else {
			explanations = append(explanations, "No direct interest match, but program may still be suitable")
		}
	}

	return score, explanations, subjectCompatible
}

func groupListed(g SubjectGroup, requiredGroups []string) bool {
	for _, rg := range requiredGroups {
		if ParseSubjectGroup(rg) == g {
			return true
		}
	}
	return false
}

// interestIntersection returns the lowered tags that equal a filtered
// interest, in tag order.
func interestIntersection(loweredTags []string, interests []string) []string {
	interestSet := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		interestSet[strings.ToLower(in)] = struct{}{}
	}
	var matches []string
	seen := make(map[string]struct{})
	for _, tag := range loweredTags {
		if _, ok := interestSet[tag]; !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		matches = append(matches, tag)
	}
	return matches
}
