package matching

import (
	"sort"

	"github.com/uni-verse/universe-backend/internal/logger"
)

// SubjectRestrictions echoes the restriction metadata applied to a request so
// callers can see why interests were filtered.
type SubjectRestrictions struct {
	HSCGroup          string   `json:"hsc_group"`
	AllowedInterests  []string `json:"allowed_interests"`
	FilteredInterests []string `json:"filtered_interests"`
}

// MatchResult is the engine output: the ranked offerings plus restriction
// metadata. Entirely request-scoped; nothing is persisted or cached.
type MatchResult struct {
	MatchedOfferings    []ScoredOffering    `json:"matched_offerings"`
	TotalMatches        int                 `json:"total_matches"`
	SubjectRestrictions SubjectRestrictions `json:"subject_restrictions"`
}

// Engine runs the scoring and ranking pass. Stateless; a single instance is
// shared across requests.
type Engine struct {
	log *logger.Logger
}

func NewEngine(baseLog *logger.Logger) *Engine {
	return &Engine{log: baseLog.With("component", "MatchEngine")}
}

// Match scores every candidate against the profile, drops those under the
// threshold, and orders the rest: positive priority scores first (descending),
// then the zero-priority partition by match score, ties stable in retrieval
// order. Candidates are read, never mutated, so repeated calls over the same
// inputs yield identical output.
func (e *Engine) Match(profile StudentProfile, candidates []CandidateOffering) *MatchResult {
	allowed := profile.Group.AllowedInterests()
	filtered := profile.Group.FilterInterests(profile.Interests)

	scored := make([]ScoredOffering, 0, len(candidates))
	for _, c := range candidates {
		score, explanations, compatible := scoreOffering(profile, c, filtered)
		if score < scoreThreshold {
			continue
		}
		so := newScoredOffering(c, score, explanations, compatible)
		so.priority = priorityScore(profile, c, filtered)
		scored = append(scored, so)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if a.priority == 0 && a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		return false
	})

	if e.log != nil {
		e.log.Debug("match pass complete",
			"candidates", len(candidates),
			"matched", len(scored),
			"group", profile.Group.String(),
		)
	}

	return &MatchResult{
		MatchedOfferings: scored,
		TotalMatches:     len(scored),
		SubjectRestrictions: SubjectRestrictions{
			HSCGroup:          profile.GroupLabel,
			AllowedInterests:  allowed,
			FilteredInterests: filtered,
		},
	}
}
