package matching

import "strings"

// OfferingUniversity and OfferingCampus are the nested display shapes the
// frontend expects on each matched offering.
type OfferingUniversity struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

type OfferingCampus struct {
	City string `json:"city"`
}

// CandidateOffering is one row of the pre-aggregated candidate view: an
// offering joined with its program, campus and university, plus its tag,
// required-group and accepted-board sets. The engine never mutates it.
type CandidateOffering struct {
	OfferingID      uint
	ProgramID       uint
	ProgramName     string
	Discipline      string
	ProgramCode     string
	UniversityID    uint
	UniversityName  string
	Sector          string
	City            string
	MinScorePct     float64
	MinScoreType    string
	AnnualFee       int
	HostelAvailable bool
	OfferingCount   int
	Tags            []string
	RequiredGroups  []string
	AcceptedBoards  []string
}

func (c CandidateOffering) loweredTags() []string {
	lowered := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		lowered[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return lowered
}

// ScoredOffering is the per-request, ephemeral scoring result for one
// candidate. The priority value drives sort order only and is not part of the
// response body.
type ScoredOffering struct {
	OfferingID           uint               `json:"offering_id"`
	ProgramID            uint               `json:"program_id"`
	ProgramName          string             `json:"program_name"`
	Discipline           string             `json:"discipline"`
	ProgramCode          string             `json:"program_code"`
	University           OfferingUniversity `json:"university"`
	Campus               OfferingCampus     `json:"campus"`
	MinScorePct          float64            `json:"min_score_pct"`
	MinScoreType         string             `json:"min_score_type"`
	AnnualFee            int                `json:"annual_fee"`
	HostelAvailable      bool               `json:"hostel_available"`
	OfferingCount        int                `json:"offering_count"`
	Tags                 []string           `json:"tags"`
	RequiredGroups       []string           `json:"required_groups"`
	AcceptedBoards       []string           `json:"accepted_boards"`
	MatchScore           int                `json:"match_score"`
	MatchExplanation     []string           `json:"match_explanation"`
	SubjectCompatibility bool               `json:"subject_compatibility"`

	priority int
}

// PriorityScore exposes the sort-driving value for callers that want to
// inspect ranking decisions (debug tooling, tests).
func (s ScoredOffering) PriorityScore() int { return s.priority }

func newScoredOffering(c CandidateOffering, score int, explanations []string, compatible bool) ScoredOffering {
	return ScoredOffering{
		OfferingID:  c.OfferingID,
		ProgramID:   c.ProgramID,
		ProgramName: c.ProgramName,
		Discipline:  c.Discipline,
		ProgramCode: c.ProgramCode,
		University: OfferingUniversity{
			ID:     c.UniversityID,
			Name:   c.UniversityName,
			Sector: c.Sector,
		},
		Campus:               OfferingCampus{City: c.City},
		MinScorePct:          c.MinScorePct,
		MinScoreType:         c.MinScoreType,
		AnnualFee:            c.AnnualFee,
		HostelAvailable:      c.HostelAvailable,
		OfferingCount:        c.OfferingCount,
		Tags:                 append([]string(nil), c.Tags...),
		RequiredGroups:       append([]string(nil), c.RequiredGroups...),
		AcceptedBoards:       append([]string(nil), c.AcceptedBoards...),
		MatchScore:           score,
		MatchExplanation:     explanations,
		SubjectCompatibility: compatible,
	}
}
