package matching

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat accepts JSON numbers and numeric strings. Absent, empty, or
// malformed values decode to 0 rather than failing the request.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt behaves like FlexFloat for integer fields; fractional inputs are
// truncated.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		*i = 0
		return nil
	}
	*i = FlexInt(f)
	return nil
}

// InterestPriority is one student-ranked interest; rank 1 is most wanted.
type InterestPriority struct {
	Interest string  `json:"interest"`
	Priority FlexInt `json:"priority"`
}

// ProfilePayload is the wire shape of a match request.
type ProfilePayload struct {
	SSCPercentage      FlexFloat          `json:"sscPercentage"`
	HSCPercentage      FlexFloat          `json:"hscPercentage"`
	HSCGroup           string             `json:"hscGroup"`
	Interests          []string           `json:"interests"`
	InterestPriorities []InterestPriority `json:"interestPriorities"`
	Budget             FlexInt            `json:"budget"`
	PreferredLocation  string             `json:"preferredLocation"`
}

// RankedInterest is an interest with its clamped priority rank.
type RankedInterest struct {
	Interest string
	Priority int
}

// StudentProfile is the validated, immutable per-request input to the engine.
type StudentProfile struct {
	SSCPercentage      float64
	HSCPercentage      float64
	Group              SubjectGroup
	GroupLabel         string
	Interests          []string
	InterestPriorities []RankedInterest
	HasPriorities      bool
	Budget             int
	PreferredLocation  string
}

// AcademicScore is the student's best percentage across both exams.
func (p StudentProfile) AcademicScore() float64 {
	return math.Max(p.SSCPercentage, p.HSCPercentage)
}

func sanitizePercentage(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampPriority(p int) int {
	if p < 1 {
		return 1
	}
	if p > 10 {
		return 10
	}
	return p
}

// ParseProfile turns a raw payload into a StudentProfile. Malformed pieces
// degrade to safe defaults instead of rejecting the request: non-finite
// percentages and negative budgets become 0, priority ranks are clamped to
// [1,10], and an unrecognized group simply carries no allowance.
func ParseProfile(payload ProfilePayload) StudentProfile {
	profile := StudentProfile{
		SSCPercentage:     sanitizePercentage(float64(payload.SSCPercentage)),
		HSCPercentage:     sanitizePercentage(float64(payload.HSCPercentage)),
		Group:             ParseSubjectGroup(payload.HSCGroup),
		GroupLabel:        strings.TrimSpace(payload.HSCGroup),
		Budget:            int(payload.Budget),
		PreferredLocation: strings.TrimSpace(payload.PreferredLocation),
	}
	if profile.Budget < 0 {
		profile.Budget = 0
	}
	for _, in := range payload.Interests {
		if trimmed := strings.TrimSpace(in); trimmed != "" {
			profile.Interests = append(profile.Interests, trimmed)
		}
	}
	if payload.InterestPriorities != nil {
		profile.HasPriorities = true
		for _, ip := range payload.InterestPriorities {
			interest := strings.TrimSpace(ip.Interest)
			if interest == "" {
				continue
			}
			profile.InterestPriorities = append(profile.InterestPriorities, RankedInterest{
				Interest: interest,
				Priority: clampPriority(int(ip.Priority)),
			})
		}
	}
	return profile
}
