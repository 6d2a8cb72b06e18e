package matching

import (
	"strings"
	"testing"
)

func baseCandidate() CandidateOffering {
	return CandidateOffering{
		OfferingID:     1,
		ProgramID:      1,
		ProgramName:    "MBBS",
		Discipline:     "Medical",
		UniversityName: "Dow University",
		Sector:         "Public",
		City:           "Karachi",
		MinScorePct:    85,
		AnnualFee:      50000,
		Tags:           []string{"medicine", "mbbs"},
		RequiredGroups: []string{"Pre-Medical"},
	}
}

func baseProfile() StudentProfile {
	return StudentProfile{
		SSCPercentage:     88,
		HSCPercentage:     90,
		Group:             GroupPreMedical,
		GroupLabel:        "Pre-Medical",
		Interests:         []string{"Medicine"},
		Budget:            100000,
		PreferredLocation: "Karachi",
	}
}

func TestScoreOfferingFullMatch(t *testing.T) {
	p := baseProfile()
	c := baseCandidate()
	filtered := p.Group.FilterInterests(p.Interests)

	score, explanations, compatible := scoreOffering(p, c, filtered)
	// 30 academic + 35 direct group + 20 budget + 10 location + 25 interest.
	if want := 120; score != want {
		t.Fatalf("full match score: want=%d got=%d", want, score)
	}
	if !compatible {
		t.Fatal("subject compatibility: want=true got=false")
	}
	if len(explanations) != 5 {
		t.Fatalf("explanations: want=5 got=%d (%v)", len(explanations), explanations)
	}
}

func TestScoreOfferingAcademicTerm(t *testing.T) {
	t.Run("below minimum loses the bonus", func(t *testing.T) {
		p := baseProfile()
		p.SSCPercentage, p.HSCPercentage = 90, 88
		c := baseCandidate()
		c.MinScorePct = 95

		score, explanations, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
		if want := 90; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if !strings.Contains(explanations[0], "below requirement") {
			t.Fatalf("explanation: want below-requirement note, got %q", explanations[0])
		}
	})

	t.Run("best of ssc and hsc is used", func(t *testing.T) {
		p := baseProfile()
		p.SSCPercentage, p.HSCPercentage = 86, 60
		c := baseCandidate()

		score, _, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
		if want := 120; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
	})

	t.Run("exact minimum counts", func(t *testing.T) {
		p := baseProfile()
		p.SSCPercentage, p.HSCPercentage = 85, 0
		c := baseCandidate()

		score, _, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
		if want := 120; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
	})
}

func TestScoreOfferingSubjectTerm(t *testing.T) {
	t.Run("direct group listing", func(t *testing.T) {
		p := baseProfile()
		c := baseCandidate()
		c.RequiredGroups = []string{"Pre-Medical", "Pre-Engineering"}

		score, _, compatible := scoreOffering(p, c, nil)
		// 30 academic + 35 direct + 20 budget + 10 location, no interest stage.
		if want := 95; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if !compatible {
			t.Fatal("compatible: want=true got=false")
		}
	})

	t.Run("override via compatible tags", func(t *testing.T) {
		p := baseProfile()
		p.Group = GroupPreEngineering
		c := baseCandidate()
		c.ProgramName = "Computer Science"
		c.Tags = []string{"computer-science", "programming"}
		c.RequiredGroups = []string{"ICS (Computer Science)"}

		score, _, compatible := scoreOffering(p, c, nil)
		// 30 academic + 25 override + 20 budget + 10 location.
		if want := 85; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if !compatible {
			t.Fatal("compatible: want=true got=false")
		}
	})

	t.Run("incompatible group takes the penalty", func(t *testing.T) {
		p := baseProfile()
		p.Group = GroupICS
		c := baseCandidate() // medicine tags, Pre-Medical required

		score, _, compatible := scoreOffering(p, c, nil)
		// 30 academic - 20 penalty + 20 budget + 10 location.
		if want := 40; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if compatible {
			t.Fatal("compatible: want=false got=true")
		}
	})

	t.Run("skipped when offering lists no groups", func(t *testing.T) {
		p := baseProfile()
		c := baseCandidate()
		c.RequiredGroups = nil

		score, _, compatible := scoreOffering(p, c, nil)
		// 30 academic + 20 budget + 10 location, no subject stage.
		if want := 60; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if compatible {
			t.Fatal("compatible: want=false when stage skipped")
		}
	})

	t.Run("skipped when student declares no group", func(t *testing.T) {
		p := baseProfile()
		p.Group = GroupUnknown
		c := baseCandidate()

		score, _, compatible := scoreOffering(p, c, nil)
		if want := 60; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		if compatible {
			t.Fatal("compatible: want=false when stage skipped")
		}
	})
}

func TestScoreOfferingBudgetTerm(t *testing.T) {
	p := baseProfile()
	p.Budget = 49999
	c := baseCandidate()

	score, _, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
	if want := 100; score != want {
		t.Fatalf("score with insufficient budget: want=%d got=%d", want, score)
	}
}

func TestScoreOfferingLocationTerm(t *testing.T) {
	p := baseProfile()
	c := baseCandidate()
	filtered := p.Group.FilterInterests(p.Interests)

	karachiScore, _, _ := scoreOffering(p, c, filtered)

	c.City = "Lahore"
	lahoreScore, _, _ := scoreOffering(p, c, filtered)

	if karachiScore-lahoreScore != locationBonus {
		t.Fatalf("location delta: want=%d got=%d", locationBonus, karachiScore-lahoreScore)
	}

	t.Run("substring and case-insensitive", func(t *testing.T) {
		p := baseProfile()
		p.PreferredLocation = "karachi"
		c := baseCandidate()
		c.City = "Karachi (Main)"
		score, _, _ := scoreOffering(p, c, filtered)
		if want := 120; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
	})

	t.Run("no preference earns nothing", func(t *testing.T) {
		p := baseProfile()
		p.PreferredLocation = ""
		score, _, _ := scoreOffering(p, baseCandidate(), filtered)
		if want := 110; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
	})
}

func TestScoreOfferingInterestTerm(t *testing.T) {
	t.Run("no overlap keeps the soft explanation", func(t *testing.T) {
		p := baseProfile()
		p.Interests = []string{"Dentistry"}
		c := baseCandidate()

		score, explanations, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
		if want := 95; score != want {
			t.Fatalf("score: want=%d got=%d", want, score)
		}
		found := false
		for _, e := range explanations {
			if strings.Contains(e, "No direct interest match") {
				found = true
			}
		}
		if !found {
			t.Fatalf("explanations missing soft interest note: %v", explanations)
		}
	})

	t.Run("skipped entirely for untagged offerings", func(t *testing.T) {
		p := baseProfile()
		c := baseCandidate()
		c.Tags = nil

		_, explanations, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
		for _, e := range explanations {
			if strings.Contains(e, "interest") || strings.Contains(e, "Interest") {
				t.Fatalf("interest stage should be skipped, got explanation %q", e)
			}
		}
	})
}

func TestScoreBounds(t *testing.T) {
	groups := []SubjectGroup{GroupUnknown, GroupPreMedical, GroupPreEngineering, GroupICS, GroupICom, GroupIA}
	candidates := []CandidateOffering{
		baseCandidate(),
		{MinScorePct: 99, AnnualFee: 10_000_000, RequiredGroups: []string{"IA (Arts)"}, Tags: []string{"engineering"}},
		{City: "Multan", Tags: []string{"arts"}},
	}
	for _, g := range groups {
		for _, c := range candidates {
			p := baseProfile()
			p.Group = g
			score, _, _ := scoreOffering(p, c, p.Group.FilterInterests(p.Interests))
			if score < -groupPenalty || score > 120 {
				t.Fatalf("score out of bounds for group=%v candidate=%+v: got=%d", g, c, score)
			}
		}
	}
}
