package matching

import (
	"reflect"
	"testing"
)

func TestParseSubjectGroup(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  SubjectGroup
	}{
		{"full pre-medical label", "Pre-Medical", GroupPreMedical},
		{"spaced pre medical", "pre medical", GroupPreMedical},
		{"full pre-engineering label", "Pre-Engineering", GroupPreEngineering},
		{"ics short", "ICS", GroupICS},
		{"ics display label", "ICS (Computer Science)", GroupICS},
		{"icom display label", "ICom (Commerce)", GroupICom},
		{"ia display label", "IA (Arts)", GroupIA},
		{"surrounding whitespace", "  pre-medical  ", GroupPreMedical},
		{"empty", "", GroupUnknown},
		{"unrecognized", "O-Levels", GroupUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSubjectGroup(tt.label); got != tt.want {
				t.Fatalf("ParseSubjectGroup(%q): want=%v got=%v", tt.label, tt.want, got)
			}
		})
	}
}

func TestCompatibleWithTags(t *testing.T) {
	tests := []struct {
		name  string
		group SubjectGroup
		tags  []string
		want  bool
	}{
		{"pre-medical allows anything", GroupPreMedical, []string{"engineering", "civil"}, true},
		{"pre-medical allows empty tags", GroupPreMedical, nil, true},
		{"pre-engineering blocked from medicine", GroupPreEngineering, []string{"medicine", "mbbs"}, false},
		{"pre-engineering allows computer science", GroupPreEngineering, []string{"computer-science", "programming"}, true},
		{"ics blocked from medicine", GroupICS, []string{"medicine"}, false},
		{"ics blocked from engineering", GroupICS, []string{"civil", "construction"}, false},
		{"ics allows computing", GroupICS, []string{"computer-science", "technology"}, true},
		{"icom allows business", GroupICom, []string{"business", "finance"}, true},
		{"icom allows narrow computing", GroupICom, []string{"software", "web development"}, true},
		{"icom blocked from medicine", GroupICom, []string{"medicine", "mbbs"}, false},
		{"ia allows arts", GroupIA, []string{"humanities", "literature"}, true},
		{"ia allows business subset", GroupIA, []string{"accounting"}, true},
		{"ia blocked from engineering", GroupIA, []string{"engineering", "electrical"}, false},
		{"unknown group never compatible", GroupUnknown, []string{"business"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.CompatibleWithTags(tt.tags); got != tt.want {
				t.Fatalf("%v.CompatibleWithTags(%v): want=%v got=%v", tt.group, tt.tags, tt.want, got)
			}
		})
	}
}

func TestFilterInterests(t *testing.T) {
	t.Run("keeps allowed interests in order", func(t *testing.T) {
		got := GroupPreEngineering.FilterInterests([]string{"Engineering", "Medicine", "Computer Science"})
		want := []string{"Engineering", "Computer Science"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("FilterInterests: want=%v got=%v", want, got)
		}
	})

	t.Run("case-insensitive allowance", func(t *testing.T) {
		got := GroupICom.FilterInterests([]string{"BUSINESS", "commerce"})
		want := []string{"BUSINESS", "commerce"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("FilterInterests: want=%v got=%v", want, got)
		}
	})

	t.Run("substitutes fallback when nothing survives", func(t *testing.T) {
		got := GroupICS.FilterInterests([]string{"Medicine", "Dentistry"})
		want := []string{"Computer Science", "Technology"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("FilterInterests fallback: want=%v got=%v", want, got)
		}
	})

	t.Run("substitutes fallback for empty input", func(t *testing.T) {
		got := GroupPreMedical.FilterInterests(nil)
		want := []string{"Medicine", "Health Sciences"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("FilterInterests fallback: want=%v got=%v", want, got)
		}
	})

	t.Run("unknown group yields nothing", func(t *testing.T) {
		if got := GroupUnknown.FilterInterests([]string{"Business"}); got != nil {
			t.Fatalf("FilterInterests for unknown group: want=nil got=%v", got)
		}
	})
}

func TestAllowedInterests(t *testing.T) {
	if got := GroupUnknown.AllowedInterests(); got != nil {
		t.Fatalf("AllowedInterests for unknown group: want=nil got=%v", got)
	}
	if got := GroupPreMedical.AllowedInterests(); len(got) == 0 {
		t.Fatal("AllowedInterests for pre-medical: want non-empty list")
	}
}
