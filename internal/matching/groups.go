package matching

import "strings"

// SubjectGroup is the student's pre-university academic track. The closed set
// below gates which disciplines a student may pursue; each variant carries its
// own compatibility rule against an offering's tags.
type SubjectGroup int

const (
	GroupUnknown SubjectGroup = iota
	GroupPreMedical
	GroupPreEngineering
	GroupICS
	GroupICom
	GroupIA
)

// Display labels as they appear in offering requirements and request payloads.
var groupLabels = map[SubjectGroup]string{
	GroupPreMedical:     "Pre-Medical",
	GroupPreEngineering: "Pre-Engineering",
	GroupICS:            "ICS (Computer Science)",
	GroupICom:           "ICom (Commerce)",
	GroupIA:             "IA (Arts)",
}

func (g SubjectGroup) String() string {
	if label, ok := groupLabels[g]; ok {
		return label
	}
	return ""
}

// ParseSubjectGroup resolves a display label to a group. Labels are matched on
// their short prefix so "ICS" and "ICS (Computer Science)" both resolve to
// GroupICS. Unrecognized labels yield GroupUnknown, which carries no
// restriction-derived allowance.
func ParseSubjectGroup(label string) SubjectGroup {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case s == "":
		return GroupUnknown
	case strings.HasPrefix(s, "pre-medical") || strings.HasPrefix(s, "pre medical"):
		return GroupPreMedical
	case strings.HasPrefix(s, "pre-engineering") || strings.HasPrefix(s, "pre engineering"):
		return GroupPreEngineering
	case strings.HasPrefix(s, "ics"):
		return GroupICS
	case strings.HasPrefix(s, "icom"):
		return GroupICom
	case strings.HasPrefix(s, "ia"):
		return GroupIA
	default:
		return GroupUnknown
	}
}

// Keyword sets used by the compatibility rules. A tag "intersects" a set when
// any keyword is a case-insensitive substring of the tag. This is the
// prospectus-corrected rule set; the older variant that let ICS into
// engineering programs is gone.
var (
	medicalKeywords = []string{
		"medicine", "mbbs", "dentistry", "pharmacy", "nursing", "physiotherapy",
		"medical technology", "biotechnology", "biochemistry", "microbiology",
		"public health", "nutrition",
	}
	engineeringKeywords = []string{
		"engineering", "civil", "electrical", "mechanical", "chemical",
		"industrial", "textile", "petroleum", "architecture",
	}
	businessKeywords = []string{
		"business", "commerce", "economics", "finance", "accounting",
		"marketing", "management", "banking", "insurance", "taxation",
	}
	artsKeywords = []string{
		"arts", "humanities", "literature", "history", "philosophy",
		"psychology", "sociology", "political science", "international relations",
		"media studies", "journalism", "education",
	}
	// Narrow CS set: the slice of computing open to ICom students.
	csKeywords = []string{
		"computer", "software", "information technology", "web development",
		"game development", "mobile development",
	}
	// IA students get a narrower business allowance than ICom.
	iaBusinessKeywords = []string{
		"business", "commerce", "economics", "finance", "accounting",
		"marketing", "management",
	}
)

func tagsIntersect(tags []string, keywords []string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
	}
	return false
}

// CompatibleWithTags reports whether a student of this group may pursue an
// offering carrying the given tags, per the group override rules. This is
// only consulted when the offering does not list the group directly.
func (g SubjectGroup) CompatibleWithTags(tags []string) bool {
	switch g {
	case GroupPreMedical:
		// Broadest background, no exclusions.
		return true
	case GroupPreEngineering:
		return !tagsIntersect(tags, medicalKeywords)
	case GroupICS:
		return !tagsIntersect(tags, medicalKeywords) && !tagsIntersect(tags, engineeringKeywords)
	case GroupICom:
		return tagsIntersect(tags, businessKeywords) ||
			tagsIntersect(tags, artsKeywords) ||
			tagsIntersect(tags, csKeywords)
	case GroupIA:
		return tagsIntersect(tags, artsKeywords) || tagsIntersect(tags, iaBusinessKeywords)
	default:
		return false
	}
}

// Broad interest labels each group may declare. Interests outside the
// student's allowance are filtered out before any scoring happens.
var allowedInterests = map[SubjectGroup][]string{
	GroupPreMedical: {
		"Computer Science", "Engineering", "Technology", "Architecture",
		"Software Engineering", "Information Technology", "Data Science",
		"Artificial Intelligence", "Cybersecurity", "Robotics",
		"Medicine", "Dentistry", "Pharmacy", "Nursing", "Physiotherapy",
		"Medical Technology", "Biotechnology", "Biochemistry", "Microbiology",
		"Public Health", "Nutrition", "Business", "Commerce", "Economics",
		"Finance", "Accounting", "Marketing", "Management", "Banking",
		"Insurance", "Taxation", "Arts", "Humanities", "Literature",
		"History", "Philosophy", "Psychology", "Sociology", "Political Science",
		"International Relations", "Media Studies", "Journalism", "Education",
	},
	GroupPreEngineering: {
		"Computer Science", "Engineering", "Technology", "Architecture",
		"Software Engineering", "Information Technology", "Data Science",
		"Artificial Intelligence", "Cybersecurity", "Robotics",
		"Business", "Commerce", "Economics", "Finance", "Accounting",
		"Marketing", "Management", "Banking", "Insurance", "Taxation",
		"Arts", "Humanities", "Literature", "History", "Philosophy",
		"Psychology", "Sociology", "Political Science", "International Relations",
		"Media Studies", "Journalism", "Education",
	},
	GroupICS: {
		"Computer Science", "Software Engineering", "Information Technology",
		"Data Science", "Artificial Intelligence", "Cybersecurity",
		"Web Development", "Game Development", "Mobile Development",
		"Technology", "Robotics",
		"Business", "Commerce", "Economics", "Finance", "Accounting",
		"Marketing", "Management", "Banking", "Insurance", "Taxation",
		"Arts", "Humanities", "Literature", "History", "Philosophy",
		"Psychology", "Sociology", "Political Science", "International Relations",
		"Media Studies", "Journalism", "Education",
	},
	GroupICom: {
		"Business", "Commerce", "Economics", "Finance", "Accounting",
		"Marketing", "Management", "Banking", "Insurance", "Taxation",
		"Arts", "Humanities", "Literature", "History", "Philosophy",
		"Psychology", "Sociology", "Political Science", "International Relations",
		"Media Studies", "Journalism", "Education",
		"Computer Science", "Information Technology", "Data Science",
		"Web Development", "Game Development", "Mobile Development",
	},
	GroupIA: {
		"Arts", "Humanities", "Literature", "History", "Philosophy",
		"Psychology", "Sociology", "Political Science", "International Relations",
		"Media Studies", "Journalism", "Education",
		"Business", "Commerce", "Economics", "Finance", "Accounting",
		"Marketing", "Management",
		"Computer Science", "Information Technology", "Data Science",
		"Web Development", "Game Development", "Mobile Development",
	},
}

// Minimal interest signal substituted when a recognized group's declared
// interests all fall outside its allowance.
var fallbackInterests = map[SubjectGroup][]string{
	GroupPreMedical:     {"Medicine", "Health Sciences"},
	GroupPreEngineering: {"Computer Science", "Engineering", "Technology"},
	GroupICS:            {"Computer Science", "Technology"},
	GroupICom:           {"Business", "Commerce"},
	GroupIA:             {"Arts", "Humanities"},
}

// AllowedInterests returns the group's allowed-interest list, nil for
// GroupUnknown.
func (g SubjectGroup) AllowedInterests() []string {
	return allowedInterests[g]
}

// FilterInterests keeps only the interests the group allows, preserving the
// student's own ordering. If nothing survives and the group is recognized, the
// group's fallback pair is substituted so scoring never runs with zero
// interest signal.
func (g SubjectGroup) FilterInterests(interests []string) []string {
	allowed := allowedInterests[g]
	if len(allowed) == 0 {
		return nil
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[strings.ToLower(a)] = struct{}{}
	}
	var filtered []string
	for _, in := range interests {
		if _, ok := allowedSet[strings.ToLower(in)]; ok {
			filtered = append(filtered, in)
		}
	}
	if len(filtered) == 0 {
		return append([]string(nil), fallbackInterests[g]...)
	}
	return filtered
}
