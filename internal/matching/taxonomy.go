package matching

import "strings"

// InterestCategory describes how a named interest matches offering tags.
// Core tags always indicate the interest. General tags indicate it weakly and
// are vetoed by any exclusion tag. Boost tags mark an especially unambiguous
// signal and add BoostAmount on top of the priority tier.
type InterestCategory struct {
	CoreTags      []string
	GeneralTags   []string
	ExclusionTags []string
	BoostTags     []string
	BoostAmount   int
}

const defaultBoostAmount = 400

// interestCategories is the single taxonomy both the scorer and the priority
// matcher consult. Loaded once, never mutated, safe to share across requests.
// Keys and tag entries are lowercase.
var interestCategories = map[string]InterestCategory{
	"medicine": {
		CoreTags:      []string{"mbbs", "doctor"},
		GeneralTags:   []string{"medicine", "medical"},
		ExclusionTags: []string{"nursing", "pharmacy", "allied-health"},
		BoostTags:     []string{"mbbs", "doctor"},
		BoostAmount:   500,
	},
	"nursing": {
		CoreTags:  []string{"nursing"},
		BoostTags: []string{"nursing"},
	},
	"pharmacy": {
		CoreTags:  []string{"pharmacy"},
		BoostTags: []string{"pharmacy"},
	},
	"dentistry": {
		CoreTags:  []string{"dentistry", "dental"},
		BoostTags: []string{"dentistry", "dental"},
	},
	"engineering": {
		CoreTags:      []string{"civil", "electrical", "mechanical", "chemical", "aerospace", "industrial", "computer engineering"},
		GeneralTags:   []string{"engineering", "computer"},
		ExclusionTags: []string{"technology", "information technology", "it"},
		BoostTags:     []string{"civil", "electrical", "mechanical", "chemical", "computer engineering"},
	},
	"computer science": {
		CoreTags:      []string{"computer science", "computer-science", "software engineering", "software-engineering", "programming", "software"},
		GeneralTags:   []string{"software", "programming", "computer-science"},
		ExclusionTags: []string{"information technology", "information-technology", "it", "information systems", "computer engineering", "electronics", "engineering"},
		BoostTags:     []string{"computer science", "computer-science", "software engineering", "software-engineering"},
	},
	"business": {
		CoreTags:      []string{"business administration", "finance", "accounting", "marketing", "economics"},
		GeneralTags:   []string{"business"},
		ExclusionTags: []string{"management", "administration"},
		BoostTags:     []string{"business administration", "finance", "accounting"},
	},
	"commerce": {
		CoreTags:    []string{"commerce", "business administration"},
		GeneralTags: []string{"business", "economics", "finance", "accounting"},
		BoostTags:   []string{"commerce", "business administration"},
	},
	"economics": {
		CoreTags:    []string{"economics"},
		GeneralTags: []string{"economy"},
		BoostTags:   []string{"economics"},
	},
	"finance": {
		CoreTags:    []string{"finance", "financial"},
		GeneralTags: []string{"banking"},
		BoostTags:   []string{"finance", "financial"},
	},
	"accounting": {
		CoreTags:  []string{"accounting", "accountancy"},
		BoostTags: []string{"accounting", "accountancy"},
	},
	"marketing": {
		CoreTags:    []string{"marketing", "advertising"},
		GeneralTags: []string{"branding"},
		BoostTags:   []string{"marketing", "advertising"},
	},
	"arts": {
		CoreTags:      []string{"fine arts", "visual arts", "performing arts", "design", "creative"},
		GeneralTags:   []string{"arts"},
		ExclusionTags: []string{"humanities", "liberal arts"},
		BoostTags:     []string{"fine arts", "visual arts", "performing arts"},
	},
	"humanities": {
		CoreTags:    []string{"humanities", "liberal arts"},
		GeneralTags: []string{"philosophy", "history", "literature"},
		BoostTags:   []string{"humanities", "liberal arts"},
	},
	"literature": {
		CoreTags:    []string{"literature", "english"},
		GeneralTags: []string{"linguistics"},
		BoostTags:   []string{"literature", "english"},
	},
	"history": {
		CoreTags:    []string{"history"},
		GeneralTags: []string{"historical"},
		BoostTags:   []string{"history"},
	},
	"philosophy": {
		CoreTags:    []string{"philosophy"},
		GeneralTags: []string{"philosophical"},
		BoostTags:   []string{"philosophy"},
	},
	"psychology": {
		CoreTags:    []string{"psychology"},
		GeneralTags: []string{"psychological", "mental health"},
		BoostTags:   []string{"psychology"},
	},
	"sociology": {
		CoreTags:    []string{"sociology"},
		GeneralTags: []string{"social", "social sciences"},
		BoostTags:   []string{"sociology"},
	},
	"political science": {
		CoreTags:    []string{"political science", "politics"},
		GeneralTags: []string{"international relations"},
		BoostTags:   []string{"political science", "politics"},
	},
	"international relations": {
		CoreTags:    []string{"international relations"},
		GeneralTags: []string{"diplomacy", "foreign policy"},
		BoostTags:   []string{"international relations"},
	},
	"media studies": {
		CoreTags:    []string{"media studies", "media"},
		GeneralTags: []string{"communication", "journalism"},
		BoostTags:   []string{"media studies", "media"},
	},
	"journalism": {
		CoreTags:    []string{"journalism"},
		GeneralTags: []string{"media", "communication"},
		BoostTags:   []string{"journalism"},
	},
	"education": {
		CoreTags:    []string{"education", "teaching"},
		GeneralTags: []string{"pedagogy"},
		BoostTags:   []string{"education", "teaching"},
	},
	"law": {
		CoreTags:      []string{"law", "legal", "jurisprudence"},
		GeneralTags:   []string{"law"},
		ExclusionTags: []string{"legal studies", "criminal justice"},
		BoostTags:     []string{"law", "legal"},
	},
	"information technology": {
		CoreTags:    []string{"information technology", "it"},
		GeneralTags: []string{"information systems"},
		BoostTags:   []string{"information technology", "it"},
	},
	"data science": {
		CoreTags:    []string{"data science", "data analytics"},
		GeneralTags: []string{"machine learning"},
		BoostTags:   []string{"data science", "data analytics"},
	},
	"web development": {
		CoreTags:    []string{"web development", "web"},
		GeneralTags: []string{"frontend", "backend"},
		BoostTags:   []string{"web development", "web"},
	},
	"game development": {
		CoreTags:    []string{"game development", "gaming"},
		GeneralTags: []string{"game design"},
		BoostTags:   []string{"game development", "gaming"},
	},
	"mobile development": {
		CoreTags:    []string{"mobile development", "mobile"},
		GeneralTags: []string{"app development"},
		BoostTags:   []string{"mobile development", "mobile"},
	},
	"banking": {
		CoreTags:    []string{"banking"},
		GeneralTags: []string{"finance", "financial"},
		BoostTags:   []string{"banking", "finance"},
	},
	"insurance": {
		CoreTags:    []string{"insurance"},
		GeneralTags: []string{"risk management"},
		BoostTags:   []string{"insurance"},
	},
	"taxation": {
		CoreTags:    []string{"taxation", "tax"},
		GeneralTags: []string{"tax law"},
		BoostTags:   []string{"taxation", "tax"},
	},
}

// LookupCategory resolves an interest label case-insensitively. ok is false
// for interests outside the taxonomy; callers fall back to literal tag
// matching.
func LookupCategory(interest string) (InterestCategory, bool) {
	cat, ok := interestCategories[strings.ToLower(strings.TrimSpace(interest))]
	return cat, ok
}

func (c InterestCategory) boostAmount() int {
	if c.BoostAmount > 0 {
		return c.BoostAmount
	}
	return defaultBoostAmount
}

func containsAny(tags []string, set []string) bool {
	for _, tag := range tags {
		for _, s := range set {
			if tag == s {
				return true
			}
		}
	}
	return false
}

// MatchesTags applies the core/general/exclusion rule: core tags always
// match; general tags match only when no exclusion tag is present.
func (c InterestCategory) MatchesTags(loweredTags []string) bool {
	if containsAny(loweredTags, c.CoreTags) {
		return true
	}
	if containsAny(loweredTags, c.ExclusionTags) {
		return false
	}
	return containsAny(loweredTags, c.GeneralTags)
}
