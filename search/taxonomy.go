package search

// Keyword Taxonomy for Query Expansion
//
// This table maps canonical catalog categories to the vocabulary students
// actually type: full discipline names, degree abbreviations, exam names
// and common misspellings. It is used in two places:
//
//   - at build time, to populate the keyword facet from institute names,
//     institute types, programme names and course degrees
//   - at query time, to recognize which categories a free-text query is
//     about, so "btech" finds engineering institutes even though no name
//     contains that token
//
// Matching is deliberately loose: a query word matches a category when the
// word and any category token contain one another as substrings, in either
// direction. That tolerates partial words ("engin") and compound terms
// ("biotech"), at the cost of false positives on short tokens. The false
// positives are an accepted trade-off, pinned in taxonomy_test.go.

import (
	"sort"
	"strings"
)

// categoryTokens maps each canonical category to its synonym/abbreviation
// vocabulary. Token lists are all lowercase.
var categoryTokens = map[string][]string{
	"engineering": {
		"engineering", "engineer", "engg", "enginering", "technology", "tech",
		"btech", "b.tech", "mtech", "m.tech", "b.e", "polytechnic",
	},
	"medical": {
		"medical", "medicine", "mbbs", "md", "bds", "mds", "dental",
		"nursing", "bsc nursing", "ayurveda", "bams", "homeopathy", "bhms",
		"physiotherapy", "bpt", "paramedical",
	},
	"management": {
		"management", "mba", "pgdm", "bba", "bbm", "business",
		"administration", "managment",
	},
	"science": {
		"science", "bsc", "b.sc", "msc", "m.sc", "research", "biotechnology",
		"biotech", "physics", "chemistry", "mathematics",
	},
	"commerce": {
		"commerce", "bcom", "b.com", "mcom", "m.com", "accounting",
		"finance", "ca", "cs", "economics",
	},
	"arts": {
		"arts", "ba", "b.a", "ma", "m.a", "humanities", "liberal",
		"sociology", "psychology", "literature",
	},
	"law": {
		"law", "llb", "ll.b", "llm", "ll.m", "legal", "ballb", "judiciary",
	},
	"design": {
		"design", "b.des", "bdes", "m.des", "mdes", "fashion", "nift",
		"animation", "fine arts",
	},
	"pharmacy": {
		"pharmacy", "pharma", "bpharm", "b.pharm", "mpharm", "m.pharm",
		"pharmaceutical", "d.pharm",
	},
	"computer science": {
		"computer", "computers", "cs", "cse", "it", "bca", "mca",
		"software", "informatics", "data science", "ai", "ml",
	},
	"hospitality": {
		"hospitality", "hotel", "hm", "bhm", "bhmct", "catering", "tourism",
		"travel", "culinary",
	},
	"education": {
		"education", "bed", "b.ed", "med", "m.ed", "teaching", "teacher",
		"pedagogy",
	},
	"architecture": {
		"architecture", "barch", "b.arch", "march", "m.arch", "planning",
		"architect",
	},
	"agriculture": {
		"agriculture", "bsc agriculture", "agri", "horticulture", "farming",
		"veterinary", "bvsc",
	},
	// Meta categories: not disciplines, but words that identify what kind
	// of institution the text is about.
	"top": {
		"top", "best", "ranked", "ranking", "premier", "leading",
	},
	"institute": {
		"institute", "institutes", "college", "colleges", "university",
		"universities", "school", "academy", "campus",
	},
	"government": {
		"government", "govt", "public", "central", "state", "national",
	},
	"private": {
		"private", "deemed", "autonomous", "self-financed",
	},
}

// ExtractKeywords returns the canonical categories present in free text.
// Words are matched against the taxonomy with bidirectional substring
// containment; the result is de-duplicated and sorted for determinism.
func ExtractKeywords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return []string{}
	}

	found := make(map[string]struct{})
	for _, word := range words {
		if _, ok := categoryTokens[word]; ok {
			found[word] = struct{}{}
		}
		for category, tokens := range categoryTokens {
			for _, token := range tokens {
				if strings.Contains(token, word) || strings.Contains(word, token) {
					found[category] = struct{}{}
					break
				}
			}
		}
	}

	keywords := make([]string, 0, len(found))
	for k := range found {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
