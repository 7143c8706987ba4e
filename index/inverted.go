package index

import (
	"strings"

	"github.com/campusgrid/campusgrid/core"
)

// Facet dimension names. Every facet maps normalized tokens to institute
// ids; programme and course tokens still resolve to their parent institute.
const (
	FacetCity      = "city"
	FacetState     = "state"
	FacetType      = "type"
	FacetLevel     = "level"
	FacetProgramme = "programme"
	FacetExam      = "exam"
	FacetKeyword   = "keyword"
	FacetCourse    = "course"
)

// FacetNames lists every facet dimension the engine maintains.
var FacetNames = []string{
	FacetCity, FacetState, FacetType, FacetLevel,
	FacetProgramme, FacetExam, FacetKeyword, FacetCourse,
}

// IDSet is a set of institute ids.
type IDSet map[core.ID]struct{}

func NewIDSet(ids ...core.ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id core.ID) bool {
	_, ok := s[id]
	return ok
}

// Facets is the named collection of inverted indexes, one map per facet
// dimension.
type Facets struct {
	byName map[string]map[string]IDSet
}

func NewFacets() *Facets {
	byName := make(map[string]map[string]IDSet, len(FacetNames))
	for _, name := range FacetNames {
		byName[name] = make(map[string]IDSet)
	}
	return &Facets{byName: byName}
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Add records id under the normalized value in the named facet.
// Blank values and unknown facets are no-ops.
func (f *Facets) Add(facet, value string, id core.ID) {
	token := normalizeToken(value)
	if token == "" {
		return
	}
	m, ok := f.byName[facet]
	if !ok {
		return
	}
	set, ok := m[token]
	if !ok {
		set = make(IDSet)
		m[token] = set
	}
	set[id] = struct{}{}
}

// Get returns the id set for the normalized value in the named facet.
// Missing facets or values yield an empty set.
func (f *Facets) Get(facet, value string) IDSet {
	m, ok := f.byName[facet]
	if !ok {
		return IDSet{}
	}
	set, ok := m[normalizeToken(value)]
	if !ok {
		return IDSet{}
	}
	return set
}

// Intersect narrows a by b. An empty b leaves a untouched (the filter was
// not supplied); an empty a stays empty. The smaller set is iterated, a
// deliberate asymmetry for skewed facet sizes.
func Intersect(a, b IDSet) IDSet {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return IDSet{}
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := make(IDSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Union collects every id across the given sets. Zero sets yield an empty set.
func Union(sets ...IDSet) IDSet {
	out := make(IDSet)
	for _, set := range sets {
		for id := range set {
			out[id] = struct{}{}
		}
	}
	return out
}

// CountByFacet counts, for every token in the named facet, how many of that
// token's ids fall inside candidates. Zero-count tokens are omitted.
func (f *Facets) CountByFacet(facet string, candidates IDSet) map[string]int {
	counts := make(map[string]int)
	m, ok := f.byName[facet]
	if !ok {
		return counts
	}
	for token, set := range m {
		n := 0
		for id := range set {
			if candidates.Has(id) {
				n++
			}
		}
		if n > 0 {
			counts[token] = n
		}
	}
	return counts
}

// Sizes returns the token count of every facet map, for introspection.
func (f *Facets) Sizes() map[string]int {
	sizes := make(map[string]int, len(f.byName))
	for name, m := range f.byName {
		sizes[name] = len(m)
	}
	return sizes
}
