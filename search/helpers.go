package search

import (
	"strings"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/index"
)

// Pagination defaults. Limits beyond the maximum are clamped, not rejected.
const (
	DefaultSuggestLimit = 8
	DefaultPageSize     = 10
	MaxPageSize         = 50
)

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// paginate returns the page-th slice of items (1-based). Out-of-range pages
// yield an empty, non-nil slice.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...)
}

// facetFilter pairs a facet dimension with the raw filter string supplied by
// the caller.
type facetFilter struct {
	facet string
	raw   string
}

// applyFacetFilters successively intersects candidates with the
// union-of-values set of every supplied filter. Filters whose values match
// nothing leave the candidate set untouched, per Intersect's empty-set rule.
func (s *snapshot) applyFacetFilters(candidates index.IDSet, filters []facetFilter) index.IDSet {
	for _, f := range filters {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		values := splitFilterValues(f.raw)
		sets := make([]index.IDSet, len(values))
		for i, v := range values {
			sets[i] = s.facets.Get(f.facet, v)
		}
		candidates = index.Intersect(candidates, index.Union(sets...))
	}
	return candidates
}

// keywordUnion returns the union of keyword-facet sets for the given
// categories.
func (s *snapshot) keywordUnion(keywords []string) index.IDSet {
	sets := make([]index.IDSet, len(keywords))
	for i, kw := range keywords {
		sets[i] = s.facets.Get(index.FacetKeyword, kw)
	}
	return index.Union(sets...)
}

// countAllFacets computes per-facet value counts scoped to candidates.
func (s *snapshot) countAllFacets(candidates index.IDSet) map[string]map[string]int {
	counts := make(map[string]map[string]int, len(index.FacetNames))
	for _, name := range index.FacetNames {
		counts[name] = s.facets.CountByFacet(name, candidates)
	}
	return counts
}

// selectInstitutes materializes the institutes inside candidates in build
// order, so pagination is deterministic.
func (s *snapshot) selectInstitutes(candidates index.IDSet) []*core.Institute {
	out := make([]*core.Institute, 0, len(candidates))
	for _, id := range s.order {
		if candidates.Has(id) {
			out = append(out, s.institutes[id])
		}
	}
	return out
}
