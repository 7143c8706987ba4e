package search

import (
	"strings"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/index"
)

// trieFallbackLimit bounds how many prefix hits per trie feed the query-text
// fallback when the taxonomy recognizes nothing.
const trieFallbackLimit = 50

// Search runs a keyword/filtered search across institutes, programmes and
// courses. The candidate set is always a set of institute ids; programme and
// course results are the flattened records whose parent institute survived
// the narrowing.
func (e *Engine) Search(params SearchParams) (*SearchResponse, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	timer := startTimer()

	page, limit := normalizePage(params.Page, params.Limit)
	q := strings.TrimSpace(params.Query)

	keywords := []string{}
	candidates := snap.allIds

	if q != "" {
		keywords = ExtractKeywords(q)
		if len(keywords) > 0 {
			candidates = index.Intersect(candidates, snap.keywordUnion(keywords))
		} else {
			// No taxonomy hit: fall back to raw prefix search across all
			// three tries. A query that matches nothing anywhere matches
			// no institutes.
			hits := make(index.IDSet)
			for _, t := range []*index.Trie{snap.instituteTrie, snap.programmeTrie, snap.courseTrie} {
				for _, s := range t.FindByPrefix(q, trieFallbackLimit) {
					hits[s.Id] = struct{}{}
				}
			}
			if len(hits) == 0 {
				candidates = index.IDSet{}
			} else {
				candidates = index.Intersect(candidates, hits)
			}
		}
	}

	candidates = snap.applyFacetFilters(candidates, []facetFilter{
		{index.FacetCity, params.City},
		{index.FacetState, params.State},
		{index.FacetLevel, params.Level},
		{index.FacetProgramme, params.Programme},
		{index.FacetExam, params.Exam},
		{index.FacetCourse, params.Course},
	})

	entityType := strings.ToLower(strings.TrimSpace(params.Type))
	wantInstitutes := entityType == "" || entityType == TypeInstitute
	wantProgrammes := entityType == "" || entityType == TypeProgramme
	wantCourses := entityType == "" || entityType == TypeCourse

	institutes := []*core.Institute{}
	if wantInstitutes {
		institutes = snap.selectInstitutes(candidates)
	}

	programmes := []core.Programme{}
	if wantProgrammes {
		for i := range snap.programmes {
			if candidates.Has(snap.programmes[i].InstituteId) {
				programmes = append(programmes, snap.programmes[i])
			}
		}
	}

	courses := []core.Course{}
	if wantCourses {
		for i := range snap.courses {
			if candidates.Has(snap.courses[i].InstituteId) {
				courses = append(courses, snap.courses[i])
			}
		}
	}

	totals := EntityCounts{
		Institutes: len(institutes),
		Programmes: len(programmes),
		Courses:    len(courses),
	}

	resp := &SearchResponse{
		Query:      q,
		Keywords:   keywords,
		Institutes: paginate(institutes, page, limit),
		Programmes: paginate(programmes, page, limit),
		Courses:    paginate(courses, page, limit),
		Totals:     totals,
		Page:       page,
		Limit:      limit,
		HasMore: HasMore{
			Institutes: page*limit < totals.Institutes,
			Programmes: page*limit < totals.Programmes,
			Courses:    page*limit < totals.Courses,
		},
		Facets: snap.countAllFacets(candidates),
	}
	resp.Stats = timer.Finish(len(snap.institutes), totals.Institutes)
	return resp, nil
}
