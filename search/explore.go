package search

import (
	"sort"
	"strings"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/index"
)

// Sort dimensions accepted by ExploreParams.SortBy.
const (
	SortByName        = "name"
	SortByCourses     = "courses"
	SortByEstablished = "established"
)

// accreditationNone is the special filter value selecting institutes with
// no NAAC grade on record.
const accreditationNone = "none"

// Explore returns a faceted institute listing: filter, sort, paginate, count.
func (e *Engine) Explore(params ExploreParams) (*ExploreResponse, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	timer := startTimer()

	page, limit := normalizePage(params.Page, params.Limit)

	filters := []facetFilter{
		{index.FacetCity, params.City},
		{index.FacetState, params.State},
		{index.FacetType, params.Type},
		{index.FacetLevel, params.Level},
		{index.FacetProgramme, params.Programme},
		{index.FacetExam, params.Exam},
		{index.FacetCourse, params.Course},
	}

	active := make(map[string]string)
	for _, f := range filters {
		if v := strings.TrimSpace(f.raw); v != "" {
			active[f.facet] = v
		}
	}

	candidates := snap.applyFacetFilters(snap.allIds, filters)

	// Accreditation is not a facet map: it matches the NAAC grade on the
	// raw document, with "none" selecting the absent-grade institutes.
	if accr := strings.TrimSpace(params.Accreditation); accr != "" {
		active["accreditation"] = accr
		matched := make(index.IDSet)
		for id := range candidates {
			grade := snap.institutes[id].Raw.Accreditation.NAACGrade
			switch {
			case strings.EqualFold(accr, accreditationNone):
				if grade == "" {
					matched[id] = struct{}{}
				}
			case strings.EqualFold(grade, accr):
				matched[id] = struct{}{}
			}
		}
		candidates = matched
	}

	institutes := snap.selectInstitutes(candidates)

	sortBy := strings.ToLower(strings.TrimSpace(params.SortBy))
	if sortBy == "" {
		sortBy = SortByName
	}
	sortOrder := strings.ToLower(strings.TrimSpace(params.SortOrder))
	if sortOrder != "desc" {
		sortOrder = "asc"
	}
	sortInstitutes(institutes, sortBy, sortOrder)

	total := len(institutes)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	resp := &ExploreResponse{
		Institutes:    paginate(institutes, page, limit),
		Filters:       active,
		SortBy:        sortBy,
		SortOrder:     sortOrder,
		Page:          page,
		Limit:         limit,
		Total:         total,
		TotalPages:    totalPages,
		HasMore:       page*limit < total,
		Facets:        snap.countAllFacets(candidates),
		Accreditation: snap.accreditationHistogram(candidates),
	}
	resp.Stats = timer.Finish(len(snap.institutes), total)
	return resp, nil
}

func sortInstitutes(institutes []*core.Institute, sortBy, sortOrder string) {
	less := func(a, b *core.Institute) bool {
		switch sortBy {
		case SortByCourses:
			if a.TotalCourses != b.TotalCourses {
				return a.TotalCourses < b.TotalCourses
			}
		case SortByEstablished:
			if a.Established != b.Established {
				return a.Established < b.Established
			}
		}
		return a.Name < b.Name
	}
	sort.SliceStable(institutes, func(i, j int) bool {
		if sortOrder == "desc" {
			return less(institutes[j], institutes[i])
		}
		return less(institutes[i], institutes[j])
	})
}

// accreditationHistogram counts NAAC grades across the candidate set;
// institutes without a grade are bucketed under "none".
func (s *snapshot) accreditationHistogram(candidates index.IDSet) map[string]int {
	counts := make(map[string]int)
	for id := range candidates {
		grade := strings.TrimSpace(s.institutes[id].Raw.Accreditation.NAACGrade)
		if grade == "" {
			grade = accreditationNone
		}
		counts[strings.ToLower(grade)]++
	}
	return counts
}
