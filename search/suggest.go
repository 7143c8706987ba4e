package search

import (
	"strings"

	"github.com/campusgrid/campusgrid/index"
)

// Suggest returns autocomplete candidates for a prefix across the three
// entity levels. When the institute trie comes up empty but the query hits
// the keyword taxonomy, the keyword facet broadens the result; trie hits
// always take precedence for lists that have them.
func (e *Engine) Suggest(query string, limit int) (*SuggestResponse, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	timer := startTimer()

	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	resp := &SuggestResponse{
		Query:      query,
		Keywords:   []string{},
		Institutes: []index.Suggestion{},
		Programmes: []index.Suggestion{},
		Courses:    []index.Suggestion{},
	}

	q := strings.TrimSpace(query)
	if q == "" {
		resp.Stats = timer.Finish(len(snap.institutes), 0)
		return resp, nil
	}

	resp.Institutes = orEmpty(snap.instituteTrie.FindByPrefix(q, limit))
	resp.Programmes = orEmpty(snap.programmeTrie.FindByPrefix(q, limit))
	resp.Courses = orEmpty(snap.courseTrie.FindByPrefix(q, limit))
	resp.Keywords = ExtractKeywords(q)

	// Keyword fallback: only when no institute starts with the prefix, and
	// only into lists the tries left empty.
	if len(resp.Institutes) == 0 && len(resp.Keywords) > 0 {
		ids := snap.keywordUnion(resp.Keywords)
		if len(ids) > 0 {
			if len(resp.Institutes) == 0 {
				resp.Institutes = snap.instituteSuggestions(ids, limit)
			}
			if len(resp.Programmes) == 0 {
				resp.Programmes = snap.programmeSuggestions(ids, limit)
			}
			if len(resp.Courses) == 0 {
				resp.Courses = snap.courseSuggestions(ids, limit)
			}
		}
	}

	found := len(resp.Institutes) + len(resp.Programmes) + len(resp.Courses)
	resp.Stats = timer.Finish(len(snap.institutes), found)
	return resp, nil
}

func orEmpty(s []index.Suggestion) []index.Suggestion {
	if s == nil {
		return []index.Suggestion{}
	}
	return s
}

func (s *snapshot) instituteSuggestions(ids index.IDSet, limit int) []index.Suggestion {
	out := make([]index.Suggestion, 0, limit)
	for _, id := range s.order {
		if len(out) >= limit {
			break
		}
		if !ids.Has(id) {
			continue
		}
		inst := s.institutes[id]
		out = append(out, index.Suggestion{
			Id:    inst.Id,
			Slug:  inst.Slug,
			Name:  inst.Name,
			Logo:  inst.Logo,
			City:  inst.City,
			State: inst.State,
		})
	}
	return out
}

func (s *snapshot) programmeSuggestions(ids index.IDSet, limit int) []index.Suggestion {
	out := make([]index.Suggestion, 0, limit)
	for i := range s.programmes {
		if len(out) >= limit {
			break
		}
		p := &s.programmes[i]
		if !ids.Has(p.InstituteId) {
			continue
		}
		out = append(out, index.Suggestion{
			Id:   p.InstituteId,
			Slug: p.Slug,
			Name: p.Name,
			Logo: p.InstituteLogo,
		})
	}
	return out
}

func (s *snapshot) courseSuggestions(ids index.IDSet, limit int) []index.Suggestion {
	out := make([]index.Suggestion, 0, limit)
	for i := range s.courses {
		if len(out) >= limit {
			break
		}
		c := &s.courses[i]
		if !ids.Has(c.InstituteId) {
			continue
		}
		name := c.DisplayName
		if name == "" {
			name = c.Degree
		}
		out = append(out, index.Suggestion{
			Id:   c.InstituteId,
			Slug: c.Slug,
			Name: name,
		})
	}
	return out
}
