package search

import (
	"strings"

	"github.com/campusgrid/campusgrid/core"
)

// instituteNotFound is the structured miss payload; callers render it as a
// 404 without special-casing an error value.
const instituteNotFound = "Institute not found"

// Institute returns the full denormalized detail view for a slug. Both the
// derived slug and the raw upstream slug resolve; under collisions the first
// institute registered during the build wins.
func (e *Engine) Institute(slug string) (*InstituteResponse, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	timer := startTimer()

	id, ok := snap.slugToId[strings.TrimSpace(slug)]
	if !ok {
		// Tolerate un-normalized input such as raw names.
		id, ok = snap.slugToId[core.Slugify(slug)]
	}
	if !ok {
		return &InstituteResponse{
			Error: instituteNotFound,
			Stats: timer.Finish(len(snap.institutes), 0),
		}, nil
	}

	detail := snap.buildDetail(snap.institutes[id])
	return &InstituteResponse{
		Institute: detail,
		Stats:     timer.Finish(len(snap.institutes), 1),
	}, nil
}

func (s *snapshot) buildDetail(inst *core.Institute) *InstituteDetail {
	raw := inst.Raw

	detail := &InstituteDetail{
		Id:            inst.Id,
		Slug:          inst.Slug,
		Name:          inst.Name,
		ShortName:     inst.ShortName,
		Logo:          inst.Logo,
		Type:          inst.Type,
		Location:      raw.Location,
		Established:   inst.Established,
		Contact:       raw.Contact,
		Accreditation: raw.Accreditation,
		Description:   inst.Description,
		TopRecruiters: raw.Placements.TopRecruiters,
		Facilities:    raw.Facilities,
		Programmes:    []ProgrammeDetail{},
	}

	// The detail view carries the complete programme → course tree, not the
	// truncated sample stored on the flattened programme records.
	for i := range s.programmes {
		p := &s.programmes[i]
		if p.InstituteId != inst.Id {
			continue
		}
		pd := ProgrammeDetail{
			Name:             p.Name,
			Slug:             p.Slug,
			EligibilityExams: p.EligibilityExams,
			PlacementRating:  p.PlacementRating,
			URL:              p.URL,
			Courses:          []CourseDetail{},
		}
		for j := range s.courses {
			c := &s.courses[j]
			if c.InstituteId != inst.Id || c.ProgrammeSlug != p.Slug {
				continue
			}
			pd.Courses = append(pd.Courses, CourseDetail{
				Degree:          c.Degree,
				DisplayName:     c.DisplayName,
				Slug:            c.Slug,
				Level:           c.Level,
				TotalFee:        c.TotalFee,
				TotalFeeDisplay: c.TotalFeeDisplay,
				Seats:           c.Seats,
				URL:             c.URL,
			})
		}
		detail.Programmes = append(detail.Programmes, pd)
	}

	detail.Academics = AcademicSummary{
		TotalProgrammes: len(detail.Programmes),
		TotalCourses:    inst.TotalCourses,
		TotalFacilities: len(raw.Facilities),
	}

	// Less-structured sections pass through untouched for the display layer.
	rawBag := make(map[string]any)
	if len(raw.Campus) > 0 {
		rawBag["campus"] = raw.Campus
	}
	if len(raw.Admissions) > 0 {
		rawBag["admissions"] = raw.Admissions
	}
	if len(raw.Research) > 0 {
		rawBag["research"] = raw.Research
	}
	if len(raw.Alumni) > 0 {
		rawBag["alumni"] = raw.Alumni
	}
	if len(raw.Profile) > 0 {
		rawBag["profile"] = raw.Profile
	}
	if len(raw.Gallery) > 0 {
		rawBag["gallery"] = raw.Gallery
	}
	if len(rawBag) > 0 {
		detail.Raw = rawBag
	}

	return detail
}
