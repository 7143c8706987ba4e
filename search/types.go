package search

import (
	"regexp"
	"strings"
	"time"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/index"
)

// Entity type filter values accepted by SearchParams.Type.
const (
	TypeInstitute = "institute"
	TypeProgramme = "programme"
	TypeCourse    = "course"
)

// SearchParams are the inputs of Engine.Search. Facet filter fields accept a
// single value or a delimiter-separated list (comma, the word "and", or an
// ampersand); multiple values are OR'd within the facet.
type SearchParams struct {
	Query     string
	Type      string
	City      string
	State     string
	Level     string
	Programme string
	Exam      string
	Course    string
	Page      int
	Limit     int
}

// ExploreParams are the inputs of Engine.Explore. Filter fields follow the
// same delimiter semantics as SearchParams. Accreditation matches the NAAC
// grade; the special value "none" selects institutes without one.
type ExploreParams struct {
	City          string
	State         string
	Type          string
	Level         string
	Programme     string
	Exam          string
	Course        string
	Accreditation string
	SortBy        string // name | courses | established
	SortOrder     string // asc | desc
	Page          int
	Limit         int
}

// EntityCounts holds one number per entity level.
type EntityCounts struct {
	Institutes int `json:"institutes"`
	Programmes int `json:"programmes"`
	Courses    int `json:"courses"`
}

// HasMore reports, per entity level, whether pages remain past the current one.
type HasMore struct {
	Institutes bool `json:"institutes"`
	Programmes bool `json:"programmes"`
	Courses    bool `json:"courses"`
}

// SuggestResponse is the result of Engine.Suggest.
type SuggestResponse struct {
	Query      string             `json:"query"`
	Keywords   []string           `json:"keywords"`
	Institutes []index.Suggestion `json:"institutes"`
	Programmes []index.Suggestion `json:"programmes"`
	Courses    []index.Suggestion `json:"courses"`
	Stats      QueryStats         `json:"stats"`
}

// SearchResponse is the result of Engine.Search. The three entity lists are
// paginated independently with the same page/limit.
type SearchResponse struct {
	Query      string                    `json:"query"`
	Keywords   []string                  `json:"keywords"`
	Institutes []*core.Institute         `json:"institutes"`
	Programmes []core.Programme          `json:"programmes"`
	Courses    []core.Course             `json:"courses"`
	Totals     EntityCounts              `json:"totals"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	HasMore    HasMore                   `json:"hasMore"`
	Facets     map[string]map[string]int `json:"facets"`
	Stats      QueryStats                `json:"stats"`
}

// ExploreResponse is the result of Engine.Explore.
type ExploreResponse struct {
	Institutes    []*core.Institute         `json:"institutes"`
	Filters       map[string]string         `json:"filters"`
	SortBy        string                    `json:"sortBy"`
	SortOrder     string                    `json:"sortOrder"`
	Page          int                       `json:"page"`
	Limit         int                       `json:"limit"`
	Total         int                       `json:"total"`
	TotalPages    int                       `json:"totalPages"`
	HasMore       bool                      `json:"hasMore"`
	Facets        map[string]map[string]int `json:"facets"`
	Accreditation map[string]int            `json:"accreditation"`
	Stats         QueryStats                `json:"stats"`
}

// CourseDetail is one course inside the institute detail tree.
type CourseDetail struct {
	Degree          string `json:"degree"`
	DisplayName     string `json:"displayName,omitempty"`
	Slug            string `json:"slug"`
	Level           string `json:"level,omitempty"`
	TotalFee        int64  `json:"totalFee,omitempty"`
	TotalFeeDisplay string `json:"totalFeeDisplay,omitempty"`
	Seats           int    `json:"seats,omitempty"`
	URL             string `json:"url"`
}

// ProgrammeDetail is one programme inside the institute detail tree,
// carrying its complete course list rather than the truncated sample.
type ProgrammeDetail struct {
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	EligibilityExams []string       `json:"eligibilityExams,omitempty"`
	PlacementRating  float64        `json:"placementRating,omitempty"`
	URL              string         `json:"url"`
	Courses          []CourseDetail `json:"courses"`
}

// AcademicSummary aggregates per-institute counts for the detail view.
type AcademicSummary struct {
	TotalProgrammes int `json:"totalProgrammes"`
	TotalCourses    int `json:"totalCourses"`
	TotalFacilities int `json:"totalFacilities"`
}

// InstituteDetail is the full denormalized institute view.
type InstituteDetail struct {
	Id            core.ID            `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	ShortName     string             `json:"shortName,omitempty"`
	Logo          string             `json:"logo,omitempty"`
	Type          string             `json:"type,omitempty"`
	Location      core.Location      `json:"location"`
	Established   int                `json:"established,omitempty"`
	Contact       core.Contact       `json:"contact"`
	Accreditation core.Accreditation `json:"accreditation"`
	Description   string             `json:"description,omitempty"`
	Academics     AcademicSummary    `json:"academics"`
	TopRecruiters []string           `json:"topRecruiters,omitempty"`
	Facilities    []string           `json:"facilities,omitempty"`
	Programmes    []ProgrammeDetail  `json:"programmes"`
	Raw           map[string]any     `json:"raw,omitempty"`
}

// InstituteResponse wraps the detail view. On a miss, Error is set and
// Institute is nil so callers can render a 404 without special-casing.
type InstituteResponse struct {
	Institute *InstituteDetail `json:"institute,omitempty"`
	Error     string           `json:"error,omitempty"`
	Stats     QueryStats       `json:"stats"`
}

// StatsResponse is the introspection payload of Engine.Stats.
type StatsResponse struct {
	CorpusSize    int            `json:"corpusSize"`
	Entities      EntityCounts   `json:"entities"`
	Facets        map[string]int `json:"facets"`
	TrieNodes     map[string]int `json:"trieNodes"`
	BuiltAt       time.Time      `json:"builtAt"`
	BuildDuration string         `json:"buildDuration"`
}

// filterDelimiters splits multi-value facet filters: commas, ampersands,
// and the standalone word "and".
var filterDelimiters = regexp.MustCompile(`(?i)(?:,|&|\band\b)`)

// splitFilterValues breaks a raw filter string into trimmed non-empty values.
func splitFilterValues(raw string) []string {
	parts := filterDelimiters.Split(raw, -1)
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
