package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog documents.
// Seeded documents without an explicit id get a content-based one.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Location is the city/state pair of an institute campus.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Accreditation carries the recognition data of an institute.
type Accreditation struct {
	NAACGrade   string `json:"naacGrade,omitempty"`
	NIRFRank    int    `json:"nirfRank,omitempty"`
	UGCApproved bool   `json:"ugcApproved,omitempty"`
}

// Contact carries the public contact channels of an institute.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// FeeStructure holds course fees in whole rupees.
type FeeStructure struct {
	Total   int64 `json:"total,omitempty"`
	Tuition int64 `json:"tuition,omitempty"`
}

// PlacementStats holds placement outcomes, packages in whole rupees per annum.
type PlacementStats struct {
	AveragePackage int64    `json:"averagePackage,omitempty"`
	HighestPackage int64    `json:"highestPackage,omitempty"`
	PlacementRate  float64  `json:"placementRate,omitempty"`
	TopRecruiters  []string `json:"topRecruiters,omitempty"`
}

// ProfileSection is one entry of an institute's campus profile, the
// student/faculty-ratio style blocks. Some entries carry a free-text
// description of the institute.
type ProfileSection struct {
	Label       string `json:"label,omitempty"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// RawCourse is a course as it arrives from the document store.
type RawCourse struct {
	Degree           string         `json:"degree"`
	DisplayName      string         `json:"displayName,omitempty"`
	Level            string         `json:"level,omitempty"`
	Category         string         `json:"category,omitempty"`
	EducationType    string         `json:"educationType,omitempty"`
	DurationMonths   int            `json:"durationMonths,omitempty"`
	Seats            int            `json:"seats,omitempty"`
	Fees             FeeStructure   `json:"fees"`
	Placement        PlacementStats `json:"placement"`
	EligibilityExams []string       `json:"eligibilityExams,omitempty"`
}

// RawProgramme is a programme as it arrives from the document store.
type RawProgramme struct {
	Name             string      `json:"name"`
	EligibilityExams []string    `json:"eligibilityExams,omitempty"`
	PlacementRating  float64     `json:"placementRating,omitempty"`
	Courses          []RawCourse `json:"courses,omitempty"`
}

// RawInstitute is one institute document as it arrives from the document
// store, programmes and courses nested inside. Fields beyond the structured
// ones travel in loosely-typed bags so the display layer can evolve without
// schema changes here.
type RawInstitute struct {
	Id            ID               `json:"id,omitempty"`
	Name          string           `json:"name"`
	ShortName     string           `json:"shortName,omitempty"`
	Slug          string           `json:"slug,omitempty"`
	Type          string           `json:"type,omitempty"`
	Logo          string           `json:"logo,omitempty"`
	Location      Location         `json:"location"`
	Established   int              `json:"established,omitempty"`
	Accreditation Accreditation    `json:"accreditation"`
	Contact       Contact          `json:"contact"`
	Placements    PlacementStats   `json:"placements"`
	About         string           `json:"about,omitempty"`
	Profile       []ProfileSection `json:"profile,omitempty"`
	Facilities    []string         `json:"facilities,omitempty"`
	Gallery       []string         `json:"gallery,omitempty"`
	Programmes    []RawProgramme   `json:"programmes,omitempty"`

	// Loosely-typed sections passed through to the detail view untouched.
	Campus     map[string]any `json:"campus,omitempty"`
	Admissions map[string]any `json:"admissions,omitempty"`
	Research   map[string]any `json:"research,omitempty"`
	Alumni     map[string]any `json:"alumni,omitempty"`
}

// Institute is the materialized institute record. Built once per build,
// never mutated afterwards except for TotalCourses, which only moves while
// the build itself is counting courses.
type Institute struct {
	Id           ID     `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName,omitempty"`
	Logo         string `json:"logo,omitempty"`
	Type         string `json:"type,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Established  int    `json:"established,omitempty"`
	Description  string `json:"description,omitempty"`
	TotalCourses int    `json:"totalCourses"`

	// Raw is the source document, kept for the detail view.
	Raw *RawInstitute `json:"-"`
}

// CourseSummary is the truncated course view embedded in programme records.
type CourseSummary struct {
	Degree      string `json:"degree"`
	DisplayName string `json:"displayName,omitempty"`
	Slug        string `json:"slug"`
	Level       string `json:"level,omitempty"`
}

// ProgrammeSummary is the parent-programme view embedded in course records.
type ProgrammeSummary struct {
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	PlacementRating float64 `json:"placementRating,omitempty"`
}

// Programme is the flattened programme record with back-references to its
// parent institute.
type Programme struct {
	InstituteId   ID     `json:"instituteId"`
	InstituteSlug string `json:"instituteSlug"`
	InstituteName string `json:"instituteName"`
	InstituteLogo string `json:"instituteLogo,omitempty"`

	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	EligibilityExams []string        `json:"eligibilityExams,omitempty"`
	PlacementRating  float64         `json:"placementRating,omitempty"`
	SampleCourses    []CourseSummary `json:"sampleCourses,omitempty"`
	MoreCourses      int             `json:"moreCourses"`
	URL              string          `json:"url"`
}

// Course is the flattened course record with back-references to both its
// institute and its programme.
type Course struct {
	InstituteId   ID     `json:"instituteId"`
	InstituteSlug string `json:"instituteSlug"`
	InstituteName string `json:"instituteName"`
	ProgrammeName string `json:"programmeName"`
	ProgrammeSlug string `json:"programmeSlug"`

	Degree                string           `json:"degree"`
	DisplayName           string           `json:"displayName,omitempty"`
	Slug                  string           `json:"slug"`
	Level                 string           `json:"level,omitempty"`
	TotalFee              int64            `json:"totalFee,omitempty"`
	TotalFeeDisplay       string           `json:"totalFeeDisplay,omitempty"`
	Seats                 int              `json:"seats,omitempty"`
	EligibilityExams      []string         `json:"eligibilityExams,omitempty"`
	AveragePackage        int64            `json:"averagePackage,omitempty"`
	AveragePackageDisplay string           `json:"averagePackageDisplay,omitempty"`
	URL                   string           `json:"url"`
	Programme             ProgrammeSummary `json:"programme"`
}
