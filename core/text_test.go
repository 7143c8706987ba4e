package core

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain words", "Alpha Institute of Technology", "alpha-institute-of-technology"},
		{"punctuation stripped", "St. Xavier's College (Autonomous)", "st-xaviers-college-autonomous"},
		{"whitespace collapsed", "  Indian   Institute \t of  Science ", "indian-institute-of-science"},
		{"repeated hyphens collapsed", "a -- b", "a-b"},
		{"edge hyphens stripped", "- trailing -", "trailing"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Alpha Institute of Technology",
		"B.Tech (Hons.)",
		"already-a-slug",
		"",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}

func TestSlugify_Charset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{
		"Alpha Institute of Technology",
		"Maître d'École #1",
		"   ",
		"A&B College, Pune",
	}
	for _, in := range inputs {
		slug := Slugify(in)
		assert.True(t, valid.MatchString(slug), "slug %q contains invalid characters", slug)
		if slug != "" {
			assert.NotEqual(t, byte('-'), slug[0])
			assert.NotEqual(t, byte('-'), slug[len(slug)-1])
		}
	}
}

func TestFormatFee(t *testing.T) {
	t.Run("zero and negative are absent", func(t *testing.T) {
		assert.Empty(t, FormatFee(0))
		assert.Empty(t, FormatFee(-1))
	})

	t.Run("grouped with currency symbol", func(t *testing.T) {
		got := FormatFee(49999)
		assert.Contains(t, got, "₹")
		assert.Contains(t, got, "49,999")
	})

	t.Run("lakh grouping", func(t *testing.T) {
		assert.Contains(t, FormatFee(100000), "1,00,000")
	})
}

func TestExtractDescription(t *testing.T) {
	t.Run("profile description wins", func(t *testing.T) {
		doc := &RawInstitute{
			About: "fallback text",
			Profile: []ProfileSection{
				{Label: "student-faculty ratio", Value: "12:1"},
				{Label: "overview", Description: "A residential campus in Pune."},
			},
		}
		assert.Equal(t, "A residential campus in Pune.", ExtractDescription(doc))
	})

	t.Run("falls back to about", func(t *testing.T) {
		doc := &RawInstitute{About: "fallback text"}
		assert.Equal(t, "fallback text", ExtractDescription(doc))
	})

	t.Run("absent everywhere", func(t *testing.T) {
		assert.Empty(t, ExtractDescription(&RawInstitute{}))
		assert.Empty(t, ExtractDescription(nil))
	})
}
