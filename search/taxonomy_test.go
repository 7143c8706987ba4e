package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "degree abbreviation maps to discipline",
			text: "btech",
			want: []string{"engineering"},
		},
		{
			name: "discipline plus institution word",
			text: "Engineering Colleges",
			want: []string{"engineering", "institute"},
		},
		{
			name: "multiple disciplines come back sorted",
			text: "law btech",
			want: []string{"engineering", "law"},
		},
		{
			name: "repeated words deduplicate",
			text: "engineering engineering tech",
			want: []string{"engineering"},
		},
		{
			name: "unrecognized text matches nothing",
			text: "zzzqx",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

// The substring matching is bidirectional by design, which admits false
// positives on short tokens. These are pinned here so a change to the
// matching rule shows up as a test failure, not a silent behavior shift.
func TestExtractKeywords_LooseMatching(t *testing.T) {
	t.Run("stop word inside a token", func(t *testing.T) {
		// "of" is a substring of "software".
		got := ExtractKeywords("of")
		assert.Contains(t, got, "computer science")
	})

	t.Run("token inside a longer word", func(t *testing.T) {
		// "medical" contains "ca".
		got := ExtractKeywords("medical")
		assert.Contains(t, got, "medical")
		assert.Contains(t, got, "commerce")
	})

	t.Run("partial discipline word", func(t *testing.T) {
		got := ExtractKeywords("engin")
		assert.Contains(t, got, "engineering")
	})
}
