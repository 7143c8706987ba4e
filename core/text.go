package core

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts free text to a URL-safe slug: lowercased, characters
// outside [a-z0-9 -] stripped, whitespace collapsed to single hyphens.
// It is idempotent and returns "" for empty input.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Catalog amounts are rupees; en-IN gives the lakh/crore digit grouping.
var feePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatFee renders an amount as a display currency string with Indian digit
// grouping and no decimal places. Returns "" for zero or negative amounts,
// which callers treat as "no fee on record".
func FormatFee(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return feePrinter.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// ExtractDescription pulls a descriptive paragraph out of an institute
// document: the first campus profile entry carrying a description wins,
// the about/overview field is the fallback.
func ExtractDescription(doc *RawInstitute) string {
	if doc == nil {
		return ""
	}
	for _, section := range doc.Profile {
		if desc := strings.TrimSpace(section.Description); desc != "" {
			return desc
		}
	}
	return strings.TrimSpace(doc.About)
}
