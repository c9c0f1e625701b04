package pageconfig

import (
	"regexp"
	"strings"
)

var (
	slugSeparators = regexp.MustCompile(`[/\\._\s]+`)
	slugStrip      = regexp.MustCompile(`[^\w-]`)
	slugDashes     = regexp.MustCompile(`-+`)
)

// Slug turns text into a URL-safe identifier: path separators, points,
// underscores and whitespace become dashes, other non-word characters are
// dropped, dash runs collapse to one and the result is lowercased.
//
// "This, That & the Other!" becomes "this-that-the-other".
func Slug(text string) string {
	s := slugSeparators.ReplaceAllString(text, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
