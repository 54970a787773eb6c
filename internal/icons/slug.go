package icons

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slug normalises an integration name into a lowercase hyphenated identifier.
// "+" becomes "plus", "&" becomes "and", and every run of other
// non-alphanumeric characters collapses to one hyphen.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "+", "plus")
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// LastWord returns the segment after the final hyphen of slug, or slug itself
// when it has no hyphen.
func LastWord(slug string) string {
	if i := strings.LastIndex(slug, "-"); i >= 0 && i < len(slug)-1 {
		return slug[i+1:]
	}
	return slug
}
