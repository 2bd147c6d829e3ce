package decompound

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// candidates produces the suffix strings tried after a valid prefix
type candidates struct {
	titlecase bool
	title     cases.Caser
	lower     cases.Caser
}

func newCandidates(titlecase bool) *candidates {
	c := &candidates{titlecase: titlecase}
	if titlecase {
		c.title = cases.Title(language.Und)
		c.lower = cases.Lower(language.Und)
	}
	return c
}

// of returns the deduplicated candidates for suffix in code-point order.
// Go compares strings bytewise and UTF-8 preserves code-point order
func (c *candidates) of(suffix []rune) []string {
	lit := string(suffix)
	if !c.titlecase {
		return []string{lit}
	}
	out := []string{lit, c.titlecaseLowerRest(suffix)}
	slices.Sort(out)
	return slices.Compact(out)
}

// titlecaseLowerRest titlecases the first rune and lowercases the remainder.
// Full case mappings apply, so the result can differ in length ("ßx" -> "Ssx")
func (c *candidates) titlecaseLowerRest(s []rune) string {
	if len(s) == 0 {
		return ""
	}
	return c.title.String(string(s[:1])) + c.lower.String(string(s[1:]))
}
