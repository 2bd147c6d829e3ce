// Package strings provides small string and slice helpers
package strings

import (
	std "strings"
	"unicode/utf8"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// NonBlank trims each item and drops the ones left empty
func NonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = std.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TruncateRunes cuts s to at most n runes, marking the cut with "…"; for log fields
func TruncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "…"
		}
		i++
	}
	return s
}
