package decompound

import (
	"fmt"
	"strings"
)

// Options is a set of independent behavior flags; the zero value enables nothing
type Options uint8

const (
	// TryTitlecaseSuffix also tests "Xxxx" forms of every suffix
	TryTitlecaseSuffix Options = 1 << iota
	// SplitHyphenated treats '-' as a hard compound boundary
	SplitHyphenated
	// Shatter prefers the partition with the most constituents
	Shatter
)

// optionNames is ordered by bit value
var optionNames = []struct {
	flag Options
	name string
}{
	{TryTitlecaseSuffix, "try-titlecase-suffix"},
	{SplitHyphenated, "split-hyphenated"},
	{Shatter, "shatter"},
}

// Has reports whether every flag in f is set
func (o Options) Has(f Options) bool { return o&f == f }

// With returns o with f added
func (o Options) With(f Options) Options { return o | f }

// Without returns o with f cleared
func (o Options) Without(f Options) Options { return o &^ f }

// String renders the set flags joined by '|', or "none"
func (o Options) String() string {
	var names []string
	for _, n := range optionNames {
		if o.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseOption maps a flag name (case-insensitive, underscores allowed) to its Options bit
func ParseOption(name string) (Options, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, n := range optionNames {
		if n.name == key {
			return n.flag, nil
		}
	}
	return 0, fmt.Errorf("decompound: unknown option %q", name)
}

// ParseOptions folds a list of flag names into one Options value
func ParseOptions(names ...string) (Options, error) {
	var o Options
	for _, n := range names {
		f, err := ParseOption(n)
		if err != nil {
			return 0, err
		}
		o = o.With(f)
	}
	return o, nil
}
