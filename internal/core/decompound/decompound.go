// Package decompound splits compound words into their constituents.
//
// Validity of a single word is delegated to a caller supplied Predicate. The
// search tries every rune boundary, collects every complete partition, then
// picks one by constituent count. Nothing is cached and nothing is logged; wrap
// the predicate (see internal/core/lexicon) if lookups are expensive.
//
// Recursion depth equals the rune length of the word. Inputs longer than
// MaxRecommendedRunes should be rejected by the caller before invoking the
// package; the work is exponential in the worst case anyway.
package decompound

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxRecommendedRunes is the longest input the outer surfaces accept
const MaxRecommendedRunes = 256

// Predicate reports whether word is a valid single word
type Predicate func(word string) bool

// ErrNoValidDecomposition means neither a compound split nor the word itself is valid
var ErrNoValidDecomposition = errors.New("decompound: no valid decomposition")

// SingleWordError means the word is valid on its own but has no multi-part split
type SingleWordError struct {
	Word string
}

func (e *SingleWordError) Error() string {
	return fmt.Sprintf("decompound: %q is a single word, not a compound", e.Word)
}

// SingleWord returns the payload of a *SingleWordError anywhere in err's chain
func SingleWord(err error) (string, bool) {
	var sw *SingleWordError
	if errors.As(err, &sw) {
		return sw.Word, true
	}
	return "", false
}

// Decompound returns the constituents of word.
// On failure the error is either a *SingleWordError or ErrNoValidDecomposition.
// A word that is not valid UTF-8 never decomposes
func Decompound(word string, isValid Predicate, opts Options) ([]string, error) {
	if isValid == nil || !utf8.ValidString(word) {
		return nil, ErrNoValidDecomposition
	}
	if opts.Has(SplitHyphenated) {
		return decompoundHyphenated(word, isValid, opts)
	}

	s := newSearcher(isValid, opts)
	if best := choose(s.partitions([]rune(word)), opts.Has(Shatter)); best != nil {
		return best, nil
	}
	if isValid(word) {
		return nil, &SingleWordError{Word: word}
	}
	return nil, ErrNoValidDecomposition
}

// decompoundHyphenated treats '-' as a hard boundary. Each piece goes through the
// plain path; a piece that is only a single word still counts as a constituent here
func decompoundHyphenated(word string, isValid Predicate, opts Options) ([]string, error) {
	inner := opts.Without(SplitHyphenated)

	var out []string
	for _, sub := range strings.Split(word, "-") {
		parts, err := Decompound(sub, isValid, inner)
		if err == nil {
			out = append(out, parts...)
			continue
		}
		if w, ok := SingleWord(err); ok {
			out = append(out, w)
			continue
		}
		return nil, ErrNoValidDecomposition
	}

	switch len(out) {
	case 0:
		return nil, ErrNoValidDecomposition
	case 1:
		return nil, &SingleWordError{Word: word}
	default:
		return out, nil
	}
}
