// Package lexicon provides word-validity predicates for decompounding: an
// in-memory set plus wrappers that memoize, cap or observe another predicate.
package lexicon

import (
	"bufio"
	"io"
	"strings"
)

// Predicate reports whether word is a standalone word. It matches the shape the
// decompounder accepts
type Predicate = func(word string) bool

// Set is an exact-match word list
type Set map[string]struct{}

// NewSet builds a Set from words as given
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// ReadSet reads one word per line, trimming surrounding whitespace and
// skipping blank lines. The empty string is never a word
func ReadSet(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Add inserts words
func (s Set) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Contains is the Set's predicate
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words
func (s Set) Len() int { return len(s) }
