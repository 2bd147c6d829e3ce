package lexicon

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoSize bounds a Cache when size is not positive
const DefaultMemoSize = 4096

// Cache is an LRU of predicate answers that can outlive the predicate it
// fronts, so a long running process can share it across requests
type Cache struct {
	c *lru.Cache[string, bool]
}

// NewCache builds a Cache holding up to size answers
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	c, err := lru.New[string, bool](size)
	if err != nil {
		return nil, fmt.Errorf("lexicon: memo: %w", err)
	}
	return &Cache{c: c}, nil
}

// Wrap answers from the cache and asks pred on a miss. When keep is non nil
// a fresh answer is stored only if keep reports true, which lets callers skip
// answers produced by a failing backend
func (c *Cache) Wrap(pred Predicate, keep func() bool) Predicate {
	return func(word string) bool {
		if v, ok := c.c.Get(word); ok {
			return v
		}
		v := pred(word)
		if keep == nil || keep() {
			c.c.Add(word, v)
		}
		return v
	}
}

// Len returns the number of cached answers
func (c *Cache) Len() int { return c.c.Len() }

// Memoize caches pred's answers in an LRU of the given size. The returned
// predicate is safe for concurrent use when pred is
func Memoize(pred Predicate, size int) (Predicate, error) {
	if pred == nil {
		return nil, fmt.Errorf("lexicon: nil predicate")
	}
	c, err := NewCache(size)
	if err != nil {
		return nil, err
	}
	return c.Wrap(pred, nil), nil
}
