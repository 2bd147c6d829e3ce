package lexicon

import "sync/atomic"

// Budgeted is a predicate that stops consulting its source after Max calls
type Budgeted struct {
	pred  Predicate
	max   int64
	calls atomic.Int64
}

// Budget wraps pred so that at most max calls reach it; later calls answer
// false. A non-positive max disables the cap
func Budget(pred Predicate, max int) *Budgeted {
	return &Budgeted{pred: pred, max: int64(max)}
}

// Valid is the wrapped predicate
func (b *Budgeted) Valid(word string) bool {
	n := b.calls.Add(1)
	if b.max > 0 && n > b.max {
		return false
	}
	return b.pred(word)
}

// Calls returns how many times Valid was asked
func (b *Budgeted) Calls() int { return int(b.calls.Load()) }

// Exhausted reports whether any call was refused
func (b *Budgeted) Exhausted() bool {
	return b.max > 0 && b.calls.Load() > b.max
}
