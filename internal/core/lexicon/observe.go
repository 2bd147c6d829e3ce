package lexicon

// Observe calls fn with every word and answer pred produces
func Observe(pred Predicate, fn func(word string, valid bool)) Predicate {
	if fn == nil {
		return pred
	}
	return func(word string) bool {
		v := pred(word)
		fn(word, v)
		return v
	}
}
