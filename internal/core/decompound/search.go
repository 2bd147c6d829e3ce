package decompound

// searcher holds per-call state. Casers are not safe for concurrent use, so each
// Decompound call builds its own
type searcher struct {
	isValid Predicate
	cands   *candidates
}

func newSearcher(isValid Predicate, opts Options) *searcher {
	return &searcher{
		isValid: isValid,
		cands:   newCandidates(opts.Has(TryTitlecaseSuffix)),
	}
}

// partitions returns every complete split of word into two or more valid parts,
// in discovery order: ascending prefix length, then candidate order, and for each
// candidate the two-part split before the deeper ones
func (s *searcher) partitions(word []rune) [][]string {
	var out [][]string

	// i is the prefix length in runes; both halves are non-empty
	for i := 1; i < len(word); i++ {
		prefix := string(word[:i])
		if !s.isValid(prefix) {
			continue
		}

		for _, cand := range s.cands.of(word[i:]) {
			if s.isValid(cand) {
				out = append(out, []string{prefix, cand})
			}
			for _, rest := range s.partitions([]rune(cand)) {
				p := make([]string, 0, len(rest)+1)
				p = append(p, prefix)
				out = append(out, append(p, rest...))
			}
		}
	}

	return out
}
