package decompound

// choose picks the first shortest partition, or the first longest when shatter
// is set. Returns nil for an empty set
func choose(parts [][]string, shatter bool) []string {
	var best []string
	for _, p := range parts {
		switch {
		case best == nil:
			best = p
		case shatter && len(p) > len(best):
			best = p
		case !shatter && len(p) < len(best):
			best = p
		}
	}
	return best
}
