package selector

import "github.com/stefanmengel/submodular-width/internal/subset"

// subsumedBy reports whether s1 is subsumed by s2: for every bag of
// s2, s1 has some bag contained in it. Note the inverted direction
// relative to TD-level subsumption (internal/td/subsume.go): here the
// smaller bag dominates, because SUBW's objective is a max-of-min
// rather than a min-of-max.
func subsumedBy(s1, s2 Selector) bool {
	for _, b2 := range s2 {
		found := false
		for _, b1 := range s1 {
			if subset.IsSubset(b1, b2) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// filterSubsumedSelectors drops selectors dominated by another that
// does not also dominate them back; mutually-subsuming (equivalent)
// selectors keep only the lower list index. Order of survivors is
// preserved.
func filterSubsumedSelectors(selectors []Selector) []Selector {
	removed := make([]bool, len(selectors))
	for i := range selectors {
		for j := range selectors {
			if i == j {
				continue
			}
			if !subsumedBy(selectors[i], selectors[j]) {
				continue
			}
			if subsumedBy(selectors[j], selectors[i]) {
				if i > j {
					removed[i] = true
				}
			} else {
				removed[i] = true
			}
		}
	}

	out := make([]Selector, 0, len(selectors))
	for i, s := range selectors {
		if !removed[i] {
			out = append(out, s)
		}
	}
	return out
}
