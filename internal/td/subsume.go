package td

import "github.com/stefanmengel/submodular-width/internal/subset"

// subsumedBy reports whether a is subsumed by b: for every bag of b,
// a has some bag that contains it. A TD with wider bags is subsumed by
// one with narrower bags covering the same ground, because FHTW is a
// max over bags — a dominating (subsumed) TD can never win.
//
// Note the direction: this is the opposite comparison selector-level
// subsumption uses (see internal/selector/subsume.go), because SUBW's
// objective is a max-of-min rather than a min-of-max. Any reimplementer
// must reproduce both orientations exactly (specification §9).
func subsumedBy(a, b TD) bool {
	for _, bb := range b {
		found := false
		for _, ab := range a {
			if subset.IsSubset(bb, ab) {
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

// filterSubsumed removes TDs dominated by another TD that does not
// also dominate it back; on mutual subsumption (equivalent TDs), the
// one with the larger list index is removed. The relative order of
// surviving TDs is preserved.
func filterSubsumed(tds []TD) []TD {
	removed := make([]bool, len(tds))
	for i := range tds {
		for j := range tds {
			if i == j {
				continue
			}
			if !subsumedBy(tds[i], tds[j]) {
				continue
			}
			if subsumedBy(tds[j], tds[i]) {
				// Mutual subsumption: equivalent TDs, drop the
				// higher index.
				if i > j {
					removed[i] = true
				}
			} else {
				removed[i] = true
			}
		}
	}

	out := make([]TD, 0, len(tds))
	for i, t := range tds {
		if !removed[i] {
			out = append(out, t)
		}
	}
	return out
}
