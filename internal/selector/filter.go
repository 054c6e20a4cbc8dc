package selector

import "github.com/stefanmengel/submodular-width/internal/subset"

// bagFilter applies the selector's internal subsumption rule: drop any
// bag that strictly contains another bag of the same slice, and on
// exact duplicates drop the later-indexed one. The smallest bags
// survive because the SUBW objective is a max-of-min over selector
// bags, and a strict superset bag can only weaken the min.
func bagFilter(bags []int) Selector {
	removed := make([]bool, len(bags))
	for i := range bags {
		for j := range bags {
			if i == j {
				continue
			}
			if bags[i] == bags[j] {
				if j < i {
					removed[i] = true
				}
				continue
			}
			if subset.IsSubset(bags[j], bags[i]) {
				// bags[j] is a proper subset of bags[i]: bags[i] is
				// redundant.
				removed[i] = true
			}
		}
	}

	kept := make([]int, 0, len(bags))
	for i, b := range bags {
		if !removed[i] {
			kept = append(kept, b)
		}
	}
	return newSelector(kept)
}
