package selector

import "github.com/stefanmengel/submodular-width/internal/td"

// Enumerate builds the non-subsumed, bag-filtered list of selectors
// over tds, one bag chosen per TD. Construction is incremental: the
// cross-product with each subsequent TD is extended one TD at a time,
// bag-filtered immediately, then pruned by selector-level subsumption
// before moving to the next TD. Extend-then-prune in that order matters
// for scale: the raw cross-product count grows combinatorially in the
// number of TDs, but subsumption keeps the surviving set tractable.
//
// An empty tds list yields an empty selector list.
func Enumerate(tds []td.TD) []Selector {
	if len(tds) == 0 {
		return nil
	}

	selectors := make([]Selector, 0, len(tds[0]))
	for _, b := range tds[0] {
		selectors = append(selectors, bagFilter([]int{b}))
	}

	for i := 1; i < len(tds); i++ {
		extended := make([]Selector, 0, len(selectors)*len(tds[i]))
		seen := make(map[string]struct{})
		for _, s := range selectors {
			for _, b := range tds[i] {
				combined := bagFilter(append(append([]int(nil), s...), b))
				k := combined.key()
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				extended = append(extended, combined)
			}
		}
		selectors = filterSubsumedSelectors(extended)
	}

	return selectors
}
