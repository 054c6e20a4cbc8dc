package td

// Enumerate produces every non-redundant TD of the hypergraph edge set
// edgeMasks over n vertex indices {0,...,n-1}: it runs variable
// elimination over every permutation of the vertex indices, collects
// the distinct resulting TDs (in first-seen order, which is
// deterministic given a fixed vertex order because permutations are
// generated in a fixed lexicographic order), then discards TDs
// dominated by another per TD-level subsumption.
//
// Complexity: O(n!) permutations, each doing O(m) set work per vertex;
// the subsumption pass afterward is O(k^2) in the number of surviving
// candidate TDs.
func Enumerate(n int, edgeMasks []int) []TD {
	seen := make(map[string]struct{})
	var tds []TD

	eachPermutation(n, func(order []int) {
		t := eliminate(edgeMasks, order)
		k := t.key()
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		tds = append(tds, t)
	})

	return filterSubsumed(tds)
}
