package td

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fourCycleEdges returns the bitmask edges of the 4-cycle over vertex
// indices {0,1,2,3}: {0,1},{1,2},{2,3},{3,0}.
func fourCycleEdges() []int {
	return []int{0b0011, 0b0110, 0b1100, 0b1001}
}

func TestEnumerate_CoveringProperty(t *testing.T) {
	edges := fourCycleEdges()
	tds := Enumerate(4, edges)
	require.NotEmpty(t, tds)

	for _, decomp := range tds {
		for _, e := range edges {
			covered := false
			for _, bag := range decomp {
				if e&bag == e {
					covered = true
					break
				}
			}
			require.Truef(t, covered, "edge %b not covered by any bag in TD %v", e, decomp)
		}
	}
}

func TestEnumerate_PermutationInvariantInEdgeOrder(t *testing.T) {
	edges := fourCycleEdges()
	base := Enumerate(4, edges)

	shuffled := append([]int(nil), edges...)
	rnd := rand.New(rand.NewSource(1))
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	again := Enumerate(4, shuffled)

	require.Equal(t, len(base), len(again))
	seenBase := map[string]bool{}
	for _, td := range base {
		seenBase[td.key()] = true
	}
	for _, td := range again {
		require.True(t, seenBase[td.key()], "TD %v missing after edge reorder", td)
	}
}

func TestEliminate_SingleVertexSkippedWhenUntouched(t *testing.T) {
	// Vertex 2 appears in no edge; its elimination step must be a no-op.
	edges := []int{0b0011} // edge over {0,1}
	result := eliminate(edges, []int{2, 0, 1})
	require.Len(t, result, 1)
	require.Equal(t, 0b0011, result[0])
}

func TestFilterSubsumed_RemovesTDWithWiderBag(t *testing.T) {
	// TD A = {{0,1,2}} is subsumed by TD B = {{0,1}}: B's sole bag {0,1}
	// is contained in A's bag {0,1,2}. B is not subsumed by A, so the
	// filter removes A and keeps B.
	a := TD{0b111} // {0,1,2}
	b := TD{0b011} // {0,1}

	// subsumedBy(a, b): for every bag of b ({0,1}), is there a bag of a
	// containing it? Yes ({0,1,2} ⊇ {0,1}). So a is subsumed by b.
	require.True(t, subsumedBy(a, b))
	// subsumedBy(b, a): for every bag of a ({0,1,2}), is there a bag of
	// b containing it? No bag of b ({0,1}) contains {0,1,2}.
	require.False(t, subsumedBy(b, a))

	out := filterSubsumed([]TD{a, b})
	require.Len(t, out, 1)
	require.Equal(t, b, out[0])
}

func TestFilterSubsumed_MutualSubsumptionKeepsLowerIndex(t *testing.T) {
	a := TD{0b011}
	b := TD{0b011} // identical bag set: mutually subsumed
	out := filterSubsumed([]TD{a, b})
	require.Len(t, out, 1)
	require.Equal(t, a, out[0])
}

func TestEachPermutation_CountAndCoverage(t *testing.T) {
	count := 0
	seen := map[string]bool{}
	eachPermutation(4, func(perm []int) {
		count++
		cp := append([]int(nil), perm...)
		seen[TD(cp).key()] = true
	})
	require.Equal(t, 24, count) // 4!
	require.Len(t, seen, 24)    // all distinct
}
