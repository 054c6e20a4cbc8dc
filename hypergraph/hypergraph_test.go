package hypergraph_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stefanmengel/submodular-width/errs"
	"github.com/stefanmengel/submodular-width/hypergraph"
	"github.com/stretchr/testify/require"
)

func fourCycle() (vars []string, edges [][]string) {
	vars = []string{"A", "B", "C", "D"}
	edges = [][]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}
	return
}

func TestNew_FourCycle(t *testing.T) {
	vars, edges := fourCycle()
	h, err := hypergraph.New(vars, edges)
	require.NoError(t, err)
	require.Equal(t, 4, h.N())
	require.Equal(t, 4, h.M())
	require.Equal(t, []float64{1, 1, 1, 1}, h.Weights())
}

func TestNew_EmptyVars(t *testing.T) {
	_, err := hypergraph.New([]string{}, [][]string{{"A"}})
	require.ErrorIs(t, err, hypergraph.ErrEmptyVars)
	require.ErrorIs(t, err, errs.ErrConfig)
}

func TestNew_DuplicateVertex(t *testing.T) {
	_, err := hypergraph.New([]string{"A", "A"}, [][]string{{"A"}})
	require.ErrorIs(t, err, hypergraph.ErrDuplicateVertex)
}

func TestNew_EmptyEdges(t *testing.T) {
	_, err := hypergraph.New([]string{"A"}, nil)
	require.ErrorIs(t, err, hypergraph.ErrEmptyEdges)
}

func TestNew_EmptyEdge(t *testing.T) {
	_, err := hypergraph.New([]string{"A", "B"}, [][]string{{}})
	require.ErrorIs(t, err, hypergraph.ErrEmptyEdge)
}

func TestNew_EdgeNotSubset(t *testing.T) {
	_, err := hypergraph.New([]string{"A", "B"}, [][]string{{"A", "Z"}})
	require.ErrorIs(t, err, hypergraph.ErrEdgeNotSubset)
}

func TestNew_EdgesDontCoverVars(t *testing.T) {
	_, err := hypergraph.New([]string{"A", "B", "C"}, [][]string{{"A", "B"}})
	require.ErrorIs(t, err, hypergraph.ErrEdgesDontCoverVars)
}

func TestNew_WeightCountMismatch(t *testing.T) {
	vars, edges := fourCycle()
	_, err := hypergraph.New(vars, edges, hypergraph.WithWeights[string]([]float64{1, 2}))
	require.ErrorIs(t, err, hypergraph.ErrWeightCountMismatch)
}

func TestNew_NegativeWeight(t *testing.T) {
	vars, edges := fourCycle()
	_, err := hypergraph.New(vars, edges, hypergraph.WithWeights[string]([]float64{1, 1, -1, 1}))
	require.ErrorIs(t, err, hypergraph.ErrNegativeWeight)
}

func TestNew_CustomWeights(t *testing.T) {
	vars, edges := fourCycle()
	h, err := hypergraph.New(vars, edges, hypergraph.WithWeights[string]([]float64{2, 3, 4, 5}))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4, 5}, h.Weights())
}

func TestVarIndexAndVarEdges(t *testing.T) {
	vars, edges := fourCycle()
	h, err := hypergraph.New(vars, edges)
	require.NoError(t, err)

	idx, ok := h.VarIndex("B")
	require.True(t, ok)
	require.True(t, idx >= 0 && idx < h.N())

	incident := h.VarEdges(idx)
	require.Len(t, incident, 2) // B is in {A,B} and {B,C}

	_, ok = h.VarIndex("Z")
	require.False(t, ok)
}

func TestEdgesRoundtrip(t *testing.T) {
	vars, edges := fourCycle()
	h, err := hypergraph.New(vars, edges)
	require.NoError(t, err)

	decoded := h.Edges()
	require.Len(t, decoded, len(edges))
	for i := range decoded {
		got := append([]string(nil), decoded[i]...)
		want := append([]string(nil), edges[i]...)
		sort.Strings(got)
		sort.Strings(want)
		require.Equal(t, want, got)
	}
}

func TestTDs_FourCycle(t *testing.T) {
	vars, edges := fourCycle()
	h, err := hypergraph.New(vars, edges)
	require.NoError(t, err)

	tds := h.TDs()
	require.NotEmpty(t, tds)

	// Every bag of every TD must actually be a subset of the vertex set.
	full := 0
	for i := range vars {
		full |= 1 << uint(i)
	}
	for _, td := range tds {
		for _, bag := range td {
			require.Equal(t, bag, bag&full)
		}
	}

	// Calling TDs again returns the same cached slice (same length, same
	// content), not a recomputation that could reorder.
	tds2 := h.TDs()
	require.Equal(t, tds, tds2)
}

func TestWithTDs_Override(t *testing.T) {
	vars, edges := fourCycle()
	customTDs := [][][]string{
		{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
	}
	h, err := hypergraph.New(vars, edges, hypergraph.WithTDs(customTDs))
	require.NoError(t, err)

	tds := h.TDs()
	require.Len(t, tds, 1)
	require.Len(t, tds[0], 4)

	bags := h.Bags(tds[0])
	require.Len(t, bags, 4)
}

func TestEnumerateTDs_FreeFunction(t *testing.T) {
	vars, edges := fourCycle()
	tds, err := hypergraph.EnumerateTDs(vars, edges)
	require.NoError(t, err)
	require.NotEmpty(t, tds)
	for _, bags := range tds {
		require.NotEmpty(t, bags)
	}
}

func TestEnumerateTDs_PropagatesConfigError(t *testing.T) {
	_, err := hypergraph.EnumerateTDs([]string{}, nil)
	require.True(t, errors.Is(err, hypergraph.ErrEmptyVars))
}
