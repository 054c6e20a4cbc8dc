package subw

import (
	"github.com/stefanmengel/submodular-width/internal/subset"
	"github.com/stefanmengel/submodular-width/lp"
)

// baseModel holds the hypergraph-and-FD-dependent part of the entropic
// LP: everything except the min-target constraints, which vary per
// selector. It is built once per Width call and reused across every
// selector's LP.
type baseModel struct {
	n           int
	numVars     int // 2^n h-variables plus one w variable
	wIndex      int
	kinds       []lp.VarKind
	constraints []lp.Constraint
}

// newBaseModel builds the zero, elemental-monotonicity,
// elemental-submodularity, edge-domination and FD-equality constraint
// families over n vertices, hyperedges edgeMasks with weights, and FDs
// given as (X-mask, Y-mask) pairs already normalized (Y = X ∪ Y). Each
// FD's Y-mask must be a subset of some entry in edgeMasks.
func newBaseModel(n int, edgeMasks []int, weights []float64, fdMasks [][2]int) (*baseModel, error) {
	full := subset.Full(n)
	numH := 1 << uint(n)
	wIndex := numH
	numVars := numH + 1

	kinds := make([]lp.VarKind, numVars)
	for i := 0; i < numH; i++ {
		kinds[i] = lp.Free
	}
	kinds[wIndex] = lp.NonNegative

	m := &baseModel{n: n, numVars: numVars, wIndex: wIndex, kinds: kinds}

	m.addZero()
	m.addMonotonicity(full)
	m.addSubmodularity(full)
	m.addEdgeDomination(edgeMasks, weights)

	for _, fdm := range fdMasks {
		x, y := fdm[0], fdm[1]
		if !edgeContainsSubset(edgeMasks, y) {
			return nil, configErrorf(ErrIllegalFD)
		}
		m.addFDEquality(x, y)
	}

	return m, nil
}

func edgeContainsSubset(edgeMasks []int, y int) bool {
	for _, e := range edgeMasks {
		if subset.IsSubset(y, e) {
			return true
		}
	}
	return false
}

func (m *baseModel) newRow() []float64 {
	return make([]float64, m.numVars)
}

func (m *baseModel) addZero() {
	row := m.newRow()
	row[0] = 1 // h[empty] indexed at mask 0
	m.constraints = append(m.constraints, lp.Constraint{Coeffs: row, Op: lp.EQ, RHS: 0})
}

// addMonotonicity adds h[V] - h[V\{v}] >= 0 for every vertex v.
func (m *baseModel) addMonotonicity(full int) {
	for v := 0; v < m.n; v++ {
		bit := 1 << uint(v)
		row := m.newRow()
		row[full] += 1
		row[full&^bit] += -1
		m.constraints = append(m.constraints, lp.Constraint{Coeffs: row, Op: lp.GE, RHS: 0})
	}
}

// addSubmodularity adds h[X∪y] + h[X∪z] - h[X] - h[X∪y∪z] >= 0 for
// every pair y<z and every X disjoint from {y,z}.
func (m *baseModel) addSubmodularity(full int) {
	for y := 0; y < m.n; y++ {
		for z := y + 1; z < m.n; z++ {
			yBit, zBit := 1<<uint(y), 1<<uint(z)
			comp := full &^ (yBit | zBit)
			for x := comp; ; x = (x - 1) & comp {
				row := m.newRow()
				row[x|yBit] += 1
				row[x|zBit] += 1
				row[x] += -1
				row[x|yBit|zBit] += -1
				m.constraints = append(m.constraints, lp.Constraint{Coeffs: row, Op: lp.GE, RHS: 0})

				if x == 0 {
					break
				}
			}
		}
	}
}

// addEdgeDomination adds h[E] <= weight(E) for every hyperedge E.
func (m *baseModel) addEdgeDomination(edgeMasks []int, weights []float64) {
	for i, e := range edgeMasks {
		row := m.newRow()
		row[e] += 1
		m.constraints = append(m.constraints, lp.Constraint{Coeffs: row, Op: lp.LE, RHS: weights[i]})
	}
}

// addFDEquality adds h[Y] - h[X] = 0 for one functional dependency.
func (m *baseModel) addFDEquality(x, y int) {
	row := m.newRow()
	row[y] += 1
	row[x] += -1
	m.constraints = append(m.constraints, lp.Constraint{Coeffs: row, Op: lp.EQ, RHS: 0})
}

// program builds the full LP for one selector: the base model's
// constraints plus one min-target constraint (w <= h[B]) per bag B in
// bags, maximizing w.
func (m *baseModel) program(bags []int) *lp.Program {
	constraints := make([]lp.Constraint, len(m.constraints), len(m.constraints)+len(bags))
	copy(constraints, m.constraints)

	for _, b := range bags {
		row := m.newRow()
		row[m.wIndex] += 1
		row[b] += -1
		constraints = append(constraints, lp.Constraint{Coeffs: row, Op: lp.LE, RHS: 0})
	}

	objective := m.newRow()
	objective[m.wIndex] = 1

	return &lp.Program{
		NumVars:     m.numVars,
		Objective:   objective,
		Maximize:    true,
		Constraints: constraints,
		Kinds:       m.kinds,
	}
}
