package fd

import "github.com/stefanmengel/submodular-width/errs"

// FD is a functional dependency X -> Y. Y is stored normalized to
// X ∪ Y as supplied to New; X is stored exactly as supplied.
type FD[V comparable] struct {
	X []V
	Y []V
}

// New validates x and y and returns the normalized FD. x's members
// must be distinct, y's members must be distinct, and x and y must be
// disjoint as supplied (disjointness is checked before normalization,
// so a vertex cannot appear in both the caller's X and the caller's
// Y).
func New[V comparable](x, y []V) (FD[V], error) {
	xSet := make(map[V]struct{}, len(x))
	for _, v := range x {
		if _, dup := xSet[v]; dup {
			return FD[V]{}, errs.Config("fd: duplicate vertex %v in X", v)
		}
		xSet[v] = struct{}{}
	}

	ySet := make(map[V]struct{}, len(y))
	for _, v := range y {
		if _, dup := ySet[v]; dup {
			return FD[V]{}, errs.Config("fd: duplicate vertex %v in Y", v)
		}
		if _, inX := xSet[v]; inX {
			return FD[V]{}, errs.Config("fd: X and Y must be disjoint, vertex %v appears in both", v)
		}
		ySet[v] = struct{}{}
	}

	normalizedY := make([]V, 0, len(x)+len(y))
	normalizedY = append(normalizedY, x...)
	normalizedY = append(normalizedY, y...)

	outX := append([]V(nil), x...)
	return FD[V]{X: outX, Y: normalizedY}, nil
}
