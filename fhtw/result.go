package fhtw

import "github.com/stefanmengel/submodular-width/internal/td"

// Result carries the fractional hypertree width together with the
// winning tree decomposition, for callers that want to know which TD
// (and which of its bags) realized the width rather than just the
// number.
type Result[V comparable] struct {
	Width     float64
	WinningTD [][]V
	WorstBag  []V
}

func buildResult[V comparable](decode func(int) []V, width float64, winner td.TD, worstBagMask int) Result[V] {
	bags := make([][]V, len(winner))
	for i, b := range winner {
		bags[i] = decode(b)
	}
	return Result[V]{
		Width:     width,
		WinningTD: bags,
		WorstBag:  decode(worstBagMask),
	}
}
