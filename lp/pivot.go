package lp

import "math"

// runSimplex drives tab/basis to an optimal basic feasible solution in
// place, using Bland's rule (lowest column/row index wins ties) for
// both the entering and leaving choice, which is sufficient to
// guarantee termination without cycling.
func runSimplex(tab [][]float64, basis []int, iterLimit int) (Status, error) {
	m := len(tab) - 1
	n := len(tab[0]) - 1

	for iter := 0; ; iter++ {
		if iter > iterLimit {
			return StatusOther, solverErrorf(ErrIterationLimit)
		}

		pivotCol := -1
		for j := 0; j < n; j++ {
			if tab[m][j] < -epsilon {
				pivotCol = j
				break
			}
		}
		if pivotCol == -1 {
			return StatusOptimal, nil
		}

		pivotRow := -1
		bestRatio := math.Inf(1)
		for i := 0; i < m; i++ {
			if tab[i][pivotCol] <= epsilon {
				continue
			}
			ratio := tab[i][n] / tab[i][pivotCol]
			switch {
			case ratio < bestRatio-epsilon:
				bestRatio = ratio
				pivotRow = i
			case ratio < bestRatio+epsilon && (pivotRow == -1 || basis[i] < basis[pivotRow]):
				bestRatio = math.Min(bestRatio, ratio)
				pivotRow = i
			}
		}
		if pivotRow == -1 {
			return StatusUnbounded, nil
		}

		pivot(tab, pivotRow, pivotCol)
		basis[pivotRow] = pivotCol
	}
}

// pivot performs one Gauss-Jordan elimination step around
// tab[pivotRow][pivotCol], normalizing the pivot row to 1 there and
// clearing that column everywhere else.
func pivot(tab [][]float64, pivotRow, pivotCol int) {
	rows := len(tab)
	cols := len(tab[0])

	pv := tab[pivotRow][pivotCol]
	for j := 0; j < cols; j++ {
		tab[pivotRow][j] /= pv
	}
	for i := 0; i < rows; i++ {
		if i == pivotRow {
			continue
		}
		factor := tab[i][pivotCol]
		if factor == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			tab[i][j] -= factor * tab[pivotRow][j]
		}
	}
}
