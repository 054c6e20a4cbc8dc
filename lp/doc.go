// Package lp defines the linear-programming surface this module treats
// as a black box (Solver), plus a self-contained default
// implementation (SimplexSolver) so the module runs without depending
// on an external LP library — none exists anywhere in the reference
// corpus this project was built from.
//
// A Program is a small, allocation-friendly value type: dense
// objective and constraint-coefficient rows, one Op (LE/GE/EQ) and RHS
// per constraint, and an optional per-variable Kind marking a variable
// as sign-unrestricted (Free) instead of the default nonnegative.
// SimplexSolver never mutates the Program it is given.
//
// SimplexSolver implements a single-phase Big-M primal simplex over a
// dense tableau: free variables are split into a difference of two
// nonnegative variables, inequality constraints get slack/surplus
// columns, and equality/">=" constraints get a heavily-penalized
// artificial column so an initial basic feasible solution always
// exists. Bland's rule (lowest index wins ties) governs both the
// entering-column and leaving-row choice, which guarantees termination
// without cycling.
package lp
