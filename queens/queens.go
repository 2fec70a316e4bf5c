// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package queens

import (
	"fmt"
	"math/big"
)

// Result reports the outcome of one solve.
type Result struct {
	N            int      // board size
	Solutions    *big.Int // number of satisfying assignments over the N*N variables
	NodesCreated int      // nodes created in the engine during this solve
}

// index returns the variable of the square (row, col) on an n×n board. The
// row-major layout is load-bearing: the diagonal arithmetic in partners
// depends on it.
func index(row, col, n int) int {
	return row*n + col
}

// partners lists the squares attacked from (i, j) on an n×n board, grouped by
// direction: same row, same column, down diagonal (row and column grow
// together), up diagonal. The square itself never appears and every partner
// is on the board.
func partners(i, j, n int) [4][][2]int {
	var res [4][][2]int
	for l := 0; l < n; l++ {
		if l != j {
			res[0] = append(res[0], [2]int{i, l})
		}
	}
	for k := 0; k < n; k++ {
		if k != i {
			res[1] = append(res[1], [2]int{k, j})
		}
	}
	for k := 0; k < n; k++ {
		if l := k - i + j; k != i && l >= 0 && l < n {
			res[2] = append(res[2], [2]int{k, l})
		}
	}
	for k := 0; k < n; k++ {
		if l := i + j - k; k != i && l >= 0 && l < n {
			res[3] = append(res[3], [2]int{k, l})
		}
	}
	return res
}

// board holds one claimed handle per square. It is exclusively owned by the
// solve that allocated it and released as a whole when the solve ends.
type board struct {
	n     int
	cells [][]*handle
}

// allocateBoard claims one variable per square, growing the engine's variable
// range if this solve is larger than any one before it on the same engine.
func allocateBoard(e Engine, n int) (*board, error) {
	if e.Varnum() < n*n {
		if err := e.SetVarnum(n * n); err != nil {
			return nil, fmt.Errorf("cannot allocate %d board variables: %s", n*n, err)
		}
	}
	bo := &board{n: n, cells: make([][]*handle, n)}
	for i := range bo.cells {
		bo.cells[i] = make([]*handle, n)
		for j := range bo.cells[i] {
			bo.cells[i][j] = retain(e, e.Ithvar(index(i, j, n)))
		}
	}
	if e.Errored() {
		bo.release()
		return nil, fmt.Errorf("board allocation failed: %s", e.Error())
	}
	return bo, nil
}

// release drops the claims on all the squares.
func (bo *board) release() {
	for i := range bo.cells {
		for j := range bo.cells[i] {
			bo.cells[i][j].release()
		}
	}
}

// Solve counts the solutions of the n-queens problem on the given engine. A
// non-positive n is rejected before any engine call. Several solves can share
// one engine; the NodesCreated field of the result is the per-solve delta of
// the engine's node-creation counter.
func Solve(e Engine, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("board size must be positive, got %d", n)
	}
	before := e.Produced()
	bo, err := allocateBoard(e, n)
	if err != nil {
		return Result{}, err
	}

	// queen is the running conjunction of all the constraints built so far.
	// It has exactly one owner at any time: conj consumes it and hands back
	// the replacement.
	queen := retain(e, e.True())

	// place a queen in each row
	for i := 0; i < n; i++ {
		row := retain(e, e.False())
		for j := 0; j < n; j++ {
			row = disj(row, bo.cells[i][j].clone())
		}
		queen = conj(queen, row)
	}
	if e.Errored() {
		queen.release()
		bo.release()
		return Result{}, fmt.Errorf("row encoding failed: %s", e.Error())
	}

	// for each square, a queen there excludes every square it attacks; the
	// four directions are built separately and conjoined right to left
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			target := bo.cells[i][j]
			groups := partners(i, j, n)
			subs := make([]*handle, len(groups))
			for g, group := range groups {
				sub := retain(e, e.True())
				for _, p := range group {
					sub = conj(sub, noconflict(e, target, bo.cells[p[0]][p[1]]))
				}
				subs[g] = sub
			}
			cell := subs[len(subs)-1]
			for g := len(subs) - 2; g >= 0; g-- {
				cell = conj(subs[g], cell)
			}
			queen = conj(queen, cell)
		}
	}
	if e.Errored() {
		queen.release()
		bo.release()
		return Result{}, fmt.Errorf("conflict encoding failed: %s", e.Error())
	}

	// count assignments over the domain of all N*N variables
	vars := make([]int, n*n)
	for k := range vars {
		vars[k] = k
	}
	varset := retain(e, e.Makeset(vars))
	solutions := e.Satcount(queen.node(), varset.node())
	varset.release()
	queen.release()
	bo.release()
	if e.Errored() {
		return Result{}, fmt.Errorf("solution counting failed: %s", e.Error())
	}
	return Result{N: n, Solutions: solutions, NodesCreated: e.Produced() - before}, nil
}
