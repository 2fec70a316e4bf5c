// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package queens_test

import (
	"math/big"
	"testing"

	"github.com/augists/queendd/bdd"
	"github.com/augists/queendd/queens"
	"github.com/crillab/gophersat/solver"
)

// queensCNF states the problem a second time, as plain clauses over DIMACS
// literals (variable of square (i,j) is i*n+j+1): one positive clause per row
// and one binary clause per attacking pair.
func queensCNF(n int) [][]int {
	var cnf [][]int
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := 0; j < n; j++ {
			row[j] = i*n + j + 1
		}
		cnf = append(cnf, row)
	}
	for a := 0; a < n*n; a++ {
		for b := a + 1; b < n*n; b++ {
			i1, j1 := a/n, a%n
			i2, j2 := b/n, b%n
			dj := j1 - j2
			if dj < 0 {
				dj = -dj
			}
			if i1 == i2 || j1 == j2 || i2-i1 == dj {
				cnf = append(cnf, []int{-(a + 1), -(b + 1)})
			}
		}
	}
	return cnf
}

// TestAgainstSAT checks the diagram-based count against an independent model
// count computed by a SAT solver on the clausal form of the same problem.
func TestAgainstSAT(t *testing.T) {
	for n := 2; n <= 6; n++ {
		e, err := bdd.New(n*n, bdd.Nodesize(n*n*256), bdd.Cachesize(n*n*64))
		if err != nil {
			t.Fatal(err)
		}
		res, err := queens.Solve(e, n)
		if err != nil {
			t.Fatalf("Solve(%d): %s", n, err)
		}
		models := solver.New(solver.ParseSlice(queensCNF(n))).CountModels()
		if res.Solutions.Cmp(big.NewInt(int64(models))) != 0 {
			t.Errorf("size %d: diagram counts %s solutions, SAT solver counts %d models", n, res.Solutions, models)
		}
	}
}
