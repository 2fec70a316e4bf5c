// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package queens

import (
	"math/big"
	"testing"

	"github.com/augists/queendd/bdd"
)

func newEngine(t *testing.T, n int) *bdd.BDD {
	t.Helper()
	e, err := bdd.New(n*n, bdd.Nodesize(n*n*256), bdd.Cachesize(n*n*64), bdd.Cacheratio(30))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSolve(t *testing.T) {
	var solveTests = []struct {
		n        int
		expected int64
	}{
		{1, 1},
		{2, 0},
		{3, 0},
		{4, 2},
		{5, 10},
		{6, 4},
		{8, 92},
	}
	for _, tt := range solveTests {
		res, err := Solve(newEngine(t, tt.n), tt.n)
		if err != nil {
			t.Fatalf("Solve(%d): unexpected error %s", tt.n, err)
		}
		if res.Solutions.Cmp(big.NewInt(tt.expected)) != 0 {
			t.Errorf("Solve(%d): expected %d solutions, actual %s", tt.n, tt.expected, res.Solutions)
		}
		if res.NodesCreated < 0 {
			t.Errorf("Solve(%d): negative node-creation delta %d", tt.n, res.NodesCreated)
		}
	}
}

// TestSharedEngine runs several solves on one engine: counts must not depend
// on what ran before, and node deltas are per solve, not cumulative.
func TestSharedEngine(t *testing.T) {
	e := newEngine(t, 6)
	first, err := Solve(e, 5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(e, 6); err != nil {
		t.Fatal(err)
	}
	second, err := Solve(e, 5)
	if err != nil {
		t.Fatal(err)
	}
	if first.Solutions.Cmp(second.Solutions) != 0 {
		t.Errorf("same size solved twice: %s then %s solutions", first.Solutions, second.Solutions)
	}
	if first.NodesCreated < 0 || second.NodesCreated < 0 {
		t.Error("negative node-creation delta")
	}
}

func TestBadSize(t *testing.T) {
	e := newEngine(t, 4)
	before := e.Produced()
	for _, n := range []int{0, -3} {
		if _, err := Solve(e, n); err == nil {
			t.Errorf("Solve(%d): expected an error", n)
		}
	}
	if e.Produced() != before {
		t.Error("a rejected size must not touch the engine")
	}
}

// countingEngine observes the reference traffic of a solve.
type countingEngine struct {
	*bdd.BDD
	refs   int
	derefs int
}

func (c *countingEngine) Ref(n bdd.Node) bdd.Node {
	c.refs++
	return c.BDD.Ref(n)
}

func (c *countingEngine) Deref(n bdd.Node) bdd.Node {
	c.derefs++
	return c.BDD.Deref(n)
}

// TestHandleBalance checks the claims taken by a solve against the claims it
// drops: they must match exactly, otherwise the solve either leaks nodes or
// frees a claim twice.
func TestHandleBalance(t *testing.T) {
	ce := &countingEngine{BDD: newEngine(t, 5)}
	if _, err := Solve(ce, 5); err != nil {
		t.Fatal(err)
	}
	if ce.refs == 0 {
		t.Fatal("a solve should claim its intermediate results")
	}
	if ce.refs != ce.derefs {
		t.Errorf("unbalanced claims: %d refs for %d derefs", ce.refs, ce.derefs)
	}
}

func TestIndex(t *testing.T) {
	for n := 1; n <= 8; n++ {
		seen := make(map[int]bool)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				idx := index(row, col, n)
				if idx != row*n+col {
					t.Fatalf("index(%d,%d,%d) = %d", row, col, n, idx)
				}
				if idx < 0 || idx >= n*n || seen[idx] {
					t.Fatalf("index(%d,%d,%d) = %d is out of range or duplicated", row, col, n, idx)
				}
				seen[idx] = true
			}
		}
	}
}

// attacks is an independent statement of the queen move: same row, same
// column, or same diagonal.
func attacks(i1, j1, i2, j2 int) bool {
	if i1 == i2 && j1 == j2 {
		return false
	}
	di := i1 - i2
	if di < 0 {
		di = -di
	}
	dj := j1 - j2
	if dj < 0 {
		dj = -dj
	}
	return i1 == i2 || j1 == j2 || di == dj
}

func TestPartners(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				seen := make(map[[2]int]bool)
				for _, group := range partners(i, j, n) {
					for _, p := range group {
						if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
							t.Fatalf("partners(%d,%d,%d): square %v off the board", i, j, n, p)
						}
						if p == [2]int{i, j} {
							t.Fatalf("partners(%d,%d,%d): square attacks itself", i, j, n)
						}
						if seen[p] {
							t.Fatalf("partners(%d,%d,%d): square %v listed twice", i, j, n, p)
						}
						seen[p] = true
						if !attacks(i, j, p[0], p[1]) {
							t.Fatalf("partners(%d,%d,%d): square %v is not attacked", i, j, n, p)
						}
					}
				}
				for k := 0; k < n; k++ {
					for l := 0; l < n; l++ {
						if attacks(i, j, k, l) && !seen[[2]int{k, l}] {
							t.Fatalf("partners(%d,%d,%d): attacked square (%d,%d) missing", i, j, n, k, l)
						}
					}
				}
			}
		}
	}
}
