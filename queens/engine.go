// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package queens encodes the N-Queens problem as a shared, reference-counted
Binary Decision Diagram and counts its solutions.

The board is mapped to one Boolean variable per square, in row-major order.
For a 4×4 board the variables are laid out like:

	 0  1  2  3
	 4  5  6  7
	 8  9 10 11
	12 13 14 15

The diagram conjoins one "at least one queen in this row" clause per row with,
for every square, "a queen here forbids a queen on every square it attacks"
implication clauses along its row, column, and both diagonals. The number of
solutions is the number of satisfying assignments of the conjunction over all
N² variables.

Every intermediate diagram node is claimed from the engine for exactly the
time the encoder needs it: the engine may collect unreferenced nodes inside
any operation, so an unclaimed node is lost as soon as the next clause is
built. The handle type in this package makes that discipline explicit.
*/
package queens

import (
	"math/big"

	"github.com/augists/queendd/bdd"
)

// Engine is the contract the encoder needs from a decision diagram
// implementation. *bdd.BDD satisfies it; tests can substitute an instrumented
// implementation.
//
// Operations returning a node return an unprotected result: the caller must
// claim it with Ref before the next engine call that may allocate nodes.
// Errors are sticky on the engine and reported by Errored and Error.
type Engine interface {
	// True returns the node for the constant true.
	True() bdd.Node

	// False returns the node for the constant false.
	False() bdd.Node

	// Ithvar returns the node for the i'th variable, which must be in the
	// range [0..Varnum). Variable nodes are pinned: they survive any
	// collection.
	Ithvar(i int) bdd.Node

	// Not returns the negation of expression n.
	Not(n bdd.Node) bdd.Node

	// And returns the conjunction of a sequence of nodes.
	And(n ...bdd.Node) bdd.Node

	// Or returns the disjunction of a sequence of nodes.
	Or(n ...bdd.Node) bdd.Node

	// Makeset returns the cube of all the variables in varset.
	Makeset(varset []int) bdd.Node

	// Satcount counts the assignments to the variables of the cube varset
	// that satisfy n.
	Satcount(n, varset bdd.Node) *big.Int

	// Ref takes a reference claim on n and returns it. Never fails.
	Ref(n bdd.Node) bdd.Node

	// Deref drops a reference claim on n and returns it. Never fails.
	Deref(n bdd.Node) bdd.Node

	// Varnum returns the number of defined variables.
	Varnum() int

	// SetVarnum grows the number of defined variables. It can only increase.
	SetVarnum(num int) error

	// Produced returns the monotonic, engine-wide count of nodes ever
	// created.
	Produced() int

	// Errored reports whether an operation failed; the status is sticky.
	Errored() bool

	// Error returns the error status, or an empty string.
	Error() string
}
