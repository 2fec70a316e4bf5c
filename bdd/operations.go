// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
)

// Not returns the negation (!n) of expression n. It negates a BDD by
// exchanging all references to the zero-terminal with references to the
// one-terminal and vice versa. The result is not protected: callers that keep
// it must Ref it.
func (b *BDD) Not(n Node) Node {
	if b.checknode(n, "Not") != nil {
		return bdderror
	}
	b.initref()
	b.pushref(int(n))
	res := b.not(int(n))
	b.popref(1)
	if res < 0 {
		return bdderror
	}
	return Node(res)
}

func (b *BDD) not(n int) int {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	if res := b.matchnot(n); res >= 0 {
		return res
	}
	low := b.pushref(b.not(b.low(n)))
	high := b.pushref(b.not(b.high(n)))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	return b.setnot(n, res)
}

// Apply performs all of the basic binary operations on BDD nodes, such as
// AND, OR etc. Left and right are the operands and op is the requested
// operation, one of OPand ... OPinvimp:
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
//
// The result is not protected: callers that keep it must Ref it.
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if op < OPand || op > OPinvimp {
		b.seterror("unauthorized operation (%s) in call to Apply", op)
		return bdderror
	}
	if b.checknode(left, "Apply") != nil {
		return bdderror
	}
	if b.checknode(right, "Apply") != nil {
		return bdderror
	}
	b.applyop = op
	b.initref()
	b.pushref(int(left))
	b.pushref(int(right))
	res := b.apply(int(left), int(right))
	b.popref(2)
	if res < 0 {
		return bdderror
	}
	return Node(res)
}

func (b *BDD) apply(left int, right int) int {
	// terminal cases that do not need a cache lookup
	switch b.applyop {
	case OPand:
		if left == right {
			return left
		}
		if (left == 0) || (right == 0) {
			return 0
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if (left == 1) || (right == 1) {
			return 1
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPnand:
		if (left == 0) || (right == 0) {
			return 1
		}
	case OPnor:
		if (left == 1) || (right == 1) {
			return 0
		}
	case OPimp:
		if left == 0 {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	case OPbiimp:
		if left == right {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPdiff:
		if left == right {
			return 0
		}
		if right == 1 {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPless:
		if (left == right) || (left == 1) {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPinvimp:
		if right == 0 {
			return 1
		}
		if right == 1 {
			return left
		}
		if left == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	}
	if left < 0 || right < 0 {
		return -1
	}
	if (left < 2) && (right < 2) {
		return opres[b.applyop][left][right]
	}
	if res := b.matchapply(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	switch {
	case leftlvl == rightlvl:
		low := b.pushref(b.apply(b.low(left), b.low(right)))
		high := b.pushref(b.apply(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
	case leftlvl < rightlvl:
		low := b.pushref(b.apply(b.low(left), right))
		high := b.pushref(b.apply(b.high(left), right))
		res = b.makenode(leftlvl, low, high)
	default:
		low := b.pushref(b.apply(left, b.low(right)))
		high := b.pushref(b.apply(left, b.high(right)))
		res = b.makenode(rightlvl, low, high)
	}
	b.popref(2)
	return b.setapply(left, right, res)
}

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddone
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddzero
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equal tests equivalence between nodes. Since nodes are hash-consed, two
// nodes are equivalent exactly when they are the same index.
func (b *BDD) Equal(n1, n2 Node) bool {
	return n1 == n2
}

// Makeset returns a node corresponding to the conjunction (the cube) of all
// the variables in varset, in their positive form. It is such that
// Scanset(Makeset(a)) == a. It returns the constant false and sets the error
// status if one of the variables is outside the scope of the BDD. The result
// is not protected: callers that keep it must Ref it.
func (b *BDD) Makeset(varset []int) Node {
	res := bddone
	for _, level := range varset {
		tmp := b.Apply(res, b.Ithvar(level), OPand)
		if b.err != nil {
			return bddzero
		}
		res = tmp
	}
	return res
}

// Scanset returns the set of variables (levels) found when following the high
// branch of node n. This is the dual of function Makeset. The result is nil
// if there is an error and an empty slice if the set is empty.
func (b *BDD) Scanset(n Node) []int {
	if b.checknode(n, "Scanset") != nil {
		return nil
	}
	res := []int{}
	for i := int(n); i > 1; i = b.high(i) {
		res = append(res, int(b.level(i)))
	}
	return res
}

// Satcount computes the number of assignments to the variables of the cube
// varset that satisfy the function denoted by n. We return a result using
// arbitrary-precision arithmetic to avoid possible overflows: the count for a
// tautology over a cube of k variables is 2^k. The result is zero, and we set
// the error status of b, if varset is not a cube built with Makeset or if n
// depends on a variable outside of varset.
func (b *BDD) Satcount(n, varset Node) *big.Int {
	zero := big.NewInt(0)
	if b.checknode(n, "Satcount") != nil {
		return zero
	}
	if b.checknode(varset, "Satcount") != nil {
		return zero
	}
	if varset == bddzero {
		b.seterror("varset in call to Satcount is not a cube")
		return zero
	}
	levels := []int32{}
	for i := int(varset); i > 1; i = b.high(i) {
		if b.low(i) != 0 {
			b.seterror("varset in call to Satcount is not a cube")
			return zero
		}
		levels = append(levels, b.level(i))
	}
	// Memoization is on the pair (node, position in the cube): a node can be
	// reached at different depths when variables are skipped along an edge.
	type key struct {
		n int
		k int
	}
	satc := make(map[key]*big.Int)
	var count func(n, k int) *big.Int
	count = func(n, k int) *big.Int {
		if n == 0 {
			return zero
		}
		if k == len(levels) {
			if n != 1 {
				b.seterror("node in call to Satcount depends on variable (%d) outside varset", b.level(n))
				return zero
			}
			return big.NewInt(1)
		}
		if res, ok := satc[key{n, k}]; ok {
			return res
		}
		var res *big.Int
		switch {
		case n < 2 || b.level(n) > levels[k]:
			// the cube variable is free in n: both values satisfy
			res = new(big.Int).Lsh(count(n, k+1), 1)
		case b.level(n) == levels[k]:
			res = new(big.Int).Add(count(b.low(n), k+1), count(b.high(n), k+1))
		default:
			b.seterror("node in call to Satcount depends on variable (%d) outside varset", b.level(n))
			return zero
		}
		satc[key{n, k}] = res
		return res
	}
	return count(int(n), 0)
}
