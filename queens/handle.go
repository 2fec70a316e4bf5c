// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package queens

import "github.com/augists/queendd/bdd"

// handle owns exactly one reference claim on a diagram node. Handles are
// moved, never copied: a function taking a *handle either borrows it (the
// caller keeps ownership) or consumes it (documented on the function), and
// storing a handle into a longer-lived slot transfers ownership. Releasing a
// claim twice, or touching a handle after its claim was dropped, is a bug in
// the encoder, not a runtime condition, so both panic.
type handle struct {
	e Engine
	n bdd.Node
}

// retain claims an engine-returned node. It must be applied to a combinator
// result before the next engine call that may allocate, otherwise a
// collection can reclaim the node.
func retain(e Engine, n bdd.Node) *handle {
	e.Ref(n)
	return &handle{e: e, n: n}
}

// node returns the underlying node of a live handle.
func (h *handle) node() bdd.Node {
	if h.e == nil {
		panic("queens: use of a released handle")
	}
	return h.n
}

// clone takes a second claim on the same node, leaving h untouched.
func (h *handle) clone() *handle {
	return retain(h.e, h.node())
}

// release drops the claim. The handle is dead afterwards.
func (h *handle) release() {
	if h.e == nil {
		panic("queens: handle released twice")
	}
	h.e.Deref(h.n)
	h.e = nil
}

// conj replaces an accumulator with its conjunction with a clause. Both
// operands are consumed. The result is claimed before the operands are
// released, so the nodes shared between them never lose their last
// protection, even if a collection runs in between.
func conj(acc, clause *handle) *handle {
	e := acc.e
	res := retain(e, e.And(acc.node(), clause.node()))
	acc.release()
	clause.release()
	return res
}

// disj is the disjunction counterpart of conj. Both operands are consumed.
func disj(acc, clause *handle) *handle {
	e := acc.e
	res := retain(e, e.Or(acc.node(), clause.node()))
	acc.release()
	clause.release()
	return res
}

// noconflict builds the clause !a | !b: a queen on square a forbids a queen
// on square b. Both operands are borrowed; the result is a fresh claim owned
// by the caller.
func noconflict(e Engine, a, b *handle) *handle {
	na := retain(e, e.Not(a.node()))
	nb := retain(e, e.Not(b.node()))
	res := retain(e, e.Or(na.node(), nb.node()))
	na.release()
	nb.release()
	return res
}
