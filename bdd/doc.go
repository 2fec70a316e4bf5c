// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Binary Decision Diagrams (BDD), a data structure used
to efficiently represent Boolean functions over a fixed set of variables, or
equivalently sets of Boolean vectors with a fixed size.

Basics

Each BDD has a number of variables, fixed when it is initialized with New and
extendable with SetVarnum. A variable is an (integer) index in the interval
[0..Varnum), called a level. Operations over the diagram return a Node, an
opaque reference to a vertex of the shared graph. The two constant functions
True and False are always the nodes 1 and 0.

Nodes are hash-consed: two calls building the same function over the same
variables return the same Node, so equality of functions is equality of nodes.

Reference counting

Unused vertices are reclaimed by a mark-and-sweep collector that can run
inside any operation that allocates nodes. A node is only guaranteed to stay
alive while it is reachable from a node with a positive external reference
count, or from one of the operands of the operation in flight. Callers must
therefore claim every result they intend to keep:

	n := b.Ref(b.And(x, y))
	...
	b.Deref(n)

Ref and Deref never fail, and can be chained. Constants and the nodes
returned by Ithvar and NIthvar are pinned and never reclaimed, so taking and
dropping claims on them is always safe (and is a no-op). Calling an operation
with a node whose last claim has been dropped is a caller bug: the node may
have been collected and the engine reports a sticky error when it can detect
the situation.

The data structures and algorithms are adapted from the BuDDy C library by
Jorn Lind-Nielsen: an open-hashed node table doubling as unicity table, an
operation cache invalidated on collection, and a node table that resizes when
a collection does not reclaim enough space.
*/
package bdd
