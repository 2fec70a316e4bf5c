// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "log"

// gcpoint is a snapshot of the table at one garbage collection.
type gcpoint struct {
	nodes     int // total number of allocated nodes in the table
	freenodes int // number of free nodes after the collection
}

// Ref increases the reference count on node n and returns n so that calls can
// be easily chained together. A call to Ref never raises an error, even on an
// unused node or a value outside the range of the BDD.
//
// Reference counting is done on externally referenced nodes only: a node
// returned by an operation such as Apply is not protected, and must be
// referenced with Ref before the next call that may allocate nodes, otherwise
// a collection may reclaim it.
func (b *BDD) Ref(n Node) Node {
	if n < 2 || int(n) >= len(b.nodes) {
		return n
	}
	if b.nodes[n].low == -1 {
		return n
	}
	if b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou++
	}
	return n
}

// Deref decreases the reference count on node n and returns n. Like Ref, a
// call to Deref never raises an error. A node whose last claim is dropped can
// be reclaimed at any later allocation point.
func (b *BDD) Deref(n Node) Node {
	if n < 2 || int(n) >= len(b.nodes) {
		return n
	}
	if b.nodes[n].low == -1 {
		return n
	}
	if b.nodes[n].refcou <= 0 {
		return n
	}
	if b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou--
	}
	return n
}

// GC explicitly starts a garbage collection of unused nodes, regardless of
// the advisory toggle.
func (b *BDD) GC() {
	b.gbc()
}

// DisableGC advises the engine to grow the node table rather than collect
// unused nodes when it runs out of free slots. Explicit calls to GC still
// collect.
func (b *BDD) DisableGC() {
	b.gcdisabled = true
}

// EnableGC re-enables collection inside allocating operations. This is the
// default.
func (b *BDD) EnableGC() {
	b.gcdisabled = false
}

// gbc reclaims the nodes that are neither reachable from an externally
// referenced node nor from the operands of the operation in flight (the
// refstack). Surviving nodes do not move; hash chains and the free list are
// rebuilt, and the operation cache is invalidated.
func (b *BDD) gbc() {
	if _LOGLEVEL > 0 {
		log.Println("bdd: starting GC")
	}
	if b.err != nil {
		return
	}
	for _, r := range b.refstack {
		b.markrec(r)
	}
	for k := range b.nodes {
		if b.nodes[k].refcou > 0 {
			b.markrec(k)
		}
		b.nodes[k].hash = 0
	}
	b.freepos = 0
	b.freenum = 0
	for n := len(b.nodes) - 1; n > 1; n-- {
		if b.ismarked(n) && (b.nodes[n].low != -1) {
			b.unmarknode(n)
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].low = -1
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	b.applycache.reset()
	b.gchistory = append(b.gchistory, gcpoint{
		nodes:     len(b.nodes),
		freenodes: b.freenum,
	})
	if _LOGLEVEL > 0 {
		log.Printf("bdd: end GC; freenum: %d\n", b.freenum)
	}
}

// *************************************************************************
// recursive mark / unmark

func (b *BDD) ismarked(n int) bool {
	return (b.nodes[n].level & _MARKBIT) != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].level = b.nodes[n].level | _MARKBIT
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].level = b.nodes[n].level & _MAXVAR
}

func (b *BDD) markrec(n int) {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].low)
	b.markrec(b.nodes[n].high)
}

// *************************************************************************
// refstack: prevents nodes that are currently being built (e.g. transient
// nodes during an apply) from being reclaimed during a collection.

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(n int) int {
	b.refstack = append(b.refstack, n)
	return n
}

func (b *BDD) popref(a int) {
	b.refstack = b.refstack[:len(b.refstack)-a]
}
