// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"log"
	"math"
)

// pair maps (bijectively) a pair of integers into a unique integer, modulo
// the table length.
func pair(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func pair64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

func triple(a, b, c, len int) int {
	return int(pair64(uint64(c), pair(a, b, len), uint64(len)))
}

// The hash of a node is #(level, low, high).

func (b *BDD) ptrhash(n int) int {
	return triple(int(b.nodes[n].level), b.nodes[n].low, b.nodes[n].high, len(b.nodes))
}

func (b *BDD) nodehash(level int32, low, high int) int {
	return triple(int(level), low, high, len(b.nodes))
}

// makenode returns the node (level, low, high), reusing an existing node when
// the triple is already in the table (hash-consing). When the table is full
// we first try a garbage collection and, as a last resort, resize the table.
// A negative result means the table could not grow; the error status is set.
func (b *BDD) makenode(level int32, low, high int) int {
	// when the two branches are equal we can skip the vertex
	if low == high {
		return low
	}
	if low < 0 || high < 0 {
		return -1
	}
	hash := b.nodehash(level, low, high)
	for res := b.nodes[hash].hash; res != 0; res = b.nodes[res].next {
		if b.nodes[res].level == level && b.nodes[res].low == low && b.nodes[res].high == high {
			return res
		}
	}
	if b.freepos == 0 {
		// Operands of the operation in flight sit on the refstack, so they
		// survive the collection.
		if !b.gcdisabled {
			b.gbc()
		}
		if b.freepos == 0 || (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.noderesize(); err != nil && b.freepos == 0 {
				b.seterror("cannot grow the node table; %s", err)
				return -1
			}
		}
		if b.freepos == 0 {
			b.seterror("no free position after garbage collection")
			return -1
		}
		// buckets have been rebuilt, so the chain head may have moved
		hash = b.nodehash(level, low, high)
	}
	res := b.freepos
	b.freepos = b.nodes[res].next
	b.freenum--
	b.produced++
	b.nodes[res].level = level
	b.nodes[res].low = low
	b.nodes[res].high = high
	b.nodes[res].next = b.nodes[hash].hash
	b.nodes[hash].hash = res
	return res
}

// noderesize grows the node table, typically doubling its size, and rebuilds
// the hash chains and the free list.
func (b *BDD) noderesize() error {
	oldsize := len(b.nodes)
	if (b.maxnodesize > 0) && (oldsize >= b.maxnodesize) {
		return errMemory
	}
	nodesize := oldsize
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if b.maxnodeincrease > 0 && nodesize > (oldsize+b.maxnodeincrease) {
		nodesize = oldsize + b.maxnodeincrease
	}
	if (b.maxnodesize > 0) && (nodesize > b.maxnodesize) {
		nodesize = b.maxnodesize
	}
	nodesize = primeLte(nodesize)
	if nodesize <= oldsize {
		return errMemory
	}
	if _LOGLEVEL > 0 {
		log.Printf("bdd: resize %d -> %d\n", oldsize, nodesize)
	}

	tmp := b.nodes
	b.nodes = make([]node, nodesize)
	copy(b.nodes, tmp)

	// We recompute every hash chain since the hash function depends on the
	// table size. Unused slots are threaded into the free list.
	for n := range b.nodes {
		b.nodes[n].hash = 0
	}
	for n := oldsize; n < nodesize; n++ {
		b.nodes[n].refcou = 0
		b.nodes[n].level = 0
		b.nodes[n].low = -1
	}
	b.freepos = 0
	b.freenum = 0
	for n := nodesize - 1; n > 1; n-- {
		if b.nodes[n].low != -1 {
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	b.applycache.resize(nodesize)
	return nil
}
