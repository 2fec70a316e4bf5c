// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Node is a reference to a vertex of a BDD. It is an index in the node table,
// with the convention that 1 (respectively 0) is the node for the constant
// function True (respectively False). A negative value is only ever returned
// after an error.
type Node int

const bddzero Node = 0
const bddone Node = 1
const bdderror Node = -1

// node is one slot of the node table. A slot is free when its low field is
// -1, in which case next threads the free list. For allocated nodes, hash is
// the head of the bucket whose hash value is this slot index and next is the
// rest of the chain.
type node struct {
	refcou int32 // number of external references, pinned at _MAXREFCOUNT
	level  int32 // order of the variable, also carries the GC mark bit
	low    int   // false branch, -1 when the slot is free
	high   int   // true branch
	hash   int   // bucket head for this slot's hash value
	next   int   // bucket chain, or free list when the slot is free
}

// BDD is a shared Binary Decision Diagram with explicit reference counting.
// It is not safe for concurrent use.
type BDD struct {
	nodes           []node   // node table; constants pinned at index 0 and 1
	varnum          int32    // number of declared variables
	varset          [][2]int // node for the positive and negative literal of each variable
	refstack        []int    // protects nodes of in-flight operations from the GC
	freepos         int      // first free slot, 0 when the table is full
	freenum         int      // number of free slots
	produced        int      // total number of nodes ever created, monotonic
	gcdisabled      bool     // advisory: resize rather than collect
	gchistory       []gcpoint
	applycache      cache    // cache for apply and not results
	applyop         Operator // operator of the apply currently in flight
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	err             error // sticky error status
}

// New initializes a BDD with varnum variables. The initial size of the node
// table and the operation caches can be set with options, for example:
//
//	b, err := bdd.New(6, bdd.Nodesize(10000), bdd.Cachesize(3000))
//
// The initial number of nodes is not critical since the table is resized
// whenever too few nodes are left after a garbage collection, but it has some
// impact on the efficiency of the operations.
func New(varnum int, options ...Option) (*BDD, error) {
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{}
	b.minfreenodes = c.minfreenodes
	b.maxnodesize = c.maxnodesize
	b.maxnodeincrease = c.maxnodeincrease
	nodesize := primeGte(c.nodesize)
	b.nodes = make([]node, nodesize)
	for k := range b.nodes {
		b.nodes[k] = node{low: -1, next: k + 1}
	}
	b.nodes[nodesize-1].next = 0
	// The constants are allocated by hand and pinned; they are never part of
	// a hash chain.
	b.nodes[0] = node{refcou: _MAXREFCOUNT, level: 0, low: 0, high: 0}
	b.nodes[1] = node{refcou: _MAXREFCOUNT, level: 0, low: 1, high: 1}
	b.freepos = 2
	b.freenum = nodesize - 2
	b.gchistory = make([]gcpoint, 0)
	b.applycache.ratio = c.cacheratio
	b.applycache.init(c.cachesize, len(b.nodes))
	b.refstack = make([]int, 0, 2*varnum+4)
	if err := b.SetVarnum(varnum); err != nil {
		return nil, err
	}
	return b, nil
}

// True returns the node for the constant true.
func (b *BDD) True() Node {
	return bddone
}

// False returns the node for the constant false.
func (b *BDD) False() Node {
	return bddzero
}

// From returns a constant node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// SetVarnum sets the number of BDD variables. It may be called more than
// once, but only to increase the number of variables. The nodes representing
// the variables are pinned and never reclaimed.
func (b *BDD) SetVarnum(num int) error {
	inum := int32(num)
	if (inum < 1) || (inum > _MAXVAR) {
		b.seterror("bad number of variables (%d) in SetVarnum", num)
		return b.err
	}
	if inum < b.varnum {
		b.seterror("cannot decrease the number of variables (%d to %d) in SetVarnum", b.varnum, num)
		return b.err
	}
	oldvarnum := b.varnum
	b.varnum = inum
	// Constants always have the highest level.
	b.nodes[0].level = inum
	b.nodes[1].level = inum
	newvarset := make([][2]int, inum)
	copy(newvarset, b.varset)
	b.varset = newvarset
	for k := oldvarnum; k < inum; k++ {
		v0 := b.makenode(k, 0, 1)
		if v0 < 0 {
			b.seterror("cannot allocate variable %d in SetVarnum; %s", k, b.Error())
			return b.err
		}
		b.pushref(v0)
		v1 := b.makenode(k, 1, 0)
		b.popref(1)
		if v1 < 0 {
			b.seterror("cannot allocate variable %d in SetVarnum; %s", k, b.Error())
			return b.err
		}
		b.varset[k] = [2]int{v0, v1}
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.nodes[v1].refcou = _MAXREFCOUNT
	}
	return nil
}

// Ithvar returns a node representing the i'th variable on success, otherwise
// we set the error status in the BDD and return the constant false. The
// requested variable must be in the range [0..Varnum). The node is pinned, so
// reference claims on it are no-ops.
func (b *BDD) Ithvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		b.seterror("unknown variable used (%d) in call to Ithvar", i)
		return bddzero
	}
	return Node(b.varset[i][0])
}

// NIthvar returns a node representing the negation of the i'th variable on
// success, otherwise the constant false. See Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		b.seterror("unknown variable used (%d) in call to NIthvar", i)
		return bddzero
	}
	return Node(b.varset[i][1])
}

// Label returns the variable (level) of node n. We set the error status and
// return -1 on an attempt to access a constant or an invalid node.
func (b *BDD) Label(n Node) int {
	if b.checknode(n, "Label") != nil {
		return -1
	}
	if n < 2 {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(b.nodes[n].level)
}

// Low returns the false branch of node n, or the error node if n is invalid.
func (b *BDD) Low(n Node) Node {
	if b.checknode(n, "Low") != nil {
		return bdderror
	}
	return Node(b.nodes[n].low)
}

// High returns the true branch of node n, or the error node if n is invalid.
func (b *BDD) High(n Node) Node {
	if b.checknode(n, "High") != nil {
		return bdderror
	}
	return Node(b.nodes[n].high)
}

func (b *BDD) level(n int) int32 {
	return b.nodes[n].level
}

func (b *BDD) low(n int) int {
	return b.nodes[n].low
}

func (b *BDD) high(n int) int {
	return b.nodes[n].high
}
