// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// cache stores the results of the apply and not operations. Entries are
// overwritten on collision and the whole cache is invalidated when a garbage
// collection reclaims nodes.
type cache struct {
	ratio int // percentage of the node table size used when resizing, 0 for a constant size
	table []cacheData
}

// cacheData is one cache entry; a is -1 when the entry is unused.
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// init allocates the cache table. A non-positive size picks a default
// proportional to the node table.
func (bc *cache) init(size, nodesize int) {
	if size <= 0 {
		size = nodesize/5 + 1
	}
	bc.table = make([]cacheData, primeGte(size))
	bc.reset()
}

// reset invalidates all the entries. It must be called whenever nodes may
// have been reclaimed, otherwise the cache could resurrect stale results.
func (bc *cache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// resize grows the cache along with the node table when a ratio is set, and
// simply invalidates it otherwise.
func (bc *cache) resize(nodesize int) {
	if bc.ratio > 0 {
		bc.table = make([]cacheData, primeGte(nodesize*bc.ratio/100+1))
	}
	bc.reset()
}

// ************************************************************

// The hash of a binary operation is #(left, right, op); the hash of a not
// operation is simply the operand.

func (b *BDD) matchapply(left, right int) int {
	entry := b.applycache.table[triple(left, right, int(b.applyop), len(b.applycache.table))]
	if entry.a == left && entry.b == right && entry.c == int(b.applyop) {
		return entry.res
	}
	return -1
}

func (b *BDD) setapply(left, right, res int) int {
	if res < 0 {
		b.seterror("problem in call to apply(%d,%d,%s)", left, right, b.applyop)
		return -1
	}
	b.applycache.table[triple(left, right, int(b.applyop), len(b.applycache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   int(b.applyop),
		res: res,
	}
	return res
}

func (b *BDD) matchnot(n int) int {
	entry := b.applycache.table[n%len(b.applycache.table)]
	if entry.a == n && entry.c == int(opNot) {
		return entry.res
	}
	return -1
}

func (b *BDD) setnot(n int, res int) int {
	if res < 0 {
		b.seterror("problem in call to not(%d)", n)
		return -1
	}
	b.applycache.table[n%len(b.applycache.table)] = cacheData{
		a:   n,
		c:   int(opNot),
		res: res,
	}
	return res
}
