// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs stores the values of the configurable parameters of a BDD.
type configs struct {
	varnum          int // number of BDD variables
	nodesize        int // initial number of nodes in the table
	cachesize       int // initial size of the operation cache
	cacheratio      int // ratio (%) between cache size and node table, 0 if the cache size is constant
	maxnodesize     int // maximum total number of nodes (0 if no limit)
	maxnodeincrease int // maximum number of nodes added to the table at each resize (0 if no limit)
	minfreenodes    int // minimum ratio of nodes (%) left free after a GC before triggering a resize
}

// Option is a configuration option for New.
type Option func(*configs)

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	// we build enough nodes to include the constants and all the variables
	c.nodesize = 2*varnum + 2
	return c
}

// Nodesize sets a preferred initial size for the node table. The size of the
// BDD can increase during computation. By default we create a table just
// large enough to include the two constants and the variable nodes.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize sets a limit on the number of nodes in the BDD. An operation
// trying to raise the number of nodes above this limit sets the error status
// of the BDD. The default value (0) means that there is no limit, in which
// case allocation can panic if we exhaust all the available memory.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease sets a limit on the increase in size of the node table.
// Below this limit we typically double the size of the node list at each
// resize. The default value is about a million nodes. Set the value to zero
// to avoid imposing a limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes sets the ratio of free nodes (%) that has to be left after a
// garbage collection event. With a ratio of, say 25, we resize the table if
// less than 25% of its capacity is free after a collection. The default value
// is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize sets the initial number of entries in the operation cache. The
// default is a fifth of the node table size. Typical values go from 10 000
// entries for small examples up to 1 000 000 for large ones.
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio sets a "cache ratio" (%) so that the cache can grow each time we
// resize the node table. With a ratio of r, we have r available entries in
// the cache for every 100 slots in the node table. The default value (0)
// means that the cache size never grows.
func Cacheratio(ratio int) Option {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}
