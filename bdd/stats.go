// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Produced returns the total number of nodes ever created in the table. The
// counter is monotonic and engine-wide: it is never decremented by garbage
// collections, so deltas of successive readings measure the allocation work
// of a computation.
func (b *BDD) Produced() int {
	return b.produced
}

// Stats returns information about the BDD: the number of variables, the size
// and occupancy of the node table, the total number of nodes produced, and
// the number of garbage collections.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", b.freenum, r)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", len(b.nodes)-b.freenum, 100.0-r)
	res += fmt.Sprintf("# of GC:    %d\n", len(b.gchistory))
	return res
}
