// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
)

// Error returns the error status of the BDD. We return an empty string if
// there are no errors. The status is sticky: once an operation fails, every
// subsequent operation reports an error until the BDD is discarded.
func (b *BDD) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	return b.err != nil
}

func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.err != nil {
		b.err = fmt.Errorf(format+"; %s", append(a, b.Error())...)
		return bdderror
	}
	b.err = fmt.Errorf(format, a...)
	if _LOGLEVEL > 0 {
		log.Println(b.err)
	}
	return bdderror
}

// checknode verifies that n is a valid node of b: within the range of the
// table and not a reclaimed slot.
func (b *BDD) checknode(n Node, caller string) error {
	if b.err != nil {
		return b.err
	}
	if n < 0 || int(n) >= len(b.nodes) {
		b.seterror("illegal access to node %d in call to %s", n, caller)
		return b.err
	}
	if n >= 2 && b.nodes[n].low == -1 {
		b.seterror("access to reclaimed node %d in call to %s", n, caller)
		return b.err
	}
	return nil
}
