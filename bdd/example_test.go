// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"

	"github.com/augists/queendd/bdd"
)

// This example shows the basic usage of the package: create a BDD, compute an
// expression, and count its satisfying assignments over a set of variables.
func Example_basic() {
	// Create a BDD with 6 variables, 10 000 nodes and a cache size of 3 000
	// entries (initially).
	b, _ := bdd.New(6, bdd.Nodesize(10000), bdd.Cachesize(3000))
	// n == x1 | !x3 | x4. The result of Or is claimed with Ref because any
	// later operation could trigger a collection.
	n := b.Ref(b.Or(b.Ithvar(1), b.NIthvar(3), b.Ithvar(4)))
	// all is the cube of all six variables
	all := b.Ref(b.Makeset([]int{0, 1, 2, 3, 4, 5}))
	fmt.Printf("Number of sat. assignments: %s\n", b.Satcount(n, all))
	b.Deref(all)
	b.Deref(n)
	// Output:
	// Number of sat. assignments: 56
}
