// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "errors"

// _MINFREENODES is the minimal ratio of nodes (%) that has to be left free
// after a garbage collection, otherwise we resize the node table.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first
// 21 bits of the level field for encoding levels; the bit above them is used
// for marking nodes during garbage collection.
const _MAXVAR int32 = 0x1FFFFF

// _MARKBIT is the bit of the level field used to mark live nodes during a
// collection.
const _MARKBIT int32 = 0x200000

// _MAXREFCOUNT is the maximal value of the external reference counter, also
// used to pin nodes (constants and variables) in the node table.
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize, approx. one million nodes.
const _DEFAULTMAXNODEINC int = 1 << 20

// _LOGLEVEL unlocks logging of garbage collections and resizes when positive.
const _LOGLEVEL int = 0

var errMemory = errors.New("unable to free memory or resize BDD")
