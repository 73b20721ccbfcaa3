// SPDX-License-Identifier: MIT

package bitgossip

import "github.com/gaissmai/bitgossip/bitvec"

// edgeTable maps a canonical edge key to its decision (or mask) bit vector.
// Both the decision table E and the mask table M in the sequential builder
// are instances of this type.
type edgeTable[N NodeID] struct {
	inner map[EdgeKey[N]]bitvec.BitVector
}

func newEdgeTable[N NodeID]() edgeTable[N] {
	return edgeTable[N]{inner: make(map[EdgeKey[N]]bitvec.BitVector)}
}

func (t *edgeTable[N]) get(key EdgeKey[N]) (bitvec.BitVector, bool) {
	v, ok := t.inner[key]
	return v, ok
}

// insert merges val into any existing entry via OR, or inserts it fresh.
func (t *edgeTable[N]) insert(key EdgeKey[N], val bitvec.BitVector) {
	if existing, ok := t.inner[key]; ok {
		existing.Or(val)
		t.inner[key] = existing
		return
	}
	t.inner[key] = val
}

func (t *edgeTable[N]) len() int { return len(t.inner) }

func (t *edgeTable[N]) delete(key EdgeKey[N]) bool {
	if _, ok := t.inner[key]; ok {
		delete(t.inner, key)
		return true
	}
	return false
}

// truncate drops every edge touching a node id >= nodesLen. The bit vectors
// of surviving entries are left unchanged.
func (t *edgeTable[N]) truncate(nodesLen int) {
	for key := range t.inner {
		if int(key.Lo) >= nodesLen || int(key.Hi) >= nodesLen {
			delete(t.inner, key)
		}
	}
}

// atomicEdgeTable is the parallel engine's sibling, backed by
// bitvec.AtomicBitVector so concurrent workers can OR into the same edge
// without a lock.
type atomicEdgeTable[N NodeID] struct {
	inner map[EdgeKey[N]]*bitvec.AtomicBitVector
}

func newAtomicEdgeTable[N NodeID]() atomicEdgeTable[N] {
	return atomicEdgeTable[N]{inner: make(map[EdgeKey[N]]*bitvec.AtomicBitVector)}
}

func (t *atomicEdgeTable[N]) get(key EdgeKey[N]) (*bitvec.AtomicBitVector, bool) {
	v, ok := t.inner[key]
	return v, ok
}

// update ORs val into the existing atomic vector for key; key must already
// exist (seeded by connect before build starts).
func (t *atomicEdgeTable[N]) update(key EdgeKey[N], val bitvec.BitVector) {
	t.inner[key].Or(val)
}

func (t *atomicEdgeTable[N]) len() int { return len(t.inner) }

func (t *atomicEdgeTable[N]) delete(key EdgeKey[N]) bool {
	if _, ok := t.inner[key]; ok {
		delete(t.inner, key)
		return true
	}
	return false
}
