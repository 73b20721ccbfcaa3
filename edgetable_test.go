// SPDX-License-Identifier: MIT

package bitgossip

import (
	"testing"

	"github.com/gaissmai/bitgossip/bitvec"
)

func TestEdgeTableInsertMerges(t *testing.T) {
	table := newEdgeTable[uint16]()
	key := newEdgeKey[uint16](0, 1)

	table.insert(key, bitvec.One(2))
	table.insert(key, bitvec.One(5))

	got, ok := table.get(key)
	if !ok {
		t.Fatalf("get(%v) missing", key)
	}
	if !got.Get(2) || !got.Get(5) {
		t.Fatalf("got = %+v, want bits 2 and 5 set", got)
	}
}

func TestEdgeTableTruncateDropsOutOfRangeEdges(t *testing.T) {
	table := newEdgeTable[uint16]()
	table.insert(newEdgeKey[uint16](0, 1), bitvec.One(0))
	table.insert(newEdgeKey[uint16](1, 4), bitvec.One(0))

	table.truncate(3)

	if _, ok := table.get(newEdgeKey[uint16](0, 1)); !ok {
		t.Error("edge (0,1) should survive truncate(3)")
	}
	if _, ok := table.get(newEdgeKey[uint16](1, 4)); ok {
		t.Error("edge (1,4) should be dropped by truncate(3)")
	}
}

func TestAtomicEdgeTableUpdateOrs(t *testing.T) {
	table := newAtomicEdgeTable[uint16]()
	key := newEdgeKey[uint16](0, 1)
	vec := bitvec.Zeros(8)
	table.inner[key] = &vec

	table.update(key, bitvec.One(3))
	got, ok := table.get(key)
	if !ok {
		t.Fatalf("get(%v) missing", key)
	}
	if !got.IntoBitVec().Get(3) {
		t.Fatalf("expected bit 3 set after update")
	}
}
