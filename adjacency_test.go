// SPDX-License-Identifier: MIT

package bitgossip

import "testing"

func TestAdjacencyConnectDeduplicates(t *testing.T) {
	adj := newAdjacency[uint16](3)
	adj.connect(0, 1)
	adj.connect(0, 1)
	adj.connect(1, 0)

	if got := adj.neighborsOf(0); len(got) != 1 || got[0] != 1 {
		t.Fatalf("neighborsOf(0) = %v, want [1]", got)
	}
	if got := adj.neighborsOf(1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("neighborsOf(1) = %v, want [0]", got)
	}
}

func TestAdjacencyConnectIgnoresSelfLoop(t *testing.T) {
	adj := newAdjacency[uint16](2)
	adj.connect(0, 0)
	if got := adj.neighborsOf(0); len(got) != 0 {
		t.Fatalf("neighborsOf(0) = %v, want empty", got)
	}
}

func TestAdjacencyDisconnectIsSymmetric(t *testing.T) {
	adj := newAdjacency[uint16](2)
	adj.connect(0, 1)
	adj.disconnect(0, 1)

	if got := adj.neighborsOf(0); len(got) != 0 {
		t.Fatalf("neighborsOf(0) = %v, want empty after disconnect", got)
	}
	if got := adj.neighborsOf(1); len(got) != 0 {
		t.Fatalf("neighborsOf(1) = %v, want empty after disconnect", got)
	}
}

func TestAdjacencyDisconnectMissingEdgeIsNoOp(t *testing.T) {
	adj := newAdjacency[uint16](2)
	adj.disconnect(0, 1)
	if got := adj.neighborsOf(0); len(got) != 0 {
		t.Fatalf("neighborsOf(0) = %v, want empty", got)
	}
}

func TestAdjacencyResizeShrinkDropsOutOfRangeNeighbors(t *testing.T) {
	adj := newAdjacency[uint16](4)
	adj.connect(0, 1)
	adj.connect(0, 3)
	adj.resize(2)

	got := adj.neighborsOf(0)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("neighborsOf(0) after shrink = %v, want [1]", got)
	}
}
