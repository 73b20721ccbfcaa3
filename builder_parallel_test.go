// SPDX-License-Identifier: MIT

package bitgossip

import "testing"

func TestParaBuilderConnectDisconnect(t *testing.T) {
	builder := NewParaBuilder[uint16](5)
	builder.Connect(0, 1)
	builder.Connect(1, 2)
	if builder.EdgesLen() != 2 {
		t.Fatalf("EdgesLen() = %d, want 2", builder.EdgesLen())
	}

	builder.Disconnect(1, 2)
	if builder.EdgesLen() != 1 {
		t.Fatalf("EdgesLen() after disconnect = %d, want 1", builder.EdgesLen())
	}
}

func TestParaBuilderPanicsOverCeiling(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewParaBuilder[uint16](1 << 17)
}

func TestParaGraphMatchesSequentialOnLadder(t *testing.T) {
	seq := buildLadder(t, false)
	para := buildLadder(t, true)

	for curr := uint16(0); curr < 12; curr++ {
		for dest := uint16(0); dest < 12; dest++ {
			n1, ok1 := seq.NextNode(curr, dest)
			n2, ok2 := para.NextNode(curr, dest)
			if ok1 != ok2 || n1 != n2 {
				t.Fatalf("NextNode(%d,%d): seq=(%d,%v) para=(%d,%v)", curr, dest, n1, ok1, n2, ok2)
			}
		}
	}
}
