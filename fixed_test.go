// SPDX-License-Identifier: MIT

package bitgossip

import "testing"

func TestFixedWidthBuildersSpanFullRange(t *testing.T) {
	cases := []struct {
		name    string
		newFull func() *GraphBuilder[uint16]
		nodes   uint16
	}{
		{"16", NewBuilder16, 16},
		{"32", NewBuilder32, 32},
		{"64", NewBuilder64, 64},
		{"128", NewBuilder128, 128},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder := tc.newFull()
			builder.Connect(0, tc.nodes-1)
			g := builder.Build()
			if g.NodesLen() != int(tc.nodes) {
				t.Errorf("NodesLen() = %d, want %d", g.NodesLen(), tc.nodes)
			}
			if !g.PathExists(0, tc.nodes-1) {
				t.Errorf("PathExists(0,%d) should be true", tc.nodes-1)
			}
		})
	}
}

func TestBuilderPanicsOverNodeCeiling(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for node count exceeding uint16 ceiling")
		}
	}()
	NewBuilder[uint16](1 << 17)
}
