// SPDX-License-Identifier: MIT

package bitgossip

// EdgeKey is the canonical, orientation-agnostic identity of an undirected
// edge: the pair (min(a,b), max(a,b)). All edge-table accesses go through
// this key; storage never distinguishes (a,b) from (b,a).
type EdgeKey[N NodeID] struct {
	Lo N
	Hi N
}

// newEdgeKey canonicalizes a and b into an EdgeKey.
func newEdgeKey[N NodeID](a, b N) EdgeKey[N] {
	if a < b {
		return EdgeKey[N]{Lo: a, Hi: b}
	}
	return EdgeKey[N]{Lo: b, Hi: a}
}
