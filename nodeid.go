// SPDX-License-Identifier: MIT

// Package bitgossip precomputes all-pairs next-hop shortest-path
// information for an unweighted, undirected graph and answers single-hop
// and path queries in O(degree) time.
//
// The precomputation is a bit-parallel gossip algorithm: every undirected
// edge carries a bit vector indexed by destination node. Bit d tells
// whether that edge lies on some shortest path toward node d. Edges
// iteratively gossip their decisions to sibling edges at the same node
// until every edge knows its relation to every destination, which avoids
// an O(V²) Floyd-Warshall pass while answering queries in O(degree) once
// built.
//
// # Basic usage
//
//	0 -- 1 -- 2 -- 3
//	|         |    |
//	4 -- 5 -- 6 -- 7
//	|         |    |
//	8 -- 9 -- 10 - 11
//
//	builder := bitgossip.NewBuilder[uint16](12)
//	for i := uint16(0); i < 12; i++ {
//		if i%4 != 3 {
//			builder.Connect(i, i+1)
//		}
//		if i < 8 {
//			builder.Connect(i, i+4)
//		}
//	}
//	builder.Disconnect(1, 5)
//	builder.Disconnect(5, 9)
//
//	graph := builder.Build()
//	graph.NextNode(0, 9)              // 4
//	graph.NextNode(4, 9)              // 8
//	graph.NextNode(8, 9)              // 9
//
// Query APIs (NextNode, NextNodes, PathTo, PathExists, Neighbors) are thin
// readers over the precomputed edge tables; see [Graph].
//
// The builder is offline: once [GraphBuilder.Build] runs, the graph is
// read-only. To add or remove edges, round-trip through
// [Graph.IntoBuilder], which copies node adjacency into a new builder and
// resets every edge's decisions and masks, so the next Build recomputes
// them in full.
package bitgossip

import "unsafe"

// NodeID is the node identifier type for the general (arbitrary node count)
// variant of the engine. Node ids are contiguous, starting at 0.
//
// Two concrete widths are supported, matching the two index widths the
// gossip decision vectors need to stay compact for typical graphs: uint16
// (up to 65536 nodes) and uint32 (up to 2^32 nodes, the ceiling named in
// the package's Non-goals). There is deliberately no dynamic-dispatch
// interface here — NodeID is resolved at compile time per instantiation,
// the same way the source library seals its id type to exactly these two
// widths.
type NodeID interface {
	~uint16 | ~uint32
}

// maxNodesFor returns the number of distinct values representable by N,
// i.e. the hard ceiling on nodes_len for that instantiation.
//
// N is matched by underlying width, not exact type, so that named types
// satisfying the ~uint16 | ~uint32 constraint (e.g. type MyID uint16) get
// the same ceiling as the built-in type they're defined over.
func maxNodesFor[N NodeID]() int {
	var zero N
	switch unsafe.Sizeof(zero) {
	case 2:
		return 1 << 16
	case 4:
		return 1 << 32
	default:
		return 0
	}
}
