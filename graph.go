// SPDX-License-Identifier: MIT

package bitgossip

import (
	"iter"
	"slices"

	"github.com/gaissmai/bitgossip/bitvec"
)

// SeqGraph is the read-only result of SeqGraphBuilder.Build: node adjacency
// plus the fully decided edge table.
type SeqGraph[N NodeID] struct {
	nodes adjacency[N]
	edges edgeTable[N]
}

// IntoBuilder converts the graph back into a builder with its own copy of
// the adjacency. Every edge's decision and mask vectors are reset to the
// endpoint bits Connect seeds, so the next Build recomputes from scratch and
// later changes to the builder leave s untouched.
func (s *SeqGraph[N]) IntoBuilder() *SeqGraphBuilder[N] {
	nodes := newAdjacency[N](s.nodes.len())
	for i, ns := range s.nodes.neighbors {
		nodes.neighbors[i] = slices.Clone(ns)
	}
	edges := newEdgeTable[N]()
	masks := newEdgeTable[N]()
	for key := range s.edges.inner {
		edges.inner[key] = bitvec.One(int(key.Hi))
		mask := bitvec.One(int(key.Lo))
		mask.Set(int(key.Hi), true)
		masks.inner[key] = mask
	}
	return &SeqGraphBuilder[N]{
		nodes:     nodes,
		edges:     edges,
		edgeMasks: masks,
	}
}

// NodesLen returns the number of nodes in the graph.
func (s *SeqGraph[N]) NodesLen() int { return s.nodes.len() }

// EdgesLen returns the number of distinct edges in the graph.
func (s *SeqGraph[N]) EdgesLen() int { return s.edges.len() }

// Neighbors returns the neighbors of node, in stored order.
func (s *SeqGraph[N]) Neighbors(node N) []N { return s.nodes.neighborsOf(node) }

// edgeBitFor reports whether traversing curr->neighbor is on a shortest
// path toward dest, reading the canonically stored bit and flipping it
// when curr is the larger endpoint.
func (s *SeqGraph[N]) edgeBitFor(curr, neighbor, dest N) (bool, bool) {
	edge, ok := s.edges.get(newEdgeKey(curr, neighbor))
	if !ok {
		return false, false
	}
	bit := edge.Get(int(dest))
	if curr > neighbor {
		bit = !bit
	}
	return bit, true
}

// NextNodes returns, in stored neighbor order, every neighbor of curr whose
// edge lies on a shortest path toward dest. Empty when curr == dest; stops
// at the first neighbor for which no edge data exists.
func (s *SeqGraph[N]) NextNodes(curr, dest N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if curr == dest {
			return
		}
		for _, neighbor := range s.nodes.neighborsOf(curr) {
			bit, ok := s.edgeBitFor(curr, neighbor, dest)
			if !ok {
				return
			}
			if bit {
				if !yield(neighbor) {
					return
				}
			}
		}
	}
}

// NextNode returns the first neighbor on a shortest path from curr toward
// dest, or false if none exists.
func (s *SeqGraph[N]) NextNode(curr, dest N) (N, bool) {
	for n := range s.NextNodes(curr, dest) {
		return n, true
	}
	var zero N
	return zero, false
}

// NextNodeWith returns the first neighbor satisfying pred among those on a
// shortest path from curr toward dest.
func (s *SeqGraph[N]) NextNodeWith(curr, dest N, pred func(N) bool) (N, bool) {
	for n := range s.NextNodes(curr, dest) {
		if pred(n) {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// PathTo yields the sequence of nodes after curr, ending at dest inclusive.
// Empty if curr == dest; stops short of dest if unreachable.
func (s *SeqGraph[N]) PathTo(curr, dest N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for curr != dest {
			next, ok := s.NextNode(curr, dest)
			if !ok {
				return
			}
			if !yield(next) {
				return
			}
			curr = next
		}
	}
}

// PathExists reports whether dest is reachable from curr.
func (s *SeqGraph[N]) PathExists(curr, dest N) bool {
	if curr == dest {
		return true
	}
	_, ok := s.NextNode(curr, dest)
	return ok
}
