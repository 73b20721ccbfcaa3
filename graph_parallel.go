// SPDX-License-Identifier: MIT

package bitgossip

import (
	"iter"
	"slices"

	"github.com/gaissmai/bitgossip/bitvec"
)

// ParaGraph is the read-only result of ParaGraphBuilder.Build. Its query
// API is identical to SeqGraph's; only the build engine differs.
type ParaGraph[N NodeID] struct {
	nodes adjacency[N]
	edges atomicEdgeTable[N]
}

// IntoBuilder converts the graph back into a parallel builder with its own
// copy of the adjacency. Every edge's decision and mask vectors are reset to
// the endpoint bits Connect seeds, so the next Build recomputes from scratch
// and later changes to the builder leave p untouched.
func (p *ParaGraph[N]) IntoBuilder() *ParaGraphBuilder[N] {
	nodesLen := p.nodes.len()
	nodes := newAdjacency[N](nodesLen)
	for i, ns := range p.nodes.neighbors {
		nodes.neighbors[i] = slices.Clone(ns)
	}
	edges := newAtomicEdgeTable[N]()
	masks := newAtomicEdgeTable[N]()
	for key := range p.edges.inner {
		edge := bitvec.OneAtomic(int(key.Hi), nodesLen)
		edges.inner[key] = &edge
		mask := bitvec.OneAtomic(int(key.Lo), nodesLen)
		mask.Set(int(key.Hi), true)
		masks.inner[key] = &mask
	}
	return &ParaGraphBuilder[N]{
		nodes:     nodes,
		edges:     edges,
		edgeMasks: masks,
	}
}

func (p *ParaGraph[N]) NodesLen() int        { return p.nodes.len() }
func (p *ParaGraph[N]) EdgesLen() int        { return p.edges.len() }
func (p *ParaGraph[N]) Neighbors(node N) []N { return p.nodes.neighborsOf(node) }

func (p *ParaGraph[N]) edgeBitFor(curr, neighbor, dest N) (bool, bool) {
	edge, ok := p.edges.get(newEdgeKey(curr, neighbor))
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
// edge lies on a shortest path toward dest.
func (p *ParaGraph[N]) NextNodes(curr, dest N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if curr == dest {
			return
		}
		for _, neighbor := range p.nodes.neighborsOf(curr) {
			bit, ok := p.edgeBitFor(curr, neighbor, dest)
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
func (p *ParaGraph[N]) NextNode(curr, dest N) (N, bool) {
	for n := range p.NextNodes(curr, dest) {
		return n, true
	}
	var zero N
	return zero, false
}

// NextNodeWith returns the first neighbor satisfying pred among those on a
// shortest path from curr toward dest.
func (p *ParaGraph[N]) NextNodeWith(curr, dest N, pred func(N) bool) (N, bool) {
	for n := range p.NextNodes(curr, dest) {
		if pred(n) {
			return n, true
		}
	}
	var zero N
	return zero, false
}

// PathTo yields the sequence of nodes after curr, ending at dest inclusive.
func (p *ParaGraph[N]) PathTo(curr, dest N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for curr != dest {
			next, ok := p.NextNode(curr, dest)
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
func (p *ParaGraph[N]) PathExists(curr, dest N) bool {
	if curr == dest {
		return true
	}
	_, ok := p.NextNode(curr, dest)
	return ok
}
