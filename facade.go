// SPDX-License-Identifier: MIT

package bitgossip

import (
	"iter"
	"runtime"
)

// Graph is an unweighted, undirected graph with all shortest paths
// precomputed. It is read-only; convert it back to a [GraphBuilder] via
// IntoBuilder to add or remove edges and rebuild.
//
// Graph wraps either the sequential or the parallel engine's output behind
// one query surface, chosen automatically by [NewBuilder] based on
// available hardware parallelism, or explicitly via
// [GraphBuilder.WithMultiThreaded].
type Graph[N NodeID] struct {
	seq  *SeqGraph[N]
	para *ParaGraph[N]
}

// NodesLen returns the number of nodes in the graph.
func (g *Graph[N]) NodesLen() int {
	if g.para != nil {
		return g.para.NodesLen()
	}
	return g.seq.NodesLen()
}

// EdgesLen returns the number of distinct edges in the graph.
func (g *Graph[N]) EdgesLen() int {
	if g.para != nil {
		return g.para.EdgesLen()
	}
	return g.seq.EdgesLen()
}

// Neighbors returns the neighbors of node, in stored order.
func (g *Graph[N]) Neighbors(node N) []N {
	if g.para != nil {
		return g.para.Neighbors(node)
	}
	return g.seq.Neighbors(node)
}

// NextNodes returns every neighbor of curr whose edge lies on a shortest
// path toward dest.
func (g *Graph[N]) NextNodes(curr, dest N) iter.Seq[N] {
	if g.para != nil {
		return g.para.NextNodes(curr, dest)
	}
	return g.seq.NextNodes(curr, dest)
}

// NextNode returns the first neighbor on a shortest path from curr toward
// dest.
func (g *Graph[N]) NextNode(curr, dest N) (N, bool) {
	if g.para != nil {
		return g.para.NextNode(curr, dest)
	}
	return g.seq.NextNode(curr, dest)
}

// NextNodeWith returns the first neighbor satisfying pred among those on a
// shortest path from curr toward dest.
func (g *Graph[N]) NextNodeWith(curr, dest N, pred func(N) bool) (N, bool) {
	if g.para != nil {
		return g.para.NextNodeWith(curr, dest, pred)
	}
	return g.seq.NextNodeWith(curr, dest, pred)
}

// PathTo yields the sequence of nodes after curr, ending at dest inclusive.
func (g *Graph[N]) PathTo(curr, dest N) iter.Seq[N] {
	if g.para != nil {
		return g.para.PathTo(curr, dest)
	}
	return g.seq.PathTo(curr, dest)
}

// PathExists reports whether dest is reachable from curr.
func (g *Graph[N]) PathExists(curr, dest N) bool {
	if g.para != nil {
		return g.para.PathExists(curr, dest)
	}
	return g.seq.PathExists(curr, dest)
}

// IntoBuilder converts the graph back into a GraphBuilder with the same
// engine choice, its own copy of the adjacency, and every edge's decisions
// and masks reset to their Connect-time seeds.
func (g *Graph[N]) IntoBuilder() *GraphBuilder[N] {
	if g.para != nil {
		return &GraphBuilder[N]{para: g.para.IntoBuilder(), nodesLen: g.para.NodesLen(), multiThreaded: boolPtr(true)}
	}
	return &GraphBuilder[N]{seq: g.seq.IntoBuilder(), nodesLen: g.seq.NodesLen(), multiThreaded: boolPtr(false)}
}

func boolPtr(b bool) *bool { return &b }

// GraphBuilder is the engine-agnostic façade over SeqGraphBuilder and
// ParaGraphBuilder. It defers the sequential-vs-parallel choice until the
// first Connect/Disconnect/Build call, so WithMultiThreaded can still
// override the default after construction.
type GraphBuilder[N NodeID] struct {
	seq           *SeqGraphBuilder[N]
	para          *ParaGraphBuilder[N]
	multiThreaded *bool
	nodesLen      int
}

// NewBuilder creates a GraphBuilder for nodesLen nodes. Panics if nodesLen
// exceeds the index width's ceiling.
func NewBuilder[N NodeID](nodesLen int) *GraphBuilder[N] {
	if nodesLen > maxNodesFor[N]() {
		panic("bitgossip: node count exceeds the limit for this NodeID width")
	}
	return &GraphBuilder[N]{nodesLen: nodesLen}
}

// WithMultiThreaded overrides the automatic sequential-vs-parallel choice.
// Must be called before the first Connect/Disconnect/Build.
func (g *GraphBuilder[N]) WithMultiThreaded(multiThreaded bool) *GraphBuilder[N] {
	g.multiThreaded = &multiThreaded
	return g
}

func (g *GraphBuilder[N]) ensureEngine() {
	if g.seq != nil || g.para != nil {
		return
	}
	multiThreaded := g.multiThreaded
	useParallel := multiThreaded != nil && *multiThreaded
	if multiThreaded == nil {
		useParallel = runtime.GOMAXPROCS(0) > 1
	}
	if useParallel {
		g.para = NewParaBuilder[N](g.nodesLen)
	} else {
		g.seq = NewSeqBuilder[N](g.nodesLen)
	}
}

// Connect adds an undirected edge between a and b.
func (g *GraphBuilder[N]) Connect(a, b N) {
	g.ensureEngine()
	if g.para != nil {
		g.para.Connect(a, b)
		return
	}
	g.seq.Connect(a, b)
}

// Disconnect removes the undirected edge between a and b, if present.
func (g *GraphBuilder[N]) Disconnect(a, b N) {
	g.ensureEngine()
	if g.para != nil {
		g.para.Disconnect(a, b)
		return
	}
	g.seq.Disconnect(a, b)
}

// NodesLen returns the number of nodes.
func (g *GraphBuilder[N]) NodesLen() int {
	if g.para != nil {
		return g.para.NodesLen()
	}
	if g.seq != nil {
		return g.seq.NodesLen()
	}
	return g.nodesLen
}

// EdgesLen returns the number of distinct edges currently connected.
func (g *GraphBuilder[N]) EdgesLen() int {
	if g.para != nil {
		return g.para.EdgesLen()
	}
	if g.seq != nil {
		return g.seq.EdgesLen()
	}
	return 0
}

// Neighbors returns the neighbor list of node.
func (g *GraphBuilder[N]) Neighbors(node N) []N {
	if g.para != nil {
		return g.para.Neighbors(node)
	}
	if g.seq != nil {
		return g.seq.Neighbors(node)
	}
	return nil
}

// Build consumes the builder and runs the gossip precomputation, choosing
// the parallel engine when hardware parallelism is available (or as
// overridden by WithMultiThreaded) and the sequential engine otherwise.
func (g *GraphBuilder[N]) Build() *Graph[N] {
	g.ensureEngine()
	if g.para != nil {
		return &Graph[N]{para: g.para.Build()}
	}
	return &Graph[N]{seq: g.seq.Build()}
}
