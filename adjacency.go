// SPDX-License-Identifier: MIT

package bitgossip

// adjacency holds, per node, the list of its neighbors in insertion order.
//
// The source this engine is grounded on has two documented bugs in this
// structure: connect pushes onto b's list unconditionally (duplicating
// entries across repeated connect(a,b) calls) and disconnect removes the
// edge from only one side when it is missing on the other. Both connect
// and disconnect below are symmetric and deduplicated to avoid them.
type adjacency[N NodeID] struct {
	neighbors [][]N
}

func newAdjacency[N NodeID](nodesLen int) adjacency[N] {
	return adjacency[N]{neighbors: make([][]N, nodesLen)}
}

func (a *adjacency[N]) len() int { return len(a.neighbors) }

func (a *adjacency[N]) resize(nodesLen int) {
	prevLen := len(a.neighbors)
	if nodesLen <= prevLen {
		a.neighbors = a.neighbors[:nodesLen]
		bound := N(nodesLen)
		for i := range a.neighbors {
			a.neighbors[i] = retain(a.neighbors[i], func(n N) bool { return n < bound })
		}
		return
	}
	grown := make([][]N, nodesLen)
	copy(grown, a.neighbors)
	a.neighbors = grown
}

func retain[N NodeID](s []N, keep func(N) bool) []N {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (a *adjacency[N]) neighborsOf(node N) []N { return a.neighbors[node] }

func contains[N NodeID](s []N, v N) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// connect adds an undirected edge between a and b. Self-loops are silently
// ignored; repeat calls for the same pair are idempotent on both sides.
func (adj *adjacency[N]) connect(a, b N) {
	if a == b {
		return
	}
	if !contains(adj.neighbors[a], b) {
		adj.neighbors[a] = append(adj.neighbors[a], b)
	}
	if !contains(adj.neighbors[b], a) {
		adj.neighbors[b] = append(adj.neighbors[b], a)
	}
}

// disconnect removes the undirected edge between a and b, if present, from
// both sides. A missing edge is a silent no-op.
func (adj *adjacency[N]) disconnect(a, b N) {
	if a == b {
		return
	}
	adj.neighbors[a] = removeOne(adj.neighbors[a], b)
	adj.neighbors[b] = removeOne(adj.neighbors[b], a)
}

func removeOne[N NodeID](s []N, v N) []N {
	for i, x := range s {
		if x == v {
			last := len(s) - 1
			s[i] = s[last]
			return s[:last]
		}
	}
	return s
}
