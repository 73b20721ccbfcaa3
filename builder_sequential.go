// SPDX-License-Identifier: MIT

package bitgossip

import "github.com/gaissmai/bitgossip/bitvec"

// SeqGraphBuilder accumulates connect/disconnect calls and runs the
// single-threaded gossip precomputation in Build.
type SeqGraphBuilder[N NodeID] struct {
	nodes     adjacency[N]
	edges     edgeTable[N]
	edgeMasks edgeTable[N]
}

// NewSeqBuilder creates a builder for a graph with exactly nodesLen nodes,
// ids [0, nodesLen). Panics if nodesLen exceeds the index width's ceiling.
func NewSeqBuilder[N NodeID](nodesLen int) *SeqGraphBuilder[N] {
	if nodesLen > maxNodesFor[N]() {
		panic("bitgossip: node count exceeds the limit for this NodeID width")
	}
	return &SeqGraphBuilder[N]{
		nodes:     newAdjacency[N](nodesLen),
		edges:     newEdgeTable[N](),
		edgeMasks: newEdgeTable[N](),
	}
}

// NodesLen returns the number of nodes.
func (g *SeqGraphBuilder[N]) NodesLen() int { return g.nodes.len() }

// EdgesLen returns the number of distinct edges currently connected.
func (g *SeqGraphBuilder[N]) EdgesLen() int { return g.edges.len() }

// Neighbors returns the neighbor list of node, in insertion order.
func (g *SeqGraphBuilder[N]) Neighbors(node N) []N { return g.nodes.neighborsOf(node) }

// Resize changes the node count. Shrinking drops edges touching removed
// nodes.
func (g *SeqGraphBuilder[N]) Resize(nodesLen int) {
	shrinking := nodesLen < g.nodes.len()
	g.nodes.resize(nodesLen)
	if shrinking {
		g.edges.truncate(nodesLen)
		g.edgeMasks.truncate(nodesLen)
	}
}

// Connect adds an undirected edge between a and b, seeding both edge
// tables' endpoint bits under the canonical min→max orientation.
func (g *SeqGraphBuilder[N]) Connect(a, b N) {
	g.nodes.connect(a, b)

	// The decision bit is stored from the canonical (min,max) viewpoint:
	// bit max(a,b) set means that from the smaller endpoint this edge leads
	// toward the larger one. Bit min(a,b) stays clear, which read inverted
	// from the larger endpoint's side means the edge leads toward the
	// smaller one.
	val := a
	if b > a {
		val = b
	}

	key := newEdgeKey(a, b)

	if edge, ok := g.edges.get(key); ok {
		edge.Set(int(val), true)
		g.edges.inner[key] = edge
	} else {
		g.edges.inner[key] = bitvec.One(int(val))
	}

	if mask, ok := g.edgeMasks.get(key); ok {
		mask.Set(int(a), true)
		mask.Set(int(b), true)
		g.edgeMasks.inner[key] = mask
	} else {
		mask := bitvec.One(int(a))
		mask.Set(int(b), true)
		g.edgeMasks.inner[key] = mask
	}
}

// Disconnect removes the undirected edge between a and b, if present.
func (g *SeqGraphBuilder[N]) Disconnect(a, b N) {
	g.nodes.disconnect(a, b)

	key := newEdgeKey(a, b)
	if g.edgeMasks.delete(key) {
		g.edges.delete(key)
	}
}

// upsertSlot is per-neighbor gossip scratch: upsert holds newly decided
// bits for this destination edge, computed holds the mask of destinations
// touched this round, and mask borrows the neighbor's decided mask for
// reuse during the scan.
type upsertSlot struct {
	upsert   bitvec.BitVector
	computed bitvec.BitVector
	mask     bitvec.BitVector
}

func clearSlots(slots []upsertSlot) {
	for i := range slots {
		slots[i].upsert.Clear()
		slots[i].computed.Clear()
		slots[i].mask.Clear()
	}
}

func growSlots(slots []upsertSlot, n int) []upsertSlot {
	if len(slots) >= n {
		return slots
	}
	grown := make([]upsertSlot, n)
	copy(grown, slots)
	return grown
}

// Build consumes the builder and runs the gossip precomputation to
// completion, returning a read-only Graph.
func (g *SeqGraphBuilder[N]) Build() *SeqGraph[N] {
	nodes := g.nodes
	edges := g.edges
	edgeMasks := g.edgeMasks

	nodesLen := nodes.len()
	fullMask := bitvec.Ones(nodesLen)

	// (frontier at current depth, visited at previous depths) per node.
	type depthState struct {
		frontier bitvec.BitVector
		visited  bitvec.BitVector
	}
	neighborsAtDepth := make([]depthState, nodesLen)
	for i, ns := range nodes.neighbors {
		var frontier bitvec.BitVector
		for _, n := range ns {
			frontier.Set(int(n), true)
		}
		neighborsAtDepth[i] = depthState{frontier: frontier, visited: bitvec.One(i)}
	}

	var activeNeighborsMask bitvec.BitVector
	var doneNodes bitvec.BitVector

	var slots []upsertSlot

	// Initialization pass (§4.4): seeds one destination per (a,c) pair from
	// pure adjacency, no BFS involved yet.
	for a, aNeighbors := range nodes.neighbors {
		clearSlots(slots)
		slots = growSlots(slots, len(aNeighbors))

		for i, bNode := range aNeighbors {
			bInt := int(bNode)
			val := true
			if a > bInt {
				val = false
			}

			for j, c := range aNeighbors {
				if i == j {
					continue
				}
				shouldSet := val
				if (a > bInt) == (a > int(c)) {
					shouldSet = !val
				}
				if shouldSet {
					slots[j].upsert.Set(bInt, true)
				}
				slots[j].computed.Set(bInt, true)
			}
		}

		aID := N(a)
		for i, bNode := range aNeighbors {
			key := newEdgeKey(aID, bNode)
			slot := slots[i]
			if !slot.computed.IsZero() {
				if !slot.upsert.IsZero() {
					edges.insert(key, slot.upsert)
				}
				edgeMasks.insert(key, slot.computed)
			}
		}
	}

	setDoneList := make([]N, 0, nodesLen)

	for {
		for a := range doneNodes.IterZeros() {
			if a >= nodesLen {
				break
			}
			aID := N(a)
			aNeighbors := nodes.neighborsOf(aID)

			clearSlots(slots)
			slots = growSlots(slots, len(aNeighbors))

			var aActiveNeighborsMask bitvec.BitVector
			allEdgesDone := true

			for i, bNode := range aNeighbors {
				key := newEdgeKey(aID, bNode)
				mask, ok := edgeMasks.get(key)
				if !ok {
					panic("bitgossip: missing edge mask for connected neighbor")
				}
				slots[i].mask = mask
				if !mask.Eq(fullMask) {
					allEdgesDone = false
				}
			}

			if allEdgesDone {
				setDoneList = append(setDoneList, aID)
				continue
			}

			for i, bNode := range aNeighbors {
				bInt := int(bNode)

				neighborsMask := neighborsAtDepth[bInt].frontier.Clone()
				neighborsMask.Set(a, false)
				if neighborsMask.IsZero() {
					continue
				}

				aActiveNeighborsMask.Set(bInt, true)

				key := newEdgeKey(aID, bNode)
				val, ok := edges.get(key)
				if !ok {
					panic("bitgossip: missing edge decision for connected neighbor")
				}

				for j, c := range aNeighbors {
					if i == j {
						continue
					}
					maskAC := slots[j].mask
					if maskAC.Eq(fullMask) {
						continue
					}
					allEdgesDone = false

					computeMask := neighborsMask.Clone()
					computeMask.AndNot(maskAC)
					if computeMask.IsZero() {
						continue
					}

					if (a > bInt) == (a > int(c)) {
						slots[j].upsert.OrNotAnd(val, computeMask)
					} else {
						slots[j].upsert.OrAnd(val, computeMask)
					}
					slots[j].computed.Or(computeMask)
				}
			}

			if allEdgesDone || aActiveNeighborsMask.IsZero() {
				setDoneList = append(setDoneList, aID)
			} else {
				for i, bNode := range aNeighbors {
					key := newEdgeKey(aID, bNode)
					slot := slots[i]
					if !slot.computed.IsZero() {
						if !slot.upsert.IsZero() {
							edges.insert(key, slot.upsert)
						}
						edgeMasks.insert(key, slot.computed)
					}
				}
			}

			activeNeighborsMask.Or(aActiveNeighborsMask)
		}

		for _, a := range setDoneList {
			doneNodes.Set(int(a), true)
		}
		setDoneList = setDoneList[:0]

		if doneNodes.Eq(fullMask) {
			break
		}

		for a := range activeNeighborsMask.IterOnes() {
			state := &neighborsAtDepth[a]
			if state.frontier.IsZero() {
				continue
			}
			state.visited.Or(state.frontier)

			var newNeighbors bitvec.BitVector
			for bNode := range state.frontier.IterOnes() {
				for _, c := range nodes.neighborsOf(N(bNode)) {
					newNeighbors.Set(int(c), true)
				}
			}
			newNeighbors.AndNot(state.visited)
			state.frontier = newNeighbors
		}

		activeNeighborsMask.Clear()
	}

	return &SeqGraph[N]{nodes: nodes, edges: edges}
}
