// SPDX-License-Identifier: MIT

package bitgossip

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gaissmai/bitgossip/bitvec"
)

// chunkSize is the unit of work handed to each parallel-build goroutine,
// matching the small constant (8-16) the algorithm's design calls for: big
// enough to amortize goroutine scheduling, small enough to keep workers
// balanced across an uneven adjacency distribution.
const chunkSize = 8

// forEachChunk partitions items into chunkSize-sized slices and runs fn on
// each concurrently, returning only once every chunk has completed — the
// barrier the gossip algorithm requires between its two parallel passes.
func forEachChunk[T any](items []T, fn func([]T)) {
	g, _ := errgroup.WithContext(context.Background())
	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))
		chunk := items[start:end]
		g.Go(func() error {
			fn(chunk)
			return nil
		})
	}
	_ = g.Wait()
}

// ParaGraphBuilder is the multi-worker sibling of SeqGraphBuilder. It
// exposes the same connect/disconnect/build surface; Build shards the
// gossip precomputation across goroutines using AtomicBitVector-backed
// edge tables and a barrier between the undecided-node scan and the
// frontier-advance pass.
type ParaGraphBuilder[N NodeID] struct {
	nodes     adjacency[N]
	edges     atomicEdgeTable[N]
	edgeMasks atomicEdgeTable[N]
}

// NewParaBuilder creates a parallel builder for nodesLen nodes.
func NewParaBuilder[N NodeID](nodesLen int) *ParaGraphBuilder[N] {
	if nodesLen > maxNodesFor[N]() {
		panic("bitgossip: node count exceeds the limit for this NodeID width")
	}
	return &ParaGraphBuilder[N]{
		nodes:     newAdjacency[N](nodesLen),
		edges:     newAtomicEdgeTable[N](),
		edgeMasks: newAtomicEdgeTable[N](),
	}
}

func (g *ParaGraphBuilder[N]) NodesLen() int        { return g.nodes.len() }
func (g *ParaGraphBuilder[N]) EdgesLen() int        { return g.edges.len() }
func (g *ParaGraphBuilder[N]) Neighbors(node N) []N { return g.nodes.neighborsOf(node) }

// Connect adds an undirected edge between a and b.
func (g *ParaGraphBuilder[N]) Connect(a, b N) {
	g.nodes.connect(a, b)

	val := a
	if b > a {
		val = b
	}

	key := newEdgeKey(a, b)
	nodesLen := g.nodes.len()

	if edge, ok := g.edges.get(key); ok {
		edge.Set(int(val), true)
	} else {
		edge := bitvec.OneAtomic(int(val), nodesLen)
		g.edges.inner[key] = &edge
	}

	if mask, ok := g.edgeMasks.get(key); ok {
		mask.Set(int(a), true)
		mask.Set(int(b), true)
	} else {
		mask := bitvec.Zeros(nodesLen)
		mask.Set(int(a), true)
		mask.Set(int(b), true)
		g.edgeMasks.inner[key] = &mask
	}
}

// Disconnect removes the undirected edge between a and b, if present.
func (g *ParaGraphBuilder[N]) Disconnect(a, b N) {
	g.nodes.disconnect(a, b)

	key := newEdgeKey(a, b)
	if g.edgeMasks.delete(key) {
		g.edges.delete(key)
	}
}

// Build runs the chunked, barrier-synchronized gossip precomputation and
// returns a read-only ParaGraph.
func (g *ParaGraphBuilder[N]) Build() *ParaGraph[N] {
	nodes := g.nodes
	edges := g.edges
	edgeMasks := g.edgeMasks

	nodesLen := nodes.len()
	fullMask := bitvec.Ones(nodesLen)

	allNodes := make([]int, nodesLen)
	for i := range allNodes {
		allNodes[i] = i
	}

	type depthState struct {
		frontier bitvec.AtomicBitVector
		visited  bitvec.AtomicBitVector
	}
	neighborsAtDepth := make([]depthState, nodesLen)

	forEachChunk(allNodes, func(chunk []int) {
		for _, i := range chunk {
			frontier := bitvec.Zeros(nodesLen)
			for _, n := range nodes.neighborsOf(N(i)) {
				frontier.Set(int(n), true)
			}
			neighborsAtDepth[i] = depthState{frontier: frontier, visited: bitvec.OneAtomic(i, nodesLen)}
		}
	})

	activeNeighborsMask := bitvec.Zeros(nodesLen)
	doneNodes := bitvec.Zeros(nodesLen)

	// Initialization pass (§4.4): seeded purely from adjacency, no BFS yet.
	forEachChunk(allNodes, func(chunk []int) {
		var slots []upsertSlot
		for _, a := range chunk {
			aNeighbors := nodes.neighborsOf(N(a))

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
						edges.update(key, slot.upsert)
					}
					edgeMasks.update(key, slot.computed)
				}
			}
		}
	})

	for {
		forEachChunk(allNodes, func(chunk []int) {
			var slots []upsertSlot
			for _, a := range chunk {
				if a >= nodesLen || doneNodes.Get(a) {
					continue
				}
				aID := N(a)
				aNeighbors := nodes.neighborsOf(aID)

				neighborMasks := make([]bitvec.BitVector, len(aNeighbors))
				neighborFullyDecided := make([]bool, len(aNeighbors))
				allEdgesDone := true
				for i, bNode := range aNeighbors {
					mask, ok := edgeMasks.get(newEdgeKey(aID, bNode))
					if !ok {
						panic("bitgossip: missing edge mask for connected neighbor")
					}
					snapshot := mask.IntoBitVec()
					if snapshot.Eq(fullMask) {
						neighborFullyDecided[i] = true
					} else {
						neighborMasks[i] = snapshot
						allEdgesDone = false
					}
				}

				if allEdgesDone {
					doneNodes.Set(a, true)
					continue
				}

				clearSlots(slots)
				slots = growSlots(slots, len(aNeighbors))

				var aActiveNeighborsMask bitvec.BitVector

				for i, bNode := range aNeighbors {
					bInt := int(bNode)

					neighborsMask := neighborsAtDepth[bInt].frontier.IntoBitVec()
					neighborsMask.Set(a, false)
					if neighborsMask.IsZero() {
						continue
					}

					aActiveNeighborsMask.Set(bInt, true)

					val, ok := edges.get(newEdgeKey(aID, bNode))
					if !ok {
						panic("bitgossip: missing edge decision for connected neighbor")
					}
					valSnapshot := val.IntoBitVec()

					for j, c := range aNeighbors {
						if i == j {
							continue
						}
						if neighborFullyDecided[j] {
							continue
						}

						computeMask := neighborsMask.Clone()
						computeMask.AndNot(neighborMasks[j])
						if computeMask.IsZero() {
							continue
						}

						if (a > bInt) == (a > int(c)) {
							slots[j].upsert.OrNotAnd(valSnapshot, computeMask)
						} else {
							slots[j].upsert.OrAnd(valSnapshot, computeMask)
						}
						slots[j].computed.Or(computeMask)
					}
				}

				if aActiveNeighborsMask.IsZero() {
					doneNodes.Set(a, true)
				} else {
					for i, bNode := range aNeighbors {
						key := newEdgeKey(aID, bNode)
						slot := slots[i]
						if !slot.computed.IsZero() {
							if !slot.upsert.IsZero() {
								edges.update(key, slot.upsert)
							}
							edgeMasks.update(key, slot.computed)
						}
					}
				}

				activeNeighborsMask.Or(aActiveNeighborsMask)
			}
		})

		if doneNodes.Eq(fullMask) {
			break
		}

		forEachChunk(allNodes, func(chunk []int) {
			for _, a := range chunk {
				if !activeNeighborsMask.Get(a) {
					continue
				}
				state := &neighborsAtDepth[a]
				frontierSnapshot := state.frontier.IntoBitVec()
				if frontierSnapshot.IsZero() {
					continue
				}
				state.visited.Or(frontierSnapshot)

				var newNeighbors bitvec.BitVector
				for b := range frontierSnapshot.IterOnes() {
					for _, c := range nodes.neighborsOf(N(b)) {
						newNeighbors.Set(int(c), true)
					}
				}
				visitedSnapshot := state.visited.IntoBitVec()
				newNeighbors.AndNot(visitedSnapshot)
				state.frontier.AssignFrom(newNeighbors)
			}
		})

		activeNeighborsMask.Clear()
	}

	return &ParaGraph[N]{nodes: nodes, edges: edges}
}
