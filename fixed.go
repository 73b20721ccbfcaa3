// SPDX-License-Identifier: MIT

package bitgossip

// Fixed-width constructors for the four node-count ceilings the original
// design names (16, 32, 64, 128 nodes), each historically a separate
// packed-word adjacency implementation. Here they are ceiling-checked
// entry points onto the one general uint16 engine rather than four
// duplicated engines: all four ceilings fit well inside uint16's 65536-node
// range, and nothing in the query or build semantics distinguishes index
// width once nodesLen is fixed.

// NewBuilder16 creates a GraphBuilder for at most 16 nodes.
func NewBuilder16() *GraphBuilder[uint16] { return newFixedBuilder(16) }

// NewBuilder32 creates a GraphBuilder for at most 32 nodes.
func NewBuilder32() *GraphBuilder[uint16] { return newFixedBuilder(32) }

// NewBuilder64 creates a GraphBuilder for at most 64 nodes.
func NewBuilder64() *GraphBuilder[uint16] { return newFixedBuilder(64) }

// NewBuilder128 creates a GraphBuilder for at most 128 nodes.
func NewBuilder128() *GraphBuilder[uint16] { return newFixedBuilder(128) }

func newFixedBuilder(ceiling int) *GraphBuilder[uint16] {
	return NewBuilder[uint16](ceiling)
}
