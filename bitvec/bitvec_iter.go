//go:build go1.23

// SPDX-License-Identifier: MIT

package bitvec

import (
	"iter"
	"math/bits"
)

// IterOnes returns the indices of set bits in ascending order.
func (b BitVector) IterOnes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for idx, word := range b.digits {
			for word != 0 {
				i := idx*wordSize + bits.TrailingZeros64(word)
				if !yield(i) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// IterZeros returns the indices of clear bits in ascending order.
//
// Unlike IterOnes, this iterator is open-ended: once the backing digits are
// exhausted it keeps yielding ascending indices forever, since every bit
// beyond the vector's length is implicitly zero. The builder relies on this
// to scan "not yet done" node ids that exceed the current vector length.
// Callers MUST bound consumption themselves (a count, a range check, or a
// break once the caller's own node count is exceeded).
func (b BitVector) IterZeros() iter.Seq[int] {
	return func(yield func(int) bool) {
		idx := 0
		var word uint64
		if idx < len(b.digits) {
			word = ^b.digits[idx]
		} else {
			word = ^uint64(0)
		}

		for {
			for word == 0 {
				idx++
				if idx < len(b.digits) {
					word = ^b.digits[idx]
				} else {
					word = ^uint64(0)
				}
			}
			i := idx*wordSize + bits.TrailingZeros64(word)
			if !yield(i) {
				return
			}
			word &= word - 1
		}
	}
}
