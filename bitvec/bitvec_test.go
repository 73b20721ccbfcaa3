// SPDX-License-Identifier: MIT

package bitvec

import "testing"

func collect(seq func(yield func(int) bool), n int) []int {
	out := make([]int, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestIterZerosOpenEnded(t *testing.T) {
	var bv BitVector
	for _, i := range []int{0, 2, 3, 5, 7, 8, 10, 12} {
		bv.Set(i, true)
	}

	got := collect(bv.IterZeros(), 8)
	want := []int{1, 4, 6, 9, 11, 13, 14, 15}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestIterZerosContinuesPastBackingArray(t *testing.T) {
	bv := Ones(2)
	got := collect(bv.IterZeros(), 14)
	for i, v := range got {
		if v != 2+i {
			t.Fatalf("index %d: got %d want %d (%v)", i, v, 2+i, got)
		}
	}

	bv = Ones(17)
	got = collect(bv.IterZeros(), 2)
	if got[0] != 17 || got[1] != 18 {
		t.Fatalf("got %v want [17 18]", got)
	}
}

func TestIterOnesAscending(t *testing.T) {
	var bv BitVector
	bits := []int{1, 63, 64, 65, 200}
	for _, i := range bits {
		bv.Set(i, true)
	}
	got := collect(bv.IterOnes(), len(bits))
	for i, v := range got {
		if v != bits[i] {
			t.Fatalf("got %v want %v", got, bits)
		}
	}
}

func TestSetGetClear(t *testing.T) {
	var bv BitVector
	if bv.Get(5) {
		t.Fatal("expected unset bit on empty vector")
	}
	bv.Set(5, true)
	if !bv.Get(5) {
		t.Fatal("expected bit 5 set")
	}
	bv.Set(5, false)
	if bv.Get(5) {
		t.Fatal("expected bit 5 cleared")
	}
	if !bv.IsZero() {
		t.Fatal("expected zero vector after clearing only set bit")
	}

	// Clearing out-of-range bits is a silent no-op, never a panic.
	bv.Set(1000, false)
}

func TestOrAndNotLaw(t *testing.T) {
	a := Zero()
	a.Set(1, true)
	a.Set(2, true)

	b := Zero()
	b.Set(2, true)
	b.Set(3, true)

	// a |= b then a &= !b must equal a \ b (the original a, minus anything in b).
	orig := a.Clone()
	orig.AndNot(b)

	a.Or(b)
	a.AndNot(b)

	if !a.Eq(orig) {
		t.Fatalf("a|=b;a&=!b = %v, want %v", a, orig)
	}
}

func TestNotComplementsExactBitLen(t *testing.T) {
	bv := Zero()
	bv.Set(0, true)
	bv.Set(2, true)

	not := bv.Not(4)
	for i := range 4 {
		want := i != 0 && i != 2
		if got := not.Get(i); got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
	if not.Get(5) {
		t.Fatal("Not(4) must not set bits beyond bitLen")
	}
}

func TestOrAndFused(t *testing.T) {
	x := Zero()
	x.Set(0, true)
	x.Set(1, true)

	y := Zero()
	y.Set(1, true)
	y.Set(2, true)

	dst := Zero()
	dst.Set(5, true)
	dst.OrAnd(x, y) // dst |= (x & y) -> bit 1 only, plus pre-existing bit 5

	for i := 0; i < 6; i++ {
		want := i == 1 || i == 5
		if got := dst.Get(i); got != want {
			t.Fatalf("bit %d: got %v want %v", i, got, want)
		}
	}
}

func TestOrNotAndFused(t *testing.T) {
	x := Zero()
	x.Set(0, true)

	y := Zero()
	y.Set(0, true)
	y.Set(1, true)

	dst := Zero()
	dst.OrNotAnd(x, y) // dst |= (!x & y) -> bit 0 excluded (set in x), bit 1 included

	if dst.Get(0) {
		t.Fatal("bit 0 should be excluded by !x")
	}
	if !dst.Get(1) {
		t.Fatal("bit 1 should be included")
	}
}

func TestOnesAndCountOnes(t *testing.T) {
	bv := Ones(10)
	if bv.CountOnes() != 10 {
		t.Fatalf("CountOnes() = %d want 10", bv.CountOnes())
	}
	for i := 0; i < 10; i++ {
		if !bv.Get(i) {
			t.Fatalf("bit %d should be set", i)
		}
	}
	if bv.Get(10) {
		t.Fatal("bit 10 should not be set")
	}
}

func TestNormalizeInvariant(t *testing.T) {
	bv := Zero()
	bv.Set(70, true)
	bv.Set(70, false)
	if !bv.IsZero() {
		t.Fatal("expected normalized empty vector after clearing only set high bit")
	}
}
