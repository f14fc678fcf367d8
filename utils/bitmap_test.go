package utils

import (
	"math/rand"
	"testing"
)

func TestBitmapSetGet(t *testing.T) {
	const size = 200
	bm := NewBitmap(size)
	want := map[int32]bool{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rng.Int31n(size)
		bm.Set(x)
		want[x] = true
	}
	for x := int32(0); x < size; x++ {
		if bm.Get(x) != want[x] {
			t.Error("bit ", x, " is ", bm.Get(x), " expected ", want[x])
		}
	}
	if bm.Count() != len(want) {
		t.Error("count ", bm.Count(), " expected ", len(want))
	}
}

func TestBitmapUnset(t *testing.T) {
	bm := NewBitmap(128)
	bm.Set(64)
	bm.Set(65)
	bm.Unset(64)
	if bm.Get(64) || !bm.Get(65) {
		t.Error("unset cleared the wrong bit")
	}
	bm.Zeroes()
	if bm.Count() != 0 {
		t.Error("zeroes left bits behind")
	}
}

func TestBitmapCountAnd(t *testing.T) {
	a := NewBitmap(300)
	b := NewBitmap(300)
	for x := int32(0); x < 300; x += 2 {
		a.Set(x)
	}
	for x := int32(0); x < 300; x += 3 {
		b.Set(x)
	}
	if got := a.CountAnd(b); got != 50 { // Multiples of 6 below 300.
		t.Error("intersection ", got, " expected 50")
	}
}
