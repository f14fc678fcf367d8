package utils

import (
	"math/bits"
)

// Initially inspired from https://github.com/kelindar/bitmap Thank you for using the MIT license!
// Reworked for fixed-width use: adjacency rows are sized once at allocation
// and never grow, so the whole row can be a value (no pointer receiver games).

type Bitmap []uint64

// A bitmap able to hold the given number of bits, all zero.
func NewBitmap(size int32) Bitmap {
	return make(Bitmap, (int(size)+63)>>6)
}

func (bitmap Bitmap) Set(x int32) {
	bitmap[x>>6] |= 1 << (x & 63)
}

func (bitmap Bitmap) Unset(x int32) {
	bitmap[x>>6] &^= 1 << (x & 63)
}

func (bitmap Bitmap) Get(x int32) bool {
	return bitmap[x>>6]&(1<<(x&63)) != 0
}

// Zeros all bits in the bitmap.
func (bitmap Bitmap) Zeroes() {
	for i := 0; i < len(bitmap); i++ {
		bitmap[i] = 0
	}
}

func (bitmap Bitmap) Count() (c int) {
	for i := 0; i < len(bitmap); i++ {
		c += bits.OnesCount64(bitmap[i])
	}
	return c
}

// Population of the intersection with other; rows of equal width assumed.
func (bitmap Bitmap) CountAnd(other Bitmap) (c int) {
	for i := 0; i < len(bitmap); i++ {
		c += bits.OnesCount64(bitmap[i] & other[i])
	}
	return c
}
