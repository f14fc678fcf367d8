package utils

import (
	"sync/atomic"
)

// Monotone max; returns the value observed before the update attempt.
// The caller may have lost the race it if returns >= new.
//
//go:nosplit
func AtomicMaxInt32(targetVal *int32, new int32) (old int32) {
	for {
		old = atomic.LoadInt32(targetVal)
		if new <= old || atomic.CompareAndSwapInt32(targetVal, old, new) {
			return old
		}
	}
}
