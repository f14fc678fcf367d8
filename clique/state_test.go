package clique

import (
	"sync"
	"testing"
)

func TestTryPublishStrict(t *testing.T) {
	st := NewSharedState(0, 10)
	if !st.TryPublish([]int32{1, 2, 3}) {
		t.Fatal("first publish must win")
	}
	if st.TryPublish([]int32{4, 5, 6}) {
		t.Error("equal size must not replace the witness")
	}
	got := st.Clique()
	if len(got) != 3 || got[0] != 1 {
		t.Error("witness clobbered: ", got)
	}
	if !st.TryPublish([]int32{1, 2, 3, 4}) {
		t.Error("strictly larger publish must win")
	}
	if st.Mc() != 4 {
		t.Error("mc is ", st.Mc())
	}
}

func TestFoundUBLatch(t *testing.T) {
	st := NewSharedState(0, 2)
	if st.FoundUB() {
		t.Fatal("latch must start clear")
	}
	st.TryPublish([]int32{7})
	if st.FoundUB() {
		t.Error("below threshold must not latch")
	}
	st.TryPublish([]int32{7, 8})
	if !st.FoundUB() {
		t.Error("threshold met must latch")
	}
}

func TestMcMonotoneUnderContention(t *testing.T) {
	st := NewSharedState(0, 0)
	var wg sync.WaitGroup
	for tid := 0; tid < 8; tid++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			c := []int32{}
			for i := 0; i <= 20+tid; i++ {
				c = append(c, int32(i))
				before := st.Mc()
				st.TryPublish(c)
				if st.Mc() < before {
					t.Error("mc decreased")
				}
			}
		}(tid)
	}
	wg.Wait()
	if st.Mc() != 28 {
		t.Error("final mc ", st.Mc(), " expected 28")
	}
	if len(st.Clique()) != 28 {
		t.Error("witness length ", len(st.Clique()))
	}
}

func TestLowerBoundSeedsMc(t *testing.T) {
	st := NewSharedState(5, 0)
	if st.TryPublish([]int32{0, 1, 2}) {
		t.Error("publish below the seeded bound must lose")
	}
	if st.Mc() != 5 {
		t.Error("mc is ", st.Mc())
	}
}
