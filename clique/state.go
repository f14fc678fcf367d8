package clique

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/utils"
)

// The only state shared between workers: the best clique size found so far
// (monotone, lock-free reads), a set-once early-exit latch, and the witness
// clique guarded by one mutex. Everything else in the search is thread
// local.
type SharedState struct {
	mc      int32       // Read with atomics; written under mu.
	foundUB atomic.Bool // Latched once mc reaches paramUB.
	paramUB int32

	mu         sync.Mutex
	cmax       []int32
	lastRemove time.Time

	watch utils.Watch
}

func NewSharedState(lb, paramUB int32) *SharedState {
	s := &SharedState{mc: lb, paramUB: paramUB, lastRemove: time.Now()}
	s.watch.Start()
	return s
}

// Lock-free snapshot of the best size. Monotone: once a worker observes
// mc >= k it will never publish a clique of size <= k.
func (s *SharedState) Mc() int32 {
	return atomic.LoadInt32(&s.mc)
}

func (s *SharedState) FoundUB() bool {
	return s.foundUB.Load()
}

func (s *SharedState) Elapsed() float64 {
	return s.watch.ElapsedSecs()
}

// Publishes c as the new best iff it is strictly larger than the current
// best; losers leave no trace. Latches foundUB once the early-exit
// threshold is met.
func (s *SharedState) TryPublish(c []int32) bool {
	size := int32(len(c))
	if size <= s.Mc() {
		return false
	}
	s.mu.Lock()
	if size <= s.mc {
		s.mu.Unlock()
		return false
	}
	utils.AtomicMaxInt32(&s.mc, size)
	s.cmax = append(s.cmax[:0], c...)
	s.mu.Unlock()

	log.Info().Msg("current max clique = " + utils.V(size) + ", time = " + utils.F("%.2f", s.Elapsed()) + " sec")
	if s.paramUB > 0 && size >= s.paramUB {
		s.foundUB.Store(true)
	}
	return true
}

// Copy of the current witness.
func (s *SharedState) Clique() []int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int32, len(s.cmax))
	copy(out, s.cmax)
	return out
}

// Runs f under the best-state lock when at least interval has passed since
// the previous run; the prune mask is only ever written through here or
// before the workers start.
func (s *SharedState) MaybeRemove(interval time.Duration, f func(mc int32)) {
	s.mu.Lock()
	if time.Since(s.lastRemove) >= interval {
		s.lastRemove = time.Now()
		f(s.mc)
	}
	s.mu.Unlock()
}
