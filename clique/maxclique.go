package clique

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/graph"
	"github.com/ngraphs/parclique/utils"
)

// Parallel branch-and-bound with greedy coloring upper bounds. Workers pull
// seed vertices from a shared frontier; inside a seed everything is thread
// local and runs to completion.
type MaxClique struct {
	g          *graph.Graph
	ub         int32
	timeLimit  float64
	removeTime float64
	threads    int
	order      vertexOrder
	decrOrder  bool
	seed       int64

	timeExpired    atomic.Bool
	timeExpiredMsg atomic.Bool
}

func NewMaxClique(g *graph.Graph, p Params, ub int32) *MaxClique {
	order, _ := parseVertexOrder(p.VertexOrder)
	return &MaxClique{
		g:          g,
		ub:         ub,
		timeLimit:  p.TimeLimit,
		removeTime: p.RemoveTime,
		threads:    p.Threads,
		order:      order,
		decrOrder:  p.DecreasingOrder,
		seed:       p.Seed,
	}
}

func (m *MaxClique) TimeExpired() bool { return m.timeExpired.Load() }

// Per-worker scratch, allocated once and reused across seeds.
type worker struct {
	orc    adjOracle
	colors [][]int32
	kcore  []int32
	pruned []bool
}

// Sparse variant: candidate intersection by CSR scan-mark.
func (m *MaxClique) Search(st *SharedState, pruned []bool) {
	m.search(st, pruned, func() adjOracle { return newCsrOracle(m.g) })
}

// Dense variant: candidate intersection against the bitmap rows. The rows
// must have been built (and column-cleared by the initial prune) already.
func (m *MaxClique) SearchDense(st *SharedState, pruned []bool) {
	m.search(st, pruned, func() adjOracle { return newDenseOracle(m.g.Adj) })
}

func (m *MaxClique) search(st *SharedState, pruned []bool, mkOracle func() adjOracle) {
	g := m.g
	kcore := g.CoreNumbers()

	frontier := m.buildFrontier(st.Mc())
	if len(frontier) == 0 {
		return
	}

	var next int64
	var wg sync.WaitGroup
	for t := 0; t < m.threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := &worker{
				orc:    mkOracle(),
				colors: make([][]int32, 0, g.MaxDegree()+1),
				kcore:  kcore,
				pruned: pruned,
			}
			R := make([]Vertex, 0, g.MaxDegree()+1)
			C := make([]int32, 0, m.ub)

			for {
				if st.FoundUB() || m.outOfTime(st) {
					return
				}
				k := atomic.AddInt64(&next, 1) - 1
				if k >= int64(len(frontier)) {
					return
				}
				// Seeds come off the back of the frontier: strongest bound first,
				// or weakest first when DecreasingOrder sorted it descending.
				v := frontier[len(frontier)-1-int(k)].ID

				mcCur := st.Mc()
				if pruned[v] || kcore[v] < mcCur {
					continue
				}

				R = R[:0]
				for _, u := range g.Neighbors(v) {
					if !pruned[u] && kcore[u] >= mcCur {
						R = append(R, Vertex{u, kcore[u]})
					}
				}
				if len(R) == 0 {
					continue
				}
				R = w.colorSort(R)
				if 1+R[len(R)-1].Bound <= mcCur {
					continue
				}
				C = append(C[:0], v)
				m.branch(w, st, R, &C)
			}
		}()
	}
	wg.Wait()
}

// branch consumes candidates from the high-color end while the color bound
// can still beat the best. Candidates surviving the intersection are
// re-colored so the bound tightens with depth.
func (m *MaxClique) branch(w *worker, st *SharedState, R []Vertex, C *[]int32) {
	for len(R) > 0 && int32(len(*C))+R[len(R)-1].Bound > st.Mc() {
		u := R[len(R)-1]
		R = R[:len(R)-1]
		*C = append(*C, u.ID)

		mc := st.Mc()
		newR := make([]Vertex, 0, len(R))
		w.orc.Begin(u.ID)
		for _, x := range R {
			if w.orc.Member(x.ID) && !w.pruned[x.ID] && w.kcore[x.ID] >= mc {
				newR = append(newR, x)
			}
		}
		w.orc.End(u.ID)

		if len(newR) > 0 {
			newR = w.colorSort(newR)
			if int32(len(*C))+newR[len(newR)-1].Bound > st.Mc() {
				m.branch(w, st, newR, C)
			}
		} else if int32(len(*C)) > st.Mc() {
			if st.TryPublish(*C) {
				m.maybeRemove(st, w.pruned)
			}
		}
		*C = (*C)[:len(*C)-1]
	}
}

// Greedy coloring of the candidate set: each vertex takes the smallest
// color class holding none of its neighbors. Returns the set rebuilt in
// ascending color order with Bound = color index + 1, so the back of the
// slice carries the clique upper bound and whole suffixes prune at once.
func (w *worker) colorSort(R []Vertex) []Vertex {
	maxK := 0
	for _, x := range R {
		w.orc.Begin(x.ID)
		k := 0
		for ; k < len(w.colors); k++ {
			conflict := false
			for _, y := range w.colors[k] {
				if w.orc.Member(y) {
					conflict = true
					break
				}
			}
			if !conflict {
				break
			}
		}
		w.orc.End(x.ID)
		if k == len(w.colors) {
			w.colors = append(w.colors, nil)
		}
		w.colors[k] = append(w.colors[k], x.ID)
		if k+1 > maxK {
			maxK = k + 1
		}
	}

	// Rebuild ascending by color; classes are left empty for the next call.
	R = R[:0]
	for k := 0; k < maxK; k++ {
		for _, id := range w.colors[k] {
			R = append(R, Vertex{id, int32(k) + 1})
		}
		w.colors[k] = w.colors[k][:0]
	}
	return R
}

// The search frontier: live vertices that can still extend past mc,
// annotated by the configured ordering and sorted ascending (descending
// when configured); workers consume it from the back.
func (m *MaxClique) buildFrontier(mc int32) []Vertex {
	g := m.g
	n := g.NumVertices()
	kcore := g.CoreNumbers()
	deg := g.Degrees()
	rng := rand.New(rand.NewSource(m.seed))

	P := make([]Vertex, 0, n)
	for v := int32(0); v < n; v++ {
		if kcore[v] < mc {
			continue
		}
		var bound int32
		switch m.order {
		case orderKcore:
			bound = kcore[v]
		case orderDeg:
			bound = deg[v]
		case orderKcoreDeg:
			bound = kcore[v] * deg[v]
		case orderRand:
			bound = rng.Int31n(n)
		case orderDualDeg:
			for _, u := range g.Neighbors(v) {
				bound += deg[u]
			}
		case orderDualKcore:
			for _, u := range g.Neighbors(v) {
				bound += kcore[u]
			}
		}
		P = append(P, Vertex{v, bound})
	}
	if m.decrOrder {
		sortDesc(P)
	} else {
		sortAsc(P)
	}
	return P
}

// Seed-boundary time check; logs once when the budget runs out.
func (m *MaxClique) outOfTime(st *SharedState) bool {
	if m.timeLimit <= 0 {
		return false
	}
	if st.Elapsed() < m.timeLimit {
		return false
	}
	if m.timeExpiredMsg.CompareAndSwap(false, true) {
		log.Warn().Msg("time limit exceeded, returning best so far")
	}
	m.timeExpired.Store(true)
	return true
}

// Dynamic prune: the thread that just published shrinks the live set when
// enough time has passed since the last shrink. The mask only ever goes
// false to true, and only under the best-state lock.
func (m *MaxClique) maybeRemove(st *SharedState, pruned []bool) {
	if m.removeTime <= 0 {
		return
	}
	interval := time.Duration(m.removeTime * float64(time.Second))
	st.MaybeRemove(interval, func(mc int32) {
		removed := m.g.Prune(pruned, mc)
		if removed > 0 {
			log.Debug().Msg("dynamic prune removed " + utils.V(removed) + " vertices at mc " + utils.V(mc))
		}
	})
}
