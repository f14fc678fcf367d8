package clique

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/graph"
	"github.com/ngraphs/parclique/utils"
)

// Greedy-plus-recursive expansion over vertices in descending core order.
// Seeds the shared lower bound quickly so the exact search starts with a
// strong prune level.
type Heuristic struct {
	g       *graph.Graph
	strat   heuStrat
	ub      int32
	threads int
	seed    int64
}

func NewHeuristic(g *graph.Graph, p Params, ub int32) *Heuristic {
	strat, _ := parseHeuStrat(p.HeuStrat)
	return &Heuristic{g: g, strat: strat, ub: ub, threads: p.Threads, seed: p.Seed}
}

func (h *Heuristic) score(rng *rand.Rand, v int32) int32 {
	kcore := h.g.CoreNumbers()
	deg := h.g.Degrees()
	switch h.strat {
	case heuKcoreDeg:
		return kcore[v] * deg[v]
	case heuDeg:
		return deg[v]
	case heuKcore:
		return kcore[v]
	case heuRand:
		return rng.Int31n(h.g.NumVertices())
	case heuVar:
		return kcore[v] * (deg[v] / kcore[v])
	}
	return v
}

// Walks the core ordering from the strongest vertex down; each seed builds
// a candidate set from the neighbors that could still extend past the
// current best and greedily descends. Work is handed out a seed at a time
// through a shared counter.
func (h *Heuristic) Search(st *SharedState) int32 {
	g := h.g
	n := g.NumVertices()
	order := g.CoreOrdering()
	kcore := g.CoreNumbers()

	var next int64
	var wg sync.WaitGroup
	for t := 0; t < h.threads; t++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(h.seed + int64(tid)))
			ind := make([]bool, n)
			P := make([]Vertex, 0, g.MaxDegree()+1)
			C := make([]int32, 0, h.ub)

			for {
				k := atomic.AddInt64(&next, 1) - 1
				if k >= int64(n) {
					return
				}
				if st.FoundUB() {
					return
				}
				v := order[n-1-int32(k)]

				mcCur := st.Mc()
				mcPrev := mcCur
				if kcore[v] < mcCur {
					continue
				}

				P = P[:0]
				for _, u := range g.Neighbors(v) {
					if kcore[u] >= mcCur {
						P = append(P, Vertex{u, h.score(rng, u)})
					}
				}
				if int32(len(P)) <= mcCur {
					continue
				}
				sortAsc(P)
				C = C[:0]
				h.branch(P, 1, &mcCur, &C, ind)

				if mcCur > mcPrev {
					C = append(C, v)
					st.TryPublish(C)
				}
			}
		}(t)
	}
	wg.Wait()

	log.Debug().Msg("[heuristic] mc = " + utils.V(st.Mc()))
	return st.Mc()
}

// One greedy descent: take the highest-score candidate, intersect the rest
// with its neighborhood (still filtered by core), and go deeper. Vertices
// on an improving path are recorded into C on the way back up.
func (h *Heuristic) branch(P []Vertex, sz int32, mc *int32, C *[]int32, ind []bool) {
	if len(P) > 0 {
		u := P[len(P)-1].ID
		P = P[:len(P)-1]

		for _, w := range h.g.Neighbors(u) {
			ind[w] = true
		}
		kcore := h.g.CoreNumbers()
		R := make([]Vertex, 0, len(P))
		for _, x := range P {
			if ind[x.ID] && kcore[x.ID] >= *mc {
				R = append(R, x)
			}
		}
		for _, w := range h.g.Neighbors(u) {
			ind[w] = false
		}

		mcPrev := *mc
		h.branch(R, sz+1, mc, C, ind)

		if *mc > mcPrev {
			*C = append(*C, u)
		}
	} else if sz > *mc {
		*mc = sz
	}
}
