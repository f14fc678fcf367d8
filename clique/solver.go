package clique

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/ngraphs/parclique/enforce"
	"github.com/ngraphs/parclique/graph"
	"github.com/ngraphs/parclique/utils"
)

type Result struct {
	Clique      []int32 // Original vertex ids, ascending.
	Size        int32
	TimeExpired bool // The budget ran out; Clique is the best found, maybe not optimal.
}

// Runs the full pipeline: k-cores, heuristic lower bound, pruning, then the
// exact branch-and-bound (dense when the adjacency budget allows). A graph
// with at least one vertex always yields a clique of size >= 1.
func Solve(g *graph.Graph, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	n := g.NumVertices()
	if n == 0 {
		return Result{}, nil
	}

	if p.EdgeSort != EdgeSortNone {
		g.DegreeBucketSort(p.EdgeSort == EdgeSortDesc)
	}

	g.ComputeCores()
	ub := p.Ub
	if ub == 0 {
		ub = g.MaxCore() + 1
	}
	paramUB := p.ParamUb
	if paramUB == 0 {
		paramUB = ub
	}

	st := NewSharedState(p.Lb, paramUB)

	heu := NewHeuristic(g, p, ub)
	lb := heu.Search(st)
	log.Info().Msg("Heuristic found clique of size " + utils.V(lb) +
		" in " + utils.F("%.2f", st.Elapsed()) + " sec (max core " + utils.V(g.MaxCore()) + ")")

	// Any single vertex is a clique; never report empty on a non-empty graph.
	if st.Mc() == 0 {
		st.TryPublish([]int32{0})
	}

	mcq := NewMaxClique(g, p, ub)
	if st.Mc() < ub && !st.FoundUB() {
		dense := p.AdjBudget > 0 && g.BuildAdj(p.AdjBudget)
		pruned := make([]bool, n)
		if g.InitialPrune(pruned, st.Mc()) > 0 {
			// Cores tighten on the induced subgraph, sharpening the bound
			// filters before the frontier is built.
			g.UpdateCores(pruned)
		}

		if dense {
			mcq.SearchDense(st, pruned)
		} else {
			mcq.Search(st, pruned)
		}
	} else {
		log.Debug().Msg("Heuristic bound met the upper bound; exact search skipped")
	}

	res := Result{
		Clique:      st.Clique(),
		Size:        st.Mc(),
		TimeExpired: mcq.TimeExpired(),
	}
	slices.Sort(res.Clique)
	enforce.ENFORCE(len(res.Clique) == 0 || g.VerifyClique(res.Clique), "result is not a clique")
	log.Info().Msg("Maximum clique size " + utils.V(res.Size))
	return res, nil
}
