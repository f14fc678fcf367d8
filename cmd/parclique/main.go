package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/clique"
	"github.com/ngraphs/parclique/graph"
	"github.com/ngraphs/parclique/utils"
)

// Parses command line arguments, loads the graph, and runs the search.
func main() {
	graphPtr := flag.String("g", "", "Graph file (.mtx, .graph, or an edge list).")
	threadPtr := flag.Int("t", runtime.NumCPU(), "Thread count for the search.")

	lbPtr := flag.Int("lb", 0, "Starting lower bound (a clique of this size is known to exist).")
	ubPtr := flag.Int("ub", 0, "Known upper bound; 0 for unknown (max core + 1 is used).")
	pubPtr := flag.Int("pub", 0, "Early exit once a clique of this size is found; 0 uses ub.")

	tlPtr := flag.Float64("tl", 60*60, "Wall-clock time limit in seconds.")
	rtPtr := flag.Float64("rt", 4.0, "Minimum seconds between dynamic reprunes; 0 disables them.")

	hsPtr := flag.String("hs", "kcore", "Heuristic strategy: kcore, deg, kcore_deg, var, rand, id.")
	voPtr := flag.String("o", "deg", "Vertex search order: kcore, deg, dual_deg, dual_kcore, kcore_deg, rand.")
	decrPtr := flag.Bool("decr", false, "Sort the frontier in decreasing bound order; seeds are taken from the back, so the weakest run first.")
	esPtr := flag.String("es", "none", "Edge sort by endpoint degree: none, asc, desc.")

	seedPtr := flag.Int64("seed", 1, "RNG seed for the rand strategies (fixed for replay).")
	adjPtr := flag.Int64("adj", 0, "Byte budget for the dense adjacency bitmap; 0 disables.")

	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 for trace.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *graphPtr == "" {
		flag.Usage()
		os.Exit(1)
	}

	edgeSort := clique.EdgeSortNone
	switch *esPtr {
	case "none":
	case "asc":
		edgeSort = clique.EdgeSortAsc
	case "desc":
		edgeSort = clique.EdgeSortDesc
	default:
		log.Panic().Msg("Unknown edge sort: " + *esPtr)
	}

	params := clique.Params{
		Lb:              int32(*lbPtr),
		Ub:              int32(*ubPtr),
		ParamUb:         int32(*pubPtr),
		TimeLimit:       *tlPtr,
		RemoveTime:      *rtPtr,
		Threads:         *threadPtr,
		HeuStrat:        *hsPtr,
		VertexOrder:     *voPtr,
		DecreasingOrder: *decrPtr,
		EdgeSort:        edgeSort,
		Seed:            *seedPtr,
		AdjBudget:       *adjPtr,
	}
	if err := params.Validate(); err != nil {
		log.Panic().Err(err).Msg("Bad configuration.")
	}

	g, err := graph.LoadGraph(*graphPtr)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to load graph.")
	}
	g.BasicStats()

	res, err := clique.Solve(g, params)
	if err != nil {
		log.Panic().Err(err).Msg("Search failed.")
	}

	utils.MemoryStats()

	ids := make([]string, len(res.Clique))
	for i, v := range res.Clique {
		ids[i] = utils.V(v)
	}
	log.Info().Msg("Clique (" + utils.V(res.Size) + "): " + strings.Join(ids, " "))
	if res.TimeExpired {
		log.Warn().Msg("Result may not be optimal: time limit expired.")
	}
}
