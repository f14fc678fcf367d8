package clique

import (
	"errors"
	"fmt"
	"runtime"
)

// Surfaced for nonsense configuration: thread count below one, negative bounds.
var ErrOutOfRange = errors.New("out of range")

// Heuristic score strategies. Parsed once at configuration time.
type heuStrat int

const (
	heuKcore heuStrat = iota
	heuDeg
	heuKcoreDeg
	heuVar
	heuRand
	heuID
)

func parseHeuStrat(s string) (heuStrat, error) {
	switch s {
	case "kcore":
		return heuKcore, nil
	case "deg":
		return heuDeg, nil
	case "kcore_deg":
		return heuKcoreDeg, nil
	case "var":
		return heuVar, nil
	case "rand":
		return heuRand, nil
	case "id":
		return heuID, nil
	}
	return 0, fmt.Errorf("%w: unknown heuristic strategy %q", ErrOutOfRange, s)
}

// Frontier orderings for the exact search.
type vertexOrder int

const (
	orderKcore vertexOrder = iota
	orderDeg
	orderDualDeg
	orderDualKcore
	orderKcoreDeg
	orderRand
)

func parseVertexOrder(s string) (vertexOrder, error) {
	switch s {
	case "kcore":
		return orderKcore, nil
	case "deg":
		return orderDeg, nil
	case "dual_deg":
		return orderDualDeg, nil
	case "dual_kcore":
		return orderDualKcore, nil
	case "kcore_deg":
		return orderKcoreDeg, nil
	case "rand":
		return orderRand, nil
	}
	return 0, fmt.Errorf("%w: unknown vertex ordering %q", ErrOutOfRange, s)
}

// Neighbor list reorderings applied before the search.
const (
	EdgeSortNone = iota
	EdgeSortAsc
	EdgeSortDesc
)

type Params struct {
	Lb      int32 // Starting lower bound; 0 for none.
	Ub      int32 // Known upper bound; 0 means unknown (max core + 1 is used).
	ParamUb int32 // Early-exit threshold; 0 means use Ub.

	TimeLimit  float64 // Wall-clock budget in seconds; 0 for unbounded.
	RemoveTime float64 // Minimum seconds between dynamic reprunes; 0 disables them.

	Threads int

	HeuStrat        string // kcore, deg, kcore_deg, var, rand, id.
	VertexOrder     string // kcore, deg, dual_deg, dual_kcore, kcore_deg, rand.
	DecreasingOrder bool
	EdgeSort        int // EdgeSortNone, EdgeSortAsc, EdgeSortDesc.

	Seed int64 // Per-thread RNGs derive from this; fixed for replay.

	AdjBudget int64 // Bytes allowed for the dense adjacency; 0 disables it.
}

func DefaultParams() Params {
	return Params{
		TimeLimit:   60 * 60,
		RemoveTime:  4.0,
		Threads:     runtime.NumCPU(),
		HeuStrat:    "kcore",
		VertexOrder: "deg",
		Seed:        1,
	}
}

func (p *Params) Validate() error {
	if p.Threads < 1 {
		return fmt.Errorf("%w: thread count %d", ErrOutOfRange, p.Threads)
	}
	if p.Lb < 0 || p.Ub < 0 || p.ParamUb < 0 {
		return fmt.Errorf("%w: negative bound", ErrOutOfRange)
	}
	if p.TimeLimit < 0 || p.RemoveTime < 0 {
		return fmt.Errorf("%w: negative time budget", ErrOutOfRange)
	}
	if p.EdgeSort < EdgeSortNone || p.EdgeSort > EdgeSortDesc {
		return fmt.Errorf("%w: edge sort %d", ErrOutOfRange, p.EdgeSort)
	}
	if _, err := parseHeuStrat(p.HeuStrat); err != nil {
		return err
	}
	if _, err := parseVertexOrder(p.VertexOrder); err != nil {
		return err
	}
	return nil
}
