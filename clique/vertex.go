package clique

import (
	"sort"
)

// A candidate vertex annotated with its sort key: a core number, degree,
// heuristic score, or color bound depending on where it is in the search.
type Vertex struct {
	ID    int32
	Bound int32
}

// Ascending by bound, ties by id. Stable keys keep single-thread runs
// reproducible.
func sortAsc(p []Vertex) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Bound != p[j].Bound {
			return p[i].Bound < p[j].Bound
		}
		return p[i].ID < p[j].ID
	})
}

func sortDesc(p []Vertex) {
	sort.Slice(p, func(i, j int) bool {
		if p[i].Bound != p[j].Bound {
			return p[i].Bound > p[j].Bound
		}
		return p[i].ID > p[j].ID
	})
}
