package graph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/ngraphs/parclique/enforce"
	"github.com/ngraphs/parclique/utils"
)

// Surfaced for unreadable files, inconsistent headers, negative vertex ids.
var ErrMalformedInput = errors.New("malformed input")

// Undirected simple graph in CSR form. Neighbors of v are E[V[v]:V[v+1]].
// The optional dense adjacency Adj is built on demand for dense subproblems.
type Graph struct {
	V []int64 // Offsets, length n+1.
	E []int32 // Packed neighbor ids, length 2m.

	deg    []int32
	maxDeg int32
	minDeg int32
	avgDeg float64

	kcore      []int32
	kcoreOrder []int32 // Peeling removal order; non-decreasing core.
	maxCore    int32

	Adj []utils.Bitmap // n rows of n bits each, or nil.

	Name string
}

// Builds the CSR from raw undirected pairs. Self-loops are discarded,
// symmetric and repeated pairs deduplicated. Ids are rebased by offset
// (1 for one-based inputs). Negative ids after rebasing are malformed.
func FromEdgeList(pairs [][2]int32, offset int32) (*Graph, error) {
	n := int32(0)
	for i := range pairs {
		u, v := pairs[i][0]-offset, pairs[i][1]-offset
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("%w: negative vertex id (%d, %d)", ErrMalformedInput, u, v)
		}
		n = utils.Max(n, utils.Max(u, v)+1)
	}

	// Dedupe on normalized (min, max) keys.
	seen := make(map[int64]struct{}, len(pairs))
	deg := make([]int32, n)
	kept := make([][2]int32, 0, len(pairs))
	for i := range pairs {
		u, v := pairs[i][0]-offset, pairs[i][1]-offset
		if u == v {
			continue
		}
		a, b := utils.Min(u, v), utils.Max(u, v)
		key := int64(a)*int64(n) + int64(b)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, [2]int32{a, b})
		deg[a]++
		deg[b]++
	}

	g := &Graph{
		V: make([]int64, n+1),
		E: make([]int32, 2*len(kept)),
	}
	for v := int32(0); v < n; v++ {
		g.V[v+1] = g.V[v] + int64(deg[v])
	}
	pos := make([]int64, n)
	copy(pos, g.V[:n])
	for i := range kept {
		a, b := kept[i][0], kept[i][1]
		g.E[pos[a]] = b
		pos[a]++
		g.E[pos[b]] = a
		pos[b]++
	}
	enforce.ENFORCE(g.V[n] == int64(len(g.E)), "CSR offset sum mismatch")

	g.vertexDegrees()
	return g, nil
}

// A graph of n vertices and no edges.
func Empty(n int32) *Graph {
	g := &Graph{V: make([]int64, n+1), E: []int32{}}
	g.vertexDegrees()
	return g
}

func (g *Graph) NumVertices() int32 { return int32(len(g.V) - 1) }
func (g *Graph) NumEdges() int64    { return int64(len(g.E)) / 2 }

// A contiguous view into E; callers must not mutate.
func (g *Graph) Neighbors(v int32) []int32 {
	return g.E[g.V[v]:g.V[v+1]]
}

func (g *Graph) Degree(v int32) int32 { return int32(g.V[v+1] - g.V[v]) }

func (g *Graph) Degrees() []int32   { return g.deg }
func (g *Graph) MaxDegree() int32   { return g.maxDeg }
func (g *Graph) MinDegree() int32   { return g.minDeg }
func (g *Graph) AvgDegree() float64 { return g.avgDeg }

func (g *Graph) Density() float64 {
	n := float64(g.NumVertices())
	if n <= 1 {
		return 0
	}
	return float64(g.NumEdges()) / (n * (n - 1) / 2.0)
}

func (g *Graph) vertexDegrees() {
	n := g.NumVertices()
	g.deg = make([]int32, n)
	if n == 0 {
		return
	}
	for v := int32(0); v < n; v++ {
		g.deg[v] = int32(g.V[v+1] - g.V[v])
	}
	g.maxDeg = utils.MaxSlice(g.deg)
	g.minDeg = utils.MinSlice(g.deg)
	g.avgDeg = float64(len(g.E)) / float64(n)
}

// Recompute degrees after neighbor lists changed underneath us.
func (g *Graph) UpdateDegrees() {
	g.vertexDegrees()
}

// Reorders every neighbor list by endpoint degree, ascending or descending.
// Stable on ties, so a fixed input keeps a fixed layout.
func (g *Graph) DegreeBucketSort(desc bool) {
	n := g.NumVertices()
	keys := make([]int32, g.maxDeg)
	tmp := make([]int32, g.maxDeg)
	for v := int32(0); v < n; v++ {
		nbrs := g.E[g.V[v]:g.V[v+1]]
		ks := keys[:len(nbrs)]
		for i, u := range nbrs {
			ks[i] = g.deg[u]
		}
		var idx []int
		if desc {
			idx = utils.SortGiveIndexesLargestFirst(ks)
		} else {
			idx = utils.SortGiveIndexesSmallestFirst(ks)
		}
		for i, j := range idx {
			tmp[i] = nbrs[j]
		}
		copy(nbrs, tmp[:len(nbrs)])
	}
}

// Allocates the n x n bitmap when it fits the byte budget; reports whether
// the dense representation is now present. A budget of 0 always declines.
func (g *Graph) BuildAdj(budgetBytes int64) bool {
	if g.Adj != nil {
		return true
	}
	n := int64(g.NumVertices())
	if budgetBytes <= 0 || (n*n)/8 > budgetBytes {
		return false
	}
	rows := make([]utils.Bitmap, n)
	for v := int64(0); v < n; v++ {
		rows[v] = utils.NewBitmap(int32(n))
	}
	for v := int32(0); v < int32(n); v++ {
		for _, u := range g.Neighbors(v) {
			rows[v].Set(u)
			rows[u].Set(v)
		}
	}
	g.Adj = rows
	log.Debug().Msg("Built dense adjacency: " + utils.V((n*n)/8) + " bytes")
	return true
}

func (g *Graph) HasAdj() bool { return g.Adj != nil }

// Yields a new CSR holding only edges between live vertices. Vertex ids are
// preserved: removed vertices stay as empty ranges.
func (g *Graph) InducedSubgraph(pruned []bool) *Graph {
	n := g.NumVertices()
	sub := &Graph{
		V:    make([]int64, n+1),
		E:    make([]int32, 0, len(g.E)),
		Name: g.Name,
	}
	for v := int32(0); v < n; v++ {
		sub.V[v] = int64(len(sub.E))
		if pruned[v] {
			continue
		}
		for _, u := range g.Neighbors(v) {
			if !pruned[u] {
				sub.E = append(sub.E, u)
			}
		}
	}
	sub.V[n] = int64(len(sub.E))
	sub.vertexDegrees()
	return sub
}

// True when c is pairwise adjacent (a clique) in g.
func (g *Graph) VerifyClique(c []int32) bool {
	n := g.NumVertices()
	ind := make([]bool, n)
	for i, v := range c {
		if v < 0 || v >= n {
			return false
		}
		for _, u := range g.Neighbors(v) {
			ind[u] = true
		}
		for j, w := range c {
			if i != j && !ind[w] {
				return false
			}
		}
		for _, u := range g.Neighbors(v) {
			ind[u] = false
		}
	}
	return true
}

func (g *Graph) BasicStats() {
	n := g.NumVertices()
	degs := make([]float64, n)
	for v := int32(0); v < n; v++ {
		degs[v] = float64(g.deg[v])
	}
	meanDeg := 0.0
	if n > 0 {
		meanDeg = stat.Mean(degs, nil)
	}
	log.Info().Msg("|V| " + utils.V(n) + " |E| " + utils.V(g.NumEdges()) +
		" dmax " + utils.V(g.maxDeg) + " dmin " + utils.V(g.minDeg) +
		" davg " + utils.F("%.2f", meanDeg) +
		" density " + utils.F("%.6f", g.Density()))
}
