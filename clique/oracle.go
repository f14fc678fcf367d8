package clique

import (
	"github.com/ngraphs/parclique/graph"
	"github.com/ngraphs/parclique/utils"
)

// The sparse and dense searches are one algorithm over two adjacency
// oracles. Begin prepares membership tests against N(u); every Begin is
// paired with an End on all exit paths so the sparse marker vector stays
// clean between seeds.
type adjOracle interface {
	Begin(u int32)
	Member(w int32) bool
	End(u int32)
}

// CSR scan-mark: flips a thread-local boolean vector over N(u), tests are
// O(1), End symmetric-unflips. Strictly single-thread.
type csrOracle struct {
	g   *graph.Graph
	ind []bool
}

func newCsrOracle(g *graph.Graph) *csrOracle {
	return &csrOracle{g: g, ind: make([]bool, g.NumVertices())}
}

func (o *csrOracle) Begin(u int32) {
	for _, w := range o.g.Neighbors(u) {
		o.ind[w] = true
	}
}

func (o *csrOracle) Member(w int32) bool { return o.ind[w] }

func (o *csrOracle) End(u int32) {
	for _, w := range o.g.Neighbors(u) {
		o.ind[w] = false
	}
}

// Dense bitmap rows: membership is a bit test, nothing to mark or unmark.
// The rows are read-only during search and shared; Begin stores the current
// row in the instance, so each worker holds its own oracle.
type denseOracle struct {
	rows []utils.Bitmap
	row  utils.Bitmap
}

func newDenseOracle(rows []utils.Bitmap) *denseOracle {
	return &denseOracle{rows: rows}
}

func (o *denseOracle) Begin(u int32)       { o.row = o.rows[u] }
func (o *denseOracle) Member(w int32) bool { return o.row.Get(w) }
func (o *denseOracle) End(u int32)         { o.row = nil }
