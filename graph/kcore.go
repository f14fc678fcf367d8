package graph

import (
	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/utils"
)

// Bucket-sort peeling: repeatedly remove a minimum-degree vertex, recording
// its degree at removal as its core number. O(n + m).
//
// kcoreOrder is the removal order itself, so core numbers along it are
// non-decreasing; consumers that want the strongest vertices iterate from
// the back.
func (g *Graph) ComputeCores() {
	g.computeCoresMasked(nil)
	log.Debug().Msg("max core " + utils.V(g.maxCore))
}

// Recomputes core numbers on the subgraph induced by the live vertices.
// Pruned vertices end with core 0 and sink to the front of the order.
func (g *Graph) UpdateCores(pruned []bool) {
	g.computeCoresMasked(pruned)
}

func (g *Graph) computeCoresMasked(pruned []bool) {
	n := g.NumVertices()
	deg := make([]int32, n)
	md := int32(0)
	for v := int32(0); v < n; v++ {
		if pruned != nil && pruned[v] {
			continue
		}
		d := int32(0)
		for _, u := range g.Neighbors(v) {
			if pruned == nil || !pruned[u] {
				d++
			}
		}
		deg[v] = d
		md = utils.Max(md, d)
	}

	// Bucket offsets by degree, then the flat vertex array sorted by degree.
	bin := make([]int32, md+2)
	for v := int32(0); v < n; v++ {
		bin[deg[v]]++
	}
	start := int32(0)
	for d := int32(0); d <= md; d++ {
		num := bin[d]
		bin[d] = start
		start += num
	}
	pos := make([]int32, n)
	vert := make([]int32, n)
	for v := int32(0); v < n; v++ {
		pos[v] = bin[deg[v]]
		vert[pos[v]] = v
		bin[deg[v]]++
	}
	for d := md; d > 0; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	// Peel minimum degree first; when v goes, every still-present heavier
	// neighbor drops one degree and swaps down a bucket.
	for i := int32(0); i < n; i++ {
		v := vert[i]
		if pruned != nil && pruned[v] {
			continue
		}
		for _, u := range g.Neighbors(v) {
			if pruned != nil && pruned[u] {
				continue
			}
			if deg[u] > deg[v] {
				du, pu := deg[u], pos[u]
				pw := bin[du]
				w := vert[pw]
				if u != w {
					pos[u] = pw
					vert[pu] = w
					pos[w] = pu
					vert[pw] = u
				}
				bin[du]++
				deg[u]--
			}
		}
	}

	g.kcore = deg
	g.kcoreOrder = vert
	g.maxCore = 0
	for v := int32(0); v < n; v++ {
		if pruned != nil && pruned[v] {
			g.kcore[v] = 0
			continue
		}
		g.maxCore = utils.Max(g.maxCore, g.kcore[v])
	}
}

func (g *Graph) CoreNumbers() []int32  { return g.kcore }
func (g *Graph) CoreOrdering() []int32 { return g.kcoreOrder }
func (g *Graph) MaxCore() int32        { return g.maxCore }
