package graph

import (
	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/utils"
)

// Marks every live vertex whose core number cannot host a clique larger
// than mc: a member of an (mc+1)-clique has core at least mc. The
// adjacency is not rewritten; traversals skip pruned endpoints.
// Idempotent for a fixed mc. Returns the number newly pruned.
func (g *Graph) Prune(pruned []bool, mc int32) (removed int) {
	n := g.NumVertices()
	for v := int32(0); v < n; v++ {
		if !pruned[v] && g.kcore[v] < mc {
			pruned[v] = true
			removed++
		}
	}
	return removed
}

// Core-number pruning plus the neighborhood rule, iterated to fixed point:
// a vertex whose live neighborhood holds fewer than lb vertices cannot be
// in a clique of size lb+1. When the dense adjacency exists, rows of
// pruned columns are cleared so bitmap intersections stay tight.
func (g *Graph) InitialPrune(pruned []bool, lb int32) (removed int) {
	n := g.NumVertices()
	removed = g.Prune(pruned, lb)

	for {
		again := 0
		for v := int32(0); v < n; v++ {
			if pruned[v] {
				continue
			}
			live := int32(0)
			for _, u := range g.Neighbors(v) {
				if !pruned[u] {
					live++
				}
			}
			if live < lb {
				pruned[v] = true
				again++
			}
		}
		if again == 0 {
			break
		}
		removed += again
	}

	if g.Adj != nil {
		for v := int32(0); v < n; v++ {
			if !pruned[v] {
				continue
			}
			for _, u := range g.Neighbors(v) {
				g.Adj[u].Unset(v)
			}
			g.Adj[v].Zeroes()
		}
	}

	if removed > 0 {
		log.Debug().Msg("Initial pruning removed " + utils.V(removed) + " of " + utils.V(n) + " vertices")
	}
	return removed
}
