package graph

import (
	"testing"
)

func TestPrunePostcondition(t *testing.T) {
	// Two triangles bridged by an edge, plus a K4.
	pairs := [][2]int32{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3},
		{3, 4}, {4, 5}, {5, 3},
	}
	pairs = append(pairs, [2]int32{6, 7}, [2]int32{6, 8}, [2]int32{6, 9}, [2]int32{7, 8}, [2]int32{7, 9}, [2]int32{8, 9})
	g := buildGraph(t, pairs)
	g.ComputeCores()

	// A clique beating size 3 needs members of core >= 3: the triangles go.
	pruned := make([]bool, g.NumVertices())
	removed := g.Prune(pruned, 3)
	if removed != 6 {
		t.Fatal("expected the six triangle vertices pruned, got ", removed)
	}
	for v := int32(0); v < g.NumVertices(); v++ {
		if !pruned[v] && g.CoreNumbers()[v] < 3 {
			t.Error("live vertex ", v, " has core ", g.CoreNumbers()[v])
		}
	}

	// Idempotent for the same bound.
	if again := g.Prune(pruned, 3); again != 0 {
		t.Error("second prune removed ", again)
	}
}

func TestPruneMonotone(t *testing.T) {
	// K4 with a two-vertex tail: cores 3,3,3,3,2,1.
	pairs := append(k4Edges(), [2]int32{0, 4}, [2]int32{1, 4}, [2]int32{4, 5})
	g := buildGraph(t, pairs)
	g.ComputeCores()
	pruned := make([]bool, g.NumVertices())
	if got := g.Prune(pruned, 2); got != 1 {
		t.Fatal("bound 2 should prune only the core-1 tail end, got ", got)
	}
	before := append([]bool(nil), pruned...)
	if got := g.Prune(pruned, 3); got != 1 {
		t.Fatal("bound 3 should additionally prune the core-2 vertex, got ", got)
	}
	for v := range pruned {
		if before[v] && !pruned[v] {
			t.Fatal("prune mask went true to false at ", v)
		}
	}
}

func TestInitialPruneFixedPoint(t *testing.T) {
	// A K4 with a tail: vertex 4 has core 2 and vertex 5 core 1, so the core
	// rule at bound 3 prunes both; each K4 member keeps three live neighbors
	// and survives the neighborhood rule.
	pairs := append(k4Edges(), [2]int32{0, 4}, [2]int32{1, 4}, [2]int32{4, 5})
	g := buildGraph(t, pairs)
	g.ComputeCores()

	pruned := make([]bool, g.NumVertices())
	g.InitialPrune(pruned, 3)
	for v := int32(0); v < 4; v++ {
		if pruned[v] {
			t.Error("K4 member ", v, " wrongly pruned")
		}
	}
	if !pruned[4] || !pruned[5] {
		t.Error("tail vertices must be pruned: ", pruned[4], pruned[5])
	}

	// Live neighborhoods all reach the bound at the fixed point.
	for v := int32(0); v < g.NumVertices(); v++ {
		if pruned[v] {
			continue
		}
		live := int32(0)
		for _, u := range g.Neighbors(v) {
			if !pruned[u] {
				live++
			}
		}
		if live < 3 {
			t.Error("fixed point not reached at ", v)
		}
	}
}

func TestInitialPruneClearsAdj(t *testing.T) {
	pairs := append(k4Edges(), [2]int32{0, 4})
	g := buildGraph(t, pairs)
	g.ComputeCores()
	if !g.BuildAdj(1 << 20) {
		t.Fatal("adjacency should fit")
	}
	pruned := make([]bool, g.NumVertices())
	g.InitialPrune(pruned, 3)
	if !pruned[4] {
		t.Fatal("pendant must be pruned")
	}
	if g.Adj[0].Get(4) || g.Adj[4].Count() != 0 {
		t.Error("pruned columns must be cleared from the bitmap")
	}
}
