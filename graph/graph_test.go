package graph

import (
	"testing"
)

func buildGraph(t *testing.T, pairs [][2]int32) *Graph {
	g, err := FromEdgeList(pairs, 0)
	if err != nil {
		t.Fatal("build failed: ", err)
	}
	return g
}

func k5Edges() [][2]int32 {
	var pairs [][2]int32
	for u := int32(0); u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			pairs = append(pairs, [2]int32{u, v})
		}
	}
	return pairs
}

func TestCSRInvariants(t *testing.T) {
	g := buildGraph(t, [][2]int32{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	if g.NumVertices() != 4 || g.NumEdges() != 4 {
		t.Fatal("got n ", g.NumVertices(), " m ", g.NumEdges())
	}
	if g.V[0] != 0 || g.V[g.NumVertices()] != int64(len(g.E)) {
		t.Error("offset array endpoints wrong")
	}
	for v := int32(0); v < g.NumVertices(); v++ {
		if g.V[v] > g.V[v+1] {
			t.Error("offsets not monotone at ", v)
		}
		if g.Degree(v) != int32(len(g.Neighbors(v))) {
			t.Error("degree mismatch at ", v)
		}
	}
}

func TestDedupeAndSelfLoops(t *testing.T) {
	g := buildGraph(t, [][2]int32{{0, 1}, {1, 0}, {0, 1}, {1, 1}, {1, 2}})
	if g.NumEdges() != 2 {
		t.Error("expected 2 edges after dedupe, got ", g.NumEdges())
	}
	for v := int32(0); v < g.NumVertices(); v++ {
		for _, u := range g.Neighbors(v) {
			if u == v {
				t.Error("self loop survived at ", v)
			}
		}
	}
}

func TestNegativeIDRejected(t *testing.T) {
	if _, err := FromEdgeList([][2]int32{{0, 1}, {-1, 2}}, 0); err == nil {
		t.Error("expected MalformedInput for negative id")
	}
}

func TestOneBasedOffset(t *testing.T) {
	g, err := FromEdgeList([][2]int32{{1, 2}, {2, 3}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 3 {
		t.Error("expected 3 vertices, got ", g.NumVertices())
	}
	if g.Degree(1) != 2 {
		t.Error("middle vertex should have degree 2")
	}
}

func TestDegreeBucketSort(t *testing.T) {
	// Star plus a pendant chain gives distinct endpoint degrees.
	g := buildGraph(t, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {3, 4}, {4, 5}})
	for _, desc := range []bool{false, true} {
		g.DegreeBucketSort(desc)
		for v := int32(0); v < g.NumVertices(); v++ {
			nbrs := g.Neighbors(v)
			for i := 1; i < len(nbrs); i++ {
				di, dj := g.Degree(nbrs[i-1]), g.Degree(nbrs[i])
				if !desc && di > dj {
					t.Error("ascending sort violated at vertex ", v)
				}
				if desc && di < dj {
					t.Error("descending sort violated at vertex ", v)
				}
			}
		}
	}
}

func TestBuildAdj(t *testing.T) {
	g := buildGraph(t, k5Edges())
	if g.BuildAdj(0) {
		t.Error("zero budget must decline")
	}
	if !g.BuildAdj(1 << 20) {
		t.Fatal("adjacency should fit")
	}
	for u := int32(0); u < 5; u++ {
		for v := int32(0); v < 5; v++ {
			if got := g.Adj[u].Get(v); got != (u != v) {
				t.Error("adj ", u, v, " is ", got)
			}
		}
	}
}

func TestInducedSubgraph(t *testing.T) {
	g := buildGraph(t, [][2]int32{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}})
	pruned := make([]bool, g.NumVertices())
	pruned[3] = true
	sub := g.InducedSubgraph(pruned)
	if sub.NumVertices() != g.NumVertices() {
		t.Error("ids must be preserved")
	}
	if sub.NumEdges() != 3 {
		t.Error("expected triangle only, got ", sub.NumEdges(), " edges")
	}
	if sub.Degree(3) != 0 || sub.Degree(4) != 0 {
		t.Error("pruned side kept edges")
	}
}

func TestVerifyClique(t *testing.T) {
	g := buildGraph(t, k5Edges())
	if !g.VerifyClique([]int32{0, 1, 2, 3, 4}) {
		t.Error("K5 is a clique")
	}
	path := buildGraph(t, [][2]int32{{0, 1}, {1, 2}})
	if path.VerifyClique([]int32{0, 1, 2}) {
		t.Error("a path is not a triangle")
	}
}

func TestEmptyGraph(t *testing.T) {
	g := Empty(10)
	if g.NumVertices() != 10 || g.NumEdges() != 0 {
		t.Fatal("bad empty graph")
	}
	g.ComputeCores()
	if g.MaxCore() != 0 {
		t.Error("empty graph has max core ", g.MaxCore())
	}
}
