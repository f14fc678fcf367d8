package graph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMtx(t *testing.T) {
	path := writeTemp(t, "tri.mtx", `%%MatrixMarket matrix coordinate pattern symmetric
% a triangle plus a pendant
4 4 4
2 1
3 1
3 2
4 3
`)
	g, err := LoadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 4 || g.NumEdges() != 4 {
		t.Error("got n ", g.NumVertices(), " m ", g.NumEdges())
	}
	if !g.VerifyClique([]int32{0, 1, 2}) {
		t.Error("triangle missing after load")
	}
}

func TestLoadMtxBadHeader(t *testing.T) {
	path := writeTemp(t, "bad.mtx", "3 4 1\n1 2\n")
	if _, err := LoadGraph(path); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected MalformedInput, got ", err)
	}
}

func TestLoadMtxCountMismatch(t *testing.T) {
	path := writeTemp(t, "short.mtx", "3 3 2\n1 2\n")
	if _, err := LoadGraph(path); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected MalformedInput, got ", err)
	}
}

func TestLoadEdgesZeroBased(t *testing.T) {
	path := writeTemp(t, "g.edges", "# comment\n0 1\n1 2\n2 0\n")
	g, err := LoadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 3 || g.NumEdges() != 3 {
		t.Error("got n ", g.NumVertices(), " m ", g.NumEdges())
	}
}

func TestLoadEdgesOneBased(t *testing.T) {
	// No zero id anywhere: detected as one-based.
	path := writeTemp(t, "g.txt", "1 2\n2 3\n3 1\n")
	g, err := LoadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 3 {
		t.Error("offset detection failed, n ", g.NumVertices())
	}
	if !g.VerifyClique([]int32{0, 1, 2}) {
		t.Error("triangle lost in rebasing")
	}
}

func TestLoadMetis(t *testing.T) {
	// Triangle 1-2-3 with vertex 4 hanging off 3 (one-based METIS).
	path := writeTemp(t, "g.graph", "4 4\n2 3\n1 3\n1 2 4\n3\n")
	g, err := LoadGraph(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NumVertices() != 4 || g.NumEdges() != 4 {
		t.Error("got n ", g.NumVertices(), " m ", g.NumEdges())
	}
	if !g.VerifyClique([]int32{0, 1, 2}) {
		t.Error("triangle missing after load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadGraph("/does/not/exist.mtx"); !errors.Is(err, ErrMalformedInput) {
		t.Error("expected MalformedInput, got ", err)
	}
}
