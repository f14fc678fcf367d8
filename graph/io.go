package graph

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ngraphs/parclique/utils"
)

// Dispatches by extension: .mtx Matrix Market, .graph METIS, anything else
// is treated as a whitespace edge list.
func LoadGraph(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer file.Close()

	var g *Graph
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtx":
		g, err = readMtx(file)
	case ".graph":
		g, err = readMetis(file)
	default:
		g, err = readEdges(file)
	}
	if err != nil {
		return nil, err
	}
	g.Name = filepath.Base(path)
	log.Info().Msg("Loaded " + g.Name)
	return g, nil
}

func parseID(field string) (int32, error) {
	id, err := strconv.ParseInt(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad vertex id %q", ErrMalformedInput, field)
	}
	return int32(id), nil
}

// Matrix Market: comment lines start with %; the first data line is
// "rows cols nnz"; each following line is "u v [w]", one-based.
func readMtx(file *os.File) (*Graph, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var declared int64 = -1
	var pairs [][2]int32
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if declared < 0 {
			if len(fields) != 3 {
				return nil, fmt.Errorf("%w: mtx header needs \"rows cols nnz\", got %q", ErrMalformedInput, line)
			}
			rows, err1 := strconv.ParseInt(fields[0], 10, 64)
			cols, err2 := strconv.ParseInt(fields[1], 10, 64)
			nnz, err3 := strconv.ParseInt(fields[2], 10, 64)
			if err1 != nil || err2 != nil || err3 != nil || rows != cols {
				return nil, fmt.Errorf("%w: inconsistent mtx header %q", ErrMalformedInput, line)
			}
			declared = nnz
			pairs = make([][2]int32, 0, nnz)
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: short mtx entry %q", ErrMalformedInput, line)
		}
		u, err := parseID(fields[0])
		if err != nil {
			return nil, err
		}
		v, err := parseID(fields[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]int32{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if declared < 0 {
		return nil, fmt.Errorf("%w: mtx missing header", ErrMalformedInput)
	}
	if int64(len(pairs)) != declared {
		return nil, fmt.Errorf("%w: mtx header declared %d entries, found %d", ErrMalformedInput, declared, len(pairs))
	}
	return FromEdgeList(pairs, 1)
}

// Whitespace edge list, "u v" per line, # or % comments. The index base is
// auto-detected: if no zero id appears, the input is taken as one-based.
func readEdges(file *os.File) (*Graph, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var pairs [][2]int32
	sawZero := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: short edge entry %q", ErrMalformedInput, line)
		}
		u, err := parseID(fields[0])
		if err != nil {
			return nil, err
		}
		v, err := parseID(fields[1])
		if err != nil {
			return nil, err
		}
		if u == 0 || v == 0 {
			sawZero = true
		}
		pairs = append(pairs, [2]int32{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	offset := int32(1)
	if sawZero || len(pairs) == 0 {
		offset = 0
	}
	log.Debug().Msg("Edge list offset detected: " + utils.V(offset))
	return FromEdgeList(pairs, offset)
}

// METIS: header "n m [fmt]", then one line per vertex listing its
// one-based neighbors.
func readMetis(file *os.File) (*Graph, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var n, m int64 = -1, -1
	var pairs [][2]int32
	v := int32(0)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" && n >= 0 {
			v++ // A vertex with no neighbors is a blank line.
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if n < 0 {
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: metis header needs \"n m\", got %q", ErrMalformedInput, line)
			}
			var err1, err2 error
			n, err1 = strconv.ParseInt(fields[0], 10, 64)
			m, err2 = strconv.ParseInt(fields[1], 10, 64)
			if err1 != nil || err2 != nil || n < 0 || m < 0 {
				return nil, fmt.Errorf("%w: inconsistent metis header %q", ErrMalformedInput, line)
			}
			pairs = make([][2]int32, 0, m)
			continue
		}
		if int64(v) >= n {
			return nil, fmt.Errorf("%w: metis has more adjacency lines than the %d declared vertices", ErrMalformedInput, n)
		}
		for _, f := range fields {
			u, err := parseID(f)
			if err != nil {
				return nil, err
			}
			if u < 1 || int64(u) > n {
				return nil, fmt.Errorf("%w: metis neighbor %d out of range", ErrMalformedInput, u)
			}
			// Each undirected edge appears on both lines; dedupe folds them.
			pairs = append(pairs, [2]int32{v, u - 1})
		}
		v++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: metis missing header", ErrMalformedInput)
	}
	g, err := FromEdgeList(pairs, 0)
	if err != nil {
		return nil, err
	}
	// Vertices past the last referenced id still count.
	if int64(g.NumVertices()) < n {
		g = padVertices(g, int32(n))
	}
	return g, nil
}

// Extends the CSR with isolated vertices up to n.
func padVertices(g *Graph, n int32) *Graph {
	old := g.NumVertices()
	if old >= n {
		return g
	}
	V := make([]int64, n+1)
	copy(V, g.V)
	for v := old + 1; v <= n; v++ {
		V[v] = g.V[old]
	}
	padded := &Graph{V: V, E: g.E, Name: g.Name}
	padded.vertexDegrees()
	return padded
}
