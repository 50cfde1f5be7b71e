package graph

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		edges   []Edge
		wantErr error
	}{
		{"empty edge set", 3, nil, nil},
		{"triangle", 3, []Edge{{0, 1}, {1, 2}, {2, 0}}, nil},
		{"reversed endpoints", 2, []Edge{{1, 0}}, nil},
		{"zero nodes", 0, nil, ErrInvalidNodeCount},
		{"negative nodes", -1, nil, ErrInvalidNodeCount},
		{"out of range", 3, []Edge{{0, 3}}, ErrNodeOutOfRange},
		{"negative endpoint", 3, []Edge{{-1, 2}}, ErrNodeOutOfRange},
		{"self loop", 3, []Edge{{1, 1}}, ErrSelfLoop},
		{"duplicate", 3, []Edge{{0, 1}, {0, 1}}, ErrDuplicateEdge},
		{"duplicate reversed", 3, []Edge{{0, 1}, {1, 0}}, ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, tt.edges)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGraphQueries(t *testing.T) {
	g, err := New(4, []Edge{{2, 0}, {0, 1}, {3, 0}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if g.Degree(0) != 3 || g.Degree(1) != 1 {
		t.Errorf("Degree(0)=%d Degree(1)=%d, want 3 and 1", g.Degree(0), g.Degree(1))
	}
	if !g.HasEdge(0, 2) || !g.HasEdge(2, 0) {
		t.Error("HasEdge should be symmetric")
	}
	if g.HasEdge(1, 2) {
		t.Error("HasEdge(1, 2) = true, want false")
	}
	if g.HasEdge(0, 9) {
		t.Error("HasEdge with out-of-range node should be false")
	}

	want := []Edge{{0, 1}, {0, 2}, {0, 3}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	nbrs := g.Neighbors(0)
	if len(nbrs) != 3 || nbrs[0] != 1 || nbrs[1] != 2 || nbrs[2] != 3 {
		t.Errorf("Neighbors(0) = %v, want [1 2 3]", nbrs)
	}
}

func TestEdgesIsCopy(t *testing.T) {
	g, _ := New(2, []Edge{{0, 1}})
	edges := g.Edges()
	edges[0] = Edge{U: 5, V: 6}
	if g.Edges()[0] != (Edge{U: 0, V: 1}) {
		t.Error("mutating Edges() result should not affect the graph")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(3, []Edge{{0, 1}, {1, 2}})
	b, _ := New(3, []Edge{{2, 1}, {1, 0}})
	c, _ := New(4, []Edge{{0, 1}, {1, 2}})

	if !a.Equal(b) {
		t.Error("graphs with the same edge set should be equal")
	}
	if a.Equal(c) {
		t.Error("graphs with different node counts should differ")
	}
	var nilGraph *Graph
	if a.Equal(nilGraph) {
		t.Error("graph should not equal nil")
	}
}

func TestRoundTrip(t *testing.T) {
	g, _ := New(5, []Edge{{0, 1}, {1, 2}, {3, 4}})

	data, err := MarshalGraph(g, Meta{"beta": 0.2})
	if err != nil {
		t.Fatalf("MarshalGraph() error: %v", err)
	}

	got, meta, err := ReadGraph(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadGraph() error: %v", err)
	}
	if !got.Equal(g) {
		t.Errorf("round trip changed graph: got %v, want %v", got.Edges(), g.Edges())
	}
	if meta["beta"] != 0.2 {
		t.Errorf("meta beta = %v, want 0.2", meta["beta"])
	}
}

func TestReadGraphValidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"self loop", `{"n": 3, "edges": [{"u": 1, "v": 1}]}`, "self-loops"},
		{"duplicate", `{"n": 3, "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 0}]}`, "duplicate"},
		{"no nodes", `{"n": 0, "edges": []}`, "node count"},
		{"malformed", `{"n": `, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadGraph(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestGraphFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")

	g, _ := New(3, []Edge{{0, 1}, {1, 2}, {0, 2}})
	if err := WriteGraphFile(g, path, nil); err != nil {
		t.Fatalf("WriteGraphFile() error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}

	got, meta, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile() error: %v", err)
	}
	if !got.Equal(g) {
		t.Error("file round trip changed graph")
	}
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}

	if _, _, err := ReadGraphFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadGraphFile on missing file should fail")
	}
}
