package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/smallworld/pkg/errors"
	"github.com/matzehuels/smallworld/pkg/report"
)

// execute runs the root command with args and returns what it wrote to its
// output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeReport(t *testing.T, out string) report.Document {
	t.Helper()
	var doc report.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, out)
	}
	return doc
}

func TestRunJSONReport(t *testing.T) {
	out, err := execute(t, "run", "--seed", "7", "--no-render", "--no-cache", "--report", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	doc := decodeReport(t, out)
	if doc.N != 20 || doc.K != 4 || doc.Seed != 7 {
		t.Errorf("header = n=%d k=%d seed=%d, want 20/4/7", doc.N, doc.K, doc.Seed)
	}

	var betas []float64
	var categories []string
	for _, row := range doc.Rows {
		betas = append(betas, row.Beta)
		categories = append(categories, row.Category)
		if row.Edges != 40 {
			t.Errorf("beta %v: %d edges, want 40", row.Beta, row.Edges)
		}
	}
	if diff := cmp.Diff([]float64{0, 0.2, 0.4, 1}, betas); diff != "" {
		t.Errorf("betas mismatch (-want +got):\n%s", diff)
	}
	wantCategories := []string{
		"Regular network (Ring lattice)",
		"Small-world network",
		"Small-world network",
		"Random network",
	}
	if diff := cmp.Diff(wantCategories, categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if doc.Rows[0].Clustering != 0.5 {
		t.Errorf("lattice clustering = %v, want 0.5", doc.Rows[0].Clustering)
	}
}

func TestRunSeedIsReproducible(t *testing.T) {
	args := []string{"run", "--seed", "11", "--no-render", "--no-cache", "--report", "json", "--beta", "0.1,0.5"}

	first, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}

	a, b := decodeReport(t, first), decodeReport(t, second)
	if diff := cmp.Diff(a.Rows, b.Rows); diff != "" {
		t.Errorf("same seed gave different rows (-first +second):\n%s", diff)
	}
}

func TestRunTableReport(t *testing.T) {
	out, err := execute(t, "run", "--seed", "1", "--no-render", "--no-cache", "--beta", "0")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Number of nodes: 20\nK: 4\n" +
		"beta  |   avg shortest path |        clustering coefficient |              network category\n" +
		"0     |  2.8947368421052633 |                           0.5 |Regular network (Ring lattice)\n"
	if out != want {
		t.Errorf("table mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"odd degree", []string{"-k", "3"}},
		{"degree too large", []string{"-n", "4", "-k", "4"}},
		{"beta out of range", []string{"--beta", "1.5"}},
		{"negative beta", []string{"--beta", "-0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"run", "--no-render", "--no-cache"}, tt.args...)
			_, err := execute(t, args...)
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidParameter)
			}
		})
	}
}

func TestRunInvalidReportFormat(t *testing.T) {
	_, err := execute(t, "run", "--no-render", "--report", "xml")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestRunConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.toml")
	content := `n = 30
k = 4
betas = [0.0, 1.0]
seed = 5
report = "json"
visualize = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "--config", path, "-k", "6", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	doc := decodeReport(t, out)
	if doc.N != 30 {
		t.Errorf("N = %d, want 30 from the config file", doc.N)
	}
	if doc.K != 6 {
		t.Errorf("K = %d, want 6 from the flag", doc.K)
	}
	if doc.Seed != 5 {
		t.Errorf("Seed = %d, want 5 from the config file", doc.Seed)
	}
	if len(doc.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(doc.Rows))
	}
}

func TestRunRendersImages(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", "--seed", "3", "--no-cache", "-o", dir, "-f", "dot", "--report", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for i := range 4 {
		path := filepath.Join(dir, fmt.Sprintf("graph%d.dot", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
}

func TestRunRejectsLargeGraphBeforeBuilding(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, err := execute(t, "run", "-n", "5001", "-k", "2", "--beta", "0", "--no-cache", "-o", dir, "-f", "dot", "--report", "json")
	if !errors.Is(err, errors.ErrCodeGraphTooLarge) {
		t.Fatalf("error = %v, want %s", err, errors.ErrCodeGraphTooLarge)
	}
	if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
		t.Error("no output directory should be created for an oversized graph")
	}
}

func TestRunUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	run := func() string {
		var out bytes.Buffer
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetOut(&out)
		root.SetArgs([]string{"run", "--seed", "9", "--no-render", "--report", "json", "--beta", "0.3"})
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("run: %v", err)
		}
		return out.String()
	}

	first := decodeReport(t, run())
	second := decodeReport(t, run())

	if first.Rows[0].Cached {
		t.Error("first run should not be served from the cache")
	}
	if !second.Rows[0].Cached {
		t.Error("second run should be served from the cache")
	}
	if first.Rows[0].AvgPathLength != second.Rows[0].AvgPathLength {
		t.Errorf("cached avg path %v != fresh %v", second.Rows[0].AvgPathLength, first.Rows[0].AvgPathLength)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"png", []string{"png"}},
		{"PNG, svg", []string{"png", "svg"}},
		{" ,dot,", []string{"dot"}},
		{"", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, parseFormats(tt.in)); diff != "" {
			t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
