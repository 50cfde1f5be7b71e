package circular

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/smallworld/pkg/graph"
)

// labelLimit is the largest node count drawn with node-id labels; bigger
// graphs use point nodes.
const labelLimit = 100

// Options configures DOT generation.
type Options struct {
	// Title is drawn above the graph. Newlines start a new line.
	Title string

	// Radius of the circle in inches. Zero picks a size from the node count.
	Radius float64
}

func (o Options) radius(n int) float64 {
	if o.Radius > 0 {
		return o.Radius
	}
	return math.Max(3, math.Min(12, float64(n)*0.25))
}

// ToDOT converts g to undirected DOT with every node pinned at pos[i].
// pos must have one entry per node, usually from [Layout].
func ToDOT(g *graph.Graph, pos []Point, opts Options) string {
	n := g.NodeCount()
	r := opts.radius(n)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=24;\n")
	}
	if n <= labelLimit {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#1f78b4\", fontcolor=white, fontsize=10, width=0.35, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.05, color=\"#1f78b4\"];\n")
	}
	buf.WriteString("  edge [color=\"#00000080\"];\n")
	buf.WriteString("\n")

	for i := 0; i < n; i++ {
		x := formatCoord(pos[i].X * r)
		y := formatCoord(pos[i].Y * r)
		fmt.Fprintf(&buf, "  %d [pos=\"%s,%s!\"];\n", i, x, y)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Title returns the caption for one beta, with both metrics rounded to two
// decimals.
func Title(beta, avgPathLength, clustering float64) string {
	return fmt.Sprintf("beta=%s\navg_path_length=%s\nclustering_coefficient=%s",
		strconv.FormatFloat(beta, 'f', -1, 64),
		round2(avgPathLength),
		round2(clustering))
}

func round2(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Render lays out and renders a DOT graph in the given graphviz format.
func Render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, graphviz.PNG)
}
