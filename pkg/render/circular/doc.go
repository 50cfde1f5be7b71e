// Package circular draws generated graphs on a circle.
//
// Node i is placed at angle 2π·i/n on the unit circle, so the ring lattice
// appears as a band of short chords and rewired edges show up as long
// chords across the disc.
//
// # Usage
//
//	dot := circular.ToDOT(g, circular.Layout(g.NodeCount()), circular.Options{Title: title})
//	svg, err := circular.RenderSVG(ctx, dot)
//
// The [Visualizer] renders a whole experiment result, one image per beta:
//
//	v := circular.NewVisualizer(logger)
//	paths, err := v.WriteAll(ctx, result, "out", []string{"png"})
//
// # Limits
//
// Graphs with more than [MaxNodes] nodes are rejected with
// [errors.GraphTooLargeError] before anything is rendered.
//
// # Dependencies
//
// Rendering runs in-process through [github.com/goccy/go-graphviz] with the
// neato engine, which keeps the pinned circular positions.
package circular
