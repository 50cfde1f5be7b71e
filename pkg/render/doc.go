// Package render groups the graph visualizers.
//
// Only one layout exists today: [circular] places node i at angle 2πi/n on
// the unit circle, which makes the shortcuts created by rewiring stand out
// against the ring lattice. Drawing goes through Graphviz (neato with pinned
// positions) via github.com/goccy/go-graphviz, so no system Graphviz install
// is needed.
//
// [circular]: github.com/matzehuels/smallworld/pkg/render/circular
package render
