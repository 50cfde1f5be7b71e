package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Serialization Types
// =============================================================================

// Meta holds free-form attributes stored next to a serialized graph,
// such as the beta and seed it was generated with.
type Meta map[string]any

// Document is the canonical serialization format for graphs.
type Document struct {
	N     int        `json:"n"`
	Edges []EdgeJSON `json:"edges"`
	Meta  Meta       `json:"meta,omitempty"`
}

// EdgeJSON is the wire form of an [Edge].
type EdgeJSON struct {
	U int `json:"u"`
	V int `json:"v"`
}

// ToDocument converts a graph to its serialization format.
// Edges are emitted in sorted order for deterministic output.
func ToDocument(g *Graph, meta Meta) Document {
	doc := Document{
		N:     g.n,
		Edges: make([]EdgeJSON, len(g.edges)),
		Meta:  meta,
	}
	for i, e := range g.edges {
		doc.Edges[i] = EdgeJSON{U: e.U, V: e.V}
	}
	return doc
}

// FromDocument converts a serialized document back into a validated graph.
func FromDocument(doc Document) (*Graph, error) {
	edges := make([]Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = Edge{U: e.U, V: e.V}
	}
	g, err := New(doc.N, edges)
	if err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return g, nil
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a graph to JSON bytes.
func MarshalGraph(g *Graph, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, meta, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, meta, f)
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, meta Meta, w io.Writer) error {
	return writeGraphTo(g, meta, w)
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph, Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*Graph, Meta, error) {
	return readGraphFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(g *Graph, meta Meta, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g, meta)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*Graph, Meta, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	g, err := FromDocument(doc)
	if err != nil {
		return nil, nil, err
	}
	return g, doc.Meta, nil
}
