// Package graph provides the undirected simple graph produced by the
// generators and its JSON serialization format.
//
// # Graph Model
//
// A [Graph] has n nodes identified by the integers 0..n-1 and a set of
// undirected edges. It is always simple: no self-loops and no parallel edges.
// Every edge is stored once, normalized so that U < V.
//
//	g, err := graph.New(4, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
//	g.Degree(1)       // 2
//	g.HasEdge(2, 1)   // true
//
// Graphs are immutable after [New] returns. Builders collect edges first and
// then construct the graph in one step, which keeps every reader (metrics,
// renderers, caches) free of synchronization concerns.
//
// # Serialization
//
// Graphs use a compact node-count plus edge-list JSON format:
//
//	{
//	  "n": 4,
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}],
//	  "meta": {"beta": 0.2, "seed": 42}
//	}
//
// Common operations:
//
//	g, _ := graph.ReadGraphFile("graph0.json")          // File → Graph
//	graph.WriteGraphFile(g, "graph0.json", nil)          // Graph → File
//	data, _ := graph.MarshalGraph(g, graph.Meta{...})    // Graph → []byte
//
// Decoding always re-validates through [New], so a hand-edited file cannot
// smuggle a self-loop or duplicate edge into the metrics.
//
// # Concurrency
//
// Graph values are safe for concurrent reads.
package graph
