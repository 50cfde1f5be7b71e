// Package metrics computes the structural summaries used to place a
// Watts-Strogatz graph between the lattice and random regimes.
//
// # Average Shortest-Path Length
//
// [AverageShortestPathLength] runs a breadth-first search from every node and
// averages the distance over all n·(n−1) ordered pairs. The mean is undefined
// on a disconnected graph, which is reported as DISCONNECTED_GRAPH.
//
// # Clustering Coefficient
//
// [ClusteringApprox] is the closed-form model approximation, a pure function
// of (n, k, beta) that never looks at a realized graph:
//
//	beta == 0      C = 3(k−2) / (4(k−1))
//	beta == 1      C = k / n
//	0 < beta < 1   C = 3(k−2) / (4(k−1)) · (1−beta)³
//
// The divisor is the whole product 4(k−1).
//
// [EmpiricalClustering] is a different measurement: the average local
// clustering of an actual graph instance, counted from closed triples. It is
// kept separate so the two are never confused in reports.
package metrics
