// Package bfs provides breadth-first search over a dense adjacency list
// ([][]int, vertex ids 0..n-1), returning unweighted shortest-path distances,
// parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: distance per vertex, Unreachable for vertices never discovered
//   - Parent: predecessor in the BFS tree, -1 for the source
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	The valve network only ever needs distance rows for a handful of
//	relevant vertices. One BFS per relevant vertex costs O(R·(V+E)), far
//	below a full all-pairs pass.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, so the visit sequence is fully
//	reproducible for a fixed adjacency list.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	dist, err := bfs.Distances(adj, 0)
//	if err != nil {
//		// ErrSourceOutOfRange, ErrNeighborOutOfRange or ErrOptionViolation
//	}
//	if dist[7] == bfs.Unreachable {
//		// vertex 7 is not connected to 0
//	}
//
// Errors
//
//   - ErrSourceOutOfRange    if src is not in [0, len(adj)).
//   - ErrNeighborOutOfRange  if an adjacency row names an unknown vertex.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
