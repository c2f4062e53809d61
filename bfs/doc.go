// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order.
//
// The domino checker uses it to prove that every tile value lies in one
// connected component of the tile graph.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
//	so the visit sequence is fully reproducible.
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped OnVisit errors and context errors.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
