// Package core provides a thread-safe, undirected in-memory multigraph with
// a minimal API surface. It is the graph model behind the domino checker:
// every tile is an edge between the two values printed on it.
//
// Features:
//
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj)
//   - Deterministic iteration: Vertices() and NeighborIDs() are sorted,
//     Edges() and Neighbors() follow insertion order
//
// Core Methods:
//
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	AddEdge(from, to string) (string, error)    // O(1)
//	RemoveEdge(edgeID string) error             // O(1)
//	HasEdge(from, to string) bool               // O(1)
//	GetEdge(edgeID string) (*Edge, error)       // O(1)
//	Neighbors(id string) ([]*Edge, error)       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)    // O(d·log d)
//	Degree(id string) (int, error)              // O(d), loops count twice
//	Vertices() []string                         // O(V·log V)
//	Edges() []*Edge                             // O(E·log E)
//	VertexCount(), EdgeCount() int              // O(1)
//	Clone() *Graph                              // O(V+E)
package core
