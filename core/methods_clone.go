// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: flags, vertices, edges, and
// adjacency. Edge IDs are preserved, so an edge ID from g names the same
// edge in the clone.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	for id = range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		linkAdjacency(clone, e.From, e.To, eid)
		if e.From != e.To {
			linkAdjacency(clone, e.To, e.From, eid)
		}
	}

	return clone
}
