// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.

package core

import "sort"

// Neighbors returns all edges incident to id, each exactly once
// (self-loops included once), in insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	for _, edgeSet := range g.adjacency[id] {
		for eid = range edgeSet {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted
// lexicographically. A vertex with a self-loop lists itself.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for to, edgeSet := range g.adjacency[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// linkAdjacency records eid in the from→to bucket.
// Must be called ONLY under muEdgeAdj write lock.
func linkAdjacency(g *Graph, from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// unlinkAdjacency removes e.ID from both buckets of its endpoints and
// prunes buckets that become empty.
// Must be called ONLY under muEdgeAdj write lock.
func unlinkAdjacency(g *Graph, e *Edge) {
	drop := func(from, to string) {
		if m := g.adjacency[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[from], to)
			}
		}
	}
	drop(e.From, e.To)
	if e.From != e.To {
		drop(e.To, e.From)
	}
}
