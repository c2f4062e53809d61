package domino

import (
	"strconv"

	"github.com/katalvlaran/katas/bfs"
	"github.com/katalvlaran/katas/core"
)

// tileGraph is the multigraph view of a tile set: one vertex per value,
// one edge per tile (doubles become self-loops).
type tileGraph struct {
	g     *core.Graph
	value map[string]int // vertex ID → tile value
}

// buildTileGraph adds every tile as an edge. Edge i+1 ("e1", "e2", …)
// is tiles[i].
func buildTileGraph(tiles []Tile) (*tileGraph, error) {
	tg := &tileGraph{
		g:     core.NewGraph(core.WithMultiEdges(), core.WithLoops()),
		value: make(map[string]int),
	}
	for _, t := range tiles {
		a, b := strconv.Itoa(t.A), strconv.Itoa(t.B)
		tg.value[a], tg.value[b] = t.A, t.B
		if _, err := tg.g.AddEdge(a, b); err != nil {
			return nil, err
		}
	}

	return tg, nil
}

// trailStart reports whether an Eulerian trail exists and, if so, the
// vertex it must start from.
//
// Conditions:
//  1. Zero or two vertices have odd degree. With two, the trail runs
//     between them; with zero, any vertex will do.
//  2. Every vertex is reachable from the start (checked with BFS). Every
//     vertex carries at least one edge, so this is edge connectivity.
//
// Complexity: O(V + E).
func (tg *tileGraph) trailStart() (string, bool, error) {
	vertices := tg.g.Vertices()
	if len(vertices) == 0 {
		return "", true, nil
	}

	var odd []string
	for _, v := range vertices {
		d, err := tg.g.Degree(v)
		if err != nil {
			return "", false, err
		}
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}
	if len(odd) != 0 && len(odd) != 2 {
		return "", false, nil
	}

	start := vertices[0]
	if len(odd) == 2 {
		start = odd[0]
	}
	res, err := bfs.BFS(tg.g, start)
	if err != nil {
		return "", false, err
	}
	if len(res.Order) != len(vertices) {
		return "", false, nil
	}

	return start, true, nil
}

// eulerianTrail walks every edge once from start using Hierholzer's
// algorithm on a clone of the graph, and returns the oriented tiles.
// The caller must have checked the trail exists.
//
// Complexity: O(E·d log d) with d the largest degree, from Neighbors.
func (tg *tileGraph) eulerianTrail(start string) ([]Tile, error) {
	work := tg.g.Clone()
	stack := []string{start}
	trail := make([]string, 0, work.EdgeCount()+1)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		edges, err := work.Neighbors(u)
		if err != nil {
			return nil, err
		}
		if len(edges) == 0 {
			// dead end: emit and backtrack
			trail = append(trail, u)
			stack = stack[:len(stack)-1]
			continue
		}
		e := edges[0]
		if err = work.RemoveEdge(e.ID); err != nil {
			return nil, err
		}
		stack = append(stack, e.Other(u))
	}

	// trail holds the walk in reverse; each adjacent pair is one tile.
	chain := make([]Tile, 0, len(trail))
	for k := len(trail) - 2; k >= 0; k-- {
		chain = append(chain, Tile{
			A: tg.value[trail[k+1]],
			B: tg.value[trail[k]],
		})
	}

	return chain, nil
}
