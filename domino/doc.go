// Package domino decides whether a set of domino tiles can be laid in a
// single row and produces such a row.
//
// Each tile [x|y] may be turned around; in a row, touching halves must
// carry the same value and every tile is used exactly once. For example
// [1|1] [1|2] [2|2] is a row, while {[1|1], [0|3], [1|4]} cannot form one.
//
// Two strategies are available (WithStrategy):
//
//   - Eulerian (default): tiles are edges of a core.Graph multigraph whose
//     vertices are tile values (doubles are self-loops). A row is exactly an
//     Eulerian trail, which exists iff zero or two vertices have odd degree
//     and the graph is connected (checked with bfs.BFS). Arrange builds the
//     trail with Hierholzer's algorithm.
//   - Backtracking: depth-first search over start tile, orientation and
//     extension order, with per-call "used" marks restored on backtrack.
//
// Both strategies give the same answer on every input.
//
// Usage:
//
//	ok := domino.CanMakeRow(tiles)
//	row, ok := domino.Arrange(tiles, domino.WithStrategy(domino.Backtracking))
package domino
