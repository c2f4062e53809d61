// Package katas is a small collection of algorithmic exercises, each in its
// own package and each a pure function of its input.
//
// 🚀 What is in the box?
//
//   - braces/   : lazy brace expansion, "a{b,c{d,e}}f" → abf acdf acef
//   - domino/   : can a set of tiles be laid in one row? (Eulerian trail or backtracking)
//   - compass/  : the 32-point mariner's compass table
//   - zigzag/   : JPEG zigzag scan order of an n×n matrix
//   - ranges/   : "0-2,5,7-9" range notation, both ways
//
// Supporting packages:
//
//	core/            : thread-safe undirected multigraph with loops
//	bfs/             : breadth-first traversal over core.Graph
//	internal/config/ : environment configuration for the CLI
//	cmd/katas/       : command-line front end
//
// Quick example, the domino row [1|1][1|2][2|2] as a multigraph:
//
//	  ┌─┐     ┌─┐
//	  1 ───── 2
//	  └─┘     └─┘
//
// A loop at each vertex for the doubles and one edge for [1|2]. Every
// vertex has even degree, so a closed row exists.
//
//	go install github.com/katalvlaran/katas/cmd/katas@latest
package katas
