// Package zigzag builds the zigzag scan of a square matrix, the order in
// which JPEG serialises 8×8 blocks of DCT coefficients:
//
//	[[ 0, 1, 5, 6 ],
//	 [ 2, 4, 7,12 ],
//	 [ 3, 8,11,13 ],
//	 [ 9,10,14,15 ]]
//
// The walk moves along anti-diagonals, reversing direction on each one.
package zigzag

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indicates a non-positive dimension.
var ErrInvalidArgument = errors.New("zigzag: dimension must be > 0")

// Cell is a matrix position, zero-based.
type Cell struct {
	Row, Col int
}

// Order returns the n·n cells of an n×n matrix in zigzag visit order.
//
// Stripes with even (row+col) are walked up and to the right, odd stripes
// down and to the left; at an edge the walk steps onto the next stripe.
//
// Errors: ErrInvalidArgument if n <= 0 or n·n overflows int.
// Complexity: O(n²) time and memory.
func Order(n int) ([]Cell, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}
	if n > math.MaxInt/n {
		return nil, fmt.Errorf("%w: n=%d overflows the cell count", ErrInvalidArgument, n)
	}

	out := make([]Cell, 0, n*n)
	r, c := 0, 0
	for len(out) < n*n {
		out = append(out, Cell{Row: r, Col: c})
		if (r+c)%2 == 0 {
			// going up-right
			switch {
			case c == n-1:
				r++
			case r == 0:
				c++
			default:
				r--
				c++
			}
		} else {
			// going down-left
			switch {
			case r == n-1:
				c++
			case c == 0:
				r++
			default:
				r++
				c--
			}
		}
	}

	return out, nil
}

// Matrix returns an n×n grid whose cells hold their zero-based position in
// the zigzag order.
//
//	Matrix(1) → [[0]]
//	Matrix(2) → [[0 1] [2 3]]
//
// Errors: ErrInvalidArgument if n <= 0 or n·n overflows int.
func Matrix(n int) ([][]int, error) {
	order, err := Order(n)
	if err != nil {
		return nil, err
	}

	grid := make([][]int, n)
	for i := range grid {
		grid[i] = make([]int, n)
	}
	for idx, cell := range order {
		grid[cell.Row][cell.Col] = idx
	}

	return grid, nil
}
