package domino

// CanMakeRow reports whether all tiles can be laid in one row, each used
// exactly once, so that touching halves carry equal values. Tiles may be
// turned around freely. The empty set is trivially a row.
//
// Example:
//
//	CanMakeRow([]Tile{{1, 1}, {2, 2}, {1, 2}})                 // true: [1|1][1|2][2|2]
//	CanMakeRow([]Tile{{1, 1}, {2, 2}, {1, 5}, {5, 6}, {6, 3}}) // false
//
// Complexity: O(V + E) with the Eulerian strategy (default); exponential
// with Backtracking.
func CanMakeRow(tiles []Tile, opts ...Option) bool {
	o := resolve(opts)
	if len(tiles) == 0 {
		return true
	}

	if o.Strategy == Backtracking {
		_, ok := searchRow(tiles)
		return ok
	}

	tg, err := buildTileGraph(tiles)
	if err != nil {
		return false
	}
	_, ok, err := tg.trailStart()

	return ok && err == nil
}

// Arrange returns one row using every tile exactly once, with tiles turned
// so that row[i].B == row[i+1].A, or false when no row exists.
// For an empty set it returns an empty row and true.
func Arrange(tiles []Tile, opts ...Option) ([]Tile, bool) {
	o := resolve(opts)
	if len(tiles) == 0 {
		return []Tile{}, true
	}

	if o.Strategy == Backtracking {
		return searchRow(tiles)
	}

	tg, err := buildTileGraph(tiles)
	if err != nil {
		return nil, false
	}
	start, ok, err := tg.trailStart()
	if err != nil || !ok {
		return nil, false
	}
	row, err := tg.eulerianTrail(start)
	if err != nil {
		return nil, false
	}

	return row, true
}

// IsRow reports whether row is laid out correctly: each tile's B matches
// the next tile's A.
func IsRow(row []Tile) bool {
	for i := 1; i < len(row); i++ {
		if row[i-1].B != row[i].A {
			return false
		}
	}

	return true
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
