package domino

// searcher holds the state of one backtracking search. It lives for a
// single top-level call, so concurrent calls never share it.
type searcher struct {
	tiles []Tile
	used  []bool
	chain []Tile
}

// searchRow runs the backtracking strategy and returns the first complete
// row found. Callers handle the empty set.
//
// For every tile and both of its orientations, the orientation's B value
// is the open end; place extends it with any unused tile carrying that
// value. A tile is marked used before recursing and unmarked once all of
// its extensions failed, so sibling branches see an untouched state.
//
// Complexity: O(n!·2ⁿ) worst case.
func searchRow(tiles []Tile) ([]Tile, bool) {
	s := &searcher{
		tiles: tiles,
		used:  make([]bool, len(tiles)),
		chain: make([]Tile, 0, len(tiles)),
	}
	for i, t := range tiles {
		if s.place(i, t) {
			return s.chain, true
		}
		if !t.IsDouble() && s.place(i, t.Flip()) {
			return s.chain, true
		}
	}

	return nil, false
}

// place puts tiles[i] at the end of the chain in orientation t and tries
// to finish the row from t.B.
func (s *searcher) place(i int, t Tile) bool {
	s.used[i] = true
	s.chain = append(s.chain, t)
	if len(s.chain) == len(s.tiles) {
		return true
	}

	open := t.B
	for j, next := range s.tiles {
		if s.used[j] {
			continue
		}
		switch open {
		case next.A:
			if s.place(j, next) {
				return true
			}
		case next.B:
			if s.place(j, next.Flip()) {
				return true
			}
		}
	}

	s.used[i] = false
	s.chain = s.chain[:len(s.chain)-1]

	return false
}
