package domino_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/domino"
)

var strategies = []domino.Strategy{domino.Eulerian, domino.Backtracking}

func tiles(pairs ...[2]int) []domino.Tile {
	out := make([]domino.Tile, len(pairs))
	for i, p := range pairs {
		out[i] = domino.Tile{A: p[0], B: p[1]}
	}
	return out
}

// canonical sorts tiles with A <= B so two tile sets can be compared
// regardless of order and orientation.
func canonical(ts []domino.Tile) []domino.Tile {
	out := make([]domino.Tile, len(ts))
	for i, t := range ts {
		if t.A > t.B {
			t = t.Flip()
		}
		out[i] = t
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

func TestCanMakeRow_Table(t *testing.T) {
	cases := []struct {
		name  string
		tiles []domino.Tile
		want  bool
	}{
		{"empty set", nil, true},
		{"single double", tiles([2]int{3, 3}), true},
		{"two tiles", tiles([2]int{0, 1}, [2]int{1, 1}), true},
		{"doubles bridged", tiles([2]int{1, 1}, [2]int{2, 2}, [2]int{1, 2}), true},
		{"branching", tiles([2]int{1, 1}, [2]int{2, 2}, [2]int{1, 5}, [2]int{5, 6}, [2]int{6, 3}), false},
		{"no shared values", tiles([2]int{1, 1}, [2]int{0, 3}, [2]int{1, 4}), false},
		{"two odd vertices", tiles([2]int{1, 3}, [2]int{2, 3}, [2]int{1, 4}, [2]int{2, 4}, [2]int{1, 5}, [2]int{2, 5}), true},
		{"double-three set", tiles(
			[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{0, 2}, [2]int{1, 2},
			[2]int{2, 2}, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
		), false},
		{"disconnected doubles", tiles([2]int{1, 1}, [2]int{2, 2}), false},
		{"disconnected cycles", tiles([2]int{1, 2}, [2]int{2, 1}, [2]int{3, 4}, [2]int{4, 3}), false},
		{"parallel tiles", tiles([2]int{1, 2}, [2]int{1, 2}), true},
		{"negative values", tiles([2]int{-1, 2}, [2]int{2, -3}), true},
	}

	for _, tc := range cases {
		for _, s := range strategies {
			t.Run(tc.name+"/"+s.String(), func(t *testing.T) {
				got := domino.CanMakeRow(tc.tiles, domino.WithStrategy(s))
				assert.Equal(t, tc.want, got)

				row, ok := domino.Arrange(tc.tiles, domino.WithStrategy(s))
				require.Equal(t, tc.want, ok)
				if ok {
					assert.True(t, domino.IsRow(row), "row %v", row)
					assert.Equal(t, canonical(tc.tiles), canonical(row))
				} else {
					assert.Nil(t, row)
				}
			})
		}
	}
}

func TestCanMakeRow_DefaultIsEulerian(t *testing.T) {
	assert.Equal(t, domino.Eulerian, domino.DefaultOptions().Strategy)
	assert.True(t, domino.CanMakeRow(tiles([2]int{1, 1}, [2]int{2, 2}, [2]int{1, 2})))
	assert.True(t, domino.CanMakeRow([]domino.Tile{}))
}

func TestArrange_EmptySet(t *testing.T) {
	for _, s := range strategies {
		row, ok := domino.Arrange(nil, domino.WithStrategy(s))
		assert.True(t, ok)
		assert.Empty(t, row)
		assert.NotNil(t, row)
	}
}

// TestStrategies_Agree cross-checks the graph shortcut against the plain
// search on many small random tile sets.
func TestStrategies_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for iter := 0; iter < 300; iter++ {
		n := rng.Intn(8)
		set := make([]domino.Tile, n)
		for i := range set {
			set[i] = domino.Tile{A: rng.Intn(5), B: rng.Intn(5)}
		}

		fast := domino.CanMakeRow(set)
		slow := domino.CanMakeRow(set, domino.WithStrategy(domino.Backtracking))
		require.Equal(t, slow, fast, "tiles %v", set)

		if row, ok := domino.Arrange(set); ok {
			assert.True(t, domino.IsRow(row), "row %v", row)
			assert.Equal(t, canonical(set), canonical(row), "tiles %v", set)
		}
	}
}

func TestArrange_DoesNotMutateInput(t *testing.T) {
	in := tiles([2]int{2, 1}, [2]int{3, 2}, [2]int{1, 1})
	snapshot := append([]domino.Tile(nil), in...)
	for _, s := range strategies {
		_, ok := domino.Arrange(in, domino.WithStrategy(s))
		require.True(t, ok)
		assert.Equal(t, snapshot, in)
	}
}

func TestIsRow(t *testing.T) {
	assert.True(t, domino.IsRow(nil))
	assert.True(t, domino.IsRow(tiles([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 2})))
	assert.False(t, domino.IsRow(tiles([2]int{1, 1}, [2]int{2, 1})))
}
