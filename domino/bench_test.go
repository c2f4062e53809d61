package domino_test

import (
	"testing"

	"github.com/katalvlaran/katas/domino"
)

// doubleSix returns the 21 non-double tiles of a double-six set. Every
// value has even degree, so a closed row exists.
func doubleSix() []domino.Tile {
	var out []domino.Tile
	for a := 0; a <= 6; a++ {
		for b := a + 1; b <= 6; b++ {
			out = append(out, domino.Tile{A: a, B: b})
		}
	}
	return out
}

func BenchmarkCanMakeRow_Eulerian(b *testing.B) {
	set := doubleSix()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		domino.CanMakeRow(set)
	}
}

func BenchmarkArrange_Eulerian(b *testing.B) {
	set := doubleSix()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		domino.Arrange(set)
	}
}

func BenchmarkCanMakeRow_Backtracking(b *testing.B) {
	set := doubleSix()[:10]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		domino.CanMakeRow(set, domino.WithStrategy(domino.Backtracking))
	}
}
