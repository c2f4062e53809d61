// Package domino defines tiles, search strategies and options for the
// domino row checker.
package domino

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadTile indicates a tile literal that is not "a:b" or "a|b".
	ErrBadTile = errors.New("domino: malformed tile")

	// ErrUnknownStrategy indicates a strategy name ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("domino: unknown strategy")
)

// Tile is a domino with values A and B. Tiles are unordered pairs: a tile
// may be placed either way round.
type Tile struct {
	A, B int
}

// Flip returns the tile turned around.
func (t Tile) Flip() Tile { return Tile{A: t.B, B: t.A} }

// IsDouble reports whether both halves carry the same value.
func (t Tile) IsDouble() bool { return t.A == t.B }

// String renders the tile as "[A|B]".
func (t Tile) String() string {
	return "[" + strconv.Itoa(t.A) + "|" + strconv.Itoa(t.B) + "]"
}

// ParseTile reads "a:b" or "a|b" (surrounding brackets optional).
func ParseTile(s string) (Tile, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "["), "]")
	a, b, ok := strings.Cut(body, ":")
	if !ok {
		a, b, ok = strings.Cut(body, "|")
	}
	if !ok {
		return Tile{}, fmt.Errorf("%w: %q", ErrBadTile, s)
	}
	x, errA := strconv.Atoi(strings.TrimSpace(a))
	y, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return Tile{}, fmt.Errorf("%w: %q", ErrBadTile, s)
	}

	return Tile{A: x, B: y}, nil
}

// Strategy selects how a row is searched for.
//
//   - Eulerian: model tiles as multigraph edges; a row exists iff the
//     graph has an Eulerian trail. O(V + E).
//   - Backtracking: depth-first search over tile order and orientation.
//     Exponential in the worst case; intended for tens of tiles.
type Strategy int

const (
	// Eulerian decides via vertex degrees and connectivity, and arranges
	// with Hierholzer's algorithm.
	Eulerian Strategy = iota

	// Backtracking tries every start tile and orientation, extending the
	// open end with unused tiles.
	Backtracking
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Eulerian:
		return "eulerian"
	case Backtracking:
		return "backtracking"
	default:
		return "strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy maps a name produced by Strategy.String back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eulerian", "":
		return Eulerian, nil
	case "backtracking":
		return Backtracking, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures CanMakeRow and Arrange.
type Options struct {
	Strategy Strategy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with the Eulerian strategy.
func DefaultOptions() Options {
	return Options{Strategy: Eulerian}
}

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}
