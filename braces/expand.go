package braces

import "iter"

// All returns a lazy, restartable sequence of every expansion of e.
//
// Strings are produced one at a time by a depth-first walk: a literal is
// appended to the prefix built so far, and a group tries each alternative
// in turn, continuing with the rest of the sequence after each one (the
// cross-product step). Nothing beyond the current prefix is materialised,
// and breaking out of the range loop stops the walk.
//
// Order follows the input left to right; duplicates are not removed.
// Each call to the returned function starts a fresh walk with its own
// buffer, so the sequence may be ranged over repeatedly or concurrently.
func (e *Expr) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, 64)
		walk(e.seq, buf, func(b []byte) bool { return yield(string(b)) })
	}
}

// walk expands seq onto buf and hands every completed buffer to k.
// It returns false as soon as k does.
//
// Siblings share buf's backing array: each branch only reads up to its own
// length, and k copies the bytes out before the next branch overwrites them.
func walk(seq []node, buf []byte, k func([]byte) bool) bool {
	if len(seq) == 0 {
		return k(buf)
	}

	rest := seq[1:]
	switch n := seq[0].(type) {
	case literal:
		return walk(rest, append(buf, string(n)...), k)
	case group:
		next := func(b []byte) bool { return walk(rest, b, k) }
		for _, alt := range n {
			if !walk(alt, buf, next) {
				return false
			}
		}
	}

	return true
}

// Expand parses s and returns the lazy sequence of its expansions.
//
// Example:
//
//	seq, err := braces.Expand("~/{Downloads,Pictures}/*.{jpg,gif,png}")
//	for s := range seq { fmt.Println(s) }
func Expand(s string) (iter.Seq[string], error) {
	e, err := Parse(s)
	if err != nil {
		return nil, err
	}

	return e.All(), nil
}

// maxPrealloc caps the capacity ExpandAll reserves up front.
const maxPrealloc = 1024

// ExpandAll parses s and collects every expansion into a slice.
// The slice grows as strings are produced; Count only sizes the first
// allocation, up to maxPrealloc.
func ExpandAll(s string) ([]string, error) {
	e, err := Parse(s)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, min(e.Count(), maxPrealloc))
	for v := range e.All() {
		out = append(out, v)
	}

	return out, nil
}
