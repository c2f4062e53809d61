// Package braces defines the parsed expression tree, sentinel errors and
// the SyntaxError type for brace expansion.
package braces

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors. ErrUnclosedGroup and ErrUnexpectedClose both wrap
// ErrMalformedInput, so errors.Is(err, ErrMalformedInput) matches either.
var (
	// ErrMalformedInput indicates unbalanced braces.
	ErrMalformedInput = errors.New("braces: malformed input")

	// ErrUnclosedGroup indicates a '{' without a matching '}'.
	ErrUnclosedGroup = fmt.Errorf("%w: unclosed group", ErrMalformedInput)

	// ErrUnexpectedClose indicates a '}' outside of any group.
	ErrUnexpectedClose = fmt.Errorf("%w: unexpected '}'", ErrMalformedInput)
)

// SyntaxError reports where in the input parsing failed.
// Offset is the byte offset of the offending brace.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// node is one element of a sequence: a literal run or a group.
type node interface {
	count() int
	render(sb *strings.Builder)
}

// literal is a run of characters copied verbatim.
type literal string

func (l literal) count() int { return 1 }

func (l literal) render(sb *strings.Builder) { sb.WriteString(string(l)) }

// group is an alternation; each alternative is itself a sequence.
type group [][]node

func (g group) count() int {
	var n int
	for _, alt := range g {
		c := seqCount(alt)
		if n > math.MaxInt-c {
			return math.MaxInt
		}
		n += c
	}

	return n
}

func (g group) render(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, alt := range g {
		if i > 0 {
			sb.WriteByte(',')
		}
		for _, n := range alt {
			n.render(sb)
		}
	}
	sb.WriteByte('}')
}

// seqCount multiplies the counts of consecutive nodes (cross-product law),
// saturating at math.MaxInt.
func seqCount(seq []node) int {
	n := 1
	for _, nd := range seq {
		c := nd.count()
		if c != 0 && n > math.MaxInt/c {
			return math.MaxInt
		}
		n *= c
	}

	return n
}

// Expr is a parsed brace expression. It is immutable and safe for
// concurrent use.
type Expr struct {
	seq []node
}

// Count returns how many strings All yields, without producing them.
// Complexity: O(len(expression)).
func (e *Expr) Count() int { return seqCount(e.seq) }

// String renders the expression back to brace syntax.
func (e *Expr) String() string {
	var sb strings.Builder
	for _, n := range e.seq {
		n.render(&sb)
	}

	return sb.String()
}
