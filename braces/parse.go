package braces

// Parse builds an Expr from s using recursive descent.
//
// Grammar:
//
//	expr  := item*                       // top level: ',' is a literal
//	item  := group | char
//	group := '{' alt (',' alt)* '}'
//	alt   := (group | char-except-',}')*
//
// Every parse function receives the input and a position and returns the
// parsed value with the position just past it; nothing else is shared.
//
// Errors: *SyntaxError wrapping ErrUnclosedGroup or ErrUnexpectedClose.
// Complexity: O(len(s)).
func Parse(s string) (*Expr, error) {
	// At top level parseSeq only stops early on error.
	seq, _, err := parseSeq(s, 0, false)
	if err != nil {
		return nil, err
	}

	return &Expr{seq: seq}, nil
}

// parseSeq reads items from pos. Inside a group it stops before ',' or '}'
// and leaves them to parseGroup; at top level ',' is a literal and a bare
// '}' is an error.
func parseSeq(s string, pos int, inGroup bool) ([]node, int, error) {
	var seq []node
	for pos < len(s) {
		switch c := s[pos]; {
		case c == '{':
			g, next, err := parseGroup(s, pos)
			if err != nil {
				return nil, pos, err
			}
			seq = append(seq, g)
			pos = next
		case c == '}' && !inGroup:
			return nil, pos, &SyntaxError{Offset: pos, Err: ErrUnexpectedClose}
		case inGroup && (c == ',' || c == '}'):
			return seq, pos, nil
		default:
			lit, next := parseLiteral(s, pos, inGroup)
			seq = append(seq, lit)
			pos = next
		}
	}

	return seq, pos, nil
}

// parseGroup reads '{' alt (',' alt)* '}' starting at the '{' at pos.
func parseGroup(s string, pos int) (group, int, error) {
	open := pos
	pos++ // consume '{'

	var g group
	for {
		alt, next, err := parseSeq(s, pos, true)
		if err != nil {
			return nil, pos, err
		}
		if next >= len(s) {
			return nil, pos, &SyntaxError{Offset: open, Err: ErrUnclosedGroup}
		}
		g = append(g, alt)
		if s[next] == '}' {
			return g, next + 1, nil
		}
		pos = next + 1 // consume ','
	}
}

// parseLiteral consumes the longest run of non-special bytes from pos.
// Special bytes are ASCII, so multi-byte UTF-8 runes pass through intact.
func parseLiteral(s string, pos int, inGroup bool) (literal, int) {
	start := pos
	for pos < len(s) {
		c := s[pos]
		if c == '{' || c == '}' || (inGroup && c == ',') {
			break
		}
		pos++
	}

	return literal(s[start:pos]), pos
}
