// Package braces expands shell-style brace alternations.
//
// A balanced pair of braces holding comma-separated alternatives stands for
// each alternative at that position; groups nest, and literals around them
// are copied verbatim:
//
//	'~/{Downloads,Pictures}/*.{jpg,gif,png}'  => ~/Downloads/*.jpg, ~/Downloads/*.gif, …
//	'It{{em,alic}iz,erat}e{d,}, please.'      => Itemized, please.  Itemize, please.  …
//	'thumbnail.{png,jp{e,}g}'                 => thumbnail.png, thumbnail.jpeg, thumbnail.jpg
//	'nothing to do'                           => nothing to do
//
// Rules:
//   - ',' outside any group is an ordinary character.
//   - Empty alternatives are kept: "{e,}" yields "e" and "".
//   - "{}" is a group with one empty alternative.
//   - Duplicates are not removed and callers must not rely on order.
//
// Usage:
//
//	seq, err := braces.Expand("a{b,c{d,e}}f")
//	if err != nil {
//	    // errors.Is(err, braces.ErrMalformedInput)
//	}
//	for s := range seq {
//	    fmt.Println(s) // abf, acdf, acef
//	}
//
// Parse once and reuse the Expr when the same pattern is expanded often;
// Expr.Count reports the number of results without producing them.
//
// Complexity: parsing is O(len(s)); expansion is O(Count·len(result)).
package braces
