package main

import "github.com/jcorbin/myforth/internal/token"

// Control-flow terminators.
var (
	tokElse = token.Lit("else")
	tokThen = token.Lit("then")
	tokLoop = token.Lit("loop")
	tokSemi = token.Char(';')
)

// scanUntil collects tokens from pos up to the first token structurally equal
// to terminator. It returns the span, the position just past the terminator,
// and whether the terminator was found at all; when it was not, span and next
// are meaningless.
//
// Scanning does not track nesting: the first matching terminator ends the
// span, even if it belongs to an inner block.
func scanUntil(toks []token.Token, pos int, terminator token.Token) (span []token.Token, next int, found bool) {
	for i := pos; i < len(toks); i++ {
		if toks[i] == terminator {
			return toks[pos:i:i], i + 1, true
		}
	}
	return nil, len(toks), false
}

// cursor walks a token sequence, allowing primitives to consume tokens beyond
// the current one.
type cursor struct {
	toks []token.Token
	pos  int
}

func (cur *cursor) next() (token.Token, bool) {
	if cur.pos >= len(cur.toks) {
		return token.Token{}, false
	}
	tok := cur.toks[cur.pos]
	cur.pos++
	return tok, true
}

// until consumes tokens through terminator, returning those before it.
func (cur *cursor) until(terminator token.Token) ([]token.Token, error) {
	span, next, found := scanUntil(cur.toks, cur.pos, terminator)
	if !found {
		return nil, unterminatedError{terminator}
	}
	cur.pos = next
	return span, nil
}
