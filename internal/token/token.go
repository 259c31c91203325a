// Package token defines the lexical tokens consumed by the interpreter, and a
// tokenizer that produces them from source text.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant of a Token.
type Kind uint8

// Token kinds.
const (
	Invalid Kind = iota
	Number
	String
	Literal
	SingleChar
)

var kindNames = [...]string{
	Invalid:    "invalid",
	Number:     "number",
	String:     "string",
	Literal:    "literal",
	SingleChar: "char",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is an immutable tagged value. Two tokens are equal when their kind and
// payload are equal, so plain == comparison is structural.
//
// Num holds the payload of Number tokens; Text holds the payload of all other
// kinds: the quoted source of a String, the identifier of a Literal, or the
// single rune of a SingleChar.
type Token struct {
	Kind Kind
	Num  float64
	Text string
}

// Num returns a Number token.
func Num(f float64) Token { return Token{Kind: Number, Num: f} }

// Str returns a String token; quoted must include its surrounding quotes.
func Str(quoted string) Token { return Token{Kind: String, Text: quoted} }

// Lit returns a Literal token.
func Lit(name string) Token { return Token{Kind: Literal, Text: name} }

// Char returns a SingleChar token.
func Char(r rune) Token { return Token{Kind: SingleChar, Text: string(r)} }

// Is reports whether tok has kind k.
func (tok Token) Is(k Kind) bool { return tok.Kind == k }

// Rune returns the character of a SingleChar token, or 0 for other kinds.
func (tok Token) Rune() rune {
	if tok.Kind != SingleChar {
		return 0
	}
	for _, r := range tok.Text {
		return r
	}
	return 0
}

// Unquoted returns the content of a String token without its surrounding
// quotes, with any backslash escapes resolved.
func (tok Token) Unquoted() string {
	s := tok.Text
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func (tok Token) String() string {
	switch tok.Kind {
	case Number:
		return strconv.FormatFloat(tok.Num, 'g', -1, 64)
	case String, Literal, SingleChar:
		return tok.Text
	default:
		return "<invalid>"
	}
}

// GoString renders the token with its kind, for diagnostics.
func (tok Token) GoString() string {
	return fmt.Sprintf("%v(%v)", tok.Kind, tok)
}

// Join renders tokens separated by spaces.
func Join(toks []Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.String())
	}
	return sb.String()
}
