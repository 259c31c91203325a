package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config controls comment recognition.
type Config struct {
	LineComment string // comment running to the end of the line
	BlockStart  string // opens a multi-line comment
	BlockEnd    string // closes a multi-line comment
}

// DefaultConfig is the comment syntax of the language.
var DefaultConfig = Config{
	LineComment: `\`,
	BlockStart:  "(*",
	BlockEnd:    "*)",
}

// ErrSyntax is wrapped by every SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError locates a tokenization failure.
type SyntaxError struct {
	Line, Col int
	Reason    string
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %v: %v", se.Line, se.Col, ErrSyntax, se.Reason)
}

func (se *SyntaxError) Unwrap() error { return ErrSyntax }

// Tokenize splits src into tokens using DefaultConfig.
func Tokenize(src string) ([]Token, error) { return DefaultConfig.Tokenize(src) }

// Tokenize splits src into tokens.
func (cfg Config) Tokenize(src string) ([]Token, error) {
	lex := lexer{cfg: cfg, src: src, line: 1, col: 1}
	var toks []Token
	for {
		tok, ok, err := lex.next()
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	cfg       Config
	src       string
	pos       int
	line, col int
}

func (lex *lexer) peek() rune {
	if lex.pos >= len(lex.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(lex.src[lex.pos:])
	return r
}

func (lex *lexer) peekAt(off int) rune {
	if i := lex.pos + off; i < len(lex.src) {
		r, _ := utf8.DecodeRuneInString(lex.src[i:])
		return r
	}
	return utf8.RuneError
}

func (lex *lexer) advance() rune {
	r, n := utf8.DecodeRuneInString(lex.src[lex.pos:])
	lex.pos += n
	if r == '\n' {
		lex.line++
		lex.col = 1
	} else {
		lex.col++
	}
	return r
}

func (lex *lexer) skip(s string) {
	for range s {
		lex.advance()
	}
}

func (lex *lexer) has(s string) bool {
	return s != "" && strings.HasPrefix(lex.src[lex.pos:], s)
}

func (lex *lexer) errorf(line, col int, mess string, args ...interface{}) error {
	return &SyntaxError{Line: line, Col: col, Reason: fmt.Sprintf(mess, args...)}
}

// next skips whitespace and comments then lexes one token; ok is false at the
// end of input.
func (lex *lexer) next() (tok Token, ok bool, err error) {
	if err := lex.skipSpace(); err != nil {
		return tok, false, err
	}
	if lex.pos >= len(lex.src) {
		return tok, false, nil
	}

	line, col := lex.line, lex.col
	switch r := lex.peek(); {
	case isDigit(r) || (r == '-' && isDigit(lex.peekAt(1))):
		return lex.number(line, col)
	case r == '"' || r == '\'':
		return lex.quoted(line, col)
	case r == '_' || unicode.IsLetter(r):
		start := lex.pos
		for r := lex.peek(); r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r); r = lex.peek() {
			lex.advance()
		}
		return Lit(lex.src[start:lex.pos]), true, nil
	default:
		return Char(lex.advance()), true, nil
	}
}

func (lex *lexer) skipSpace() error {
	for lex.pos < len(lex.src) {
		switch r := lex.peek(); {
		case unicode.IsSpace(r) || unicode.IsControl(r):
			lex.advance()
		case lex.has(lex.cfg.LineComment):
			for lex.pos < len(lex.src) && lex.advance() != '\n' {
			}
		case lex.has(lex.cfg.BlockStart):
			line, col := lex.line, lex.col
			lex.skip(lex.cfg.BlockStart)
			for !lex.has(lex.cfg.BlockEnd) {
				if lex.pos >= len(lex.src) {
					return lex.errorf(line, col, "unterminated comment, expected %q", lex.cfg.BlockEnd)
				}
				lex.advance()
			}
			lex.skip(lex.cfg.BlockEnd)
		default:
			return nil
		}
	}
	return nil
}

func (lex *lexer) number(line, col int) (Token, bool, error) {
	start := lex.pos
	if lex.peek() == '-' {
		lex.advance()
	}
	lex.digits()
	if lex.peek() == '.' && isDigit(lex.peekAt(1)) {
		lex.advance()
		lex.digits()
	}
	if r := lex.peek(); r == 'e' || r == 'E' {
		off := 1
		if s := lex.peekAt(1); s == '+' || s == '-' {
			off = 2
		}
		if isDigit(lex.peekAt(off)) {
			for ; off > 0; off-- {
				lex.advance()
			}
			lex.digits()
		}
	}
	f, err := strconv.ParseFloat(lex.src[start:lex.pos], 64)
	if err != nil {
		return Token{}, false, lex.errorf(line, col, "invalid number %q", lex.src[start:lex.pos])
	}
	return Num(f), true, nil
}

func (lex *lexer) digits() {
	for isDigit(lex.peek()) {
		lex.advance()
	}
}

func (lex *lexer) quoted(line, col int) (Token, bool, error) {
	start := lex.pos
	quote := lex.advance()
	for {
		if lex.pos >= len(lex.src) {
			return Token{}, false, lex.errorf(line, col, "unterminated string, expected %q", quote)
		}
		switch lex.advance() {
		case '\\':
			if lex.pos < len(lex.src) {
				lex.advance()
			}
		case quote:
			return Str(lex.src[start:lex.pos]), true, nil
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
