package main

import (
	"io"
	"strings"

	"github.com/jcorbin/myforth/internal/panicerr"
	"github.com/jcorbin/myforth/internal/token"
)

// New creates an interpreter with an empty stack and dictionary.
func New(opts ...Option) *Interpreter {
	var in Interpreter
	defaultOptions.apply(&in)
	Options(opts...).apply(&in)
	return &in
}

// Run interprets toks, returning the first failure. Any panic inside the
// engine is returned as an error rather than propagated.
func (in *Interpreter) Run(toks []token.Token) error {
	err := panicerr.Recover("run", func() error {
		return in.run(toks)
	})
	if ferr := in.flush(); err == nil {
		err = ferr
	}
	return err
}

// Interpret appends src to the session transcript, then tokenizes and runs it.
func (in *Interpreter) Interpret(src string) error {
	in.transcript.WriteString(src)
	toks, err := in.tokenizer.Tokenize(src)
	if err != nil {
		return err
	}
	in.logf(0, "run %v", token.Join(toks))
	return in.Run(toks)
}

// PushInitial joins vals with spaces, tokenizes them, and pushes every number
// and string in order; other tokens are ignored.
func (in *Interpreter) PushInitial(vals []string) error {
	toks, err := in.tokenizer.Tokenize(strings.Join(vals, " "))
	if err != nil {
		return err
	}
	for _, tok := range toks {
		switch tok.Kind {
		case token.Number:
			in.stack.push(number(tok.Num))
		case token.String:
			in.stack.push(text(tok.Unquoted()))
		}
	}
	return nil
}

// Stopped reports whether bye was run.
func (in *Interpreter) Stopped() bool { return in.stopped }

// Option constructors.

func WithOutput(w io.Writer) Option                   { return withOutput(w) }
func WithTee(w io.Writer) Option                      { return withTee(w) }
func WithMaxDepth(depth int) Option                   { return withMaxDepth(depth) }
func WithTokenizer(cfg token.Config) Option           { return withTokenizer(cfg) }
func WithDumpf(dumpfn func(vs ...interface{})) Option { return dumpfnOption(dumpfn) }

func WithLogf(logfn func(mess string, args ...interface{})) Option     { return logfnOption(logfn) }
func WithDebugf(debugfn func(mess string, args ...interface{})) Option { return debugfnOption(debugfn) }
