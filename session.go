package main

import (
	"context"
	"io"

	"github.com/jcorbin/myforth/internal/fileinput"
	"github.com/jcorbin/myforth/internal/logio"
	"github.com/jcorbin/myforth/internal/panicerr"
	"github.com/jcorbin/myforth/internal/token"
)

const prompt = ">>> "

// RunFile interprets a whole program file in one run. Failures inside the
// program are reported like REPL failures and do not make RunFile fail; only
// a file that cannot be found or read is returned as an error.
func (in *Interpreter) RunFile(name string) error {
	f, err := fileinput.ReadFile(name)
	if err != nil {
		return err
	}
	in.report(f.Name, in.Interpret(f.Content))
	return in.flush()
}

// lineSource supplies interactive input lines.
type lineSource interface {
	readLine(prompt string) (string, error)
	location() string
	Close() error
}

// RunInteractive reads, tokenizes and runs one line at a time until bye or
// the end of input. A failing line is reported and the session continues.
func (in *Interpreter) RunInteractive(ctx context.Context, lines lineSource) error {
	defer in.flush()
	for !in.stopped {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.print("\n"); err != nil {
			return err
		}
		if err := in.flush(); err != nil {
			return err
		}

		line, err := lines.readLine(prompt)
		if err == io.EOF {
			in.report(lines.location(), in.Run([]token.Token{token.Lit("bye")}))
			break
		} else if err != nil {
			return err
		}
		in.report(lines.location(), in.Interpret(line+"\n"))
	}
	return nil
}

// report prints a blank line for a failed run; in higher debug mode it also
// logs the error in detail and dumps interpreter state.
func (in *Interpreter) report(loc string, err error) {
	if err == nil {
		return
	}
	in.print("\n")
	in.flush()
	if in.debugfn == nil {
		return
	}
	in.debugf("%v: %v", loc, err)
	if panicerr.IsPanic(err) {
		in.debugf("panic stack: %s", panicerr.Stack(err))
	}
	if in.dumpfn != nil {
		in.dumpfn(in.snapshot(err))
	} else {
		lw := &logio.Writer{Logf: in.debugfn}
		in.dump(lw)
		lw.Close()
	}
}
