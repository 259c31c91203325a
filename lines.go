package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/jcorbin/myforth/internal/fileinput"
	"github.com/jcorbin/myforth/internal/flushio"
)

// openLines reads lines with readline editing and history when r is a
// terminal, or plainly otherwise.
func openLines(r io.Reader, out flushio.WriteFlusher) (lineSource, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newTermLines(f)
	}
	return &plainLines{Lines: fileinput.NewLines("<stdin>", r), out: out}, nil
}

// plainLines echoes the prompt to the interpreter's output and reads lines
// from a plain stream.
type plainLines struct {
	*fileinput.Lines
	out flushio.WriteFlusher
}

func (pl *plainLines) readLine(prompt string) (string, error) {
	if _, err := io.WriteString(pl.out, prompt); err != nil {
		return "", err
	}
	if err := pl.out.Flush(); err != nil {
		return "", err
	}
	return pl.ReadLine()
}

func (pl *plainLines) location() string { return pl.Last.String() }

// termLines reads from a terminal through readline.
type termLines struct {
	rl   *readline.Instance
	line int
}

func newTermLines(f *os.File) (*termLines, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       filepath.Join(os.TempDir(), appName+".history"),
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
		Stdin:             f,
	})
	if err != nil {
		return nil, err
	}
	return &termLines{rl: rl}, nil
}

func (tl *termLines) readLine(prompt string) (string, error) {
	tl.rl.SetPrompt(prompt)
	line, err := tl.rl.Readline()
	if err == readline.ErrInterrupt {
		line, err = "", nil
	}
	if err == nil {
		tl.line++
	}
	return line, err
}

func (tl *termLines) location() string { return "<stdin>:" + strconv.Itoa(tl.line) }

func (tl *termLines) Close() error { return tl.rl.Close() }
