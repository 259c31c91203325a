package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/myforth/internal/token"
)

// dump writes a readable description of interpreter state.
func (in *Interpreter) dump(out io.Writer) {
	fmt.Fprintf(out, "# Interpreter Dump\n")
	fmt.Fprintf(out, "  stopped: %v\n", in.stopped)
	fmt.Fprintf(out, "  stack: <%d> %v\n", len(in.stack), joinValues(in.stack))
	if in.variable == nil {
		fmt.Fprintf(out, "  variable: unset\n")
	} else {
		fmt.Fprintf(out, "  variable: %v %q\n", in.variable.kind(), in.variable)
	}
	fmt.Fprintf(out, "  transcript: %v bytes\n", in.transcript.Len())
	names := in.dict.names()
	fmt.Fprintf(out, "# Words (%d)\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  : %v %v ;\n", name, token.Join(in.dict[name]))
	}
}

// stateSnapshot is a plain-data view of interpreter state for structured
// dumpers.
type stateSnapshot struct {
	Error    string
	Stopped  bool
	Stack    []string
	Variable string
	Words    map[string]string
}

func (in *Interpreter) snapshot(err error) stateSnapshot {
	snap := stateSnapshot{
		Stopped: in.stopped,
		Stack:   make([]string, len(in.stack)),
		Words:   make(map[string]string, len(in.dict)),
	}
	if err != nil {
		snap.Error = err.Error()
	}
	for i, val := range in.stack {
		snap.Stack[i] = fmt.Sprintf("%v %q", val.kind(), val)
	}
	if in.variable != nil {
		snap.Variable = fmt.Sprintf("%v %q", in.variable.kind(), in.variable)
	}
	for name, body := range in.dict {
		snap.Words[name] = token.Join(body)
	}
	return snap
}
