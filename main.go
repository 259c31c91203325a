package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goforj/godump"

	"github.com/jcorbin/myforth/internal/fileinput"
	"github.com/jcorbin/myforth/internal/logio"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole command: it parses args, then interprets FILE or starts an
// interactive session, returning the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logio.New(appName, stderr)

	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %v [flags] [FILE] [INITIAL_STACK_VALUES...]\n\n", appName)
		fmt.Fprintf(flags.Output(), "%v %v: %v\n\n", appName, version, description)
		fmt.Fprintf(flags.Output(), "FILE defaults to <stdin> (interactive mode); - also selects it.\n")
		fmt.Fprintf(flags.Output(), "Flags must come before FILE: every argument after it is an initial stack value.\n\n")
		flags.PrintDefaults()
	}

	var (
		debug       bool
		trace       bool
		showVersion bool
		maxDepth    int
	)
	flags.BoolVar(&debug, "hdm", false, "higher debug mode: report failure details and dump state")
	flags.BoolVar(&debug, "higher-debug-mode", false, "same as -hdm")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
	flags.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "limit word and control-flow nesting depth")

	if err := flags.Parse(args); errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}
	if showVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	file := "<stdin>"
	initial := flags.Args()
	if len(initial) > 0 {
		file, initial = initial[0], initial[1:]
	}

	opts := []Option{
		WithOutput(stdout),
		WithMaxDepth(maxDepth),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("trace")))
	}
	if debug {
		opts = append(opts,
			WithDebugf(log.Leveledf("debug")),
			WithDumpf(godump.Dump))
	}
	in := New(opts...)
	defer in.Close()

	if err := in.PushInitial(initial); err != nil {
		log.Errorf("invalid initial stack values: %v", err)
		return 2
	}

	if file == "<stdin>" || file == "-" {
		log.ErrorIf(interactive(ctx, in, stdin))
	} else if err := in.RunFile(file); err != nil {
		var nf *fileinput.NotFoundError
		if errors.As(err, &nf) {
			log.Errorf("%v", nf)
		} else {
			log.Errorf("%v: %v", file, err)
		}
	}

	if err := in.Close(); err != nil {
		log.ErrorIf(err)
	}
	return log.ExitCode()
}

func interactive(ctx context.Context, in *Interpreter, stdin io.Reader) error {
	lines, err := openLines(stdin, in.out)
	if err != nil {
		return err
	}
	in.closers = append(in.closers, lines)
	if err := writeBanner(in.out); err != nil {
		return err
	}
	return in.RunInteractive(ctx, lines)
}
