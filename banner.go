package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/tklauser/go-sysconf"
)

const (
	appName     = "myforth"
	version     = "1.0"
	description = "language interpreter for a minimal stack-based language"
)

func writeBanner(w io.Writer) error {
	cpus := ""
	if n, err := sysconf.Sysconf(sysconf.SC_NPROCESSORS_ONLN); err == nil && n > 0 {
		cpus = fmt.Sprintf(", %d CPUs online", n)
	}
	_, err := fmt.Fprintf(w,
		"Welcome to My-Forth-Interpreter %v in interactive mode!\n"+
			"%v %v\n"+
			"on %v %v%v\n",
		version,
		runtime.Compiler, runtime.Version(),
		runtime.GOOS, runtime.GOARCH, cpus)
	return err
}
