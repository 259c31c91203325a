package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/myforth/internal/flushio"
)

type ioCore struct {
	out     flushio.WriteFlusher
	closers []io.Closer

	logfn   func(mess string, args ...interface{}) // trace logging
	debugfn func(mess string, args ...interface{}) // failure detail, set by higher debug mode
	dumpfn  func(vs ...interface{})                // structured dump of failing state
}

func (ioc *ioCore) Close() (err error) {
	if ferr := ioc.flush(); err == nil {
		err = ferr
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

func (ioc *ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	return ioc.out.Flush()
}

func (ioc *ioCore) print(s string) error {
	_, err := io.WriteString(ioc.out, s)
	return err
}

func (ioc *ioCore) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(ioc.out, format, args...)
	return err
}

// logf traces at the given nesting depth.
func (ioc *ioCore) logf(depth int, mess string, args ...interface{}) {
	if ioc.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	if depth > 1 {
		mess = strings.Repeat("  ", depth-1) + mess
	}
	ioc.logfn("%v", mess)
}

func (ioc *ioCore) debugf(mess string, args ...interface{}) {
	if ioc.debugfn != nil {
		ioc.debugfn(mess, args...)
	}
}
