package main

import (
	"io"

	"github.com/jcorbin/myforth/internal/flushio"
	"github.com/jcorbin/myforth/internal/token"
)

// Option configures an Interpreter.
type Option interface{ apply(in *Interpreter) }

// Options flattens any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

var defaultOptions = Options(
	withOutput(io.Discard),
	withMaxDepth(defaultMaxDepth),
	withTokenizer(token.DefaultConfig),
)

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type debugfnOption func(mess string, args ...interface{})
type dumpfnOption func(vs ...interface{})
type maxDepthOption int
type tokenizerOption token.Config

func withOutput(w io.Writer) outputOption            { return outputOption{w} }
func withTee(w io.Writer) teeOption                  { return teeOption{w} }
func withMaxDepth(depth int) maxDepthOption          { return maxDepthOption(depth) }
func withTokenizer(cfg token.Config) tokenizerOption { return tokenizerOption(cfg) }

func (o outputOption) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.Tee(in.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		in.closers = append(in.closers, cl)
	}
}

func (logfn logfnOption) apply(in *Interpreter)     { in.logfn = logfn }
func (debugfn debugfnOption) apply(in *Interpreter) { in.debugfn = debugfn }
func (dumpfn dumpfnOption) apply(in *Interpreter)   { in.dumpfn = dumpfn }

func (depth maxDepthOption) apply(in *Interpreter) {
	if depth > 0 {
		in.maxDepth = int(depth)
	}
}

func (cfg tokenizerOption) apply(in *Interpreter) { in.tokenizer = token.Config(cfg) }
