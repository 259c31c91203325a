package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/myforth/internal/logio"
	"github.com/jcorbin/myforth/internal/token"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	for _, it := range its {
		if !t.Run(it.name, it.run) {
			return
		}
	}
}

func interpTest(name string) (it interpTestCase) {
	it.name = name
	return it
}

type optFunc func(in *Interpreter)

func (f optFunc) apply(in *Interpreter) { f(in) }

type interpTestCase struct {
	name    string
	opts    []interface{}
	inputs  []string
	expect  []func(t *testing.T, in *Interpreter)
	wantErr error
}

func (it interpTestCase) withOptions(opts ...Option) interpTestCase {
	for _, opt := range opts {
		it.opts = append(it.opts, opt)
	}
	return it
}

func (it interpTestCase) withStack(vals ...interface{}) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.stack = append(in.stack, values(vals...)...)
	}))
	return it
}

func (it interpTestCase) withVariable(val interface{}) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.variable = values(val)[0]
	}))
	return it
}

func (it interpTestCase) withWord(name, body string) interpTestCase {
	it.opts = append(it.opts, func(t *testing.T) Option {
		toks, err := token.Tokenize(body)
		require.NoError(t, err, "must tokenize %q body", name)
		return optFunc(func(in *Interpreter) { in.dict.define(name, toks) })
	})
	return it
}

// withInput adds a chunk of source to interpret; chunks run in order, stopping
// at the first failure.
func (it interpTestCase) withInput(src string) interpTestCase {
	it.inputs = append(it.inputs, src)
	return it
}

func (it interpTestCase) withMaxDepth(depth int) interpTestCase {
	it.opts = append(it.opts, withMaxDepth(depth))
	return it
}

func (it interpTestCase) expectError(err error) interpTestCase {
	it.wantErr = err
	return it
}

func (it interpTestCase) expectStack(vals ...interface{}) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, values(vals...), append([]value{}, in.stack...), "expected stack values")
	})
	return it
}

func (it interpTestCase) expectOutput(output string) interpTestCase {
	var out strings.Builder
	it.opts = append(it.opts, withTee(&out))
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return it
}

func (it interpTestCase) expectWord(name, body string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		want, err := token.Tokenize(body)
		require.NoError(t, err, "must tokenize %q body", name)
		got, err := in.dict.lookup(name)
		if assert.NoError(t, err, "expected word %q", name) {
			assert.Equal(t, append([]token.Token{}, want...), append([]token.Token{}, got...), "expected %q body", name)
		}
	})
	return it
}

func (it interpTestCase) expectNoWord(name string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		_, err := in.dict.lookup(name)
		assert.True(t, errors.Is(err, errUnknownWord), "expected %q to be undefined", name)
	})
	return it
}

func (it interpTestCase) expectVariable(val interface{}) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, values(val)[0], in.variable, "expected variable")
	})
	return it
}

func (it interpTestCase) expectStopped(stopped bool) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, stopped, in.Stopped(), "expected stopped")
	})
	return it
}

func (it interpTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	in := it.build(t)
	defer func() {
		if t.Failed() {
			dumpToTest(t, in)
		}
	}()

	var err error
	for _, src := range it.inputs {
		if err = in.Interpret(src); err != nil {
			break
		}
	}
	require.NoError(t, in.Close(), "unexpected close error")

	if it.wantErr != nil {
		assert.True(t, errors.Is(err, it.wantErr), "expected error: %v\ngot: %+v", it.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}
	for _, expect := range it.expect {
		expect(t, in)
	}
}

func (it interpTestCase) build(t *testing.T) *Interpreter {
	opts := []Option{WithLogf(t.Logf)}
	for _, o := range it.opts {
		switch impl := o.(type) {
		case func(t *testing.T) Option:
			opts = append(opts, impl(t))
		case Option:
			opts = append(opts, impl)
		default:
			t.Fatalf("unsupported interpTestCase opt type %T", o)
		}
	}
	return New(opts...)
}

//// utilities

func dumpToTest(t *testing.T, in *Interpreter) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	in.dump(&lw)
}

// values converts Go numbers and strings into stack values.
func values(vals ...interface{}) []value {
	res := make([]value, len(vals))
	for i, val := range vals {
		switch v := val.(type) {
		case int:
			res[i] = number(v)
		case float64:
			res[i] = number(v)
		case string:
			res[i] = text(v)
		case value:
			res[i] = v
		default:
			panic(fmt.Sprintf("unsupported test value %T", val))
		}
	}
	return res
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
