package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/myforth/internal/token"
)

var (
	errStackUnderflow    = errors.New("stack underflow")
	errTypeMismatch      = errors.New("type mismatch")
	errUnknownWord       = errors.New("unknown word")
	errUnterminatedBlock = errors.New("unterminated block")
	errMissingVariable   = errors.New("variable not set")
	errRecursionLimit    = errors.New("recursion limit exceeded")
)

type underflowError struct {
	op         string
	need, have int
}

func (ue underflowError) Error() string {
	return fmt.Sprintf("%v: %v: need %v value(s), have %v", ue.op, errStackUnderflow, ue.need, ue.have)
}
func (ue underflowError) Unwrap() error { return errStackUnderflow }

type mismatchError struct {
	op   string
	want string
	got  interface{}
}

func (me mismatchError) Error() string {
	return fmt.Sprintf("%v: %v: want %v, got %#v", me.op, errTypeMismatch, me.want, me.got)
}
func (me mismatchError) Unwrap() error { return errTypeMismatch }

type unknownWordError string

func (name unknownWordError) Error() string { return fmt.Sprintf("%v %q", errUnknownWord, string(name)) }
func (name unknownWordError) Unwrap() error { return errUnknownWord }

type unterminatedError struct{ terminator token.Token }

func (ue unterminatedError) Error() string {
	return fmt.Sprintf("%v: expected %q", errUnterminatedBlock, ue.terminator.String())
}
func (ue unterminatedError) Unwrap() error { return errUnterminatedBlock }

type depthError int

func (depth depthError) Error() string {
	return fmt.Sprintf("%v: depth %v", errRecursionLimit, int(depth))
}
func (depth depthError) Unwrap() error { return errRecursionLimit }
