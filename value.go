package main

import (
	"strconv"
	"strings"
)

// Boolean-coded numbers: comparisons push these, and if only treats
// trueValue as true.
const (
	trueValue  = -1.0
	falseValue = 0.0
)

// value is a runtime value on the evaluation stack: either a number or text.
// There is no implicit conversion between the two.
type value interface {
	String() string
	kind() string
}

type number float64

type text string

func (n number) kind() string { return "number" }
func (s text) kind() string   { return "text" }

func (n number) String() string { return formatNumber(float64(n)) }
func (s text) String() string   { return string(s) }

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func boolNumber(b bool) number {
	if b {
		return trueValue
	}
	return falseValue
}

func joinValues(vals []value) string {
	var sb strings.Builder
	for i, val := range vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	return sb.String()
}
