package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/jcorbin/myforth/internal/token"
)

const defaultMaxDepth = 1000

// Interpreter runs token sequences against a stack machine. It owns all
// session state: the stack, the dictionary, the variable, and the transcript.
type Interpreter struct {
	ioCore

	stack    stack
	dict     dictionary
	variable value // nil until store_var

	transcript strings.Builder
	stopped    bool

	depth    int
	maxDepth int

	tokenizer token.Config
}

// run interprets toks; word bodies and control-flow branches recurse into it.
func (in *Interpreter) run(toks []token.Token) error {
	if in.depth >= in.maxDepth {
		return depthError(in.depth + 1)
	}
	in.depth++
	defer func() { in.depth-- }()

	cur := cursor{toks: toks}
	for tok, ok := cur.next(); ok; tok, ok = cur.next() {
		if err := in.step(&cur, tok); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) step(cur *cursor, tok token.Token) error {
	switch tok.Kind {
	case token.Number:
		in.stack.push(number(tok.Num))
		return nil

	case token.String:
		in.stack.push(text(tok.Unquoted()))
		return nil

	case token.Literal:
		if prim, ok := wordPrimitives[strings.ToLower(tok.Text)]; ok {
			return in.exec(prim, cur)
		}
		return in.call(tok.Text)

	case token.SingleChar:
		if prim, ok := operatorPrimitives[tok.Rune()]; ok {
			return in.exec(prim, cur)
		}
		// stray characters, including ; outside a definition, are ignored
		in.logf(in.depth, "skip %v", tok)
		return nil

	default:
		return fmt.Errorf("invalid token %#v", tok)
	}
}

func (in *Interpreter) exec(prim primitive, cur *cursor) error {
	if in.logfn != nil {
		in.logf(in.depth, "%v -- %v", prim, joinValues(in.stack))
	}
	return primitiveTable[prim](in, cur)
}

func (in *Interpreter) call(name string) error {
	body, err := in.dict.lookup(name)
	if err != nil {
		return err
	}
	in.logf(in.depth, "call %v -- %v", strings.ToLower(name), joinValues(in.stack))
	return in.run(body)
}

//// Words

// bye marks the session stopped; the rest of the current input still runs.
func (in *Interpreter) bye(_ *cursor) error {
	in.stopped = true
	return nil
}

func (in *Interpreter) dup(_ *cursor) error {
	val, err := in.stack.peek("dup")
	if err == nil {
		in.stack.push(val)
	}
	return err
}

func (in *Interpreter) invert(_ *cursor) error {
	x, err := in.stack.popNumber("invert")
	if err == nil {
		in.stack.push(number(1 - x))
	}
	return err
}

func (in *Interpreter) max(_ *cursor) error {
	return in.binary("max", func(a, b float64) value { return number(math.Max(a, b)) })
}

func (in *Interpreter) min(_ *cursor) error {
	return in.binary("min", func(a, b float64) value { return number(math.Min(a, b)) })
}

// ifElseThen pops a flag, then looks for an else-body ending in then. Failing
// that it rescans from the same place for a lone body ending in then.
//
// With an else-body, only true runs the if-body and every other number runs
// the else-body. Without one, only true runs the body.
func (in *Interpreter) ifElseThen(cur *cursor) error {
	flag, err := in.stack.popNumber("if")
	if err != nil {
		return err
	}

	if ifBody, next, found := scanUntil(cur.toks, cur.pos, tokElse); found {
		if elseBody, end, found := scanUntil(cur.toks, next, tokThen); found {
			cur.pos = end
			if flag == trueValue {
				in.logf(in.depth, "if %v -> if-body", formatNumber(flag))
				return in.run(ifBody)
			}
			in.logf(in.depth, "if %v -> else-body", formatNumber(flag))
			return in.run(elseBody)
		}
	}

	body, err := cur.until(tokThen)
	if err != nil {
		return err
	}
	if flag == trueValue {
		in.logf(in.depth, "if %v -> body", formatNumber(flag))
		return in.run(body)
	}
	in.logf(in.depth, "if %v -> skip", formatNumber(flag))
	return nil
}

func (in *Interpreter) printStack(_ *cursor) error {
	return in.printf("<%d> %s ", len(in.stack), joinValues(in.stack))
}

func (in *Interpreter) quine(_ *cursor) error {
	return in.printf("%s ", in.transcript.String())
}

func (in *Interpreter) cr(_ *cursor) error {
	return in.print("\n")
}

// doLoop scans its body through loop, then pops lower then upper, and runs
// the body once for each integer in [lower, upper]. The counter is not visible
// to the body.
func (in *Interpreter) doLoop(cur *cursor) error {
	body, err := cur.until(tokLoop)
	if err != nil {
		return err
	}
	upperf, lowerf, err := in.stack.popNumbers("do")
	if err != nil {
		return err
	}
	lower, upper := int(lowerf), int(upperf)
	in.logf(in.depth, "do %v..%v", lower, upper)
	for i := lower; i <= upper; i++ {
		if err := in.run(body); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) undef(_ *cursor) error {
	name, err := in.stack.popText("undef")
	if err == nil {
		in.dict.remove(name)
	}
	return err
}

// swap pops op1 then op2 and pushes them back in that order.
func (in *Interpreter) swap(_ *cursor) error {
	if err := in.stack.need("swap", 2); err != nil {
		return err
	}
	op1, _ := in.stack.pop("swap")
	op2, _ := in.stack.pop("swap")
	in.stack.push(op1)
	in.stack.push(op2)
	return nil
}

func (in *Interpreter) drop(_ *cursor) error {
	_, err := in.stack.pop("drop")
	return err
}

func (in *Interpreter) storeVar(_ *cursor) error {
	val, err := in.stack.pop("store_var")
	if err == nil {
		in.variable = val
	}
	return err
}

func (in *Interpreter) getVar(_ *cursor) error {
	if in.variable == nil {
		return fmt.Errorf("get_var: %w", errMissingVariable)
	}
	in.stack.push(in.variable)
	return nil
}

//// Operators

func (in *Interpreter) add(_ *cursor) error {
	return in.binary("+", func(a, b float64) value { return number(a + b) })
}

func (in *Interpreter) sub(_ *cursor) error {
	return in.binary("-", func(a, b float64) value { return number(a - b) })
}

func (in *Interpreter) mul(_ *cursor) error {
	return in.binary("*", func(a, b float64) value { return number(a * b) })
}

func (in *Interpreter) div(_ *cursor) error {
	return in.binary("/", func(a, b float64) value { return number(a / b) })
}

func (in *Interpreter) eq(_ *cursor) error {
	return in.binary("=", func(a, b float64) value { return boolNumber(a == b) })
}

func (in *Interpreter) gt(_ *cursor) error {
	return in.binary(">", func(a, b float64) value { return boolNumber(a > b) })
}

func (in *Interpreter) lt(_ *cursor) error {
	return in.binary("<", func(a, b float64) value { return boolNumber(a < b) })
}

func (in *Interpreter) print1(_ *cursor) error {
	val, err := in.stack.pop(".")
	if err != nil {
		return err
	}
	return in.printf("%v ", val)
}

// define reads a word name and its body through the closing ;.
func (in *Interpreter) define(cur *cursor) error {
	nameTok, ok := cur.next()
	if !ok {
		return unterminatedError{tokSemi}
	}
	if !nameTok.Is(token.Literal) {
		return mismatchError{op: ":", want: "word name", got: nameTok}
	}
	body, err := cur.until(tokSemi)
	if err != nil {
		return err
	}
	name := strings.ToLower(nameTok.Text)
	in.logf(in.depth, "define %v: %v", name, token.Join(body))
	if in.dict.define(name, body) {
		return in.printf(" redefined word \"%s\" ", name)
	}
	return nil
}

// binary pops op2 then op1 and pushes f(op1, op2).
func (in *Interpreter) binary(op string, f func(op1, op2 float64) value) error {
	op1, op2, err := in.stack.popNumbers(op)
	if err == nil {
		in.stack.push(f(op1, op2))
	}
	return err
}
