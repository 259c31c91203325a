package main

// stack is the evaluation stack; the top is the last element.
type stack []value

func (st *stack) push(val value) { *st = append(*st, val) }

func (st *stack) pop(op string) (value, error) {
	i := len(*st) - 1
	if i < 0 {
		return nil, underflowError{op: op, need: 1, have: 0}
	}
	val := (*st)[i]
	(*st)[i] = nil
	*st = (*st)[:i]
	return val, nil
}

func (st stack) peek(op string) (value, error) {
	if len(st) == 0 {
		return nil, underflowError{op: op, need: 1, have: 0}
	}
	return st[len(st)-1], nil
}

// need checks that n values are present before a primitive starts popping, so
// that a failing primitive leaves the stack as it found it.
func (st stack) need(op string, n int) error {
	if len(st) < n {
		return underflowError{op: op, need: n, have: len(st)}
	}
	return nil
}

func (st *stack) popNumber(op string) (float64, error) {
	val, err := st.pop(op)
	if err != nil {
		return 0, err
	}
	n, ok := val.(number)
	if !ok {
		st.push(val)
		return 0, mismatchError{op: op, want: "number", got: val}
	}
	return float64(n), nil
}

// popNumbers pops two numbers, returning them in push order.
func (st *stack) popNumbers(op string) (op1, op2 float64, err error) {
	if err := st.need(op, 2); err != nil {
		return 0, 0, err
	}
	top := len(*st) - 1
	for _, val := range (*st)[top-1:] {
		if _, ok := val.(number); !ok {
			return 0, 0, mismatchError{op: op, want: "number", got: val}
		}
	}
	op2, _ = st.popNumber(op)
	op1, _ = st.popNumber(op)
	return op1, op2, nil
}

func (st *stack) popText(op string) (string, error) {
	val, err := st.pop(op)
	if err != nil {
		return "", err
	}
	s, ok := val.(text)
	if !ok {
		st.push(val)
		return "", mismatchError{op: op, want: "text", got: val}
	}
	return string(s), nil
}
