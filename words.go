package main

// primitive codes name every built-in operation; user words never get one.
type primitive uint8

const (
	primNone primitive = iota

	// Words, matched case-insensitively against literals.
	primBye      // bye        stop the session
	primDup      // dup        ( a -- a a )
	primInvert   // invert     ( x -- 1-x )
	primMax      // max        ( a b -- max )
	primMin      // min        ( a b -- min )
	primIf       // if         ( flag -- ) if ... [else ...] then
	primStack    // stack      print depth and contents
	primQuine    // quine      print the session transcript
	primCr       // cr         print a newline
	primDo       // do         ( upper lower -- ) do ... loop
	primUndef    // undef      ( "name" -- ) forget a word
	primSwap     // swap       pop op1, pop op2, push op1, push op2
	primDrop     // drop       ( a -- )
	primStoreVar // store_var  ( a -- ) into the variable
	primGetVar   // get_var    ( -- a ) from the variable

	// Operators, matched against single characters.
	primAdd    // +  ( a b -- a+b )
	primSub    // -  ( a b -- a-b )
	primMul    // *  ( a b -- a*b )
	primDiv    // /  ( a b -- a/b )
	primPrint  // .  ( a -- ) print with a trailing space
	primDefine // :  : name ... ;
	primEq     // =  ( a b -- flag )
	primGt     // >  ( a b -- flag )
	primLt     // <  ( a b -- flag )

	primCount
	primFirstOperator = primAdd
)

var (
	primitiveTable [primCount]func(in *Interpreter, cur *cursor) error
	primitiveNames [primCount]string

	wordPrimitives     = make(map[string]primitive, primFirstOperator)
	operatorPrimitives = make(map[rune]primitive, primCount-primFirstOperator)
)

func init() {
	primitiveTable = [primCount]func(in *Interpreter, cur *cursor) error{
		primBye:      (*Interpreter).bye,
		primDup:      (*Interpreter).dup,
		primInvert:   (*Interpreter).invert,
		primMax:      (*Interpreter).max,
		primMin:      (*Interpreter).min,
		primIf:       (*Interpreter).ifElseThen,
		primStack:    (*Interpreter).printStack,
		primQuine:    (*Interpreter).quine,
		primCr:       (*Interpreter).cr,
		primDo:       (*Interpreter).doLoop,
		primUndef:    (*Interpreter).undef,
		primSwap:     (*Interpreter).swap,
		primDrop:     (*Interpreter).drop,
		primStoreVar: (*Interpreter).storeVar,
		primGetVar:   (*Interpreter).getVar,

		primAdd:    (*Interpreter).add,
		primSub:    (*Interpreter).sub,
		primMul:    (*Interpreter).mul,
		primDiv:    (*Interpreter).div,
		primPrint:  (*Interpreter).print1,
		primDefine: (*Interpreter).define,
		primEq:     (*Interpreter).eq,
		primGt:     (*Interpreter).gt,
		primLt:     (*Interpreter).lt,
	}

	primitiveNames = [primCount]string{
		primNone: "none",

		primBye:      "bye",
		primDup:      "dup",
		primInvert:   "invert",
		primMax:      "max",
		primMin:      "min",
		primIf:       "if",
		primStack:    "stack",
		primQuine:    "quine",
		primCr:       "cr",
		primDo:       "do",
		primUndef:    "undef",
		primSwap:     "swap",
		primDrop:     "drop",
		primStoreVar: "store_var",
		primGetVar:   "get_var",

		primAdd:    "+",
		primSub:    "-",
		primMul:    "*",
		primDiv:    "/",
		primPrint:  ".",
		primDefine: ":",
		primEq:     "=",
		primGt:     ">",
		primLt:     "<",
	}

	for prim := primBye; prim < primFirstOperator; prim++ {
		wordPrimitives[primitiveNames[prim]] = prim
	}
	for prim := primFirstOperator; prim < primCount; prim++ {
		for _, r := range primitiveNames[prim] {
			operatorPrimitives[r] = prim
		}
	}
}

func (prim primitive) String() string {
	if prim < primCount {
		return primitiveNames[prim]
	}
	return "invalid"
}
