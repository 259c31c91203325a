package main

import (
	"math"
	"testing"

	"github.com/jcorbin/myforth/internal/token"
)

func Test_stackWords(t *testing.T) {
	interpTestCases{
		interpTest("push").withInput(`1 "two" 3.5 'four'`).expectStack(1, "two", 3.5, "four"),

		// ( a -- a a )
		interpTest("dup").withStack(1, 2, 3).withInput("dup").expectStack(1, 2, 3, 3),
		interpTest("dup text").withStack("x").withInput("DUP").expectStack("x", "x"),
		interpTest("dup empty").withInput("dup").expectError(errStackUnderflow).expectStack(),

		// ( a -- )
		interpTest("drop").withStack(1, 2).withInput("drop").expectStack(1),
		interpTest("drop empty").withInput("drop").expectError(errStackUnderflow),

		// pop op1, pop op2, push op1, push op2
		interpTest("swap").withStack(1, 2, 3).withInput("swap").expectStack(1, 3, 2),
		interpTest("swap mixed").withStack("a", 2).withInput("swap").expectStack(2, "a"),
		interpTest("swap underflow").withStack(1).withInput("swap").expectError(errStackUnderflow).expectStack(1),

		// ( x -- 1-x )
		interpTest("invert true").withStack(-1).withInput("invert").expectStack(2),
		interpTest("invert false").withStack(0).withInput("invert").expectStack(1),
		interpTest("invert text").withStack("no").withInput("invert").expectError(errTypeMismatch).expectStack("no"),

		interpTest("max").withInput("3 7 max 9 2 max").expectStack(7, 9),
		interpTest("min").withInput("3 7 min 9 2 min").expectStack(3, 2),
		interpTest("max underflow").withStack(1).withInput("max").expectError(errStackUnderflow).expectStack(1),

		interpTest("stack").withStack(1, "x", 2.5).withInput("stack").
			expectOutput("<3> 1 x 2.5 ").expectStack(1, "x", 2.5),
		interpTest("stack empty").withInput("stack").expectOutput("<0>  "),

		interpTest("cr").withInput("cr cr").expectOutput("\n\n"),
	}.run(t)
}

func Test_operators(t *testing.T) {
	interpTestCases{
		interpTest("add and print").withInput("3 4 + .").expectOutput("7 ").expectStack(),
		interpTest("sub").withInput("10 4 -").expectStack(6),
		interpTest("mul").withInput("2 3 *").expectStack(6),
		interpTest("div").withInput("7 2 /").expectStack(3.5),
		interpTest("div by zero").withInput("1 0 /").expectStack(math.Inf(1)),
		interpTest("negative literal").withInput("5 -3 +").expectStack(2),

		interpTest("eq true").withInput("1 1 =").expectStack(-1),
		interpTest("eq false").withInput("1 2 =").expectStack(0),
		interpTest("gt").withInput("2 1 > 1 2 >").expectStack(-1, 0),
		interpTest("lt").withInput("2 1 < 1 2 <").expectStack(0, -1),

		interpTest("print text").withInput(`"hello world" .`).expectOutput("hello world "),
		interpTest("print fraction").withInput("1 4 / .").expectOutput("0.25 "),
		interpTest("print empty").withInput(".").expectError(errStackUnderflow),

		interpTest("add text").withInput(`"a" 1 +`).expectError(errTypeMismatch).expectStack("a", 1),
		interpTest("add underflow").withInput("1 +").expectError(errStackUnderflow).expectStack(1),
		interpTest("stray semicolon").withInput("1 ; 2").expectStack(1, 2),
		interpTest("stray characters").withInput("1 , 2 ) @ stack").
			expectOutput("<2> 1 2 ").expectStack(1, 2),
	}.run(t)
}

func Test_words(t *testing.T) {
	interpTestCases{
		interpTest("define and call").withInput(": sq dup * ; 3 sq").
			expectWord("sq", "dup *").expectStack(9),
		interpTest("case insensitive").withInput(": SQ dup * ; 3 Sq").
			expectWord("sq", "dup *").expectStack(9),
		interpTest("empty body").withInput(": nop ; 1 nop").expectWord("nop", "").expectStack(1),
		interpTest("late binding").withInput(": a b ; : b 5 ; a").expectStack(5),
		interpTest("across inputs").withInput(": sq dup * ;").withInput("4 sq").expectStack(16),
		interpTest("predefined").withWord("inc", "1 +").withInput("41 inc").expectStack(42),

		interpTest("redefine").withInput(": x 1 ; : x 2 ; x").
			expectOutput(` redefined word "x" `).expectWord("x", "2").expectStack(2),
		interpTest("redefine other case").withInput(": x 1 ; : X 2 ;").
			expectOutput(` redefined word "x" `),

		interpTest("undef").withWord("x", "1").withInput(`"x" undef`).expectNoWord("x").expectStack(),
		interpTest("undef then call").withWord("x", "1").withInput(`"x" undef x`).expectError(errUnknownWord),
		interpTest("undef absent").withInput(`"nope" undef`).expectStack(),
		interpTest("undef number").withInput("1 undef").expectError(errTypeMismatch).expectStack(1),

		interpTest("unknown word").withInput("1 frob 2").expectError(errUnknownWord).expectStack(1),
		interpTest("define without name").withInput(":").expectError(errUnterminatedBlock),
		interpTest("define number name").withInput(": 3 dup ;").expectError(errTypeMismatch),
		interpTest("define without end").withInput(": x 1 2").expectError(errUnterminatedBlock).expectNoWord("x"),
		interpTest("terminator is exact").withInput(": x 1 ';' 2").expectError(errUnterminatedBlock),
	}.run(t)
}

func Test_ifElseThen(t *testing.T) {
	interpTestCases{
		interpTest("true takes if").withInput("-1 if 1 . else 2 . then").expectOutput("1 ").expectStack(),
		interpTest("false takes else").withInput("0 if 1 . else 2 . then").expectOutput("2 "),
		interpTest("other takes else").withInput("5 if 1 . else 2 . then").expectOutput("2 "),
		interpTest("one is not true").withInput("1 if 1 . else 2 . then").expectOutput("2 "),
		interpTest("continues after then").withInput("-1 if 1 . else 2 . then 3 .").expectOutput("1 3 "),

		interpTest("no else true").withInput("-1 if 7 . then 8 .").expectOutput("7 8 "),
		interpTest("no else false").withInput("0 if 7 . then 8 .").expectOutput("8 "),
		interpTest("no else other").withInput("1 if 7 . then").expectOutput(""),

		interpTest("comparison flag").withInput("3 2 > if 1 else 2 then").expectStack(1),
		interpTest("in a word").withInput(": sign 0 < if -1 else 1 then ; -5 sign 5 sign").expectStack(-1, 1),

		interpTest("missing then").withInput("-1 if 1 .").expectError(errUnterminatedBlock).expectOutput(""),
		interpTest("else without then").withInput("-1 if 1 . else 2 .").expectError(errUnterminatedBlock),
		interpTest("then before else").withInput("-1 if 1 . then 2 . else").
			expectError(errUnknownWord).expectOutput("1 2 "),
		interpTest("flag underflow").withInput("if then").expectError(errStackUnderflow),
		interpTest("text flag").withInput(`"yes" if then`).expectError(errTypeMismatch).expectStack("yes"),
		interpTest("terminators are case sensitive").withInput("-1 if 1 THEN").expectError(errUnterminatedBlock),

		// The else scan does not track nesting, so it finds the second if's
		// else, and the first body then runs into a bare then.
		interpTest("not nesting aware").withInput("-1 if 1 . then 0 if 2 . else 3 . then").
			expectError(errUnknownWord).expectOutput("1 "),
	}.run(t)
}

func Test_doLoop(t *testing.T) {
	interpTestCases{
		interpTest("five times").withInput("5 1 do 7 . loop").expectOutput("7 7 7 7 7 ").expectStack(),
		interpTest("once").withInput("3 3 do 7 . loop").expectOutput("7 "),
		interpTest("lower above upper").withInput("1 5 do 7 . loop 8 .").expectOutput("8 "),
		interpTest("negative range").withInput("-1 -3 do 1 loop").expectStack(1, 1, 1),
		interpTest("truncated bounds").withInput("2.9 1.5 do 1 loop").expectStack(1, 1),
		interpTest("accumulate").withInput("0 4 1 do 2 + loop").expectStack(8),
		interpTest("nested through a word").withInput(": inner 3 1 do 1 loop ; 2 1 do inner loop").
			expectStack(1, 1, 1, 1, 1, 1),
		// the outer scan stops at the inner loop terminator
		interpTest("nested inline").withInput("2 1 do 3 1 do 1 loop loop").expectError(errUnterminatedBlock),

		interpTest("counter not exposed").withInput("5 1 do i loop").expectError(errUnknownWord),
		interpTest("missing loop").withInput("5 1 do 7 .").
			expectError(errUnterminatedBlock).expectOutput("").expectStack(5, 1),
		interpTest("underflow").withInput("1 do loop").expectError(errStackUnderflow).expectStack(1),
		interpTest("text bound").withInput(`5 "x" do loop`).expectError(errTypeMismatch).expectStack(5, "x"),
	}.run(t)
}

func Test_variable(t *testing.T) {
	interpTestCases{
		interpTest("unset").withInput("get_var").expectError(errMissingVariable),
		interpTest("store and get").withInput("42 store_var get_var get_var").
			expectStack(42, 42).expectVariable(42),
		interpTest("overwrite").withVariable(1).withInput(`"s" STORE_VAR Get_Var`).
			expectStack("s").expectVariable("s"),
		interpTest("store empty").withInput("store_var").expectError(errStackUnderflow),
	}.run(t)
}

func Test_session_words(t *testing.T) {
	interpTestCases{
		// bye lets the rest of its input finish
		interpTest("bye stops").withInput("1 bye 2").expectStack(1, 2).expectStopped(true),
		interpTest("bye in a loop").withInput("3 1 do 1 bye loop 2").expectStack(1, 1, 1, 2).expectStopped(true),
		interpTest("bye in a word").withInput(": quit bye ; 1 quit 2").expectStack(1, 2).expectStopped(true),
		interpTest("running").withInput("1").expectStopped(false),

		interpTest("quine").withInput("1 2 +\n").withInput("quine\n").
			expectOutput("1 2 +\nquine\n "),
	}.run(t)
}

func Test_recursion(t *testing.T) {
	interpTestCases{
		interpTest("countdown").
			withInput(": down dup 0 > if dup . 1 - down then ; 3 down").
			expectOutput("3 2 1 ").expectStack(0),
		interpTest("unbounded").withMaxDepth(50).
			withInput(": forever forever ; forever").expectError(errRecursionLimit),
		interpTest("default limit").
			withInput(": forever 1 forever ; forever").expectError(errRecursionLimit),
		interpTest("within limit").withMaxDepth(5).
			withInput(": a b ; : b c ; : c 1 ; a").expectStack(1),
	}.run(t)
}

func Test_tokenizer_errors(t *testing.T) {
	interpTestCases{
		interpTest("unterminated string").withInput(`1 "oops`).expectError(token.ErrSyntax).expectStack(),
		interpTest("custom comments").
			withOptions(WithTokenizer(token.Config{LineComment: "#"})).
			withInput("1 # 2\n3").expectStack(1, 3),
	}.run(t)
}
