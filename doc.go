/* Command myforth interprets a minimal stack-based language in the FORTH
family.

Programs are sequences of whitespace separated tokens. Numbers and quoted
strings are pushed onto the evaluation stack; everything else names a word or
an operator that acts on it:

	3 4 + .              \ prints "7 "
	: sq dup * ;         \ defines the word sq
	5 sq .               \ prints "25 "
	-1 if 'yes' . else 'no' . then

Numbers are floats. Comparisons push -1 for true and 0 for false, and if takes
its if-body only for -1. The do-loop pops a lower then an upper bound and runs
its body once for every integer between them; no counter is exposed.

Words are case insensitive and bound late: a body is looked up by name each
time it is called, so words may refer to words defined after them, or to
themselves. Redefining a word prints a notice. There is a single untyped
variable, set with store_var and read with get_var.

Comments run from \ to the end of the line, or between (* and *) on one line.

With a FILE argument, the whole file runs at once; otherwise each line read
from standard input runs in turn after a ">>> " prompt. Any further arguments
are pushed onto the stack before the program starts. A failing line prints a
blank line and leaves the session running; with -hdm the failure and the
interpreter's state are logged too.

Words:

	bye         end the session
	dup         ( a -- a a )
	drop        ( a -- )
	swap        ( a b -- b a )
	invert      ( x -- 1-x )
	max min     ( x y -- z )
	stack       print "<n> " and the stack bottom to top
	cr          print a newline
	quine       print everything interpreted so far
	undef       ( name -- ) remove a word
	store_var   ( a -- ) set the variable
	get_var     ( -- a ) push the variable
	if else then
	do loop

Operators:

	+ - * /     ( x y -- z )
	= > <       ( x y -- flag )
	.           ( a -- ) print a and a space
	: name ;    define a word
*/
package main
