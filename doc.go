/* Package forth: a small, almost FORTH, embeddable interpreter.

FORTH programs are sequences of whitespace separated words, run against a
stack of numbers.  This package implements just enough of the language for
stack arithmetic and defining new words; there is no I/O, no control flow, no
memory, and numbers are the only values.

Words

A token that parses as a base 10 integer pushes that integer onto the stack.
Any other token names a word, looked up case insensitively in the dictionary.
The dictionary starts out with these builtins:

	Name   Function
	 +     pop top 2 elements of stack, add, push
	 -     pop top 2 elements of stack, subtract top from second, push
	 *     pop top 2 elements of stack, multiply, push
	 /     pop top 2 elements of stack, divide second by top, push
	DUP    push a copy of the top of stack
	DROP   discard the top of stack
	SWAP   exchange the top 2 elements of stack
	OVER   push a copy of the second element of stack

So "1 2 + 3 *" leaves 9 on the stack.

Definitions

A new word is defined with ": name body... ;", after which "name" runs the
words of its body:

	: square DUP * ;  3 square

leaves 9 on the stack.  Any word may be redefined, including builtins like +.

Words in a body are looked up while the definition is parsed, not when it
runs, and a definition is added to the dictionary as soon as its ";" is read.
So redefining a word only affects later references to it:

	: foo 1 ;  : bar foo ;  : foo 2 ;  foo bar

leaves 2 1, since bar still refers to the first foo.  Definitions may nest; the
inner definition is complete, and so defined, before the outer one is:

	: foo : foo 2 ; foo ;  foo foo

leaves 2 2.  Since every reference is to an already complete word, no word can
ever call itself.

Errors

Interpreter.Eval parses its entire input before running any of it, so an
unknown word or a malformed definition (UnknownWord, InvalidWord) means that
none of the input runs.  An error while running (StackUnderflow,
DivisionByZero) stops the program where it failed, leaving the stack as it
was at that point.  Either way, definitions completed before the error remain.
*/
package forth
