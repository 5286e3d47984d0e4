/* Package minforth implements a very small Forth: just enough to push
integers, do arithmetic and shuffle the stack, and name sequences of words.

A program is a sequence of lines. Each line is a run of whitespace separated
words, and each word is one of:

	- a decimal literal, like 42, pushed onto the stack
	- a built-in operator: + - * / dup swap over drop
	- a word defined by an earlier definition line

Words other than numbers match regardless of case, so DUP and dup are the same
operator.

Binary operators pop their right operand first, since it was pushed last; so
"3 4 -" leaves -1, and "7 2 /" leaves 3, dividing toward zero like Go does.
swap exchanges the top two values, over copies the second value onto the top,
dup copies the top, and drop discards it.

A line starting with a colon and whitespace is a definition:

	: double dup * ;
	: quad double double ;

All colons and semicolons are stripped from such a line; the first remaining
word names the definition, and the rest form its body. The body is resolved
when the line is read: each word in it refers to whatever it meant at that
time. Redefining a word later only affects lines read afterwards, and a body
that names the word being defined refers to its prior definition. Since no
definition can refer to itself, expansion always ends; WithStepLimit bounds
how much work it may take.

Numbers cannot be redefined, but operators can:

	: swap dup ;

An Interpreter keeps its definitions for its lifetime, while every
EvaluateProgram call starts with an empty stack and returns the final stack,
bottom first. Evaluation stops at the first error, which is one of
ErrUnknownWord, ErrInvalidDefinition, ErrStackUnderflow, ErrDivisionByZero, or
ErrStepLimit when matched with errors.Is, wrapped in a LineError locating it.
*/
package minforth
