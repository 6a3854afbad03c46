/* Package main: SCRATCH -- a threaded-code stack language

SCRATCH is a very small member of the FORTH family. A program is a stream of
whitespace separated words. Each word is looked up in the dictionary; if it is
not found it must be a number literal. Known words are either run right away,
or, while a new definition is being compiled, appended to that definition.
Numbers are pushed onto the stack, or compiled as literals.

There is a single number kind (a 64-bit float), and besides numbers the stack
can hold booleans, text, variables, and lists of compiled words called
quotations. Quotations are how SCRATCH does code-as-data: the words inside a
[ ... ] list are compiled but not run, and control words like IFTRUE, TIMES,
WHILE and LOOP run them later:

	: square DUP * ;
	[ 3 square PRINT ] 2 TIMES

Section 1: The Engine

The engine holds the dictionary, the data stack, and a stack of destinations.
Every push goes to the innermost destination: normally the data stack, but
while compiling a definition it is the compile buffer, and while reading a
list literal it is the list under construction.

Some words are "immediate": they run as soon as they are read, even while
compiling. These are the words that need to read further input themselves
(string literals, comments, VAR, CONST and DEF names, list literals), and the
words that manage the compile buffer (DEF and END). See engine.go.

Section 2: Control Flow

A running quotation reacts to two signals: ?CONTINUE restarts it from its
first word, ?BREAK ends it and sets the engine's break state. LOOP runs its
quotation until break state is set, saving and restoring any outer break
state so that loops nest. Signals never leave the quotation that raised them;
see control.go.

Section 3: Words

The built in vocabulary is listed in words.go; a small prelude of words
written in SCRATCH itself is in prelude.go.

*/
package main
