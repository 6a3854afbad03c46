package main

import (
	"sort"
	"strings"
	"testing"
)

func Test_words(t *testing.T) {
	engineTestCases{
		// arithmetic
		engineTest("modulo truncates").
			withInput("7.9 2.2 % -7 2 %").
			expectStack(Number(1), Number(-1)),
		engineTest("modulo by zero").
			withInput("5 0.5 %").
			expectError(ErrDivideByZero),
		engineTest("sqrt").
			withInput("9 sqrt 2.25 sqrt").
			expectStack(Number(3), Number(1.5)),
		engineTest("arithmetic type mismatch").
			withInput("1 true +").
			expectError(ErrTypeMismatch),

		// stack shuffling
		engineTest("clear").
			withInput("1 2 3 clear").
			expectStack(),
		engineTest("clear empty").
			withInput("clear").
			expectStack(),
		engineTest("rot underflow").
			withInput("1 2 rot").
			expectError(ErrStackUnderflow).
			expectStack(Number(1), Number(2)),
		engineTest("dup underflow").
			withInput("dup").
			expectError(ErrStackUnderflow),

		// comparison and logic
		engineTest("comparisons").
			withInput("1 2 < 2 2 <= 3 3 = 3 4 >= 5 4 >").
			expectStack(Boolean(true), Boolean(true), Boolean(true), Boolean(false), Boolean(true)),
		engineTest("compare needs numbers").
			withInput(`" a" 1 <`).
			expectError(ErrTypeMismatch),
		engineTest("logic").
			withInput("true false and true false or false not").
			expectStack(Boolean(false), Boolean(true), Boolean(true)),
		engineTest("logic needs booleans").
			withInput("1 true and").
			expectError(ErrTypeMismatch),

		// variables and constants
		engineTest("store and fetch aliases").
			withInput("VAR x 3 x STORE x FETCH 4 x ! x @").
			expectStack(Number(3), Number(4)),
		engineTest("variable holds any value").
			withInput(`VAR x " hi" x ! x @ [ 1 ] x ! x @`).
			expectStack(Text("hi"), Quotation{Number(1)}),
		engineTest("fetch before store").
			withInput("VAR x x @").
			expectError(ErrUnsetVariable),
		engineTest("store needs a variable").
			withInput("1 2 !").
			expectError(ErrTypeMismatch),
		engineTest("constant").
			withInput("42 CONST answer answer answer").
			expectStack(Number(42), Number(42)),
		engineTest("constant underflow").
			withInput("CONST nothing").
			expectError(ErrStackUnderflow).
			expectUndefined("nothing"),
		engineTest("constant needs a name").
			withInput("1 CONST").
			expectError(ErrUnexpectedEOF).
			expectStack(Number(1)),
		engineTest("variable needs a name").
			withInput("VAR").
			expectError(ErrUnexpectedEOF),
		engineTest("redefining a variable makes a new cell").
			withInput("VAR x 1 x ! x VAR x 2 x ! @ x @").
			expectStack(Number(1), Number(2)),

		// lists
		engineTest("list literal").
			withInput(`[ 1 " a b" [ 2 ] ]`).
			expectStack(Quotation{Number(1), Text("a b"), Quotation{Number(2)}}),
		engineTest("empty list").
			withInput("[ ]").
			expectStack(Quotation{}),
		engineTest("list holds words unevaluated").
			withInput("[ dup + ]").
			expectStackString("[[ DUP + ]]"),
		engineTest("definition inside a list").
			withInput("[ : x 1 ; ] x").
			expectStack(Quotation{}, Number(1)).
			expectDefinition("x", "[ 1 ]"),
		engineTest("list must be closed").
			withInput("[ 1 2").
			expectError(ErrUnexpectedEOF).
			expectStack(),
		engineTest("length").
			withInput(`[ 1 [ 2 3 ] " x" ] length [ ] length`).
			expectStack(Number(3), Number(0)),
		engineTest("item").
			withInput("[ 10 20 30 ] 1 item").
			expectStack(Number(20)),
		engineTest("item index truncates").
			withInput("[ 10 20 30 ] 2.9 item").
			expectStack(Number(30)),
		engineTest("item past the end").
			withInput("[ 10 20 ] 2 item").
			expectError(ErrIndexRange),
		engineTest("item before the start").
			withInput("[ 10 20 ] -1 item").
			expectError(ErrIndexRange),
		engineTest("item needs a list").
			withInput("1 0 item").
			expectError(ErrTypeMismatch),

		// definitions
		engineTest("def and end aliases").
			withInput("DEF three 3 END : four 4 ; three four").
			expectStack(Number(3), Number(4)),
		engineTest("def needs a name").
			withInput(":").
			expectError(ErrUnexpectedEOF).
			expectCompiling(false),
		engineTest("end outside a definition").
			withInput(";").
			expectError(ErrNotCompiling),
		engineTest("def within a definition").
			withInput(": a : b ;").
			expectError(ErrCompiling).
			expectCompiling(false).
			expectUndefined("a"),
		engineTest("words bind when compiled").
			withInput(": f 1 ; : g f ; : f 2 ; g f").
			expectStack(Number(1), Number(2)),
		engineTest("definition compiles list literals").
			withInput(": pair [ 1 2 ] ; pair pair").
			expectStack(Quotation{Number(1), Number(2)}, Quotation{Number(1), Number(2)}).
			expectDefinition("pair", "[ [ 1 2 ] ]"),
		engineTest("definition compiles text").
			withInput(`: greet " hello there" ; greet`).
			expectStack(Text("hello there")).
			expectDefinition("greet", `[ "hello there" ]`),
		engineTest("variable declared while compiling").
			withInput(": f VAR x 1 ; 2 x ! x @ f").
			expectStack(Number(2), Number(1)).
			expectDefinition("f", "[ 1 ]"),

		// text and comments
		engineTest("text").
			withInput(`" hello world"`).
			expectStack(Text("hello world")),
		engineTest("text keeps inner spacing").
			withInput(`"  two  spaces"`).
			expectStack(Text(" two  spaces")),
		engineTest("text must be closed").
			withInput(`" open`).
			expectError(ErrUnexpectedEOF),
		engineTest("comments").
			withInput("1 /* a b */ 2 ( c d ) 3 // e f\n 4").
			expectStack(Number(1), Number(2), Number(3), Number(4)),
		engineTest("line comment at end of input").
			withInput("1 // trailing").
			expectStack(Number(1)),
		engineTest("empty line comment").
			withInput("1 //\n2").
			expectStack(Number(1), Number(2)),
		engineTest("comments inside definitions").
			withInput(": f ( n -- n n ) /* really */ dup // twice\n ; 5 f").
			expectStack(Number(5), Number(5)).
			expectDefinition("f", "[ DUP ]"),
		engineTest("block comment must be closed").
			withInput("/* never closed").
			expectError(ErrUnexpectedEOF),
		engineTest("paren comment must be closed").
			withInput("( never closed").
			expectError(ErrUnexpectedEOF),
	}.run(t)
}

func Test_output(t *testing.T) {
	engineTestCases{
		engineTest("print").
			withInput(`1 2 + print " hi" . true print 7 8 / .`).
			expectOutput(lines("3", "hi", "true", "0.875")).
			expectStack(),
		engineTest("print list").
			withInput(`[ 1 " a" [ dup ] ] print`).
			expectOutput(lines(`[ 1 "a" [ DUP ] ]`)),
		engineTest("print underflow").
			withInput("print").
			expectError(ErrStackUnderflow),
		engineTest("pstack").
			withInput(`1 " a" true pstack .s`).
			expectOutput(lines(`[1 "a" true]`, `[1 "a" true]`)).
			expectStack(Number(1), Text("a"), Boolean(true)),
		engineTest("pstack empty").
			withInput("pstack").
			expectOutput(lines("[]")),
		engineTest("words").
			withoutPrelude().
			withInput(": zz ; VAR aa words").
			expectOutput(lines(strings.Join(sortedWith(builtinNames(), "AA", "ZZ"), " "))),
	}.run(t)
}

func sortedWith(names []string, more ...string) []string {
	all := append(names, more...)
	sort.Strings(all)
	return all
}

func Test_prelude(t *testing.T) {
	engineTestCases{
		engineTest("nip").withInput("3 4 nip").expectStack(Number(4)),
		engineTest("tuck").withInput("1 2 tuck").expectStack(Number(2), Number(1), Number(2)),
		engineTest("2dup").withInput("1 2 2dup").expectStack(Number(1), Number(2), Number(1), Number(2)),
		engineTest("2drop").withInput("1 2 3 2drop").expectStack(Number(1)),
		engineTest("neg").withInput("5 neg").expectStack(Number(-5)),
		engineTest("abs").withInput("-3 abs 3 abs").expectStack(Number(3), Number(3)),
		engineTest("min").withInput("3 7 min 7 3 min").expectStack(Number(3), Number(3)),
		engineTest("max").withInput("3 7 max 7 3 max").expectStack(Number(7), Number(7)),
		engineTest("square").withInput("4 square").expectStack(Number(16)),
		engineTest("inc and dec").
			withInput("VAR c 0 c ! c inc c inc c inc c dec c @").
			expectStack(Number(2)),
		engineTest("without prelude").
			withoutPrelude().
			withInput("1 2 nip").
			expectError(ErrUnknownWord),
	}.run(t)
}
