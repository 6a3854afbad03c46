package main

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Engine compiles and runs SCRATCH words against a persistent dictionary and
// data stack.
type Engine struct {
	ioCore

	dict dictionary

	// The data stack persists across runs.
	data Stack

	// Pushes go to the innermost destination: list literals under
	// construction and the compile buffer stack up above the data stack.
	dests []*Stack

	// buffer is the compile buffer while a definition is open; latest names
	// that definition.
	buffer *Stack
	latest string

	// immediate is set by compile when it resolves an immediate word, and
	// cleared once that word has been dispatched.
	immediate bool

	// breaking is set by ?BREAK, and scoped by LOOP.
	breaking bool

	// depth counts nested quotation executions.
	depth int

	// calling is the word most recently called, named in recovered panics.
	calling string

	prelude bool

	lex *lexer
	ctx context.Context
}

func (e *Engine) init() {
	if e.dict.size() == 0 {
		for _, b := range builtins {
			e.dict.define(b.Name(), b)
		}
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}
}

// active returns the stack that currently receives pushes.
func (e *Engine) active() *Stack {
	if i := len(e.dests) - 1; i >= 0 {
		return e.dests[i]
	}
	return &e.data
}

func (e *Engine) compiling() bool {
	return e.buffer != nil && e.active() == e.buffer
}

func (e *Engine) enter(dest *Stack) { e.dests = append(e.dests, dest) }

func (e *Engine) leave() {
	if i := len(e.dests) - 1; i >= 0 {
		e.dests = e.dests[:i]
	}
}

// reset abandons any open definition or list, after a failed run.
func (e *Engine) reset() {
	e.dests = nil
	e.buffer = nil
	e.latest = ""
	e.immediate = false
	e.breaking = false
	e.depth = 0
	e.calling = ""
}

func (e *Engine) push(v Value) { e.active().push(v) }

func (e *Engine) pop() Value { return e.active().pop() }

// need checks that the active stack holds at least n values; primitives call
// it before popping anything.
func (e *Engine) need(n int) error {
	if have := len(*e.active()); have < n {
		return underflowError{n, have}
	}
	return nil
}

func (e *Engine) popNumber() (Number, error) {
	switch v := e.pop().(type) {
	case Number:
		return v, nil
	default:
		return 0, typeError{"number", v}
	}
}

func (e *Engine) popBoolean() (Boolean, error) {
	switch v := e.pop().(type) {
	case Boolean:
		return v, nil
	default:
		return false, typeError{"boolean", v}
	}
}

func (e *Engine) popQuotation() (Quotation, error) {
	switch v := e.pop().(type) {
	case Quotation:
		return v, nil
	default:
		return nil, typeError{"list", v}
	}
}

func (e *Engine) popVariable() (*Variable, error) {
	switch v := e.pop().(type) {
	case *Variable:
		return v, nil
	default:
		return nil, typeError{"variable", v}
	}
}

// popNumbers pops the top two values as numbers, returning the deeper one
// first.
func (e *Engine) popNumbers() (a, b Number, err error) {
	if err = e.need(2); err != nil {
		return 0, 0, err
	}
	if b, err = e.popNumber(); err == nil {
		a, err = e.popNumber()
	}
	return a, b, err
}

func (e *Engine) popBooleans() (a, b Boolean, err error) {
	if err = e.need(2); err != nil {
		return false, false, err
	}
	if b, err = e.popBoolean(); err == nil {
		a, err = e.popBoolean()
	}
	return a, b, err
}

// define binds a word, replacing any prior binding of the same name.
func (e *Engine) define(name string, word Word) {
	e.logf("+", "define %v %v", strings.ToUpper(name), kindOf(word))
	e.dict.define(name, word)
}

// nextName reads the name for VAR, CONST or DEF.
func (e *Engine) nextName(what string) (string, error) {
	name, err := e.lex.nextWord()
	if err == io.EOF {
		return "", eofError(what + " name")
	}
	return name, err
}

// compile resolves a token to a dictionary word or a number literal.
func (e *Engine) compile(token string) (Value, error) {
	token = strings.ToUpper(token)
	if word, found := e.dict.lookup(token); found {
		e.immediate = word.Immediate()
		return word, nil
	}
	if n, ok := parseNumber(token); ok {
		return n, nil
	}
	return nil, unknownWordError(token)
}

// parseNumber reads an upper-cased decimal or hexadecimal floating point
// literal, with an optional D or F type suffix. Literals too large for a
// float64 are infinite. Infinity and NaN have no literal form, and digit
// separators are not allowed.
func parseNumber(token string) (Number, bool) {
	if strings.ContainsRune(token, '_') ||
		strings.Contains(token, "INF") ||
		strings.Contains(token, "NAN") {
		return 0, false
	}
	if i := len(token) - 1; i > 0 && (token[i] == 'D' || token[i] == 'F') {
		token = token[:i]
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return Number(n), true
}

// interpret calls words, and pushes everything else.
func (e *Engine) interpret(item Value) (Flow, error) {
	if word, ok := item.(Word); ok {
		e.calling = word.Name()
		return word.Call(e)
	}
	e.push(item)
	return Completed, nil
}

// maxDepth bounds quotation nesting, so that runaway recursion fails before
// the goroutine stack does.
const maxDepth = 10000

// exec runs a quotation. Restart and Terminate flows only affect the
// quotation that receives them; exec itself always completes normally.
func (e *Engine) exec(q Quotation) error {
	if e.depth >= maxDepth {
		return ErrReturnStackOverflow
	}
	e.depth++
	defer func() { e.depth-- }()

	if e.logfn != nil {
		defer e.withLogPrefix("  ")()
	}
	if err := e.ctx.Err(); err != nil {
		return err
	}
	for pc := 0; pc < len(q); pc++ {
		flow, err := e.interpret(q[pc])
		if err != nil {
			return err
		}
		switch flow {
		case Restart:
			e.logf("<", "restart @%v", pc)
			if err := e.ctx.Err(); err != nil {
				return err
			}
			pc = -1
		case Terminate:
			e.logf("<", "terminate @%v", pc)
			return nil
		}
	}
	return nil
}

// run drives the dispatch loop until the lexer runs out of input.
func (e *Engine) run() error {
	for {
		if err := e.ctx.Err(); err != nil {
			return err
		}

		e.calling = ""
		token, err := e.lex.nextWord()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		item, err := e.compile(token)
		if err != nil {
			return err
		}

		if e.immediate {
			e.logf("!", "%v", token)
			_, err = e.interpret(item)
			e.immediate = false
		} else if e.compiling() {
			e.logf(":", "%v", repr(item))
			e.push(item)
		} else {
			e.logf(".", "%v", token)
			_, err = e.interpret(item)
		}
		if err != nil {
			return err
		}
	}
}
