package main

import (
	"errors"
	"io"
	"math"
	"strings"
)

// builtins is the primitive word catalog bound into every new Engine;
// aliases share the implementation of the word before them.
var builtins = []Word{
	// arithmetic
	builtin{"+", false, (*Engine).add},
	builtin{"-", false, (*Engine).sub},
	builtin{"*", false, (*Engine).mul},
	builtin{"/", false, (*Engine).div},
	builtin{"%", false, (*Engine).mod},
	builtin{"SQRT", false, (*Engine).sqrt},

	// stack shuffling
	builtin{"DUP", false, (*Engine).dup},
	builtin{"DROP", false, (*Engine).drop},
	builtin{"SWAP", false, (*Engine).swap},
	builtin{"OVER", false, (*Engine).over},
	builtin{"ROT", false, (*Engine).rot},
	builtin{"CLEAR", false, (*Engine).clear},

	// comparison
	builtin{"<", false, (*Engine).less},
	builtin{"<=", false, (*Engine).lessEqual},
	builtin{"=", false, (*Engine).equal},
	builtin{">=", false, (*Engine).greaterEqual},
	builtin{">", false, (*Engine).greater},

	// boolean logic
	builtin{"AND", false, (*Engine).and},
	builtin{"OR", false, (*Engine).or},
	builtin{"NOT", false, (*Engine).not},
	builtin{"TRUE", false, func(e *Engine) error { e.push(Boolean(true)); return nil }},
	builtin{"FALSE", false, func(e *Engine) error { e.push(Boolean(false)); return nil }},

	// variables
	builtin{"STORE", false, (*Engine).store},
	builtin{"!", false, (*Engine).store},
	builtin{"FETCH", false, (*Engine).fetch},
	builtin{"@", false, (*Engine).fetch},

	// lists
	builtin{"LENGTH", false, (*Engine).length},
	builtin{"ITEM", false, (*Engine).item},

	// control
	builtin{"RUN", false, (*Engine).runQuotation},
	builtin{"TIMES", false, (*Engine).times},
	builtin{"IFTRUE", false, (*Engine).ifTrue},
	builtin{"IFFALSE", false, (*Engine).ifFalse},
	builtin{"WHILE", false, (*Engine).while},
	builtin{"LOOP", false, (*Engine).loop},
	signal{"?CONTINUE", (*Engine).continueIf},
	signal{"?BREAK", (*Engine).breakIf},

	// definitions and literals
	builtin{"DEF", true, (*Engine).def},
	builtin{":", true, (*Engine).def},
	builtin{"END", true, (*Engine).end},
	builtin{";", true, (*Engine).end},
	builtin{"VAR", true, (*Engine).variable},
	builtin{"CONST", true, (*Engine).constant},
	builtin{`"`, true, (*Engine).text},
	builtin{"[", true, (*Engine).list},

	// comments
	builtin{"/*", true, (*Engine).blockComment},
	builtin{"(", true, (*Engine).parenComment},
	builtin{"//", true, (*Engine).lineComment},

	// output
	builtin{"PRINT", false, (*Engine).print},
	builtin{".", false, (*Engine).print},
	builtin{"PSTACK", false, (*Engine).printStack},
	builtin{".S", false, (*Engine).printStack},
	builtin{"WORDS", false, (*Engine).printWords},
}

func (e *Engine) arith(op func(a, b Number) Number) error {
	a, b, err := e.popNumbers()
	if err == nil {
		e.push(op(a, b))
	}
	return err
}

func (e *Engine) add() error { return e.arith(func(a, b Number) Number { return a + b }) }
func (e *Engine) sub() error { return e.arith(func(a, b Number) Number { return a - b }) }
func (e *Engine) mul() error { return e.arith(func(a, b Number) Number { return a * b }) }
func (e *Engine) div() error { return e.arith(func(a, b Number) Number { return a / b }) }

// mod truncates both operands to integers first.
func (e *Engine) mod() error {
	a, b, err := e.popNumbers()
	if err != nil {
		return err
	}
	if int(b) == 0 {
		return ErrDivideByZero
	}
	e.push(Number(int(a) % int(b)))
	return nil
}

func (e *Engine) sqrt() error {
	if err := e.need(1); err != nil {
		return err
	}
	n, err := e.popNumber()
	if err == nil {
		e.push(Number(math.Sqrt(float64(n))))
	}
	return err
}

func (e *Engine) dup() error {
	if err := e.need(1); err != nil {
		return err
	}
	s := *e.active()
	e.push(s[len(s)-1])
	return nil
}

func (e *Engine) drop() error {
	if err := e.need(1); err != nil {
		return err
	}
	e.pop()
	return nil
}

func (e *Engine) swap() error {
	if err := e.need(2); err != nil {
		return err
	}
	s := *e.active()
	i := len(s) - 1
	s[i-1], s[i] = s[i], s[i-1]
	return nil
}

func (e *Engine) over() error {
	if err := e.need(2); err != nil {
		return err
	}
	s := *e.active()
	e.push(s[len(s)-2])
	return nil
}

// rot ( x y z -- y z x )
func (e *Engine) rot() error {
	if err := e.need(3); err != nil {
		return err
	}
	s := *e.active()
	i := len(s) - 1
	s[i-2], s[i-1], s[i] = s[i-1], s[i], s[i-2]
	return nil
}

func (e *Engine) clear() error {
	s := e.active()
	*s = (*s)[:0]
	return nil
}

func (e *Engine) compare(op func(a, b Number) bool) error {
	a, b, err := e.popNumbers()
	if err == nil {
		e.push(Boolean(op(a, b)))
	}
	return err
}

func (e *Engine) less() error      { return e.compare(func(a, b Number) bool { return a < b }) }
func (e *Engine) lessEqual() error { return e.compare(func(a, b Number) bool { return a <= b }) }
func (e *Engine) equal() error     { return e.compare(func(a, b Number) bool { return a == b }) }
func (e *Engine) greater() error   { return e.compare(func(a, b Number) bool { return a > b }) }

func (e *Engine) greaterEqual() error {
	return e.compare(func(a, b Number) bool { return a >= b })
}

// Both operands have already been evaluated by the time either is popped.
func (e *Engine) and() error {
	a, b, err := e.popBooleans()
	if err == nil {
		e.push(a && b)
	}
	return err
}

func (e *Engine) or() error {
	a, b, err := e.popBooleans()
	if err == nil {
		e.push(a || b)
	}
	return err
}

func (e *Engine) not() error {
	if err := e.need(1); err != nil {
		return err
	}
	b, err := e.popBoolean()
	if err == nil {
		e.push(!b)
	}
	return err
}

// STORE ( value var -- )
func (e *Engine) store() error {
	if err := e.need(2); err != nil {
		return err
	}
	v, err := e.popVariable()
	if err != nil {
		return err
	}
	v.value = e.pop()
	e.logf("=", "%v = %v", v.name, repr(v.value))
	return nil
}

// FETCH ( var -- value )
func (e *Engine) fetch() error {
	if err := e.need(1); err != nil {
		return err
	}
	v, err := e.popVariable()
	if err != nil {
		return err
	}
	if v.value == nil {
		return ErrUnsetVariable
	}
	e.push(v.value)
	return nil
}

// LENGTH ( q -- n )
func (e *Engine) length() error {
	if err := e.need(1); err != nil {
		return err
	}
	q, err := e.popQuotation()
	if err == nil {
		e.push(Number(len(q)))
	}
	return err
}

// ITEM ( q i -- value )
func (e *Engine) item() error {
	if err := e.need(2); err != nil {
		return err
	}
	n, err := e.popNumber()
	if err != nil {
		return err
	}
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	i := int(n)
	if i < 0 || i >= len(q) {
		return indexError{i, len(q)}
	}
	e.push(q[i])
	return nil
}

func (e *Engine) def() error {
	name, err := e.nextName("definition")
	if err != nil {
		return err
	}
	if e.buffer != nil {
		return ErrCompiling
	}
	e.latest = strings.ToUpper(name)
	e.buffer = &Stack{}
	e.enter(e.buffer)
	e.logf(":", "begin %v", e.latest)
	return nil
}

func (e *Engine) end() error {
	if !e.compiling() {
		return ErrNotCompiling
	}
	body := make(Quotation, len(*e.buffer))
	copy(body, *e.buffer)
	name := e.latest
	e.leave()
	e.buffer, e.latest = nil, ""
	e.define(name, &Definition{name, body})
	return nil
}

func (e *Engine) variable() error {
	name, err := e.nextName("variable")
	if err != nil {
		return err
	}
	name = strings.ToUpper(name)
	e.define(name, &Variable{name: name})
	return nil
}

// CONST ( value -- ) takes its name from the input.
func (e *Engine) constant() error {
	if err := e.need(1); err != nil {
		return err
	}
	name, err := e.nextName("constant")
	if err != nil {
		return err
	}
	name = strings.ToUpper(name)
	e.define(name, &Constant{name, e.pop()})
	return nil
}

func (e *Engine) text() error {
	s, err := e.lex.nextCharsUpTo('"')
	if err == nil {
		e.push(Text(s))
	}
	return err
}

// list reads a quotation up to the matching "]". Everything read goes to the
// active destination, which is the list under construction unless an
// immediate word, like DEF, has entered another one.
func (e *Engine) list() error {
	var list Stack
	e.enter(&list)
	e.immediate = false
	for {
		token, err := e.lex.nextWord()
		if err == io.EOF {
			return eofError("]")
		} else if err != nil {
			return err
		}
		if token == "]" {
			break
		}

		item, err := e.compile(token)
		if err != nil {
			return err
		}
		if e.immediate {
			_, err = e.interpret(item)
			e.immediate = false
			if err != nil {
				return err
			}
		} else {
			e.push(item)
		}
	}
	e.leave()
	q := make(Quotation, len(list))
	copy(q, list)
	e.push(q)
	return nil
}

func (e *Engine) blockComment() error {
	for {
		token, err := e.lex.nextWord()
		if err == io.EOF {
			return eofError("*/")
		} else if err != nil {
			return err
		}
		if strings.HasSuffix(token, "*/") {
			return nil
		}
	}
}

func (e *Engine) parenComment() error {
	_, err := e.lex.nextCharsUpTo(')')
	return err
}

// lineComment skips the rest of the line; the end of input ends it too.
func (e *Engine) lineComment() error {
	if e.lex.ended == '\n' || e.lex.ended <= 0 {
		return nil
	}
	_, err := e.lex.nextCharsUpTo('\n')
	if errors.Is(err, ErrUnexpectedEOF) {
		return nil
	}
	return err
}

func (e *Engine) print() error {
	if err := e.need(1); err != nil {
		return err
	}
	return e.writeLine(e.pop().String())
}

func (e *Engine) printStack() error {
	return e.writeLine(e.active().String())
}

func (e *Engine) printWords() error {
	return e.writeLine(strings.Join(e.dict.names(), " "))
}
