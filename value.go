package main

import (
	"strconv"
	"strings"
)

// Value is anything that may be pushed onto a stack or compiled into a
// quotation. Words are values too: compiling a word into a quotation stores
// the word itself, not its name.
type Value interface {
	String() string
}

// Number is the only numeric kind.
type Number float64

// Boolean is the result of comparisons and boolean logic.
type Boolean bool

// Text is an immutable string, as produced by a " literal.
type Text string

// Quotation is an ordered list of compiled values and words. Quotations are
// never modified once built; running one does not change it.
type Quotation []Value

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (t Text) String() string   { return string(t) }

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (q Quotation) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, v := range q {
		sb.WriteByte(' ')
		sb.WriteString(repr(v))
	}
	sb.WriteString(" ]")
	return sb.String()
}

// repr returns the form of a value used when listing stacks and definitions:
// text is quoted, everything else is its String form.
func repr(v Value) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case Text:
		return strconv.Quote(string(val))
	default:
		return v.String()
	}
}

func kindOf(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	case Quotation:
		return "list"
	case *Variable:
		return "variable"
	case Word:
		return "word"
	case nil:
		return "nothing"
	default:
		return "unknown"
	}
}

// Stack is a LIFO of values; the top is the last element.
type Stack []Value

func (s *Stack) push(v Value) { *s = append(*s, v) }

func (s *Stack) pop() (v Value) {
	i := len(*s) - 1
	v, *s = (*s)[i], (*s)[:i]
	return v
}

func (s Stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(repr(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
