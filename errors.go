package main

import (
	"errors"
	"fmt"
)

// Error kinds, for use with errors.Is. Every error returned by a run wraps
// one of these.
var (
	ErrUnknownWord    = errors.New("unknown word")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrIndexRange     = errors.New("index out of range")
	ErrDivideByZero   = errors.New("integer divide by zero")
	ErrUnsetVariable  = errors.New("variable never stored")
	ErrNotCompiling   = errors.New("not compiling a definition")
	ErrCompiling      = errors.New("already compiling a definition")

	ErrReturnStackOverflow = errors.New("return stack overflow")
)

type unknownWordError string

func (token unknownWordError) Error() string {
	return fmt.Sprintf("unknown word: [%v]", string(token))
}
func (token unknownWordError) Unwrap() error { return ErrUnknownWord }

type underflowError struct {
	need, have int
}

func (under underflowError) Error() string {
	return fmt.Sprintf("stack underflow: need %v, have %v", under.need, under.have)
}
func (under underflowError) Unwrap() error { return ErrStackUnderflow }

// eofError names the delimiter or construct that was still expected.
type eofError string

func (want eofError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %v", string(want))
}
func (want eofError) Unwrap() error { return ErrUnexpectedEOF }

type typeError struct {
	want string
	got  Value
}

func (te typeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %v, got %v %v", te.want, kindOf(te.got), repr(te.got))
}
func (te typeError) Unwrap() error { return ErrTypeMismatch }

type indexError struct {
	index, length int
}

func (ie indexError) Error() string {
	return fmt.Sprintf("index out of range [%v] with length %v", ie.index, ie.length)
}
func (ie indexError) Unwrap() error { return ErrIndexRange }

// wordError attributes an error to the primitive that raised it.
type wordError struct {
	word string
	err  error
}

func (we wordError) Error() string { return fmt.Sprintf("%v: %v", we.word, we.err) }
func (we wordError) Unwrap() error { return we.err }

// attribute wraps err with word, unless a more deeply nested word already
// claimed it.
func attribute(word string, err error) error {
	var we wordError
	if errors.As(err, &we) {
		return err
	}
	return wordError{word, err}
}
