package main

import (
	"bytes"
	"io"
)

var prelude = preludeSource{}

// preludeSource holds the words that are written in SCRATCH itself, rather
// than as builtins; New loads it unless told otherwise.
type preludeSource struct{}

func (preludeSource) Name() string { return "prelude.scratch" }

func (preludeSource) WriteTo(w io.Writer) (n int64, err error) {
	flush := func(wto io.WriterTo) {
		if err != nil {
			return
		}
		var m int64
		m, err = wto.WriteTo(w)
		n += m
	}

	var buf bytes.Buffer
	line := func(parts ...string) {
		if err == nil {
			for _, s := range parts {
				buf.WriteString(s)
			}
			buf.WriteByte('\n')
			flush(&buf)
		}
	}

	// A few more stack shufflers, each only a couple of builtins long.
	line(`: nip   ( a b -- b )       swap drop ;`)
	line(`: tuck  ( a b -- b a b )   swap over ;`)
	line(`: 2dup  ( a b -- a b a b ) over over ;`)
	line(`: 2drop ( a b -- )         drop drop ;`)

	// There's no unary minus, so negation subtracts from zero.
	line(`: neg ( n -- -n ) 0 swap - ;`)

	// Lists compile into a definition as values, so a definition can carry its
	// own conditional branches; neg is bound right here, when abs compiles.
	line(`: abs ( n -- |n| ) dup 0 < [ neg ] iftrue ;`)

	line(`: min ( a b -- min ) over over > [ swap ] iftrue drop ;`)
	line(`: max ( a b -- max ) over over < [ swap ] iftrue drop ;`)
	line(`: square ( n -- n*n ) dup * ;`)

	// Counters: given a variable, bump what it holds.
	line(`: inc ( var -- ) dup @ 1 + swap ! ;`)
	line(`: dec ( var -- ) dup @ 1 - swap ! ;`)

	return n, err
}
