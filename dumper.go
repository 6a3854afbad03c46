package main

import (
	"fmt"
	"io"
	"strings"
)

type engineDumper struct {
	e   *Engine
	out io.Writer

	// builtins includes primitive words in the definition listing.
	builtins bool
}

func (dump engineDumper) dump() {
	fmt.Fprintf(dump.out, "# Engine Dump\n")
	fmt.Fprintf(dump.out, "  mode: %v\n", dump.mode())
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.e.data)
	if dump.e.breaking {
		fmt.Fprintf(dump.out, "  breaking\n")
	}
	dump.dumpDests()
	dump.dumpWords()
}

func (dump engineDumper) mode() string {
	switch {
	case dump.e.compiling():
		return "compile " + dump.e.latest
	case len(dump.e.dests) > 0:
		return fmt.Sprintf("list depth %v", len(dump.e.dests))
	default:
		return "interpret"
	}
}

func (dump engineDumper) dumpDests() {
	for i, dest := range dump.e.dests {
		kind := "list"
		if dest == dump.e.buffer {
			kind = "compile"
		}
		fmt.Fprintf(dump.out, "  dest[%v] %v: %v\n", i, kind, *dest)
	}
}

func (dump engineDumper) dumpWords() {
	fmt.Fprintf(dump.out, "# Definitions\n")
	var buf strings.Builder
	for _, name := range dump.e.dict.names() {
		word, _ := dump.e.dict.lookup(name)
		buf.Reset()
		dump.formatWord(&buf, name, word)
		if buf.Len() > 0 {
			fmt.Fprintf(dump.out, "  %v\n", buf.String())
		}
	}
}

func (dump engineDumper) formatWord(buf *strings.Builder, name string, word Word) {
	switch w := word.(type) {
	case *Definition:
		buf.WriteString(": ")
		buf.WriteString(name)
		for _, item := range w.body {
			buf.WriteByte(' ')
			buf.WriteString(repr(item))
		}
		buf.WriteString(" ;")

	case *Variable:
		buf.WriteString("VAR ")
		buf.WriteString(name)
		if w.value != nil {
			buf.WriteString(" ( = ")
			buf.WriteString(repr(w.value))
			buf.WriteString(" )")
		}

	case *Constant:
		buf.WriteString(repr(w.value))
		buf.WriteString(" CONST ")
		buf.WriteString(name)

	default:
		if dump.builtins {
			buf.WriteString(name)
			if word.Immediate() {
				buf.WriteString(" immediate")
			}
		}
	}
}
