package main

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexer scans words and delimited text from a rune stream. It reads only
// as far as each request needs, so immediate words may take over the input
// in the middle of a line.
type lexer struct {
	in io.RuneReader

	// ended is the space rune that ended the last word, or -1 at end of
	// input.
	ended rune
}

// fileinput yields a zero rune between queued inputs; it separates words
// like any other space.
func isSpace(r rune) bool { return r == 0 || unicode.IsSpace(r) }

// nextWord skips any leading space and returns the following run of
// non-space runes, consuming the single space that ends it.
// Returns io.EOF when no word remains.
func (lex *lexer) nextWord() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := lex.in.ReadRune()
		if err != nil {
			return "", err
		} else if !isSpace(r) {
			sb.WriteRune(r)
			break
		}
	}
	for {
		r, _, err := lex.in.ReadRune()
		if err == io.EOF {
			lex.ended = -1
			break
		} else if err != nil {
			return "", err
		} else if isSpace(r) {
			lex.ended = r
			break
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// nextCharsUpTo returns everything before the next delim, consuming the
// delimiter itself.
func (lex *lexer) nextCharsUpTo(delim rune) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := lex.in.ReadRune()
		if err == io.EOF {
			return sb.String(), eofError(strconv.QuoteRune(delim))
		} else if err != nil {
			return sb.String(), err
		} else if r == delim {
			return sb.String(), nil
		} else if r != 0 {
			sb.WriteRune(r)
		}
	}
}
