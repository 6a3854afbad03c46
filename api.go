package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/goscratch/internal/fileinput"
	"github.com/jcorbin/goscratch/internal/panicerr"
)

// New creates an Engine with every builtin word bound, and the prelude loaded
// unless WithPrelude(false) is given.
func New(opts ...EngineOption) *Engine {
	var e Engine
	defaultOptions.apply(&e)
	EngineOptions(opts).apply(&e)
	e.init()
	if e.prelude {
		if err := e.loadPrelude(); err != nil {
			panic(fmt.Sprintf("scratch prelude failed to load: %v", err))
		}
	}
	return &e
}

// Run executes one fragment of source text. The dictionary and data stack
// carry over from prior runs, as does a definition left open by a prior run.
func (e *Engine) Run(text string) error {
	return e.RunContext(context.Background(), text)
}

// RunContext is Run under a context that is checked between words and on
// every pass through a quotation.
func (e *Engine) RunContext(ctx context.Context, text string) error {
	return e.runLexer(ctx, &lexer{in: strings.NewReader(text)})
}

// Load executes each input in turn as one continuous stream of source text.
// Errors are annotated with the input name and line where they occurred; an
// input names itself by implementing Name() string, as *os.File does, or by
// being wrapped with NamedReader.
func (e *Engine) Load(ctx context.Context, inputs ...io.Reader) error {
	in := fileinput.Input{Queue: inputs}
	err := e.runLexer(ctx, &lexer{in: &in})
	if err != nil {
		err = fmt.Errorf("%v: %w", in.Location(), err)
	}
	return err
}

// Stack returns a copy of the data stack, bottom first.
func (e *Engine) Stack() []Value {
	return append([]Value(nil), e.data...)
}

// Lookup returns the word currently bound to name, if any.
func (e *Engine) Lookup(name string) (Word, bool) {
	return e.dict.lookup(name)
}

// Compiling returns true while a definition is left open between runs.
func (e *Engine) Compiling() bool { return e.buffer != nil }

func (e *Engine) runLexer(ctx context.Context, lex *lexer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e.ctx, e.lex = ctx, lex
	defer func() { e.lex = nil }()

	err := panicerr.Recover(e.panicName, e.run)
	if err != nil {
		e.logf("#", "abort: %v", err)
		e.reset()
	}
	if ferr := e.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// panicName names the word that was called last, since that is the one that
// failed.
func (e *Engine) panicName() string {
	if e.calling == "" {
		return "scratch"
	}
	return e.calling
}

// NamedReader attaches a name to r for the error locations reported by Load.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (e *Engine) loadPrelude() error {
	var buf bytes.Buffer
	if _, err := prelude.WriteTo(&buf); err != nil {
		return err
	}
	return e.Load(context.Background(), NamedReader(prelude.Name(), &buf))
}

// WithOutput sets where PRINT, PSTACK and WORDS write; output is discarded by
// default. A writer that is also an io.Closer is closed by Engine.Close.
func WithOutput(w io.Writer) EngineOption { return withOutput(w) }

// WithTee copies all output to w, in addition to any prior output.
func WithTee(w io.Writer) EngineOption { return withTee(w) }

// WithPrelude controls whether New loads the prelude words.
func WithPrelude(load bool) EngineOption { return withPrelude(load) }

// WithLogf sets a function to receive trace logging from the Engine.
func WithLogf(logfn func(mess string, args ...interface{})) EngineOption { return withLogfn(logfn) }
