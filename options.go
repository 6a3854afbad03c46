package main

import (
	"io"
	"io/ioutil"
)

// EngineOption configures an Engine under New.
type EngineOption interface{ apply(e *Engine) }

// EngineOptions combines any number of options into one.
type EngineOptions []EngineOption

var defaultOptions = EngineOptions{
	withOutput(ioutil.Discard),
	withPrelude(true),
}

func (opts EngineOptions) apply(e *Engine) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(e *Engine) {
	e.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type preludeOption bool

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }
func withPrelude(load bool) preludeOption { return preludeOption(load) }

func (o outputOption) apply(e *Engine) {
	if e.out != nil {
		e.out.Flush()
	}
	e.out = flushable(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		e.closers = append(e.closers, cl)
	}
}

func (o teeOption) apply(e *Engine) {
	tee, ok := e.out.(teeFlusher)
	if !ok && e.out != nil {
		tee = teeFlusher{e.out}
	}
	e.out = append(tee, flushable(o.Writer))
}

func (load preludeOption) apply(e *Engine) {
	e.prelude = bool(load)
}
