package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/jcorbin/goscratch/internal/runeio"
)

type ioCore struct {
	logging
	out     writeFlusher
	closers []io.Closer
}

// writeFlusher is output that may hold writes back until flushed; every run
// ends with a flush.
type writeFlusher interface {
	io.Writer
	Flush() error
}

// flushable buffers w, unless it already buffers in memory, or discards.
func flushable(w io.Writer) writeFlusher {
	switch impl := w.(type) {
	case writeFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return nopFlusher{w}
	}
	if w == ioutil.Discard {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// teeFlusher writes to, and flushes, each of its outputs in order.
type teeFlusher []writeFlusher

func (tee teeFlusher) Write(p []byte) (int, error) {
	for _, out := range tee {
		if n, err := out.Write(p); err != nil {
			return n, err
		}
	}
	return len(p), nil
}

func (tee teeFlusher) Flush() (err error) {
	for _, out := range tee {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// Close flushes output, and closes anything the engine was given to own.
func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (ioc *ioCore) writeLine(s string) error {
	_, err := runeio.WriteANSILine(ioc.out, s)
	return err
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
