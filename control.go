package main

import "math"

// Flow is the result of calling a word, telling the enclosing quotation how
// to proceed.
type Flow int

const (
	// Completed continues with the next item.
	Completed Flow = iota

	// Restart jumps back to the first item of the running quotation.
	Restart

	// Terminate ends the running quotation early.
	Terminate
)

var flowNames = [...]string{
	Completed: "completed",
	Restart:   "restart",
	Terminate: "terminate",
}

func (f Flow) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "invalid flow"
}

// RUN ( q -- ... )
func (e *Engine) runQuotation() error {
	if err := e.need(1); err != nil {
		return err
	}
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	return e.exec(q)
}

// TIMES ( q n -- ... )
func (e *Engine) times() error {
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
	for i, count := 0.0, math.Trunc(float64(n)); i < count; i++ {
		if err := e.exec(q); err != nil {
			return err
		}
	}
	return nil
}

// conditional pops a quotation and then a boolean, running the quotation
// when the boolean matches when.
func (e *Engine) conditional(when Boolean) error {
	if err := e.need(2); err != nil {
		return err
	}
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	b, err := e.popBoolean()
	if err != nil {
		return err
	}
	if b == when {
		return e.exec(q)
	}
	return nil
}

func (e *Engine) ifTrue() error  { return e.conditional(true) }
func (e *Engine) ifFalse() error { return e.conditional(false) }

// WHILE ( cond body -- ... ) runs cond, then pops a boolean: true ends the
// loop, false runs body and goes around again.
func (e *Engine) while() error {
	if err := e.need(2); err != nil {
		return err
	}
	body, err := e.popQuotation()
	if err != nil {
		return err
	}
	cond, err := e.popQuotation()
	if err != nil {
		return err
	}
	for {
		if err := e.exec(cond); err != nil {
			return err
		}
		if err := e.need(1); err != nil {
			return err
		}
		done, err := e.popBoolean()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := e.exec(body); err != nil {
			return err
		}
	}
}

// LOOP ( q -- ... ) runs q over and over until ?BREAK fires within it.
// An enclosing LOOP's break state is saved and restored around it.
func (e *Engine) loop() error {
	if err := e.need(1); err != nil {
		return err
	}
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	defer func(saved bool) { e.breaking = saved }(e.breaking)
	e.breaking = false
	for !e.breaking {
		if err := e.exec(q); err != nil {
			return err
		}
	}
	return nil
}

// ?CONTINUE ( b -- ) restarts the running quotation when b is true.
func (e *Engine) continueIf() (Flow, error) {
	if err := e.need(1); err != nil {
		return Completed, err
	}
	b, err := e.popBoolean()
	if err != nil {
		return Completed, err
	}
	if b {
		return Restart, nil
	}
	return Completed, nil
}

// ?BREAK ( b -- ) ends the running quotation and the innermost LOOP when b
// is true.
func (e *Engine) breakIf() (Flow, error) {
	if err := e.need(1); err != nil {
		return Completed, err
	}
	b, err := e.popBoolean()
	if err != nil {
		return Completed, err
	}
	if b {
		e.breaking = true
		return Terminate, nil
	}
	return Completed, nil
}
