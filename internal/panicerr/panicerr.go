// Package panicerr runs functions on their own goroutine, turning a panic or
// a runtime.Goexit call into an ordinary error return.
package panicerr

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Error is a recovered panic, or a recovered runtime.Goexit call.
type Error struct {
	// Name says what was running when things went wrong.
	Name string

	// Value is what was passed to panic; it is nil after Goexit.
	Value interface{}

	// Stack is the panicking goroutine's stack trace.
	Stack []byte

	Exit bool
}

func (pe *Error) Error() string { return fmt.Sprint(pe) }

// Format adds the stack trace under the %+v verb.
func (pe *Error) Format(f fmt.State, c rune) {
	switch {
	case pe.Exit && pe.Name == "":
		io.WriteString(f, "runtime.Goexit called")
	case pe.Exit:
		fmt.Fprintf(f, "%v called runtime.Goexit", pe.Name)
	case pe.Name == "":
		fmt.Fprintf(f, "panic: %v", pe.Value)
	default:
		fmt.Fprintf(f, "%v panicked: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') && len(pe.Stack) > 0 {
		fmt.Fprintf(f, "\npanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// Recover runs f on a new goroutine and waits for it to return. If f panics
// or calls runtime.Goexit instead, an *Error is returned; name is called
// only then, so it may describe how far f got.
func Recover(name func() string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			pe := &Error{Name: name()}
			if pe.Value = recover(); pe.Value != nil {
				pe.Stack = debug.Stack()
			} else {
				pe.Exit = true
			}
			errch <- pe
		}()
		err := f()
		returned = true
		errch <- err
	}()
	return <-errch
}

// IsPanic returns true if err wraps a recovered panic.
func IsPanic(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && !pe.Exit
}

// IsExit returns true if err wraps a recovered runtime.Goexit.
func IsExit(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Exit
}

// PanicStack returns the stack trace of a recovered panic, or "" if err is
// not one.
func PanicStack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
