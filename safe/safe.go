// Package safe moves errors across call sites that cannot return them.
//
// Run, Get and Must turn an error into a panic carrying an *UncheckedError;
// Recover turns such a panic back into an error. TryAndClose and CloseInto
// make sure resources are closed and their close errors are not lost.
package safe

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// UncheckedError is the panic value used by Run, Get and Must.
type UncheckedError struct {
	Err error
}

func (e *UncheckedError) Error() string {
	return "unchecked: " + e.Err.Error()
}

func (e *UncheckedError) Unwrap() error { return e.Err }

// PanicError is returned by Recover for panics that did not come from this
// package.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Run calls fn and panics with an *UncheckedError if it fails.
func Run(fn func() error) {
	if err := fn(); err != nil {
		panic(&UncheckedError{Err: err})
	}
}

// Get calls fn and returns its value, panicking with an *UncheckedError if it
// fails.
func Get[T any](fn func() (T, error)) T {
	return Must(fn())
}

// Must returns v, or panics with an *UncheckedError if err is non-nil.
//
//	cfg := safe.Must(typedesc.New(c))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(&UncheckedError{Err: err})
	}
	return v
}

// Recover calls fn and converts a panic into an error. An *UncheckedError
// yields the error it carries; any other value yields a *PanicError.
func Recover(fn func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if u, ok := rec.(*UncheckedError); ok {
			err = u.Err
			return
		}
		err = &PanicError{Value: rec, Stack: debug.Stack()}
	}()
	fn()
	return nil
}

// TryAndClose opens a resource, passes it to use and closes it. A resource
// that failed to open is not closed. Errors from use and Close are joined.
// The resource is closed even if use panics.
func TryAndClose[T io.Closer](open func() (T, error), use func(T) error) (err error) {
	res, err := open()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer CloseInto(res, &err)
	return use(res)
}

// CloseInto closes c and joins any close error into *errp. It is meant to be
// deferred:
//
//	f, err := os.Open(name)
//	if err != nil {
//		return err
//	}
//	defer safe.CloseInto(f, &err)
func CloseInto(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil {
		*errp = errors.Join(*errp, fmt.Errorf("close: %w", cerr))
	}
}
