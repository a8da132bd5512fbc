// Package reflectx creates values, accesses fields and calls methods by
// name. Field access reaches unexported fields.
//
// Every failure is reported as a *FieldAccessError, *MethodCallError or
// *InstanceCreationError wrapping one of the package's sentinel errors or
// the error returned by the called code.
package reflectx

import (
	"fmt"
	"reflect"
	"unsafe"
)

var errorType = reflect.TypeFor[error]()

// New returns a pointer to a new zero value of t.
func New(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &InstanceCreationError{Type: typeName(t), Err: ErrNilType}
	}
	return reflect.New(t).Interface(), nil
}

// Construct calls the constructor function fn with args. fn must return one
// value, optionally followed by an error.
func Construct(fn any, args ...any) (any, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, &InstanceCreationError{Type: fmt.Sprintf("%T", fn), Err: ErrNotFunc}
	}
	ft := v.Type()
	name := "<func>"
	if ft.NumOut() > 0 {
		name = typeName(ft.Out(0))
	}
	if n := ft.NumOut(); n == 0 || n > 2 || (n == 2 && ft.Out(1) != errorType) {
		return nil, &InstanceCreationError{Type: name, Err: fmt.Errorf("%w: constructor must return (T) or (T, error)", ErrNotFunc)}
	}

	out, err := call(v, args)
	if err != nil {
		return nil, &InstanceCreationError{Type: name, Err: err}
	}
	return out[0].Interface(), nil
}

// ReadField returns the named field of obj, which may be a struct or a
// pointer to one.
func ReadField[T any](obj any, name string) (T, error) {
	var zero T
	f, err := field(obj, name, false)
	if err != nil {
		return zero, &FieldAccessError{Type: typeName(reflect.TypeOf(obj)), Field: name, Err: err}
	}
	v, ok := f.Interface().(T)
	if !ok && !(f.Kind() == reflect.Interface && f.IsNil()) {
		return zero, &FieldAccessError{
			Type:  typeName(reflect.TypeOf(obj)),
			Field: name,
			Err:   fmt.Errorf("%w: field is %s, want %s", ErrTypeMismatch, f.Type(), reflect.TypeFor[T]()),
		}
	}
	return v, nil
}

// WriteField sets the named field of the struct obj points to. A nil value
// stores the field's zero value.
func WriteField(obj any, name string, value any) error {
	fail := func(err error) error {
		return &FieldAccessError{Type: typeName(reflect.TypeOf(obj)), Field: name, Write: true, Err: err}
	}
	f, err := field(obj, name, true)
	if err != nil {
		return fail(err)
	}
	if value == nil {
		f.SetZero()
		return nil
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(f.Type()) {
		return fail(fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, v.Type(), f.Type()))
	}
	f.Set(v)
	return nil
}

// field locates a settable field value.
func field(obj any, name string, write bool) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return reflect.Value{}, ErrNilType
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ErrNilType
		}
		v = v.Elem()
	} else if write {
		return reflect.Value{}, ErrNotAddressable
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotStruct, v.Type())
	}
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	f := v.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, ErrNoField
	}
	if !f.CanSet() {
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f, nil
}

// Invoke calls the named exported method of obj. A trailing error result is
// returned as the call error; the first other result is returned as T.
func Invoke[T any](obj any, name string, args ...any) (T, error) {
	var zero T
	fail := func(err error) (T, error) {
		return zero, &MethodCallError{Type: typeName(reflect.TypeOf(obj)), Method: name, Err: err}
	}

	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return fail(ErrNilType)
	}
	m := v.MethodByName(name)
	if !m.IsValid() {
		return fail(ErrNoMethod)
	}

	out, err := call(m, args)
	if err != nil {
		return fail(err)
	}
	if len(out) == 0 {
		return zero, nil
	}
	res, ok := out[0].Interface().(T)
	if !ok && !(out[0].Kind() == reflect.Interface && out[0].IsNil()) {
		return fail(fmt.Errorf("%w: result is %s, want %s", ErrTypeMismatch, out[0].Type(), reflect.TypeFor[T]()))
	}
	return res, nil
}

// call invokes fn, converting args and splitting off a trailing error result.
// A panic in fn is returned as an error.
func call(fn reflect.Value, args []any) (out []reflect.Value, err error) {
	ft := fn.Type()
	in, err := arguments(ft, args)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("panic: %v", rec)
		}
	}()
	out = fn.Call(in)

	if n := len(out); n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	return out, nil
}

func arguments(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: got %d, want at least %d", ErrArguments, len(args), n-1)
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArguments, len(args), n)
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if a == nil {
			switch pt.Kind() {
			case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, fmt.Errorf("%w: argument %d is nil, want %s", ErrArguments, i, pt)
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrArguments, i, v.Type(), pt)
		}
		in[i] = v
	}
	return in, nil
}
