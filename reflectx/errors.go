package reflectx

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type or object is provided.
	ErrNilType = errors.New("reflectx: nil type")
	// ErrNotStruct is returned when field access targets a non-struct value.
	ErrNotStruct = errors.New("reflectx: not a struct")
	// ErrNotAddressable is returned when writing a field of a value that was
	// not passed by pointer.
	ErrNotAddressable = errors.New("reflectx: value is not addressable")
	// ErrNoField is returned when a struct has no field with the given name.
	ErrNoField = errors.New("reflectx: no such field")
	// ErrNoMethod is returned when a value has no method with the given name.
	ErrNoMethod = errors.New("reflectx: no such method")
	// ErrNotFunc is returned when a constructor is not a function.
	ErrNotFunc = errors.New("reflectx: not a function")
	// ErrArguments is returned when call arguments do not fit the signature.
	ErrArguments = errors.New("reflectx: bad arguments")
	// ErrTypeMismatch is returned when a value does not have the requested type.
	ErrTypeMismatch = errors.New("reflectx: type mismatch")
	// ErrEmptyName is returned when registering a type under an empty name.
	ErrEmptyName = errors.New("reflectx: empty name")
	// ErrConflictingRegistration indicates an attempt to register a name twice
	// with different types.
	ErrConflictingRegistration = errors.New("reflectx: conflicting type registration")
	// ErrUnknownType is returned by NewByName for unregistered names.
	ErrUnknownType = errors.New("reflectx: unknown type")
)

// FieldAccessError reports a failed field read or write.
type FieldAccessError struct {
	Type  string
	Field string
	Write bool
	Err   error
}

func (e *FieldAccessError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("unable to %s field %s#%s: %v", op, e.Type, e.Field, e.Err)
}

func (e *FieldAccessError) Unwrap() error { return e.Err }

// MethodCallError reports a failed method call.
type MethodCallError struct {
	Type   string
	Method string
	Err    error
}

func (e *MethodCallError) Error() string {
	return fmt.Sprintf("unable to call %s#%s: %v", e.Type, e.Method, e.Err)
}

func (e *MethodCallError) Unwrap() error { return e.Err }

// InstanceCreationError reports a failed instantiation.
type InstanceCreationError struct {
	Type string
	Err  error
}

func (e *InstanceCreationError) Error() string {
	return fmt.Sprintf("unable to create instance of %s: %v", e.Type, e.Err)
}

func (e *InstanceCreationError) Unwrap() error { return e.Err }

// typeName returns the short name used in error messages: the name of the
// type, or of the type it points to.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
