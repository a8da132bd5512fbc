package typedesc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrepresentable is returned by Resolve when a node has no structural
	// description: void, type variables, error types and the like.
	// It is an expected outcome, not a failure of the resolver.
	ErrUnrepresentable = errors.New("typedesc: type is not representable")

	// ErrContract matches every *ContractError.
	ErrContract = errors.New("typedesc: type system contract violation")

	// ErrInvalidDescriptor is returned when descriptor fields break an invariant.
	ErrInvalidDescriptor = errors.New("typedesc: invalid descriptor")
)

// ContractError reports a node that breaks the type system contract,
// e.g. a declared node whose base name carries type arguments.
// It indicates a bug in the binding that produced the node.
type ContractError struct {
	// Node is the textual form of the offending node.
	Node string

	// Reason describes the violation.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *ContractError) Error() string {
	msg := fmt.Sprintf("typedesc: contract violation at %q: %s", e.Node, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ContractError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrContract) true for any ContractError.
func (e *ContractError) Is(target error) bool { return target == ErrContract }

func contractf(n Node, format string, args ...any) *ContractError {
	text := "<nil>"
	if n != nil {
		text = n.String()
	}
	return &ContractError{Node: text, Reason: fmt.Sprintf(format, args...)}
}
