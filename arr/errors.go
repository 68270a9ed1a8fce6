package arr

import "errors"

// Sentinel errors returned by the reflective helpers.
var (
	// ErrNotSequence is returned by [Flatten] when its argument is not a
	// slice or array.
	ErrNotSequence = errors.New("arr: value is not a slice or array")

	// ErrCyclic is returned by [Flatten] when a slice contains itself.
	ErrCyclic = errors.New("arr: sequence contains itself")

	// ErrElementType is returned by [FlattenOf] when a leaf does not have
	// the requested type.
	ErrElementType = errors.New("arr: element has the wrong type")

	// ErrNotStruct is returned by [PluckField] when an element is not a
	// struct with the requested exported field.
	ErrNotStruct = errors.New("arr: element is not a struct with that field")

	// ErrMissingMethod is returned by [Invoke] when an element does not
	// have the named method.
	ErrMissingMethod = errors.New("arr: element has no such method")

	// ErrBadArguments is returned by [Invoke] when the supplied arguments do
	// not match the method's parameters.
	ErrBadArguments = errors.New("arr: arguments do not match method signature")
)
