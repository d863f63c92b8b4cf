package grrs

import (
	"fmt"
)

// Kind classifies the failures a search can end with.
type Kind int

const (
	// KindValidation is a rejected argument, reported before any I/O.
	KindValidation Kind = iota + 1
	// KindInput is a failure opening or reading the searched file.
	KindInput
	// KindOutput is a failure purging, opening or writing the output file.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by Grep and carries the kind of failure and the path it
// concerns, if any.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// ErrEmptyPattern is the validation failure for an empty or blank pattern.
var ErrEmptyPattern = &Error{Kind: KindValidation, Msg: "pattern appears to be empty"}

func inputError(path string, err error) *Error {
	return &Error{
		Kind: KindInput,
		Path: path,
		Msg:  fmt.Sprintf("could not read file `%s`", path),
		Err:  err,
	}
}

func outputError(path, action string, err error) *Error {
	return &Error{
		Kind: KindOutput,
		Path: path,
		Msg:  fmt.Sprintf("could not %s file '%s'", action, path),
		Err:  err,
	}
}
