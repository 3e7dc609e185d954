package portablehtml

import (
	"errors"
	"fmt"
)

var (
	ErrMissingType    = errors.New("missing _type")
	ErrInvalidType    = errors.New("invalid _type")
	ErrExpectedObject = errors.New("expected JSON object")
	ErrExpectedArray  = errors.New("expected JSON array")
	ErrInvalidMarks   = errors.New("marks must be an array of strings")
	ErrInvalidNumber  = errors.New("invalid number")
)

// Error is a path-aware decode error.
type Error struct {
	Op   string // "decode", "block", "span", "markDef"
	Path string // e.g. "[3].children[1].marks"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("portablehtml %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("portablehtml %s at %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

// MissingComponentError reports a registry lookup that found neither an exact
// entry nor a fallback. The built-in tables always define a fallback, so this
// only surfaces when a built-in table has been broken; it is never caused by
// document content.
type MissingComponentError struct {
	Namespace string
	Key       string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("portablehtml: no %s component for %q and no fallback registered", e.Namespace, e.Key)
}
