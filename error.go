package rascam

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedMode  = errors.New("unrecognized mode")
	ErrQualityOutOfRange = errors.New("quality out of range")
	ErrUnknownISO        = errors.New("unknown iso value")
)

// UnrecognizedModeError is returned when a mode name does not match any
// variant of the enumeration named by Kind.
type UnrecognizedModeError struct {
	Kind string
	Name string
}

func (e *UnrecognizedModeError) Error() string {
	return fmt.Sprintf("unrecognized %s mode %q", e.Kind, e.Name)
}

func (e *UnrecognizedModeError) Unwrap() error {
	return ErrUnrecognizedMode
}
