package aiwire

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a wire record is shorter than the
// layout it claims to hold.
var ErrTruncated = errors.New("truncated wire record")

// ErrPropertyNotFound is returned by material property lookups when no
// property matches the requested key, semantic and index.
var ErrPropertyNotFound = errors.New("material property not found")

// UnknownEnumError reports a native integer that names no variant of
// the enumeration it was read for. The offending value is preserved so
// callers can decide whether to skip the entity or abort the import.
type UnknownEnumError struct {
	Enum  string
	Value int64
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s discriminant %d", e.Enum, e.Value)
}

// TooLongError reports text that exceeds a fixed-capacity native
// buffer. Truncation is never applied silently; the caller sees the
// offending length and chooses a policy.
type TooLongError struct {
	Length int
	Max    int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("string of %d bytes exceeds fixed capacity %d", e.Length, e.Max)
}
