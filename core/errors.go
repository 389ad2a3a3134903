package core

import "fmt"

// DecodeError reports malformed upstream bytes: bad lengths, bad encodings,
// or an "Unspecified" enum value (spec §7).
type DecodeError struct {
	Reason string
}

func NewDecodeError(reason string) *DecodeError { return &DecodeError{Reason: reason} }

func (e *DecodeError) Error() string { return fmt.Sprintf("decode error: %s", e.Reason) }

// MergeError reports an invariant violation during a merge: address/
// component-id mismatch, cross-block merge, same-tx merge, or out-of-order
// tx indices (spec §7).
type MergeError struct {
	Reason string
}

func NewMergeError(format string, args ...interface{}) *MergeError {
	return &MergeError{Reason: fmt.Sprintf(format, args...)}
}

func (e *MergeError) Error() string { return fmt.Sprintf("merge error: %s", e.Reason) }

// ErrEmpty signals that an upstream block message carried no block payload
// (spec §7).
var ErrEmpty = fmt.Errorf("empty: upstream block message had no block payload")

// IdMismatchError signals that an account delta was applied to the wrong
// account entity (spec §7).
type IdMismatchError struct {
	Expected string
	Actual   string
}

func NewIdMismatchError(expected, actual string) *IdMismatchError {
	return &IdMismatchError{Expected: expected, Actual: actual}
}

func (e *IdMismatchError) Error() string {
	return fmt.Sprintf("id mismatch: expected %s, got %s", e.Expected, e.Actual)
}
