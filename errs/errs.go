// Package errs defines the errors returned by the bjevko codec.
//
// Decode failures are reported as *DecodeError values. Each carries a Kind from a
// closed set together with the numeric context of the failure, so callers never
// need to parse messages:
//
//	seq, err := affix.Decode(buf)
//	var de *errs.DecodeError
//	if errors.As(err, &de) && de.Kind == errs.KindTruncatedInput {
//	    fmt.Printf("need %d more bytes at offset %d\n", de.Count, de.Offset)
//	}
//
// A DecodeError also matches its sentinel through errors.Is:
//
//	if errors.Is(err, errs.ErrTrailingBytes) { ... }
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is matched by decode errors where fewer bytes remain than a field declares.
	ErrTruncatedInput = errors.New("bjevko: truncated input")
	// ErrTrailingBytes is matched by decode errors where bytes follow the terminating record.
	ErrTrailingBytes = errors.New("bjevko: trailing bytes")
	// ErrUnclosedDepth is matched by decode errors where input ends with positive depth.
	ErrUnclosedDepth = errors.New("bjevko: unclosed depth")

	// ErrInvalidOption is wrapped by config validation rejecting an option value.
	ErrInvalidOption = errors.New("bjevko: invalid option")
)

// Kind enumerates the ways a decode call can fail.
type Kind uint8

const (
	KindTruncatedInput Kind = iota + 1 // not enough bytes for a declared field
	KindTrailingBytes                  // bytes left after the terminating record
	KindUnclosedDepth                  // input ended while depth was positive
)

func (k Kind) String() string {
	switch k {
	case KindTruncatedInput:
		return "TruncatedInput"
	case KindTrailingBytes:
		return "TrailingBytes"
	case KindUnclosedDepth:
		return "UnclosedDepth"
	default:
		return "Unknown"
	}
}

// sentinel returns the package level error matched by errors.Is for k.
func (k Kind) sentinel() error {
	switch k {
	case KindTruncatedInput:
		return ErrTruncatedInput
	case KindTrailingBytes:
		return ErrTrailingBytes
	case KindUnclosedDepth:
		return ErrUnclosedDepth
	default:
		return nil
	}
}

// DecodeError describes a rejected buffer.
//
// Count is interpreted per Kind:
//   - KindTruncatedInput: number of missing bytes
//   - KindTrailingBytes: number of leftover bytes
//   - KindUnclosedDepth: number of missing closing records
//
// Offset is the byte position in the input at which the failure was detected:
// the start of the short field or of the leftover bytes.
type DecodeError struct {
	Kind   Kind
	Offset int
	Count  int
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindTruncatedInput:
		return fmt.Sprintf("%s: expected at least %d more bytes at offset %d", ErrTruncatedInput, e.Count, e.Offset)
	case KindTrailingBytes:
		return fmt.Sprintf("%s: unexpected %d bytes left at offset %d", ErrTrailingBytes, e.Count, e.Offset)
	case KindUnclosedDepth:
		return fmt.Sprintf("%s: expected %d closers at offset %d", ErrUnclosedDepth, e.Count, e.Offset)
	default:
		return fmt.Sprintf("bjevko: decode error kind %d at offset %d", e.Kind, e.Offset)
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *DecodeError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// At returns a copy of e with Offset moved by base. It turns an offset relative
// to a sub-slice into an offset in the enclosing buffer.
func (e *DecodeError) At(base int) *DecodeError {
	out := *e
	out.Offset += base

	return &out
}

// Truncated returns a KindTruncatedInput error missing need bytes at offset.
func Truncated(offset, need int) *DecodeError {
	return &DecodeError{Kind: KindTruncatedInput, Offset: offset, Count: need}
}

// Trailing returns a KindTrailingBytes error for left bytes starting at offset.
func Trailing(offset, left int) *DecodeError {
	return &DecodeError{Kind: KindTrailingBytes, Offset: offset, Count: left}
}

// Unclosed returns a KindUnclosedDepth error missing closers at offset.
func Unclosed(offset, closers int) *DecodeError {
	return &DecodeError{Kind: KindUnclosedDepth, Offset: offset, Count: closers}
}
