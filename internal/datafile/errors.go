// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned when a caller supplies a value the format
	// cannot represent: an out-of-range number, a bad key or header field.
	ErrValidation = errors.New("gbkf: validation failed")

	// ErrFormat is returned when bytes being decoded are not a well-formed
	// GBKF file.
	ErrFormat = errors.New("gbkf: bad format")
)

// RangeError reports a value outside the representable range of its type.
type RangeError struct {
	Type  ValueType
	Value string
	Min   string
	Max   string
}

func (e *RangeError) Error() string {
	if e.Min == "" {
		return fmt.Sprintf("%s value %s > %s", e.Type, e.Value, e.Max)
	}
	return fmt.Sprintf("%s value %s outside [%s, %s]", e.Type, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrValidation
}

// UnsupportedTypeError reports a value type tag without a codec, either
// because it is unknown or because it is reserved (blob, boolean, string).
type UnsupportedTypeError struct {
	Type ValueType
}

func (e *UnsupportedTypeError) Error() string {
	if e.Type.Kind() == KindUnsupported {
		return fmt.Sprintf("value type %s (%d) is not supported", e.Type, uint8(e.Type))
	}
	return fmt.Sprintf("unknown value type %d", uint8(e.Type))
}

// DecodeError carries the byte offset at which decoding failed.  It
// always unwraps to ErrFormat.
type DecodeError struct {
	Off int
	Msg string
	Err error
}

func decodeErrf(off int, err error, format string, args ...any) error {
	return &DecodeError{Off: off, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: off %d: %s: %v", ErrFormat, e.Off, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: off %d: %s", ErrFormat, e.Off, e.Msg)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}
	return []error{ErrFormat}
}

func validationErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
