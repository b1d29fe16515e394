// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gbkf

import (
	"github.com/bpowers/gbkf/internal/datafile"
)

// ValueType is the tag identifying the type of an entry's values.
type ValueType = datafile.ValueType

// Kind groups value types by representation.
type Kind = datafile.Kind

// Entry is one keyed record.  See the package documentation for its layout.
type Entry = datafile.Entry

// Header holds the decoded file header fields.
type Header = datafile.FileHeader

// Supported value types.
const (
	Int8  = datafile.Int8
	Int16 = datafile.Int16
	Int32 = datafile.Int32
	Int64 = datafile.Int64

	Uint8  = datafile.Uint8
	Uint16 = datafile.Uint16
	Uint32 = datafile.Uint32
	Uint64 = datafile.Uint64

	Float32 = datafile.Float32
	Float64 = datafile.Float64
)

// Reserved value types.  They are part of the type table but can be neither
// written nor read.
const (
	Blob    = datafile.Blob
	Boolean = datafile.Boolean
	String  = datafile.String
)

const (
	KindInvalid     = datafile.KindInvalid
	KindUnsupported = datafile.KindUnsupported
	KindSigned      = datafile.KindSigned
	KindUnsigned    = datafile.KindUnsigned
	KindFloat       = datafile.KindFloat
)

const (
	// HeaderSize is the size of the fixed file header.
	HeaderSize = datafile.HeaderSize
	// DigestSize is the size of the trailing SHA-256 digest.
	DigestSize = datafile.DigestSize
	// DefaultFormatVersion is the format version a new Writer declares.
	DefaultFormatVersion = datafile.DefaultFormatVersion
)

var (
	// ErrValidation is returned, possibly wrapped, when a value, key or
	// header field can't be represented in the format.
	ErrValidation = datafile.ErrValidation
	// ErrFormat is returned, possibly wrapped, when decoding malformed data.
	ErrFormat = datafile.ErrFormat
)

type (
	RangeError           = datafile.RangeError
	UnsupportedTypeError = datafile.UnsupportedTypeError
	DecodeError          = datafile.DecodeError
)
