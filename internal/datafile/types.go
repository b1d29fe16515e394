// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"fmt"
	"math"
)

// ValueType is the 1-byte tag identifying the type of every value in an entry.
type ValueType uint8

// Tag values are part of the wire format and must never be renumbered.
const (
	Blob    ValueType = 1
	Boolean ValueType = 2

	String ValueType = 10

	Int8  ValueType = 20
	Int32 ValueType = 21
	Int16 ValueType = 22
	Int64 ValueType = 23

	Uint8  ValueType = 30
	Uint16 ValueType = 31
	Uint32 ValueType = 33
	Uint64 ValueType = 34

	Float32 ValueType = 40
	Float64 ValueType = 41
)

// Kind groups value types by how their values are represented.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindUnsupported types are reserved in the table but have no codec.
	KindUnsupported
	KindSigned
	KindUnsigned
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

type typeInfo struct {
	name  string
	kind  Kind
	width int

	// only the bounds matching kind are meaningful
	minInt   int64
	maxInt   int64
	maxUint  uint64
	maxFloat float64
}

var typeTable = [...]typeInfo{
	Blob:    {name: "blob", kind: KindUnsupported},
	Boolean: {name: "boolean", kind: KindUnsupported},
	String:  {name: "string", kind: KindUnsupported},

	Int8:  {name: "int8", kind: KindSigned, width: 1, minInt: math.MinInt8, maxInt: math.MaxInt8},
	Int16: {name: "int16", kind: KindSigned, width: 2, minInt: math.MinInt16, maxInt: math.MaxInt16},
	Int32: {name: "int32", kind: KindSigned, width: 4, minInt: math.MinInt32, maxInt: math.MaxInt32},
	Int64: {name: "int64", kind: KindSigned, width: 8, minInt: math.MinInt64, maxInt: math.MaxInt64},

	Uint8:  {name: "uint8", kind: KindUnsigned, width: 1, maxUint: math.MaxUint8},
	Uint16: {name: "uint16", kind: KindUnsigned, width: 2, maxUint: math.MaxUint16},
	Uint32: {name: "uint32", kind: KindUnsigned, width: 4, maxUint: math.MaxUint32},
	Uint64: {name: "uint64", kind: KindUnsigned, width: 8, maxUint: math.MaxUint64},

	Float32: {name: "float32", kind: KindFloat, width: 4, maxFloat: math.MaxFloat32},
	Float64: {name: "float64", kind: KindFloat, width: 8, maxFloat: math.MaxFloat64},
}

func (t ValueType) info() typeInfo {
	if int(t) >= len(typeTable) {
		return typeInfo{}
	}
	return typeTable[t]
}

// Kind reports how values of t are represented, or KindInvalid for
// tags that are not in the type table.
func (t ValueType) Kind() Kind {
	return t.info().kind
}

// Width returns the encoded size of a single value of type t.  ok is
// false for unknown and unsupported types.
func (t ValueType) Width() (width int, ok bool) {
	info := t.info()
	return info.width, info.width > 0
}

// Supported reports whether values of type t can be encoded and decoded.
func (t ValueType) Supported() bool {
	switch t.Kind() {
	case KindSigned, KindUnsigned, KindFloat:
		return true
	default:
		return false
	}
}

func (t ValueType) String() string {
	if name := t.info().name; name != "" {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", uint8(t))
}
