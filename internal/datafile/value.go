// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"math"
	"strconv"
)

// appendSigned appends the width-byte two's-complement encoding of v,
// after checking v against t's bounds.
func appendSigned(dst []byte, t ValueType, v int64) ([]byte, error) {
	info := t.info()
	if info.kind != KindSigned {
		return dst, &UnsupportedTypeError{Type: t}
	}
	if v < info.minInt || v > info.maxInt {
		return dst, &RangeError{
			Type:  t,
			Value: strconv.FormatInt(v, 10),
			Min:   strconv.FormatInt(info.minInt, 10),
			Max:   strconv.FormatInt(info.maxInt, 10),
		}
	}
	return appendFixed(dst, info.width, uint64(v)), nil
}

// appendUnsigned appends the width-byte encoding of v after checking it
// against t's maximum.
func appendUnsigned(dst []byte, t ValueType, v uint64) ([]byte, error) {
	info := t.info()
	if info.kind != KindUnsigned {
		return dst, &UnsupportedTypeError{Type: t}
	}
	if v > info.maxUint {
		return dst, &RangeError{
			Type:  t,
			Value: strconv.FormatUint(v, 10),
			Min:   "0",
			Max:   strconv.FormatUint(info.maxUint, 10),
		}
	}
	return appendFixed(dst, info.width, v), nil
}

// appendFloat appends the IEEE-754 encoding of v.  Only the upper bound is
// checked: +Inf is rejected, while -Inf, NaN and large negative values are
// encoded as-is.
func appendFloat(dst []byte, t ValueType, v float64) ([]byte, error) {
	info := t.info()
	if info.kind != KindFloat {
		return dst, &UnsupportedTypeError{Type: t}
	}
	if v > info.maxFloat {
		return dst, &RangeError{
			Type:  t,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
			Max:   strconv.FormatFloat(info.maxFloat, 'g', -1, 64),
		}
	}
	if info.width == 4 {
		return byteOrder.AppendUint32(dst, math.Float32bits(float32(v))), nil
	}
	return byteOrder.AppendUint64(dst, math.Float64bits(v)), nil
}

// appendFixed appends the low width bytes of v.  Callers have already
// range-checked v, so nothing significant is dropped.
func appendFixed(dst []byte, width int, v uint64) []byte {
	switch width {
	case 1:
		return append(dst, byte(v))
	case 2:
		return byteOrder.AppendUint16(dst, uint16(v))
	case 4:
		return byteOrder.AppendUint32(dst, uint32(v))
	default:
		return byteOrder.AppendUint64(dst, v)
	}
}

// decodeSigned interprets the first width bytes of b as a two's-complement
// integer and sign-extends it.
func decodeSigned(b []byte, width int) int64 {
	switch width {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(byteOrder.Uint16(b)))
	case 4:
		return int64(int32(byteOrder.Uint32(b)))
	default:
		return int64(byteOrder.Uint64(b))
	}
}

func decodeUnsigned(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(byteOrder.Uint16(b))
	case 4:
		return uint64(byteOrder.Uint32(b))
	default:
		return byteOrder.Uint64(b)
	}
}

func decodeFloat(b []byte, width int) float64 {
	if width == 4 {
		return float64(math.Float32frombits(byteOrder.Uint32(b)))
	}
	return math.Float64frombits(byteOrder.Uint64(b))
}
