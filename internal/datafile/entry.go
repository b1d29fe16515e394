// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"fmt"
)

// Entry is one keyed record: a key, an instance id disambiguating entries
// that share a key, and an ordered list of values of a single type.
//
// Exactly one of Ints, Uints or Floats is used, chosen by Type.Kind().
type Entry struct {
	Key        string
	InstanceID uint32
	Type       ValueType

	Ints   []int64
	Uints  []uint64
	Floats []float64
}

// Len returns the number of values in the entry.
func (e *Entry) Len() int {
	switch e.Type.Kind() {
	case KindSigned:
		return len(e.Ints)
	case KindUnsigned:
		return len(e.Uints)
	case KindFloat:
		return len(e.Floats)
	default:
		return 0
	}
}

// EncodedLen returns the size of e once encoded with the given key width.
func (e *Entry) EncodedLen(keyWidth int) int {
	width, _ := e.Type.Width()
	return keyWidth + entryFixedSize + e.Len()*width
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ValidateKey checks that key can be stored in a file with the given key width.
func ValidateKey(key string, keyWidth int) error {
	if key == "" {
		return validationErrf("empty key not supported")
	}
	if len(key) != keyWidth {
		return validationErrf("key %q has length %d, expected key width %d", key, len(key), keyWidth)
	}
	if !isASCII(key) {
		return validationErrf("key %q is not ASCII", key)
	}
	return nil
}

func (e *Entry) checkValues() error {
	kind := e.Type.Kind()
	if kind != KindSigned && kind != KindUnsigned && kind != KindFloat {
		return fmt.Errorf("%w: %w", ErrValidation, &UnsupportedTypeError{Type: e.Type})
	}
	if (kind != KindSigned && len(e.Ints) != 0) ||
		(kind != KindUnsigned && len(e.Uints) != 0) ||
		(kind != KindFloat && len(e.Floats) != 0) {
		return validationErrf("entry %q: values do not match %s value type %s", e.Key, kind, e.Type)
	}
	if uint64(e.Len()) > MaxValueCount {
		return validationErrf("entry %q: too many values (%d)", e.Key, e.Len())
	}
	return nil
}

// AppendEntry validates e and appends its encoding to dst.  On error dst is
// returned with its original length, so no partial entry is ever visible.
func AppendEntry(dst []byte, keyWidth int, e Entry) ([]byte, error) {
	if err := ValidateKey(e.Key, keyWidth); err != nil {
		return dst, err
	}
	if err := e.checkValues(); err != nil {
		return dst, err
	}

	start := len(dst)
	out := dst
	out = append(out, e.Key...)
	out = byteOrder.AppendUint32(out, e.InstanceID)
	out = append(out, byte(e.Type))
	out = byteOrder.AppendUint32(out, uint32(e.Len()))

	var err error
	switch e.Type.Kind() {
	case KindSigned:
		for i, v := range e.Ints {
			if out, err = appendSigned(out, e.Type, v); err != nil {
				return dst[:start], fmt.Errorf("entry %q value %d: %w", e.Key, i, err)
			}
		}
	case KindUnsigned:
		for i, v := range e.Uints {
			if out, err = appendUnsigned(out, e.Type, v); err != nil {
				return dst[:start], fmt.Errorf("entry %q value %d: %w", e.Key, i, err)
			}
		}
	case KindFloat:
		for i, v := range e.Floats {
			if out, err = appendFloat(out, e.Type, v); err != nil {
				return dst[:start], fmt.Errorf("entry %q value %d: %w", e.Key, i, err)
			}
		}
	}

	return out, nil
}

// DecodeEntry decodes the entry starting at b[off:] and returns it along with
// the offset just past it.  An unknown or unsupported value type cannot be
// skipped, since entries carry no length field.
func DecodeEntry(b []byte, off int, keyWidth int) (Entry, int, error) {
	var e Entry

	if off < 0 || off > len(b) || len(b)-off < keyWidth+entryFixedSize {
		return e, off, decodeErrf(off, nil, "truncated entry header: %d bytes left, need %d", len(b)-off, keyWidth+entryFixedSize)
	}

	key := b[off : off+keyWidth]
	for _, c := range key {
		if c >= 0x80 {
			return e, off, decodeErrf(off, nil, "key %q is not ASCII", key)
		}
	}
	e.Key = string(key)
	pos := off + keyWidth

	e.InstanceID = byteOrder.Uint32(b[pos:])
	pos += instanceIDSize
	e.Type = ValueType(b[pos])
	typeOff := pos
	pos += valueTypeSize
	count := byteOrder.Uint32(b[pos:])
	pos += valueCountSize

	width, ok := e.Type.Width()
	if !ok {
		return Entry{}, off, decodeErrf(typeOff, &UnsupportedTypeError{Type: e.Type}, "entry %q", e.Key)
	}

	if need := uint64(count) * uint64(width); uint64(len(b)-pos) < need {
		return Entry{}, off, decodeErrf(pos, nil, "entry %q: truncated values: %d bytes left, need %d", e.Key, len(b)-pos, need)
	}

	n := int(count)
	switch e.Type.Kind() {
	case KindSigned:
		e.Ints = make([]int64, n)
		for i := range e.Ints {
			e.Ints[i] = decodeSigned(b[pos:], width)
			pos += width
		}
	case KindUnsigned:
		e.Uints = make([]uint64, n)
		for i := range e.Uints {
			e.Uints[i] = decodeUnsigned(b[pos:], width)
			pos += width
		}
	case KindFloat:
		e.Floats = make([]float64, n)
		for i := range e.Floats {
			e.Floats[i] = decodeFloat(b[pos:], width)
			pos += width
		}
	}

	return e, pos, nil
}
