// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"fmt"
)

// FileHeader is the decoded form of the fixed 16-byte file header.
type FileHeader struct {
	FormatVersion        uint8
	SpecificationID      uint32
	SpecificationVersion uint16
	KeyWidth             uint8
	EntryCount           uint32
}

// NewFileHeader returns a header populated with the default field values.
func NewFileHeader() FileHeader {
	return FileHeader{
		FormatVersion: DefaultFormatVersion,
		KeyWidth:      1,
	}
}

// Validate checks the fields whose valid range is narrower than their Go type.
func (h *FileHeader) Validate() error {
	if h.KeyWidth == 0 {
		return validationErrf("key width must be in [1, %d], got 0", MaxKeyWidth)
	}
	return nil
}

// MarshalTo writes the header into the first HeaderSize bytes of b.
func (h *FileHeader) MarshalTo(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("header buffer too short: %d < %d", len(b), HeaderSize)
	}
	if err := h.Validate(); err != nil {
		return err
	}

	b = b[:HeaderSize]
	copy(b[magicOff:magicOff+magicSize], Magic)
	b[formatVersionOff] = h.FormatVersion
	byteOrder.PutUint32(b[specificationIDOff:], h.SpecificationID)
	byteOrder.PutUint16(b[specificationVersionOff:], h.SpecificationVersion)
	b[keyWidthOff] = h.KeyWidth
	byteOrder.PutUint32(b[entryCountOff:], h.EntryCount)

	return nil
}

// UpdateEntryCount records n as the entry count and rewrites only that
// field of an already-marshaled header.
func (h *FileHeader) UpdateEntryCount(n uint32, b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("header buffer too short: %d < %d", len(b), HeaderSize)
	}
	h.EntryCount = n
	byteOrder.PutUint32(b[entryCountOff:], n)
	return nil
}

// UnmarshalBytes decodes the header at the start of b.  The magic is checked
// before any other field.
func (h *FileHeader) UnmarshalBytes(b []byte) error {
	if len(b) < HeaderSize {
		return decodeErrf(0, nil, "data too short for header: %d < %d", len(b), HeaderSize)
	}

	b = b[:HeaderSize]

	if string(b[magicOff:magicOff+magicSize]) != Magic {
		return decodeErrf(0, nil, "bad magic %q -- not a gbkf file or corrupted", b[magicOff:magicOff+magicSize])
	}

	h.FormatVersion = b[formatVersionOff]
	h.SpecificationID = byteOrder.Uint32(b[specificationIDOff:])
	h.SpecificationVersion = byteOrder.Uint16(b[specificationVersionOff:])
	h.KeyWidth = b[keyWidthOff]
	h.EntryCount = byteOrder.Uint32(b[entryCountOff:])

	if h.KeyWidth == 0 {
		return decodeErrf(keyWidthOff, nil, "key width is 0")
	}

	return nil
}
