// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"encoding/binary"
)

// Magic is the 4-byte marker every GBKF file starts with.
const Magic = "gbkf"

// DefaultFormatVersion is the format version written by a fresh header.
// Version 1 is the little-endian layout implemented by this package.
const DefaultFormatVersion = 1

const (
	magicOff                = 0
	magicSize               = len(Magic)
	formatVersionOff        = magicOff + magicSize
	formatVersionSize       = 1
	specificationIDOff      = formatVersionOff + formatVersionSize
	specificationIDSize     = 4
	specificationVersionOff = specificationIDOff + specificationIDSize
	specificationVersionSz  = 2
	keyWidthOff             = specificationVersionOff + specificationVersionSz
	keyWidthSize            = 1
	entryCountOff           = keyWidthOff + keyWidthSize
	entryCountSize          = 4

	// HeaderSize is the fixed size of the file header in bytes.
	HeaderSize = entryCountOff + entryCountSize

	// DigestSize is the length of the SHA-256 footer.
	DigestSize = 32
)

const (
	instanceIDSize = 4
	valueTypeSize  = 1
	valueCountSize = 4

	// entryFixedSize is everything in an entry except the key and the values.
	entryFixedSize = instanceIDSize + valueTypeSize + valueCountSize

	// MaxKeyWidth is the widest key a header can declare.
	MaxKeyWidth = (1 << 8) - 1
	// MaxEntryCount is the largest entry count the header can hold.
	MaxEntryCount = (1 << 32) - 1
	// MaxValueCount is the largest number of values a single entry can hold.
	MaxValueCount = (1 << 32) - 1
)

// every multi-byte field in the file uses this order
var byteOrder = binary.LittleEndian
