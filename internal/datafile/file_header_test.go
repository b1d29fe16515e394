// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	origH := NewFileHeader()
	require.Equal(t, uint8(DefaultFormatVersion), origH.FormatVersion)
	require.Equal(t, uint8(1), origH.KeyWidth)
	require.Zero(t, origH.EntryCount)

	origH.SpecificationID = 3
	origH.SpecificationVersion = 129
	origH.KeyWidth = 12
	origH.EntryCount = 1298

	// this should be an error
	err := origH.MarshalTo(nil)
	assert.Error(t, err)

	var newH FileHeader
	headerBytes := make([]byte, HeaderSize)
	// this should be an error -- missing magic number
	err = newH.UnmarshalBytes(headerBytes)
	assert.ErrorIs(t, err, ErrFormat)

	err = origH.MarshalTo(headerBytes)
	require.NoError(t, err)
	assert.Equal(t, []byte(Magic), headerBytes[:4])

	// this should be an error
	err = newH.UnmarshalBytes(nil)
	assert.ErrorIs(t, err, ErrFormat)

	// truncated by a single byte
	err = newH.UnmarshalBytes(headerBytes[:HeaderSize-1])
	assert.ErrorIs(t, err, ErrFormat)

	err = newH.UnmarshalBytes(headerBytes)
	require.NoError(t, err)
	assert.Equal(t, origH, newH)
}

func TestFileHeader_Bounds(t *testing.T) {
	for _, h := range []FileHeader{
		{FormatVersion: 0, SpecificationID: 0, SpecificationVersion: 0, KeyWidth: 1, EntryCount: 1},
		{FormatVersion: math.MaxUint8, SpecificationID: math.MaxUint32, SpecificationVersion: math.MaxUint16, KeyWidth: math.MaxUint8, EntryCount: math.MaxUint32},
		{FormatVersion: 10, SpecificationID: 11, SpecificationVersion: 12, KeyWidth: 13, EntryCount: 13},
	} {
		buf := make([]byte, HeaderSize)
		require.NoError(t, h.MarshalTo(buf))

		var got FileHeader
		require.NoError(t, got.UnmarshalBytes(buf))
		assert.Equal(t, h, got)
	}
}

func TestFileHeader_Layout(t *testing.T) {
	h := FileHeader{
		FormatVersion:        0x01,
		SpecificationID:      0x05040302,
		SpecificationVersion: 0x0706,
		KeyWidth:             0x08,
		EntryCount:           0x0c0b0a09,
	}
	buf := make([]byte, HeaderSize)
	require.NoError(t, h.MarshalTo(buf))

	expected := []byte{'g', 'b', 'k', 'f', 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}
	assert.Equal(t, expected, buf)
}

func TestFileHeader_ZeroKeyWidth(t *testing.T) {
	h := NewFileHeader()
	h.KeyWidth = 0
	err := h.MarshalTo(make([]byte, HeaderSize))
	assert.ErrorIs(t, err, ErrValidation)

	valid := NewFileHeader()
	buf := make([]byte, HeaderSize)
	require.NoError(t, valid.MarshalTo(buf))
	buf[keyWidthOff] = 0

	var got FileHeader
	err = got.UnmarshalBytes(buf)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFileHeader_BadMagic(t *testing.T) {
	h := NewFileHeader()
	buf := make([]byte, HeaderSize)
	require.NoError(t, h.MarshalTo(buf))
	buf[2] = 'X'

	var got FileHeader
	err := got.UnmarshalBytes(buf)
	require.ErrorIs(t, err, ErrFormat)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, 0, decErr.Off)
}

func TestFileHeader_UpdateEntryCount(t *testing.T) {
	origH := NewFileHeader()
	origH.SpecificationID = 3
	origH.KeyWidth = 2

	buf := make([]byte, HeaderSize)
	require.NoError(t, origH.MarshalTo(buf))

	const newEntryCount = uint32(999)

	err := origH.UpdateEntryCount(newEntryCount, buf)
	require.NoError(t, err)

	var newH FileHeader
	err = newH.UnmarshalBytes(buf)
	require.NoError(t, err)

	assert.Equal(t, origH, newH)
	assert.Equal(t, newEntryCount, newH.EntryCount)

	assert.Error(t, origH.UpdateEntryCount(1, buf[:HeaderSize-1]))
}
