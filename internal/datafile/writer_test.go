// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type safeBuffer struct {
	buf    []byte
	writes int
}

func (s *safeBuffer) Write(p []byte) (n int, err error) {
	s.buf = append(s.buf, p...)
	s.writes++
	return len(p), nil
}

// testWriter fails every write after the first failAfter succeed.
type testWriter struct {
	inner     *safeBuffer
	failAfter int
	short     bool
}

func (c *testWriter) Write(p []byte) (n int, err error) {
	if c.inner.writes >= c.failAfter {
		if c.short {
			return len(p) / 2, nil
		}
		return 0, errors.New("write failed")
	}
	return c.inner.Write(p)
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, NewFileHeader(), w.Header())
	assert.Equal(t, uint64(0), w.Count())
	assert.Equal(t, HeaderSize, w.Len())

	body, digest, err := w.Finish(true)
	require.NoError(t, err)
	require.Len(t, body, HeaderSize)
	assert.Equal(t, Digest(body), digest)

	var h FileHeader
	require.NoError(t, h.UnmarshalBytes(body))
	assert.Equal(t, NewFileHeader(), h)
}

func TestWriter_AppendAndFinish(t *testing.T) {
	w := NewWriter()
	h := w.Header()
	h.KeyWidth = 2
	require.NoError(t, w.SetHeader(h))

	require.NoError(t, w.Append(Entry{Key: "UI", InstanceID: 1, Type: Uint8, Uints: []uint64{1, 2}}))
	require.NoError(t, w.Append(Entry{Key: "UI", InstanceID: 2, Type: Int16, Ints: []int64{-1}}))
	sizeBefore := w.Len()

	// a failed append leaves the buffer alone
	err := w.Append(Entry{Key: "UI", InstanceID: 3, Type: Int8, Ints: []int64{1000}})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, sizeBefore, w.Len())
	assert.Equal(t, uint64(2), w.Count())

	// without auto update the header keeps its manual count
	body, _, err := w.Finish(false)
	require.NoError(t, err)
	var got FileHeader
	require.NoError(t, got.UnmarshalBytes(body))
	assert.Equal(t, uint32(0), got.EntryCount)

	body, digest, err := w.Finish(true)
	require.NoError(t, err)
	require.NoError(t, got.UnmarshalBytes(body))
	assert.Equal(t, uint32(2), got.EntryCount)
	assert.Equal(t, Digest(body), digest)

	entries, err := DecodeEntries(append(body, digest[:]...), got)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []uint64{1, 2}, entries[0].Uints)
	assert.Equal(t, []int64{-1}, entries[1].Ints)
}

func TestWriter_SetHeaderInvalid(t *testing.T) {
	w := NewWriter()
	h := w.Header()
	h.KeyWidth = 0
	assert.ErrorIs(t, w.SetHeader(h), ErrValidation)
	assert.Equal(t, uint8(1), w.Header().KeyWidth)
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter()
	h := w.Header()
	h.SpecificationID = 42
	h.KeyWidth = 3
	require.NoError(t, w.SetHeader(h))
	require.NoError(t, w.Append(Entry{Key: "abc", Type: Float32, Floats: []float64{1}}))

	w.Reset()
	assert.Equal(t, NewFileHeader(), w.Header())
	assert.Equal(t, uint64(0), w.Count())
	assert.Equal(t, HeaderSize, w.Len())

	body, _, err := w.Finish(true)
	require.NoError(t, err)
	var got FileHeader
	require.NoError(t, got.UnmarshalBytes(body))
	assert.Equal(t, NewFileHeader(), got)
}

func TestWriter_WriteTo(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Append(Entry{Key: "K", Type: Uint32, Uints: []uint64{7}}))

	var out safeBuffer
	n, err := w.WriteTo(&out, true)
	require.NoError(t, err)
	assert.Equal(t, int64(len(out.buf)), n)
	// body and digest are separate writes
	assert.Equal(t, 2, out.writes)
	assert.True(t, VerifyFooter(out.buf))
}

func TestWriter_WriteToErrors(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Append(Entry{Key: "K", Type: Uint32, Uints: []uint64{7}}))

	for _, tc := range []struct {
		name      string
		failAfter int
		short     bool
	}{
		{"body fails", 0, false},
		{"digest fails", 1, false},
		{"body short", 0, true},
		{"digest short", 1, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inner := &safeBuffer{}
			_, err := w.WriteTo(&testWriter{inner: inner, failAfter: tc.failAfter, short: tc.short}, true)
			assert.Error(t, err)
			// a digest is never written without the full body before it
			assert.LessOrEqual(t, inner.writes, 1)
		})
	}
}
