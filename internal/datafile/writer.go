// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"errors"
	"fmt"
	"io"
)

const defaultBufferSize = 4 * 1024

// Writer accumulates a header and encoded entries in a single growable
// buffer.  Appended entries are never rewritten; only the header region is
// updated in place.
type Writer struct {
	h     FileHeader
	buf   []byte
	count uint64
}

func NewWriter() *Writer {
	w := &Writer{
		buf: make([]byte, HeaderSize, defaultBufferSize),
	}
	w.Reset()
	return w
}

// Reset drops all entries and restores the default header, reusing the
// underlying buffer.
func (w *Writer) Reset() {
	w.buf = w.buf[:HeaderSize]
	clear(w.buf)
	w.h = NewFileHeader()
	w.count = 0
	if err := w.h.MarshalTo(w.buf); err != nil {
		panic(fmt.Errorf("invariant broken: default header doesn't marshal: %w", err))
	}
}

// Header returns the header as it will be written, before any automatic
// entry count update.
func (w *Writer) Header() FileHeader {
	return w.h
}

// SetHeader validates h and writes it over the current header.
func (w *Writer) SetHeader(h FileHeader) error {
	if err := h.MarshalTo(w.buf); err != nil {
		return err
	}
	w.h = h
	return nil
}

// Count returns the number of entries appended since the last Reset.
func (w *Writer) Count() uint64 {
	return w.count
}

// Len returns the current size of the header and entries in bytes.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Append encodes e against the current key width and adds it to the buffer.
func (w *Writer) Append(e Entry) error {
	if w.count >= MaxEntryCount {
		return validationErrf("file already holds the maximum of %d entries", uint64(MaxEntryCount))
	}
	buf, err := AppendEntry(w.buf, int(w.h.KeyWidth), e)
	if err != nil {
		return err
	}
	w.buf = buf
	w.count++
	return nil
}

// Finish optionally sets the header's entry count from the number of
// appended entries and returns the body together with its digest.  The
// returned body aliases the writer's buffer.
func (w *Writer) Finish(autoUpdateCount bool) (body []byte, digest [DigestSize]byte, err error) {
	if autoUpdateCount {
		if w.count > MaxEntryCount {
			return nil, digest, errors.New("invariant broken: entry count exceeds header field")
		}
		if err := w.h.UpdateEntryCount(uint32(w.count), w.buf); err != nil {
			return nil, digest, fmt.Errorf("h.UpdateEntryCount: %w", err)
		}
	}
	return w.buf, Digest(w.buf), nil
}

// WriteTo writes the body and then the digest with two separate writes.
// The digest is computed before anything is written, so a failure leaves
// at most a body without its footer, never a footer over a partial body.
func (w *Writer) WriteTo(dst io.Writer, autoUpdateCount bool) (n int64, err error) {
	body, digest, err := w.Finish(autoUpdateCount)
	if err != nil {
		return 0, err
	}

	bodyWritten, err := dst.Write(body)
	n += int64(bodyWritten)
	if err != nil {
		return n, fmt.Errorf("write body: %w", err)
	} else if bodyWritten != len(body) {
		return n, fmt.Errorf("write body: short write of %d (wanted %d)", bodyWritten, len(body))
	}

	digestWritten, err := dst.Write(digest[:])
	n += int64(digestWritten)
	if err != nil {
		return n, fmt.Errorf("write digest: %w", err)
	} else if digestWritten != len(digest) {
		return n, fmt.Errorf("write digest: short write of %d (wanted %d)", digestWritten, len(digest))
	}

	return n, nil
}
