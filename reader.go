// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gbkf

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/gbkf/internal/datafile"
	"github.com/bpowers/gbkf/internal/mmap"
)

// ReaderOption configures a Reader.
type ReaderOption func(*readerOptions)

type readerOptions struct {
	logger *slog.Logger
}

// WithReaderLogger sets an optional logger for the reader.  If not
// provided, no logging output will be produced.
func WithReaderLogger(logger *slog.Logger) ReaderOption {
	return func(opts *readerOptions) {
		opts.logger = logger
	}
}

// Reader decodes a GBKF file held entirely in memory.  The header is
// decoded when the Reader is created; entries are decoded on the first call
// to KeyedValues or Entries and the result is kept.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	h      datafile.FileHeader
	logger *slog.Logger
	m      *mmap.ReaderAt

	decoded bool
	entries []Entry
	keyed   map[string][]Entry
	err     error
}

// NewReader returns a Reader over data, which must not be modified while
// the Reader is in use.  It fails with ErrFormat if data is shorter than a
// header or doesn't start with the GBKF magic.
func NewReader(data []byte, opts ...ReaderOption) (*Reader, error) {
	var options readerOptions
	options.logger = discardLogger()
	for _, opt := range opts {
		opt(&options)
	}

	var h datafile.FileHeader
	if err := h.UnmarshalBytes(data); err != nil {
		return nil, err
	}

	options.logger.Debug("gbkf: read header",
		"formatVersion", h.FormatVersion,
		"specificationID", h.SpecificationID,
		"specificationVersion", h.SpecificationVersion,
		"keyWidth", h.KeyWidth,
		"entryCount", h.EntryCount,
		"bytes", len(data))

	return &Reader{
		data:   data,
		h:      h,
		logger: options.logger,
	}, nil
}

// Open reads the whole file at path into memory and returns a Reader for it.
func Open(path string, opts ...ReaderOption) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s): %w", path, err)
	}
	r, err := NewReader(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// OpenMapped memory-maps the whole file at path and returns a Reader for
// it.  Decoded entries don't reference the mapping, but the Reader must be
// closed to release it.
func OpenMapped(path string, opts ...ReaderOption) (*Reader, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap.Open(%s): %w", path, err)
	}
	r, err := NewReader(m.Data(), opts...)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.m = m
	return r, nil
}

// Close releases the memory mapping, if any.  The Reader must not be used
// afterwards.
func (r *Reader) Close() error {
	r.data = nil
	if r.m == nil {
		return nil
	}
	m := r.m
	r.m = nil
	return m.Close()
}

// Header returns all the decoded header fields.
func (r *Reader) Header() Header { return r.h }

func (r *Reader) FormatVersion() uint8         { return r.h.FormatVersion }
func (r *Reader) SpecificationID() uint32      { return r.h.SpecificationID }
func (r *Reader) SpecificationVersion() uint16 { return r.h.SpecificationVersion }
func (r *Reader) KeyWidth() uint8              { return r.h.KeyWidth }
func (r *Reader) EntryCount() uint32           { return r.h.EntryCount }

func (r *Reader) decode() {
	if r.decoded {
		return
	}
	r.decoded = true

	entries, err := datafile.DecodeEntries(r.data, r.h)
	if err != nil {
		r.logger.Warn("gbkf: decoding entries failed", "err", err)
		r.err = err
		return
	}

	keyed := make(map[string][]Entry)
	for _, e := range entries {
		keyed[e.Key] = append(keyed[e.Key], e)
	}
	r.entries = entries
	r.keyed = keyed
}

// KeyedValues returns every entry grouped by key.  Entries sharing a key
// are in file order.  If any entry fails to decode no entries are returned.
// The map is shared between calls and must not be modified.
func (r *Reader) KeyedValues() (map[string][]Entry, error) {
	r.decode()
	if r.err != nil {
		return nil, r.err
	}
	return r.keyed, nil
}

// Entries returns every entry in file order.
func (r *Reader) Entries() ([]Entry, error) {
	r.decode()
	if r.err != nil {
		return nil, r.err
	}
	return r.entries, nil
}

// VerifyIntegrity reports whether the stored digest matches the header and
// entries.  A false result doesn't prevent decoding.
func (r *Reader) VerifyIntegrity() bool {
	return datafile.VerifyFooter(r.data)
}

// Fingerprint returns a 64-bit non-cryptographic fingerprint of the header
// and entries, suitable for keying caches of decoded files.
func (r *Reader) Fingerprint() uint64 {
	body, _, _ := datafile.SplitFooter(r.data)
	return farm.Fingerprint64(body)
}
