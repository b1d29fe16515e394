// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gbkf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bpowers/gbkf/internal/datafile"
)

// WriterOption configures a Writer.
type WriterOption func(*writerOptions)

type writerOptions struct {
	logger *slog.Logger
}

// WithWriterLogger sets an optional logger the writer reports file writes to.
// If not provided, no logging output will be produced.
func WithWriterLogger(logger *slog.Logger) WriterOption {
	return func(opts *writerOptions) {
		opts.logger = logger
	}
}

// Writer builds a GBKF file in memory.  Entries are validated and encoded
// as they are added; nothing touches a destination until Encode or
// WriteFile is called.
type Writer struct {
	dw     *datafile.Writer
	keys   stringSet
	logger *slog.Logger
}

// NewWriter returns a Writer with a default header and no entries.
func NewWriter(opts ...WriterOption) *Writer {
	var options writerOptions
	options.logger = discardLogger()
	for _, opt := range opts {
		opt(&options)
	}
	return &Writer{
		dw:     datafile.NewWriter(),
		keys:   make(stringSet),
		logger: options.logger,
	}
}

// Reset drops all entries and restores the default header values.
func (w *Writer) Reset() {
	w.dw.Reset()
	w.keys = make(stringSet)
}

func (w *Writer) updateHeader(update func(h *Header)) error {
	h := w.dw.Header()
	update(&h)
	return w.dw.SetHeader(h)
}

// SetFormatVersion sets the GBKF format version field.
func (w *Writer) SetFormatVersion(v uint8) {
	// every uint8 is valid, so this can't fail
	_ = w.updateHeader(func(h *Header) { h.FormatVersion = v })
}

// SetSpecificationID sets the id of the caller-defined schema the entries follow.
func (w *Writer) SetSpecificationID(id uint32) {
	_ = w.updateHeader(func(h *Header) { h.SpecificationID = id })
}

// SetSpecificationVersion sets the version of the caller-defined schema.
func (w *Writer) SetSpecificationVersion(v uint16) {
	_ = w.updateHeader(func(h *Header) { h.SpecificationVersion = v })
}

// SetKeyWidth sets the length every key must have.  It fails if width is 0
// or if entries with keys of another length have already been added.
func (w *Writer) SetKeyWidth(width uint8) error {
	if !w.keys.AllLen(int(width)) {
		return fmt.Errorf("%w: can't set key width to %d: entries with keys of another length exist", ErrValidation, width)
	}
	return w.updateHeader(func(h *Header) { h.KeyWidth = width })
}

// SetEntryCount sets the entry count field.  It is overwritten on write
// unless automatic count updates are disabled.
func (w *Writer) SetEntryCount(n uint32) {
	_ = w.updateHeader(func(h *Header) { h.EntryCount = n })
}

// Header returns the current header fields.
func (w *Writer) Header() Header { return w.dw.Header() }

func (w *Writer) FormatVersion() uint8         { return w.dw.Header().FormatVersion }
func (w *Writer) SpecificationID() uint32      { return w.dw.Header().SpecificationID }
func (w *Writer) SpecificationVersion() uint16 { return w.dw.Header().SpecificationVersion }
func (w *Writer) KeyWidth() uint8              { return w.dw.Header().KeyWidth }
func (w *Writer) EntryCount() uint32           { return w.dw.Header().EntryCount }

// Len returns the number of entries added since the writer was created or reset.
func (w *Writer) Len() int {
	return int(w.dw.Count())
}

// AddEntry validates e and appends it.  Keys may repeat; entries sharing a
// key are distinguished by instance id.
func (w *Writer) AddEntry(e Entry) error {
	if err := w.dw.Append(e); err != nil {
		return err
	}
	if !w.keys.Contains(e.Key) {
		w.keys.Add(e.Key)
	}
	return nil
}

// AddInts adds an entry of signed integers.  t must be one of Int8, Int16,
// Int32 or Int64 and every value must fit in it.
func (w *Writer) AddInts(key string, instanceID uint32, t ValueType, values []int64) error {
	return w.AddEntry(Entry{Key: key, InstanceID: instanceID, Type: t, Ints: values})
}

// AddUints adds an entry of unsigned integers.  t must be one of Uint8,
// Uint16, Uint32 or Uint64 and every value must fit in it.
func (w *Writer) AddUints(key string, instanceID uint32, t ValueType, values []uint64) error {
	return w.AddEntry(Entry{Key: key, InstanceID: instanceID, Type: t, Uints: values})
}

// AddFloats adds an entry of Float32 or Float64 values.
func (w *Writer) AddFloats(key string, instanceID uint32, t ValueType, values []float64) error {
	return w.AddEntry(Entry{Key: key, InstanceID: instanceID, Type: t, Floats: values})
}

// Encode writes the complete file to dst: the header and entries first,
// then the digest as a second write.  If autoUpdateCount is set the entry
// count field is first set to the number of added entries.
func (w *Writer) Encode(dst io.Writer, autoUpdateCount bool) (int64, error) {
	n, err := w.dw.WriteTo(dst, autoUpdateCount)
	if err != nil {
		return n, err
	}
	w.logger.Debug("gbkf: encoded file",
		"entries", w.dw.Count(),
		"entryCount", w.dw.Header().EntryCount,
		"bytes", n)
	return n, nil
}

// Bytes returns the complete encoded file.
func (w *Writer) Bytes(autoUpdateCount bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(w.dw.Len() + DigestSize)
	if _, err := w.Encode(&buf, autoUpdateCount); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the complete file to path.  The data goes to a temporary
// file in the same directory which is renamed over path only once both the
// body and digest are on disk.
func (w *Writer) WriteFile(path string, autoUpdateCount bool) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "gbkf-writer.*.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}
	tmpPath := f.Name()
	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmpPath)
	}

	n, err := w.Encode(f, autoUpdateCount)
	if err != nil {
		cleanup()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("f.Close: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Chmod(0644): %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("os.Rename: %w", err)
	}

	w.logger.Debug("gbkf: wrote file", "path", path, "bytes", n)
	return nil
}
