// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

// DecodeEntries decodes exactly h.EntryCount entries starting right after
// the header of data.  The entries must end exactly where the digest
// begins.  Any failure aborts the whole decode and no entries are returned.
func DecodeEntries(data []byte, h FileHeader) ([]Entry, error) {
	body, _, _ := SplitFooter(data)
	if len(body) < HeaderSize {
		return nil, decodeErrf(0, nil, "data too short for header: %d < %d", len(body), HeaderSize)
	}

	keyWidth := int(h.KeyWidth)
	if keyWidth == 0 {
		return nil, decodeErrf(keyWidthOff, nil, "key width is 0")
	}

	// a corrupted count shouldn't be able to trigger a huge allocation
	capHint := uint64(h.EntryCount)
	if maxFit := uint64((len(body) - HeaderSize) / (keyWidth + entryFixedSize)); capHint > maxFit {
		capHint = maxFit
	}
	entries := make([]Entry, 0, capHint)

	off := HeaderSize
	for i := uint32(0); i < h.EntryCount; i++ {
		e, next, err := DecodeEntry(body, off, keyWidth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		off = next
	}

	if off != len(body) {
		return nil, decodeErrf(off, nil, "%d trailing bytes after %d entries", len(body)-off, h.EntryCount)
	}

	return entries, nil
}
