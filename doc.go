// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package gbkf reads and writes GBKF (keyed binary format) files.
//
// A GBKF file is a fixed 16-byte header, a sequence of keyed entries and a
// 32-byte SHA-256 digest over everything before it.  Every entry has a key
// of exactly the header's key width, a 32-bit instance id, a value type and
// a list of values of that type.  Several entries may share a key; they are
// told apart by instance id and kept in file order.
//
// Files are always handled as a single in-memory buffer.  A Writer
// accumulates entries and emits the whole file at once; a Reader takes the
// whole file, decodes the header immediately and the entries on first use.
//
// The digest is never enforced.  Call Reader.VerifyIntegrity and decide what
// to do with a mismatch.
//
// Integers are range-checked against their declared type when written and
// are never truncated.  Floats are only checked against the type's maximum.
//
// Entries are not length-prefixed: an unknown value type tag anywhere in the
// body makes the whole file undecodable.
package gbkf
