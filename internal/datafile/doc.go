// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package datafile contains the wire-level codecs for GBKF files: the
// fixed header, the per-type value encodings, keyed entries and the
// SHA-256 integrity footer.
//
// A file looks like:
//
//	┌───────────────────┐
//	│ file header (16)  │
//	├───────────────────┤
//	│ entry 1           │
//	│ ...               │
//	│ entry n           │
//	├───────────────────┤
//	│ sha256 (32)       │
//	└───────────────────┘
//
// The header is:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| 'g'  'b'  'k'  'f'|ver | spec id...   |
//	+----+----+----+----+----+----+----+----+
//	|.id | spec ver|klen| entry count       |
//	+----+----+----+----+----+----+----+----+
//
// and every entry is:
//
//	+------------+-----------------+------+-----------------+------------------------+
//	| key (klen) | instance id (4) | type | value count (4) | count * width(type)    |
//	+------------+-----------------+------+-----------------+------------------------+
//
// All multi-byte fields, including floats, are little-endian.  Entries have
// no length prefix, so a corrupted type tag makes the rest of the body
// undecodable; decoding aborts rather than guessing.
package datafile
