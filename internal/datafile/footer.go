// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package datafile

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Digest returns the integrity footer for body (header + entries).
func Digest(body []byte) [DigestSize]byte {
	return sha256.Sum256(body)
}

// SplitFooter separates the trailing digest from the rest of data.  ok is
// false when data is too short to contain both a header and a digest, in
// which case all of data is returned as the body.
func SplitFooter(data []byte) (body, digest []byte, ok bool) {
	if len(data) < HeaderSize+DigestSize {
		return data, nil, false
	}
	split := len(data) - DigestSize
	return data[:split], data[split:], true
}

// VerifyFooter recomputes the digest over the body of data and compares it
// to the stored one.
func VerifyFooter(data []byte) bool {
	body, stored, ok := SplitFooter(data)
	if !ok {
		return false
	}
	sum := Digest(body)
	return subtle.ConstantTimeCompare(sum[:], stored) == 1
}
