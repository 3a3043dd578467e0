// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Fingerprint is a 32-byte BLAKE3 digest of map content.
type Fingerprint [32]byte

// String returns the lowercase hex form.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Short returns the first 12 hex digits, enough to tell maps apart in
// listings.
func (f Fingerprint) Short() string { return f.String()[:12] }

// ParseFingerprint parses the hex form produced by String.
func ParseFingerprint(s string) (Fingerprint, error) {
	var f Fingerprint
	raw, err := hex.DecodeString(s)
	if err != nil {
		return f, fmt.Errorf("parse fingerprint: %w", err)
	}
	if len(raw) != len(f) {
		return f, fmt.Errorf("parse fingerprint: got %d bytes, want %d", len(raw), len(f))
	}
	copy(f[:], raw)
	return f, nil
}

// domainKey separates hashes of different kinds of content so equal
// bytes in different roles never share a fingerprint.
type domainKey [32]byte

// newDomainKey zero-pads an ASCII domain name to a BLAKE3 key.
func newDomainKey(name string) domainKey {
	var k domainKey
	copy(k[:], name)
	return k
}

var (
	mapDomainKey      = newDomainKey("h3m.map")
	snapshotDomainKey = newDomainKey("h3m.snapshot")
)

// FingerprintMap hashes an uncompressed map buffer. Two files with the
// same map content fingerprint equally whatever their container.
func FingerprintMap(raw []byte) Fingerprint {
	return keyedHash(mapDomainKey, raw)
}

// fingerprintSnapshot hashes a snapshot payload before compression.
func fingerprintSnapshot(payload []byte) Fingerprint {
	return keyedHash(snapshotDomainKey, payload)
}

func keyedHash(key domainKey, data []byte) Fingerprint {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		// domainKey is always 32 bytes
		panic(err)
	}
	hasher.Write(data)
	var f Fingerprint
	copy(f[:], hasher.Sum(nil))
	return f
}
