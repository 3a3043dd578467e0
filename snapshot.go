// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot layout:
//
//	offset  size  field
//	0       4     magic "H3MS"
//	4       1     layout version
//	5       1     CompressionTag
//	6       2     reserved, zero
//	8       4     uncompressed payload size
//	12      32    Fingerprint of the uncompressed payload
//	44      ...   payload, CBOR, compressed per the tag
const (
	snapshotMagic      = "H3MS"
	snapshotLayout     = 1
	snapshotHeaderSize = 44
)

// Snapshot bundles a map's bytes with its exported document so other
// tools can read the document without a map decoder. Reading a snapshot
// always rebuilds Map from Raw; the stored document is informational.
type Snapshot struct {
	Source    string    // original file name, may be empty
	Container Container // wrapping of the original file
	Raw       []byte    // uncompressed map buffer
	Map       *Map
}

type snapshotPayload struct {
	Source      string          `json:"source,omitempty"`
	Container   uint8           `json:"container"`
	Fingerprint []byte          `json:"fingerprint"`
	Raw         []byte          `json:"raw"`
	Document    cbor.RawMessage `json:"document,omitempty"`
}

// MarshalSnapshot encodes s. The document is exported from s.Map when it
// is set.
func MarshalSnapshot(s *Snapshot, tag CompressionTag) ([]byte, error) {
	fp := FingerprintMap(s.Raw)
	payload := snapshotPayload{
		Source:      s.Source,
		Container:   uint8(s.Container),
		Fingerprint: fp[:],
		Raw:         s.Raw,
	}
	if s.Map != nil {
		doc, err := ExportCBOR(s.Map)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot: %w", err)
		}
		payload.Document = doc
	}

	encoded, err := cborEncMode.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot payload: %w", err)
	}
	compressed, used, err := compressPayload(encoded, tag)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	header := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(compressed))
	copy(header[0:4], snapshotMagic)
	header[4] = snapshotLayout
	header[5] = byte(used)
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(encoded)))
	sum := fingerprintSnapshot(encoded)
	copy(header[12:44], sum[:])
	return append(header, compressed...), nil
}

// IsSnapshot reports whether data starts with the snapshot magic.
func IsSnapshot(data []byte) bool {
	return bytes.HasPrefix(data, []byte(snapshotMagic))
}

// UnmarshalSnapshot verifies and decodes a snapshot, decoding the map
// again from its stored bytes.
func (c *Codec) UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	if len(data) < snapshotHeaderSize || !IsSnapshot(data) {
		return nil, fmt.Errorf("%w: missing header", ErrBadSnapshot)
	}
	if data[4] != snapshotLayout {
		return nil, fmt.Errorf("%w: unsupported layout %d", ErrBadSnapshot, data[4])
	}
	tag := CompressionTag(data[5])
	size := binary.LittleEndian.Uint32(data[8:12])
	if uint64(size) > maxInflatedSize*2 {
		return nil, fmt.Errorf("%w: payload of %d bytes is too large", ErrBadSnapshot, size)
	}
	var want Fingerprint
	copy(want[:], data[12:44])

	encoded, err := decompressPayload(data[snapshotHeaderSize:], tag, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if got := fingerprintSnapshot(encoded); got != want {
		return nil, fmt.Errorf("%w: payload fingerprint %s, header says %s", ErrBadSnapshot, got.Short(), want.Short())
	}

	var payload snapshotPayload
	if err := cbor.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	fp := FingerprintMap(payload.Raw)
	if !bytes.Equal(payload.Fingerprint, fp[:]) {
		return nil, fmt.Errorf("%w: map bytes do not match their fingerprint", ErrBadSnapshot)
	}

	m, err := c.Decode(payload.Raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &Snapshot{
		Source:    payload.Source,
		Container: Container(payload.Container),
		Raw:       payload.Raw,
		Map:       m,
	}, nil
}

// UnmarshalSnapshot is Codec.UnmarshalSnapshot with the default codec.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	return defaultCodec.UnmarshalSnapshot(data)
}
