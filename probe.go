// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"fmt"
	"os"
)

// ProbeInfo summarizes a map without decoding past its header.
type ProbeInfo struct {
	Header      Header      `json:"header"`
	Container   Container   `json:"-"`
	Size        int         `json:"size"` // uncompressed bytes
	Fingerprint Fingerprint `json:"-"`
}

// Probe decodes only the header of an uncompressed map buffer. It is
// enough to list maps by name, size and format without paying for the
// terrain and object sections.
func (c *Codec) Probe(data []byte) (*ProbeInfo, error) {
	d := &decoder{c: NewByteCursor(data, c.encoding()), log: c.logger()}
	h := d.readHeader()
	if d.err != nil {
		return nil, fmt.Errorf("probe header: %w", d.err)
	}
	return &ProbeInfo{
		Header:      h,
		Size:        len(data),
		Fingerprint: FingerprintMap(data),
	}, nil
}

// ProbeFile reads a map file and probes its header.
func (c *Codec) ProbeFile(path string) (*ProbeInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("probe file: %w", err)
	}
	raw, container, err := Inflate(data)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	info, err := c.Probe(raw)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	info.Container = container
	return info, nil
}

// Probe is Codec.Probe with the default codec.
func Probe(data []byte) (*ProbeInfo, error) { return defaultCodec.Probe(data) }
