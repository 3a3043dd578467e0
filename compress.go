// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies how a snapshot payload is compressed. The
// values are stored in snapshot headers and must not change.
type CompressionTag uint8

const (
	CompressionNone CompressionTag = iota // payload stored as is
	CompressionLZ4                        // lz4 frame, fast to write
	CompressionZstd                       // zstd frame, smallest output
)

var compressionNames = [...]string{"none", "lz4", "zstd"}

func (tag CompressionTag) String() string {
	if int(tag) < len(compressionNames) {
		return compressionNames[tag]
	}
	return fmt.Sprintf("unknown(%d)", uint8(tag))
}

// ParseCompressionTag parses the name returned by String.
func ParseCompressionTag(name string) (CompressionTag, error) {
	for i, n := range compressionNames {
		if n == name {
			return CompressionTag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown compression tag: %q", name)
}

// compressPayload compresses a snapshot payload. A payload that does not
// shrink is stored as is, and the tag actually used is returned.
func compressPayload(data []byte, tag CompressionTag) ([]byte, CompressionTag, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch tag {
	case CompressionNone:
		return data, CompressionNone, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(&buf)
		if err := lw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, 0, fmt.Errorf("configure lz4 writer: %w", err)
		}
		w = lw
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, 0, fmt.Errorf("create zstd writer: %w", err)
		}
		w = zw
	default:
		return nil, 0, fmt.Errorf("unsupported compression tag: %d", tag)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, 0, fmt.Errorf("%s write: %w", tag, err)
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("%s close: %w", tag, err)
	}
	if buf.Len() >= len(data) {
		return data, CompressionNone, nil
	}
	return buf.Bytes(), tag, nil
}

// decompressPayload reverses compressPayload. The payload must inflate
// to exactly size bytes.
func decompressPayload(compressed []byte, tag CompressionTag, size int) ([]byte, error) {
	var r io.Reader
	switch tag {
	case CompressionNone:
		if len(compressed) != size {
			return nil, fmt.Errorf("uncompressed payload: size %d does not match expected %d", len(compressed), size)
		}
		return compressed, nil
	case CompressionLZ4:
		r = lz4.NewReader(bytes.NewReader(compressed))
	case CompressionZstd:
		zr, err := zstd.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, fmt.Errorf("create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}

	result := make([]byte, size)
	if _, err := io.ReadFull(r, result); err != nil {
		return nil, fmt.Errorf("%s decompress: payload shorter than size %d: %w", tag, size, err)
	}
	var extra [1]byte
	if n, err := r.Read(extra[:]); n > 0 {
		return nil, fmt.Errorf("%s decompress: payload longer than size %d", tag, size)
	} else if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s decompress: %w", tag, err)
	}
	return result, nil
}
