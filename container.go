// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Container is the outer wrapping of a map file. The game writes maps
// gzip-compressed; editors and tools also produce raw buffers.
type Container uint8

const (
	ContainerRaw Container = iota
	ContainerGzip
)

func (c Container) String() string {
	if c == ContainerGzip {
		return "gzip"
	}
	return "raw"
}

// maxInflatedSize bounds the decompressed size of a map. The largest
// maps are a few megabytes.
const maxInflatedSize = 256 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// DetectContainer reports how data is wrapped.
func DetectContainer(data []byte) Container {
	if bytes.HasPrefix(data, gzipMagic) {
		return ContainerGzip
	}
	return ContainerRaw
}

// Inflate unwraps a map file. Raw buffers are returned unchanged.
func Inflate(data []byte) ([]byte, Container, error) {
	container := DetectContainer(data)
	if container == ContainerRaw {
		return data, container, nil
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, container, fmt.Errorf("create gzip reader: %w", err)
	}
	defer r.Close()
	// Some editors leave padding after the gzip member.
	r.Multistream(false)

	// A truncated stream yields a short buffer, which the decoder then
	// rejects as out of bounds.
	out, err := io.ReadAll(io.LimitReader(r, maxInflatedSize+1))
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, container, fmt.Errorf("gzip decompress: %w", err)
	}
	if len(out) > maxInflatedSize {
		return nil, container, fmt.Errorf("gzip decompress: map exceeds %d bytes", maxInflatedSize)
	}
	return out, container, nil
}

// Deflate wraps a map buffer in the given container.
func Deflate(data []byte, container Container) ([]byte, error) {
	if container == ContainerRaw {
		return data, nil
	}

	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}
