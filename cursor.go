// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
)

// Cursor is the read surface the map traversal is written against. All
// reads are sequential and forward-only; a read that would pass the end
// of the buffer fails with an *OutOfBoundsError and consumes nothing.
type Cursor interface {
	U8() (uint8, error)
	U16() (uint16, error)
	U32() (uint32, error)
	Bytes(n int) ([]byte, error)

	// Text reads a 4-byte length prefix and that many encoded bytes.
	// Text strings are player-visible and may be substituted by
	// recording cursors.
	Text() (string, error)

	// RawText reads like Text but is never substituted. Used for
	// resource names such as template sprite files.
	RawText() (string, error)

	Offset() int
	Remaining() int
}

// ByteCursor reads an immutable byte buffer.
type ByteCursor struct {
	buf     []byte
	off     int
	decoder *encoding.Decoder
}

// NewByteCursor returns a cursor at the start of buf. Strings are
// decoded with enc; a nil enc means DefaultEncoding.
func NewByteCursor(buf []byte, enc encoding.Encoding) *ByteCursor {
	if enc == nil {
		enc = DefaultEncoding
	}
	return &ByteCursor{buf: buf, decoder: enc.NewDecoder()}
}

// take returns the next n bytes as a view into the buffer.
func (c *ByteCursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, &OutOfBoundsError{Offset: c.off, Want: n, Len: len(c.buf)}
	}
	span := c.buf[c.off : c.off+n]
	c.off += n
	return span, nil
}

// textSpans returns the length prefix and the payload of a text field.
// On failure the offset is left where the field starts.
func (c *ByteCursor) textSpans() (prefix, payload []byte, err error) {
	start := c.off
	if prefix, err = c.take(4); err != nil {
		return nil, nil, err
	}
	length := binary.LittleEndian.Uint32(prefix)
	if uint64(length) > uint64(len(c.buf)-c.off) {
		err := &OutOfBoundsError{Offset: c.off, Want: int(length), Len: len(c.buf)}
		c.off = start
		return nil, nil, err
	}
	payload, _ = c.take(int(length))
	return prefix, payload, nil
}

func (c *ByteCursor) decode(payload []byte) (string, error) {
	text, err := c.decoder.Bytes(payload)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

func (c *ByteCursor) U8() (uint8, error) {
	span, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return span[0], nil
}

func (c *ByteCursor) U16() (uint16, error) {
	span, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(span), nil
}

func (c *ByteCursor) U32() (uint32, error) {
	span, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(span), nil
}

// Bytes returns the next n bytes. The slice aliases the buffer.
func (c *ByteCursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}

func (c *ByteCursor) Text() (string, error) {
	_, payload, err := c.textSpans()
	if err != nil {
		return "", err
	}
	return c.decode(payload)
}

func (c *ByteCursor) RawText() (string, error) {
	return c.Text()
}

// Offset returns the number of bytes consumed so far.
func (c *ByteCursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *ByteCursor) Remaining() int { return len(c.buf) - c.off }
