// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"errors"
	"fmt"
)

// Decode errors
var (
	// ErrOutOfBounds indicates a read past the end of the map buffer.
	// The input is truncated or the traversal drifted; either way the
	// whole file is rejected.
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrUnknownVariantTag indicates an unsupported format tag or an
	// unrecognized victory/loss condition code.
	ErrUnknownVariantTag = errors.New("unknown variant tag")

	// ErrBadTemplateIndex indicates an object referring to a template
	// past the end of the template catalog.
	ErrBadTemplateIndex = errors.New("template index out of range")
)

// Encode errors
var (
	// ErrUnencodable indicates a replacement text containing characters
	// the map's text encoding cannot represent.
	ErrUnencodable = errors.New("text not representable in map encoding")
)

// Snapshot errors
var (
	// ErrBadSnapshot indicates a snapshot with a wrong magic, an
	// unsupported layout or a payload that does not match its fingerprint.
	ErrBadSnapshot = errors.New("invalid snapshot")
)

// OutOfBoundsError describes a cursor read that would pass the end of
// the buffer.
type OutOfBoundsError struct {
	Offset int // read offset when the read was attempted
	Want   int // bytes requested
	Len    int // total buffer length
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("read %d bytes at offset %d: buffer is %d bytes", e.Want, e.Offset, e.Len)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// UnknownTagError reports a strict discriminant with a value outside
// the documented set.
type UnknownTagError struct {
	Field  string // "format version", "victory condition" or "loss condition"
	Code   uint32
	Offset int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s 0x%X at offset %d", e.Field, e.Code, e.Offset)
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownVariantTag }
