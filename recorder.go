// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/binary"

	"golang.org/x/text/encoding"
)

// TextHook is consulted for every substitutable string a RecordingCursor
// reads. Returning ok=false echoes the original bytes.
type TextHook func(original string) (replacement string, ok bool)

// RecordingCursor reads like a ByteCursor and appends every consumed
// byte to an output buffer. With no hook, or a hook that never fires,
// the output equals the input exactly once the traversal ends.
type RecordingCursor struct {
	src          *ByteCursor
	enc          encoding.Encoding
	hook         TextHook
	out          []byte
	substitution int
}

// NewRecordingCursor returns a recording cursor over buf. The hook may
// be nil.
func NewRecordingCursor(buf []byte, enc encoding.Encoding, hook TextHook) *RecordingCursor {
	if enc == nil {
		enc = DefaultEncoding
	}
	return &RecordingCursor{
		src:  NewByteCursor(buf, enc),
		enc:  enc,
		hook: hook,
		out:  make([]byte, 0, len(buf)),
	}
}

func (r *RecordingCursor) record(n int) ([]byte, error) {
	span, err := r.src.take(n)
	if err != nil {
		return nil, err
	}
	r.out = append(r.out, span...)
	return span, nil
}

func (r *RecordingCursor) U8() (uint8, error) {
	span, err := r.record(1)
	if err != nil {
		return 0, err
	}
	return span[0], nil
}

func (r *RecordingCursor) U16() (uint16, error) {
	span, err := r.record(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(span), nil
}

func (r *RecordingCursor) U32() (uint32, error) {
	span, err := r.record(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(span), nil
}

func (r *RecordingCursor) Bytes(n int) ([]byte, error) {
	return r.record(n)
}

// Text returns the original string. When the hook supplies a
// replacement, the output receives a fresh length prefix and the
// replacement's encoded bytes instead of the source span.
func (r *RecordingCursor) Text() (string, error) {
	prefix, payload, err := r.src.textSpans()
	if err != nil {
		return "", err
	}
	text, err := r.src.decode(payload)
	if err != nil {
		return "", err
	}
	if r.hook != nil {
		if replacement, ok := r.hook(text); ok {
			encoded, err := encodeText(r.enc, replacement)
			if err != nil {
				return "", err
			}
			r.out = binary.LittleEndian.AppendUint32(r.out, uint32(len(encoded)))
			r.out = append(r.out, encoded...)
			r.substitution++
			return text, nil
		}
	}
	r.out = append(r.out, prefix...)
	r.out = append(r.out, payload...)
	return text, nil
}

// RawText echoes the source bytes without consulting the hook.
func (r *RecordingCursor) RawText() (string, error) {
	prefix, payload, err := r.src.textSpans()
	if err != nil {
		return "", err
	}
	r.out = append(r.out, prefix...)
	r.out = append(r.out, payload...)
	return r.src.decode(payload)
}

func (r *RecordingCursor) Offset() int    { return r.src.Offset() }
func (r *RecordingCursor) Remaining() int { return r.src.Remaining() }

// Output returns the bytes recorded so far. The slice is owned by the
// cursor until the traversal ends.
func (r *RecordingCursor) Output() []byte { return r.out }

// Substitutions returns how many strings the hook replaced.
func (r *RecordingCursor) Substitutions() int { return r.substitution }
