// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/encoding"
)

// Codec decodes and rewrites uncompressed map buffers. The zero value
// uses DefaultEncoding and discards log output. A Codec holds no state
// between calls and may be shared by goroutines.
type Codec struct {
	// Encoding is the code page of map strings.
	Encoding encoding.Encoding

	// Logger receives per-section debug records and warnings about
	// unrecognized object classes, missions and rewards.
	Logger *slog.Logger
}

func (c *Codec) encoding() encoding.Encoding {
	if c == nil || c.Encoding == nil {
		return DefaultEncoding
	}
	return c.Encoding
}

func (c *Codec) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Decode decodes an uncompressed map buffer.
func (c *Codec) Decode(data []byte) (*Map, error) {
	m, err := traverse(NewByteCursor(data, c.encoding()), c.logger())
	if err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	return m, nil
}

// Mirror decodes data and returns the bytes consumed along the way with
// every hooked string replaced. With a nil hook the output equals data.
// The returned document always describes the input.
func (c *Codec) Mirror(data []byte, hook TextHook) (*Map, []byte, error) {
	rc := NewRecordingCursor(data, c.encoding(), hook)
	m, err := traverse(rc, c.logger())
	if err != nil {
		return nil, nil, fmt.Errorf("mirror map: %w", err)
	}
	return m, rc.Output(), nil
}

// Translator supplies replacements for map strings. Translations and
// *TranslationChain implement it.
type Translator interface {
	Lookup(original string) (replacement string, ok bool)
}

// Translate rewrites every player-visible string t has a replacement for
// and returns the new buffer with the number of strings replaced.
// Template sprite names are never touched. A nil t replaces nothing.
func (c *Codec) Translate(data []byte, t Translator) ([]byte, int, error) {
	var hook TextHook
	if t != nil {
		hook = t.Lookup
	}
	rc := NewRecordingCursor(data, c.encoding(), hook)
	if _, err := traverse(rc, c.logger()); err != nil {
		return nil, 0, fmt.Errorf("translate map: %w", err)
	}
	return rc.Output(), rc.Substitutions(), nil
}

// ExtractStrings returns the distinct player-visible strings of a map in
// the order they first appear. Empty strings are skipped.
func (c *Codec) ExtractStrings(data []byte) ([]string, error) {
	sc := &collectingCursor{ByteCursor: NewByteCursor(data, c.encoding()), seen: map[string]struct{}{}}
	if _, err := traverse(sc, c.logger()); err != nil {
		return nil, fmt.Errorf("extract strings: %w", err)
	}
	return sc.texts, nil
}

// collectingCursor records every substitutable string it reads.
type collectingCursor struct {
	*ByteCursor
	seen  map[string]struct{}
	texts []string
}

func (c *collectingCursor) Text() (string, error) {
	text, err := c.ByteCursor.Text()
	if err != nil || text == "" {
		return text, err
	}
	if _, ok := c.seen[text]; !ok {
		c.seen[text] = struct{}{}
		c.texts = append(c.texts, text)
	}
	return text, nil
}

var defaultCodec Codec

// Decode decodes an uncompressed map buffer with the default codec.
func Decode(data []byte) (*Map, error) { return defaultCodec.Decode(data) }

// Mirror is Codec.Mirror with the default codec.
func Mirror(data []byte, hook TextHook) (*Map, []byte, error) {
	return defaultCodec.Mirror(data, hook)
}

// Translate is Codec.Translate with the default codec.
func Translate(data []byte, t Translator) ([]byte, int, error) {
	return defaultCodec.Translate(data, t)
}

// ExtractStrings is Codec.ExtractStrings with the default codec.
func ExtractStrings(data []byte) ([]string, error) { return defaultCodec.ExtractStrings(data) }
