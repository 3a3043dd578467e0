// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the single-byte code page map strings are stored
// in unless told otherwise. Maps from the Russian release use it; most
// Western maps only use its ASCII subset.
var DefaultEncoding encoding.Encoding = charmap.Windows1251

// LookupEncoding resolves a code page by IANA name or alias, for example
// "windows-1251", "cp1252" or "ISO-8859-2". Only single-byte encodings
// are accepted because map strings are measured in bytes.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return DefaultEncoding, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	enc, err := ianaindex.IANA.Encoding(normalized)
	if err != nil && strings.HasPrefix(normalized, "cp") {
		// "cp1251" is common shorthand but not an IANA alias
		enc, err = ianaindex.IANA.Encoding("windows-" + strings.TrimPrefix(normalized, "cp"))
	}
	if err != nil {
		return nil, fmt.Errorf("lookup encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	if _, ok := enc.(*charmap.Charmap); !ok {
		return nil, fmt.Errorf("encoding %q is not a single-byte code page", name)
	}
	return enc, nil
}

// encodeText converts a replacement string to the map encoding. Runes
// the code page cannot represent are an error rather than silently
// replaced.
func encodeText(enc encoding.Encoding, text string) ([]byte, error) {
	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnencodable, text, err)
	}
	return encoded, nil
}
