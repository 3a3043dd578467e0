// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

const templateIndent = "    "

// templateWriter builds a translation file whose keys keep the order the
// strings appear in the map.
type templateWriter struct {
	keys   []string
	values map[string]string
}

func newTemplateWriter(capacity int) *templateWriter {
	return &templateWriter{
		keys:   make([]string, 0, capacity),
		values: make(map[string]string, capacity),
	}
}

func (w *templateWriter) setEntry(original, replacement string) {
	if _, exists := w.values[original]; !exists {
		w.keys = append(w.keys, original)
	}
	w.values[original] = replacement
}

func (w *templateWriter) build() ([]byte, error) {
	var buf bytes.Buffer
	if len(w.keys) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteString("{\n")
	for i, key := range w.keys {
		buf.WriteString(templateIndent)
		// Encode appends a newline after each value; it is trimmed below.
		if err := enc.Encode(key); err != nil {
			return nil, fmt.Errorf("encode key: %w", err)
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteString(": ")
		if err := enc.Encode(w.values[key]); err != nil {
			return nil, fmt.Errorf("encode value: %w", err)
		}
		buf.Truncate(buf.Len() - 1)
		if i < len(w.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// BuildTemplate renders a translation file for texts, in order, with an
// empty replacement for each. Replacements already present in existing
// are carried over, and entries of existing that no longer occur in the
// map are kept at the end in sorted order so no translation is lost.
//
// texts usually comes from ExtractStrings, which leaves out empty
// strings, so a template has no "" key. Empty map strings are never
// translated.
func BuildTemplate(texts []string, existing Translations) ([]byte, error) {
	w := newTemplateWriter(len(texts) + len(existing))
	for _, text := range texts {
		w.setEntry(text, existing[text])
	}

	var stale []string
	for original := range existing {
		if _, ok := w.values[original]; !ok {
			stale = append(stale, original)
		}
	}
	sort.Strings(stale)
	for _, original := range stale {
		w.setEntry(original, existing[original])
	}
	return w.build()
}
