// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Translations maps an original map string to its replacement. Entries
// with an empty replacement are placeholders and are ignored.
type Translations map[string]string

// Lookup returns the replacement for original. It has the TextHook
// signature, so t.Lookup can drive a RecordingCursor directly.
func (t Translations) Lookup(original string) (string, bool) {
	replacement, ok := t[original]
	if !ok || replacement == "" {
		return "", false
	}
	return replacement, true
}

// Filled returns the number of entries with a non-empty replacement.
func (t Translations) Filled() int {
	n := 0
	for _, v := range t {
		if v != "" {
			n++
		}
	}
	return n
}

// ParseTranslations parses a translation file. Comments and trailing
// commas are accepted so translators can annotate their work.
func ParseTranslations(data []byte) (Translations, error) {
	t := Translations{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &t); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	return t, nil
}

// LoadTranslations reads and parses a translation file.
func LoadTranslations(path string) (Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	t, err := ParseTranslations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// translationLayer is one file of a TranslationChain.
type translationLayer struct {
	path    string
	entries Translations
}

// TranslationChain is a prioritized list of translation files, for
// example a shared glossary followed by per-map corrections. The last
// file has the highest priority; a placeholder in a later file does not
// hide a filled entry in an earlier one.
type TranslationChain struct {
	layers   []translationLayer
	resolved map[string]int // original -> index of the layer supplying it
}

// OpenTranslationChain loads translation files in order of increasing
// priority.
func OpenTranslationChain(paths []string) (*TranslationChain, error) {
	chain := &TranslationChain{}
	for _, path := range paths {
		entries, err := LoadTranslations(path)
		if err != nil {
			return nil, fmt.Errorf("open translation chain: %w", err)
		}
		chain.layers = append(chain.layers, translationLayer{path: path, entries: entries})
	}
	chain.rebuild()
	return chain, nil
}

// NewTranslationChain builds a chain from in-memory layers, lowest
// priority first.
func NewTranslationChain(layers ...Translations) *TranslationChain {
	chain := &TranslationChain{}
	for i, entries := range layers {
		chain.layers = append(chain.layers, translationLayer{path: fmt.Sprintf("layer %d", i), entries: entries})
	}
	chain.rebuild()
	return chain
}

// rebuild indexes which layer answers each original string. Layers are
// visited from the highest priority down so the first hit wins.
func (p *TranslationChain) rebuild() {
	p.resolved = make(map[string]int)
	for i := len(p.layers) - 1; i >= 0; i-- {
		for original, replacement := range p.layers[i].entries {
			if replacement == "" {
				continue
			}
			if _, exists := p.resolved[original]; !exists {
				p.resolved[original] = i
			}
		}
	}
}

// Lookup returns the highest-priority non-empty replacement for original.
func (p *TranslationChain) Lookup(original string) (string, bool) {
	if p == nil {
		return "", false
	}
	i, ok := p.resolved[original]
	if !ok {
		return "", false
	}
	return p.layers[i].entries[original], true
}

// Source returns the path of the file that supplies the replacement for
// original, or "" when no layer translates it.
func (p *TranslationChain) Source(original string) string {
	i, ok := p.resolved[original]
	if !ok {
		return ""
	}
	return p.layers[i].path
}

// Translations flattens the chain into a single table.
func (p *TranslationChain) Translations() Translations {
	t := make(Translations, len(p.resolved))
	for original, i := range p.resolved {
		t[original] = p.layers[i].entries[original]
	}
	return t
}

// LayerCount returns the number of files in the chain.
func (p *TranslationChain) LayerCount() int {
	return len(p.layers)
}
