// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

/*
Package h3m reads, translates and rewrites Heroes of Might and Magic III
map files (.h3m).

A map is one little-endian binary stream, usually gzip-compressed, in one
of three format versions: Restoration of Erathia (RoE), Armageddon's
Blade (AB) and Shadow of Death (SoD). Each version adds fields to the
previous one. This package decodes all three into a [Map] document and can
replay the same traversal to produce a byte-identical copy, or a copy with
player-visible strings replaced.

# Features

  - Decode RoE, AB and SoD maps into a typed document
  - Byte-identical re-encoding through a recording cursor
  - String extraction and translation with per-string length prefixes
  - Layered translation files with comments (JSONC)
  - Deterministic JSON and CBOR export
  - Compressed, fingerprinted snapshots

# Basic Usage

Decoding a map:

	f, err := h3m.Open("Arrogance.h3m")
	if err != nil {
		log.Fatal(err)
	}
	m, err := f.Decode()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m.Header.Name, m.Header.Version, m.Header.Size)

Translating a map:

	chain, err := h3m.OpenTranslationChain([]string{"glossary.json", "arrogance.json"})
	if err != nil {
		log.Fatal(err)
	}
	n, err := f.Translate(chain, "Arrogance_translated.h3m")

# Text Encoding

Map strings are single-byte code page text. Windows-1251 is the default;
set [Codec.Encoding] (see [LookupEncoding]) for maps made with other
releases. Replacement strings must be representable in the same code page.

# Limitations

  - Unknown object classes decode to [Opaque] and are logged as warnings
  - Campaign files (.h3c) and HotA or WoG extensions are not supported
  - The document is read-only: maps cannot be built from a modified [Map]
*/
package h3m
