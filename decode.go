// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"fmt"
	"log/slog"
)

// decoder walks a map through a Cursor. The first failing read is kept
// and every later read returns zero values, so section readers check
// d.err once at their end instead of after every field.
type decoder struct {
	c       Cursor
	version Version
	err     error
	log     *slog.Logger
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// ok reports whether decoding can continue. Loops over counts read from
// the file check it so a corrupt count cannot spin on a failed cursor.
func (d *decoder) ok() bool { return d.err == nil }

func (d *decoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.c.U8()
	d.fail(err)
	return v
}

func (d *decoder) u16() uint16 {
	if d.err != nil {
		return 0
	}
	v, err := d.c.U16()
	d.fail(err)
	return v
}

func (d *decoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	v, err := d.c.U32()
	d.fail(err)
	return v
}

func (d *decoder) flag() bool { return d.u8() != 0 }

// bytes returns a copy of the next n bytes.
func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	span, err := d.c.Bytes(n)
	if err != nil {
		d.fail(err)
		return nil
	}
	return append([]byte(nil), span...)
}

// fill reads len(dst) bytes into dst.
func (d *decoder) fill(dst []byte) {
	if d.err != nil {
		return
	}
	span, err := d.c.Bytes(len(dst))
	if err != nil {
		d.fail(err)
		return
	}
	copy(dst, span)
}

// skip consumes reserved bytes.
func (d *decoder) skip(n int) {
	if d.err != nil {
		return
	}
	_, err := d.c.Bytes(n)
	d.fail(err)
}

func (d *decoder) text() string {
	if d.err != nil {
		return ""
	}
	v, err := d.c.Text()
	d.fail(err)
	return v
}

func (d *decoder) rawText() string {
	if d.err != nil {
		return ""
	}
	v, err := d.c.RawText()
	d.fail(err)
	return v
}

// optionalText reads a presence byte and, when set, a text.
func (d *decoder) optionalText() *string {
	if !d.flag() {
		return nil
	}
	s := d.text()
	return &s
}

// id reads a 1- or 2-byte identifier.
func (d *decoder) id(width int) uint16 {
	if width == 1 {
		return uint16(d.u8())
	}
	return d.u16()
}

func (d *decoder) coord() Coord {
	return Coord{X: d.u8(), Y: d.u8(), Z: d.u8()}
}

func (d *decoder) resources() Resources {
	var r Resources
	for i := range r {
		r[i] = d.u32()
	}
	return r
}

func (d *decoder) primarySkills() PrimarySkills {
	return PrimarySkills{Attack: d.u8(), Defense: d.u8(), Power: d.u8(), Knowledge: d.u8()}
}

func (d *decoder) unknownTag(field string, code uint32, width int) {
	d.fail(&UnknownTagError{Field: field, Code: code, Offset: d.c.Offset() - width})
}

// section is one step of the fixed top-level order.
type section struct {
	name string
	read func(d *decoder, m *Map)
}

// sections lists the top-level sections in file order. Each runs exactly
// once; versions that lack a section make its reader consume nothing.
// Later sections receive what they depend on as explicit arguments.
var sections = []section{
	{"header", func(d *decoder, m *Map) { m.Header = d.readHeader() }},
	{"players", func(d *decoder, m *Map) { m.Players = d.readPlayers() }},
	{"victory condition", func(d *decoder, m *Map) { m.Victory = d.readVictory() }},
	{"loss condition", func(d *decoder, m *Map) { m.Loss = d.readLoss() }},
	{"teams", func(d *decoder, m *Map) { m.Teams = d.readTeams() }},
	{"allowed heroes", func(d *decoder, m *Map) { m.Heroes = d.readHeroAvailability() }},
	{"allowed artifacts", func(d *decoder, m *Map) { m.AllowedArtifacts = d.bytes(d.version.AllowedArtifactsSpan()) }},
	{"allowed spells", func(d *decoder, m *Map) { m.AllowedSpells = d.readOptionalBitmap(d.version.HasAllowedSpells(), spellBitmapSize) }},
	{"allowed abilities", func(d *decoder, m *Map) {
		m.AllowedAbilities = d.readOptionalBitmap(d.version.HasAllowedAbilities(), abilityBitmapSize)
	}},
	{"rumors", func(d *decoder, m *Map) { m.Rumors = d.readRumors() }},
	{"predefined heroes", func(d *decoder, m *Map) { m.PredefinedHeroes = d.readPredefinedHeroes() }},
	{"terrain", func(d *decoder, m *Map) { m.Terrain = d.readTerrain(m.Header) }},
	{"templates", func(d *decoder, m *Map) { m.Templates = d.readTemplates() }},
	{"objects", func(d *decoder, m *Map) { m.Objects = d.readObjects(m.Templates) }},
	{"events", func(d *decoder, m *Map) { m.Events = d.readEvents() }},
	{"trailer", func(d *decoder, m *Map) { m.Trailer = d.bytes(d.c.Remaining()) }},
}

// traverse decodes a whole map through c.
func traverse(c Cursor, log *slog.Logger) (*Map, error) {
	d := &decoder{c: c, log: log}
	m := &Map{}
	for _, s := range sections {
		s.read(d, m)
		if d.err != nil {
			return nil, fmt.Errorf("read %s: %w", s.name, d.err)
		}
		log.Debug("section decoded", "section", s.name, "offset", c.Offset())
	}
	return m, nil
}
