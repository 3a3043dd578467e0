// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/binary"
	"log/slog"

	"golang.org/x/text/encoding/charmap"
)

// mapWriter assembles little-endian map bytes for tests.
type mapWriter struct {
	buf []byte
}

func (w *mapWriter) u8(values ...uint8) *mapWriter {
	w.buf = append(w.buf, values...)
	return w
}

func (w *mapWriter) u16(v uint16) *mapWriter {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *mapWriter) u32(v uint32) *mapWriter {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *mapWriter) flag(b bool) *mapWriter {
	if b {
		return w.u8(1)
	}
	return w.u8(0)
}

func (w *mapWriter) zeros(n int) *mapWriter {
	w.buf = append(w.buf, make([]byte, n)...)
	return w
}

// text writes a length-prefixed Windows-1251 string.
func (w *mapWriter) text(s string) *mapWriter {
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic("test text not encodable: " + s)
	}
	w.u32(uint32(len(encoded)))
	w.buf = append(w.buf, encoded...)
	return w
}

// id writes a 1- or 2-byte identifier.
func (w *mapWriter) id(width int, v uint16) *mapWriter {
	if width == 1 {
		return w.u8(uint8(v))
	}
	return w.u16(v)
}

func (w *mapWriter) coord(x, y, z uint8) *mapWriter { return w.u8(x, y, z) }

// creatures writes seven army slots: the given stacks followed by empty
// ones.
func (w *mapWriter) creatures(v Version, stacks ...CreatureStack) *mapWriter {
	for i := 0; i < armySlots; i++ {
		if i < len(stacks) {
			w.id(v.CreatureIDWidth(), stacks[i].ID).u16(stacks[i].Count)
			continue
		}
		w.id(v.CreatureIDWidth(), v.CreatureSentinel()).u16(0)
	}
	return w
}

// artifacts writes a present artifact set: every fixed slot, taken from
// worn or left empty, then the backpack.
func (w *mapWriter) artifacts(v Version, worn map[uint16]uint16, backpack ...uint16) *mapWriter {
	width, empty := v.ArtifactIDWidth(), v.ArtifactSentinel()
	slot := func(s uint16) {
		if id, ok := worn[s]; ok {
			w.id(width, id)
			return
		}
		w.id(width, empty)
	}

	w.u8(1)
	for s := uint16(0); s < bodySlotCount; s++ {
		slot(s)
	}
	if v.HasCatapultSlot() {
		slot(SlotCatapult)
	}
	slot(SlotSpellbook)
	slot(SlotMisc5)
	w.u16(uint16(len(backpack)))
	for _, id := range backpack {
		w.id(width, id)
	}
	return w
}

func (w *mapWriter) timedEvent(v Version, e TimedEvent) *mapWriter {
	w.text(e.Name).text(e.Message)
	for _, amount := range e.Resources {
		w.u32(amount)
	}
	w.u8(e.Players)
	if v.HasHumanAffected() {
		w.flag(e.HumanAffected)
	}
	return w.flag(e.ComputerAffected).u16(e.FirstOccurrence).u8(e.Interval)
}

func (w *mapWriter) bytes() []byte { return w.buf }

// testObject is a placed object: the common header plus payload bytes.
type testObject struct {
	pos      Coord
	template uint32
	payload  func(w *mapWriter)
}

// testMap describes a complete map buffer. Zero fields produce the
// smallest valid map of the version.
type testMap struct {
	version     Version
	size        uint32
	underground bool
	name        string
	description string
	players     func(w *mapWriter) // nil writes eight disabled slots
	victory     func(w *mapWriter) // nil writes the standard condition
	loss        func(w *mapWriter)
	teams       func(w *mapWriter) // nil writes no teams
	heroes      func(w *mapWriter) // nil writes an empty availability block
	predefined  func(w *mapWriter) // SoD only; nil writes an empty table
	rumors      []Rumor
	templates   []ObjectTemplate
	objects     []testObject
	events      []TimedEvent
	trailer     []byte
}

func (m testMap) build() []byte {
	v := m.version
	w := &mapWriter{}

	w.u32(v.Tag()).u8(1).u32(m.size).flag(m.underground).text(m.name).text(m.description).u8(1)
	if v.HasHeroLevelLimit() {
		w.u8(0)
	}

	if m.players != nil {
		m.players(w)
	} else {
		for i := 0; i < playerCount; i++ {
			w.u8(0, 0).zeros(v.DisabledPlayerSpan())
		}
	}
	if m.victory != nil {
		m.victory(w)
	} else {
		w.u8(0xFF)
	}
	if m.loss != nil {
		m.loss(w)
	} else {
		w.u8(0xFF)
	}

	if m.teams != nil {
		m.teams(w)
	} else {
		w.u8(0)
	}
	if m.heroes != nil {
		m.heroes(w)
	} else {
		w.zeros(v.AllowedHeroesSpan())
		if v.HasPlaceholderHeroes() {
			w.u32(0)
		}
		if v.HasConfiguredHeroes() {
			w.u8(0)
		}
		w.zeros(heroesReservedSize)
	}
	w.zeros(v.AllowedArtifactsSpan())
	if v.HasAllowedSpells() {
		w.zeros(spellBitmapSize)
	}
	if v.HasAllowedAbilities() {
		w.zeros(abilityBitmapSize)
	}

	w.u32(uint32(len(m.rumors)))
	for _, r := range m.rumors {
		w.text(r.Name).text(r.Text)
	}
	if v.HasPredefinedHeroes() {
		if m.predefined != nil {
			m.predefined(w)
		} else {
			w.zeros(predefinedHeroCount)
		}
	}

	levels := 1
	if m.underground {
		levels = 2
	}
	for i := 0; i < int(m.size*m.size)*levels; i++ {
		w.u8(uint8(i%10), 0, 0, 0, 0, 0, 0)
	}

	w.u32(uint32(len(m.templates)))
	for _, t := range m.templates {
		w.text(t.Sprite)
		w.u8(t.Blocked[:]...).u8(t.Visitable[:]...)
		w.u16(t.AllowedTerrain).u16(t.TerrainGroup)
		w.u32(uint32(t.Class)).u32(t.Number)
		w.u8(t.Group, t.Overlay).u8(t.Reserved[:]...)
	}

	w.u32(uint32(len(m.objects)))
	for _, o := range m.objects {
		w.coord(o.pos.X, o.pos.Y, o.pos.Z).u32(o.template).zeros(objectReservedSize)
		if o.payload != nil {
			o.payload(w)
		}
	}

	w.u32(uint32(len(m.events)))
	for _, e := range m.events {
		w.timedEvent(v, e).zeros(eventReservedSize)
	}
	return w.u8(m.trailer...).bytes()
}

// Template indexes of sampleMap.
const (
	sampleSign = iota
	sampleResource
	sampleMonster
	sampleSeerHut
	sampleOasis
	sampleUnknown
)

// sampleMap returns a small map with strings in the header, rumors,
// objects and events, including a repeated and an empty string.
func sampleMap(v Version) testMap {
	templates := []ObjectTemplate{
		sampleSign:     {Sprite: "AVXsign0.def", Class: ClassSign},
		sampleResource: {Sprite: "AVTwood0.def", Class: ClassResource},
		sampleMonster:  {Sprite: "AvWpike.def", Class: ClassMonster, Number: 0},
		sampleSeerHut:  {Sprite: "AVXseer0.def", Class: ClassSeerHut},
		sampleOasis:    {Sprite: "AVXoasi0.def", Class: ClassOasis},
		sampleUnknown:  {Sprite: "AVXcustom.def", Class: 250},
	}
	for i := range templates {
		templates[i].Blocked = [passabilityMaskSize]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
		templates[i].AllowedTerrain = 0x01FF
	}

	return testMap{
		version:     v,
		size:        4,
		name:        "Arrogance",
		description: "Defeat the tyrant",
		rumors: []Rumor{
			{Name: "Gossip", Text: "The tyrant is weak"},
			{Name: "", Text: "Beware"},
		},
		templates: templates,
		objects: []testObject{
			{pos: Coord{1, 1, 0}, template: sampleSign, payload: func(w *mapWriter) {
				w.text("Beware").zeros(4)
			}},
			{pos: Coord{2, 1, 0}, template: sampleResource, payload: func(w *mapWriter) {
				w.u8(1).text("Guarded wood").u8(1).creatures(v, CreatureStack{ID: 5, Count: 10}).zeros(4)
				w.u32(15).zeros(4)
			}},
			{pos: Coord{3, 1, 0}, template: sampleMonster, payload: func(w *mapWriter) {
				if v.HasObjectID() {
					w.u32(77)
				}
				w.u16(30).u8(2)
				w.u8(1).text("Pay or die")
				for i := 0; i < resourceCount; i++ {
					w.u32(uint32(i))
				}
				w.id(v.ArtifactIDWidth(), v.ArtifactSentinel())
				w.u8(1, 0).zeros(2)
			}},
			{pos: Coord{1, 2, 0}, template: sampleSeerHut, payload: func(w *mapWriter) {
				if v.HasQuests() {
					w.u8(uint8(MissionLevel)).u32(5).u32(0xFFFFFFFF)
					w.text("Reach level 5").text("Still not strong enough").text("Well done")
				} else {
					w.u8(7)
				}
				w.u8(uint8(RewardExperience)).u32(500).zeros(2)
			}},
			{pos: Coord{2, 2, 0}, template: sampleSign, payload: func(w *mapWriter) {
				w.text("Beware").zeros(4)
			}},
			{pos: Coord{3, 2, 0}, template: sampleOasis},
			{pos: Coord{0, 3, 0}, template: sampleUnknown},
		},
		events: []TimedEvent{
			{Name: "Harvest", Message: "A good harvest", Resources: Resources{0, 0, 0, 0, 0, 0, 1000},
				Players: 0xFF, HumanAffected: true, FirstOccurrence: 7, Interval: 7},
		},
		trailer: make([]byte, 124),
	}
}

// sampleStrings lists the strings of sampleMap in extraction order.
func sampleStrings(v Version) []string {
	texts := []string{
		"Arrogance", "Defeat the tyrant",
		"Gossip", "The tyrant is weak", "Beware",
		"Guarded wood", "Pay or die",
	}
	if v.HasQuests() {
		texts = append(texts, "Reach level 5", "Still not strong enough", "Well done")
	}
	return append(texts, "Harvest", "A good harvest")
}

// Template indexes of richMap.
const (
	richHero = iota
	richTown
)

// richMap returns a SoD map exercising the nested records: a playable
// player, teams, configured and predefined heroes, and a hero and a town
// carrying artifacts, spells and town events.
func richMap() testMap {
	v := VersionSoD
	templates := []ObjectTemplate{
		richHero: {Sprite: "AH00_e.def", Class: ClassHero},
		richTown: {Sprite: "AVCcasx0.def", Class: ClassTown},
	}

	return testMap{
		version:     v,
		size:        2,
		name:        "Erathia Reclaimed",
		description: "Hold the castle",
		players: func(w *mapWriter) {
			w.u8(1, 0, 2).u8(1).id(v.AllowedFactionsWidth(), 0x1F).u8(0)
			w.u8(1).u8(0, 1).coord(1, 1, 0)
			w.u8(0).u8(5, 5).text("Lord Haart")
			w.u8(0).u8(1).zeros(3).u8(5).text("Lord Haart")
			for i := 1; i < playerCount; i++ {
				w.u8(0, 0).zeros(v.DisabledPlayerSpan())
			}
		},
		teams: func(w *mapWriter) { w.u8(2, 0, 1, 0, 1, 0, 1, 0, 1) },
		heroes: func(w *mapWriter) {
			w.zeros(v.AllowedHeroesSpan()).u32(2).u8(3, 9)
			w.u8(1).u8(14, 14).text("Sir Mullich").u8(0x03)
			w.zeros(heroesReservedSize)
		},
		predefined: func(w *mapWriter) {
			for id := 0; id < predefinedHeroCount; id++ {
				if id != 3 {
					w.u8(0)
					continue
				}
				w.u8(1)
				w.u8(1).u32(5000)
				w.u8(1).u32(1).u8(6, 2)
				w.artifacts(v, map[uint16]uint16{0: 2})
				w.u8(1).text("A true knight").u8(0)
				w.u8(1).zeros(spellBitmapSize)
				w.u8(1).u8(4, 3, 2, 1)
			}
		},
		templates: templates,
		objects: []testObject{
			{pos: Coord{0, 0, 0}, template: richHero, payload: func(w *mapWriter) {
				w.u32(7).u8(0, 12).u8(1).text("Valeska")
				w.u8(1).u32(1000)
				w.u8(1, 40)
				w.u8(1).u32(2).u8(1, 3, 6, 2)
				w.u8(1).creatures(v, CreatureStack{ID: 2, Count: 20})
				w.u8(0)
				w.artifacts(v, map[uint16]uint16{0: 11, SlotCatapult: 3, SlotSpellbook: 0}, 77)
				w.u8(2)
				w.u8(1).text("Born in Erathia").u8(1)
				w.u8(1).zeros(spellBitmapSize)
				w.u8(1).u8(2, 2, 1, 1)
				w.zeros(16)
			}},
			{pos: Coord{1, 1, 0}, template: richTown, payload: func(w *mapWriter) {
				w.u32(3).u8(0).u8(1).text("Steadwick")
				w.u8(1).creatures(v, CreatureStack{ID: 0, Count: 30})
				w.u8(0)
				w.u8(1).zeros(buildingBitmapSize).u8(0xFF, 0, 0, 0, 0, 0)
				w.zeros(spellBitmapSize).zeros(spellBitmapSize)
				w.u32(1)
				w.timedEvent(v, TimedEvent{Name: "Tax", Message: "Gold arrives", HumanAffected: true, FirstOccurrence: 1, Interval: 7})
				w.zeros(eventReservedSize).u8(1, 0, 0, 0, 0, 0)
				for i := 0; i < armySlots; i++ {
					w.u16(uint16(i))
				}
				w.zeros(4)
				w.u8(0xFF).zeros(3)
			}},
		},
		trailer: make([]byte, 32),
	}
}

var allVersions = []Version{VersionRoE, VersionAB, VersionSoD}

// newTestDecoder returns a decoder positioned at the start of buf.
func newTestDecoder(buf []byte, v Version) *decoder {
	return &decoder{c: NewByteCursor(buf, nil), version: v, log: slog.New(slog.DiscardHandler)}
}
