// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

// Readers for the top-level sections that precede the object list.

func (d *decoder) readHeader() Header {
	tag := d.u32()
	if d.err != nil {
		return Header{}
	}
	version, ok := ParseVersion(tag)
	if !ok {
		d.unknownTag("format version", tag, 4)
		return Header{}
	}
	d.version = version

	h := Header{
		Version:        version,
		HasPlayers:     d.flag(),
		Size:           d.u32(),
		HasUnderground: d.flag(),
		Name:           d.text(),
		Description:    d.text(),
		Difficulty:     d.u8(),
	}
	if version.HasHeroLevelLimit() {
		limit := d.u8()
		h.HeroLevelLimit = &limit
	}
	return h
}

func (d *decoder) readPlayers() []PlayerAttributes {
	players := make([]PlayerAttributes, 0, playerCount)
	for i := 0; i < playerCount && d.ok(); i++ {
		players = append(players, d.readPlayer(PlayerColor(i)))
	}
	return players
}

func (d *decoder) readPlayer(color PlayerColor) PlayerAttributes {
	v := d.version
	p := PlayerAttributes{
		Color:           color,
		CanHumanPlay:    d.flag(),
		CanComputerPlay: d.flag(),
	}
	if !p.Playable() {
		// The slot still occupies its full reserved span.
		d.skip(v.DisabledPlayerSpan())
		return p
	}

	p.ComputerBehavior = d.u8()
	if v.HasFactionsConfigured() {
		configured := d.u8()
		p.FactionsConfigured = &configured
	}
	p.AllowedFactions = d.id(v.AllowedFactionsWidth())
	p.RandomFaction = d.flag()

	if d.flag() {
		town := &MainTown{GenerateHeroAtTown: true}
		if v.HasMainTownHeroFlags() {
			town.GenerateHeroAtTown = d.flag()
			town.GenerateHero = d.flag()
		}
		town.Position = d.coord()
		p.MainTown = town
	}

	p.RandomHero = d.flag()
	if id := d.u8(); id != noHero {
		p.MainHero = &CustomHero{ID: id, Portrait: d.u8(), Name: d.text()}
	}

	if v.HasPlayerHeroList() {
		d.skip(1)
		count := d.u8()
		d.skip(3)
		for i := 0; i < int(count) && d.ok(); i++ {
			p.Heroes = append(p.Heroes, PlayerHero{ID: d.u8(), Name: d.text()})
		}
	}
	return p
}

func (d *decoder) readVictory() VictoryCondition {
	code := VictoryCode(d.u8())
	if d.err != nil {
		return nil
	}
	if code == VictoryStandard {
		return StandardVictory{}
	}

	special := SpecialVictory{StandardAllowed: d.flag(), AppliesToComputer: d.flag()}
	switch code {
	case VictoryArtifact:
		c := AcquireArtifact{SpecialVictory: special, Artifact: d.u8()}
		if d.version.HasVictoryReservedByte() {
			d.skip(1)
		}
		return c
	case VictoryCreatures:
		c := AccumulateCreatures{SpecialVictory: special, Creature: d.u8()}
		if d.version.HasVictoryReservedByte() {
			d.skip(1)
		}
		c.Amount = d.u32()
		return c
	case VictoryResources:
		return AccumulateResources{SpecialVictory: special, Resource: d.u8(), Amount: d.u32()}
	case VictoryUpgradeTown:
		return UpgradeTown{SpecialVictory: special, Town: d.coord(), HallLevel: d.u8(), CastleLevel: d.u8()}
	case VictoryBuildGrail:
		return BuildGrail{SpecialVictory: special, Town: d.coord()}
	case VictoryDefeatHero:
		return DefeatHero{SpecialVictory: special, Hero: d.coord()}
	case VictoryCaptureTown:
		return CaptureTown{SpecialVictory: special, Town: d.coord()}
	case VictoryDefeatMonster:
		return DefeatMonster{SpecialVictory: special, Monster: d.coord()}
	case VictoryFlagDwellings:
		return FlagDwellings{SpecialVictory: special}
	case VictoryFlagMines:
		return FlagMines{SpecialVictory: special}
	case VictoryTransportArtifact:
		return TransportArtifact{SpecialVictory: special, Artifact: d.u8(), Town: d.coord()}
	}
	// The code byte and the two flags have been consumed.
	d.unknownTag("victory condition", uint32(code), 3)
	return nil
}

func (d *decoder) readLoss() LossCondition {
	code := LossCode(d.u8())
	if d.err != nil {
		return nil
	}
	switch code {
	case LossStandard:
		return StandardLoss{}
	case LossTown:
		return LoseTown{Town: d.coord()}
	case LossHero:
		return LoseHero{Hero: d.coord()}
	case LossTime:
		return TimeExpires{Days: d.u16()}
	}
	d.unknownTag("loss condition", uint32(code), 1)
	return nil
}

// readTeams couples a non-zero team count to a full eight-byte roster.
func (d *decoder) readTeams() *Teams {
	count := d.u8()
	if count == 0 {
		return nil
	}
	t := &Teams{Count: count}
	d.fill(t.Assignment[:])
	return t
}

func (d *decoder) readHeroAvailability() HeroAvailability {
	v := d.version
	h := HeroAvailability{Allowed: d.bytes(v.AllowedHeroesSpan())}

	if v.HasPlaceholderHeroes() {
		count := d.u32()
		for i := uint32(0); i < count && d.ok(); i++ {
			h.Placeholders = append(h.Placeholders, d.u8())
		}
	}

	if v.HasConfiguredHeroes() {
		count := d.u8()
		for i := 0; i < int(count) && d.ok(); i++ {
			h.Configured = append(h.Configured, ConfiguredHero{
				ID:       d.u8(),
				Portrait: d.u8(),
				Name:     d.text(),
				Players:  d.u8(),
			})
		}
	}

	d.skip(heroesReservedSize)
	return h
}

func (d *decoder) readOptionalBitmap(present bool, size int) []byte {
	if !present {
		return nil
	}
	return d.bytes(size)
}

func (d *decoder) readRumors() []Rumor {
	count := d.u32()
	var rumors []Rumor
	for i := uint32(0); i < count && d.ok(); i++ {
		rumors = append(rumors, Rumor{Name: d.text(), Text: d.text()})
	}
	return rumors
}

func (d *decoder) readPredefinedHeroes() []PredefinedHero {
	if !d.version.HasPredefinedHeroes() {
		return nil
	}
	var heroes []PredefinedHero
	for id := 0; id < predefinedHeroCount && d.ok(); id++ {
		if !d.flag() {
			continue
		}
		h := PredefinedHero{ID: uint8(id)}
		if d.flag() {
			exp := d.u32()
			h.Experience = &exp
		}
		if d.flag() {
			h.Abilities = d.readAbilities(d.u32())
		}
		h.Artifacts = d.readArtifactSet()
		h.Biography = d.optionalText()
		h.Sex = d.u8()
		if d.flag() {
			h.Spells = d.bytes(spellBitmapSize)
		}
		if d.flag() {
			skills := d.primarySkills()
			h.PrimarySkills = &skills
		}
		heroes = append(heroes, h)
	}
	return heroes
}

func (d *decoder) readTerrain(h Header) Terrain {
	t := Terrain{Size: h.Size}
	t.Surface = d.readLevel(h.Size)
	if h.HasUnderground {
		t.Underground = d.readLevel(h.Size)
	}
	return t
}

// readLevel reads size*size tiles, rows first. The slice grows with the
// reads so a corrupt size fails on the cursor rather than on allocation.
func (d *decoder) readLevel(size uint32) []Tile {
	tiles := uint64(size) * uint64(size)
	var level []Tile
	if tiles*7 <= uint64(d.c.Remaining()) {
		level = make([]Tile, 0, tiles)
	}
	for i := uint64(0); i < tiles && d.ok(); i++ {
		level = append(level, Tile{
			Terrain:   d.u8(),
			View:      d.u8(),
			River:     d.u8(),
			RiverFlow: d.u8(),
			Road:      d.u8(),
			RoadFlow:  d.u8(),
			Flip:      d.u8(),
		})
	}
	return level
}

func (d *decoder) readTemplates() []ObjectTemplate {
	count := d.u32()
	var templates []ObjectTemplate
	for i := uint32(0); i < count && d.ok(); i++ {
		t := ObjectTemplate{Sprite: d.rawText()}
		d.fill(t.Blocked[:])
		d.fill(t.Visitable[:])
		t.AllowedTerrain = d.u16()
		t.TerrainGroup = d.u16()
		t.Class = ObjectClass(d.u32())
		t.Number = d.u32()
		t.Group = d.u8()
		t.Overlay = d.u8()
		d.fill(t.Reserved[:])
		templates = append(templates, t)
	}
	return templates
}

// readEvents reads the global timed events that follow the objects.
func (d *decoder) readEvents() []TimedEvent {
	count := d.u32()
	var events []TimedEvent
	for i := uint32(0); i < count && d.ok(); i++ {
		events = append(events, d.readTimedEvent())
		d.skip(eventReservedSize)
	}
	return events
}

func (d *decoder) readTimedEvent() TimedEvent {
	e := TimedEvent{
		Name:      d.text(),
		Message:   d.text(),
		Resources: d.resources(),
		Players:   d.u8(),
	}
	// Maps without the flag always affect human players.
	e.HumanAffected = true
	if d.version.HasHumanAffected() {
		e.HumanAffected = d.flag()
	}
	e.ComputerAffected = d.flag()
	e.FirstOccurrence = d.u16()
	e.Interval = d.u8()
	return e
}
