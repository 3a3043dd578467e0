// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

// Records shared by several object classes and sections.

// readCreatureSet reads n army slots. Slots holding the version's empty
// sentinel consume their bytes but are left out of the result.
func (d *decoder) readCreatureSet(n int) []CreatureStack {
	width := d.version.CreatureIDWidth()
	sentinel := d.version.CreatureSentinel()
	stacks := []CreatureStack{}
	for i := 0; i < n && d.ok(); i++ {
		id := d.id(width)
		count := d.u16()
		if id == sentinel {
			continue
		}
		stacks = append(stacks, CreatureStack{ID: id, Count: count})
	}
	return stacks
}

// readGuarded reads the optional message block of artifacts, resources,
// events and Pandora's boxes.
func (d *decoder) readGuarded() Guarded {
	var g Guarded
	if !d.flag() {
		return g
	}
	message := d.text()
	g.Message = &message
	if d.flag() {
		g.Guards = d.readCreatureSet(armySlots)
	}
	d.skip(4)
	return g
}

func (d *decoder) readAbilities(count uint32) []Ability {
	var abilities []Ability
	for i := uint32(0); i < count && d.ok(); i++ {
		abilities = append(abilities, Ability{ID: d.u8(), Level: d.u8()})
	}
	return abilities
}

// readArtifactSet reads a hero's equipment. It returns nil when the
// hero keeps its default equipment.
func (d *decoder) readArtifactSet() ArtifactSet {
	if !d.flag() {
		return nil
	}
	set := ArtifactSet{}
	for slot := uint16(0); slot < bodySlotCount; slot++ {
		d.readArtifactSlot(set, slot)
	}
	if d.version.HasCatapultSlot() {
		d.readArtifactSlot(set, SlotCatapult)
	}
	d.readArtifactSlot(set, SlotSpellbook)
	d.readArtifactSlot(set, SlotMisc5)

	backpack := d.u16()
	for i := uint16(0); i < backpack && d.ok(); i++ {
		d.readArtifactSlot(set, SlotBackpack+i)
	}
	return set
}

func (d *decoder) readArtifactSlot(set ArtifactSet, slot uint16) {
	id := d.id(d.version.ArtifactIDWidth())
	if d.err != nil || id == d.version.ArtifactSentinel() {
		return
	}
	set[slot] = id
}

// readContents reads what events and Pandora's boxes hand out, up to the
// eight reserved bytes both end with.
func (d *decoder) readContents() Contents {
	c := Contents{
		Guarded:       d.readGuarded(),
		Experience:    d.u32(),
		Mana:          d.u32(),
		Morale:        d.u8(),
		Luck:          d.u8(),
		Resources:     d.resources(),
		PrimarySkills: d.primarySkills(),
	}
	c.Abilities = d.readAbilities(uint32(d.u8()))

	artifacts := d.u8()
	width := d.version.ArtifactIDWidth()
	for i := 0; i < int(artifacts) && d.ok(); i++ {
		c.Artifacts = append(c.Artifacts, d.id(width))
	}

	spells := d.u8()
	for i := 0; i < int(spells) && d.ok(); i++ {
		c.Spells = append(c.Spells, d.u8())
	}

	c.Creatures = d.readCreatureSet(int(d.u8()))
	d.skip(8)
	return c
}

func (d *decoder) readHero() *Hero {
	v := d.version
	h := &Hero{}
	if v.HasObjectID() {
		id := d.u32()
		h.ID = &id
	}
	h.Owner = d.u8()
	h.Type = d.u8()
	h.Name = d.optionalText()

	if !v.HasExperienceFlag() || d.flag() {
		exp := d.u32()
		h.Experience = &exp
	}
	if d.flag() {
		portrait := d.u8()
		h.Portrait = &portrait
	}
	if d.flag() {
		h.Abilities = d.readAbilities(d.u32())
	}
	if d.flag() {
		h.Army = d.readCreatureSet(armySlots)
	}
	h.Formation = d.u8()
	h.Artifacts = d.readArtifactSet()
	h.PatrolRadius = d.u8()

	if v.HasHeroBiography() {
		h.Biography = d.optionalText()
		sex := d.u8()
		h.Sex = &sex
	}

	switch v.HeroSpellsLayout() {
	case spellBitmapSize:
		if d.flag() {
			h.Spells = d.bytes(spellBitmapSize)
		}
	case 1:
		h.Spells = d.bytes(1)
	}

	if v.HasCustomPrimarySkills() && d.flag() {
		skills := d.primarySkills()
		h.PrimarySkills = &skills
	}

	d.skip(16)
	return h
}

func (d *decoder) readTown() *Town {
	v := d.version
	t := &Town{}
	if v.HasObjectID() {
		id := d.u32()
		t.ID = &id
	}
	t.Owner = d.u8()
	t.Name = d.optionalText()
	if d.flag() {
		t.Garrison = d.readCreatureSet(armySlots)
	}
	t.Formation = d.u8()

	if d.flag() {
		b := &TownBuildings{}
		d.fill(b.Built[:])
		d.fill(b.Forbidden[:])
		t.Buildings = b
	} else {
		fort := d.flag()
		t.HasFort = &fort
	}

	if v.HasObligatorySpells() {
		t.ObligatorySpells = d.bytes(spellBitmapSize)
	}
	t.PossibleSpells = d.bytes(spellBitmapSize)

	count := d.u32()
	for i := uint32(0); i < count && d.ok(); i++ {
		e := TownEvent{TimedEvent: d.readTimedEvent()}
		d.skip(eventReservedSize)
		d.fill(e.NewBuildings[:])
		for j := range e.NewCreatures {
			e.NewCreatures[j] = d.u16()
		}
		d.skip(4)
		t.Events = append(t.Events, e)
	}

	if v.HasTownAlignment() {
		alignment := d.u8()
		t.Alignment = &alignment
	}
	d.skip(3)
	return t
}

// readQuest reads a mission. Unknown mission codes are kept as
// UnknownMission and, like known ones, are followed by the deadline and
// the three texts.
func (d *decoder) readQuest() Quest {
	code := MissionCode(d.u8())
	var q Quest
	switch code {
	case MissionNone:
		q.Mission = NoMission{}
		return q
	case MissionLevel:
		q.Mission = ReachLevel{Level: d.u32()}
	case MissionPrimarySkills:
		q.Mission = ReachPrimarySkills{Skills: d.primarySkills()}
	case MissionKillHero:
		q.Mission = KillHero{Target: d.u32()}
	case MissionKillCreature:
		q.Mission = KillCreature{Target: d.u32()}
	case MissionArtifacts:
		m := ReturnArtifacts{}
		count := d.u8()
		for i := 0; i < int(count) && d.ok(); i++ {
			m.Artifacts = append(m.Artifacts, d.u16())
		}
		q.Mission = m
	case MissionArmy:
		m := ReturnArmy{}
		count := d.u8()
		for i := 0; i < int(count) && d.ok(); i++ {
			m.Creatures = append(m.Creatures, CreatureStack{ID: d.u16(), Count: d.u16()})
		}
		q.Mission = m
	case MissionResources:
		q.Mission = ReturnResources{Resources: d.resources()}
	case MissionHero:
		q.Mission = BeHero{Hero: d.u8()}
	case MissionPlayer:
		q.Mission = BePlayer{Player: d.u8()}
	default:
		d.log.Warn("unknown quest mission", "code", uint8(code), "offset", d.c.Offset()-1)
		q.Mission = UnknownMission{Code: code}
	}
	q.Deadline = d.u32()
	q.FirstText = d.text()
	q.NextText = d.text()
	q.DoneText = d.text()
	return q
}

// readReward reads the reward a seer hut grants. Unknown codes carry no
// payload.
func (d *decoder) readReward() Reward {
	code := RewardCode(d.u8())
	switch code {
	case RewardNothing:
		return NoReward{}
	case RewardExperience:
		return ExperienceReward{Amount: d.u32()}
	case RewardMana:
		return ManaReward{Amount: d.u32()}
	case RewardMorale:
		return MoraleReward{Bonus: d.u8()}
	case RewardLuck:
		return LuckReward{Bonus: d.u8()}
	case RewardResources:
		return ResourceReward{Resource: d.u8(), Amount: d.u32()}
	case RewardPrimarySkill:
		return PrimarySkillReward{Skill: d.u8(), Bonus: d.u8()}
	case RewardAbility:
		return AbilityReward{Ability: d.u8(), Level: d.u8()}
	case RewardArtifact:
		return ArtifactReward{Artifact: d.id(d.version.ArtifactIDWidth())}
	case RewardSpell:
		return SpellReward{Spell: d.u8()}
	case RewardCreature:
		return CreatureReward{Creature: d.id(d.version.CreatureIDWidth()), Count: d.u16()}
	}
	if d.err == nil {
		d.log.Warn("unknown seer hut reward", "code", uint8(code), "offset", d.c.Offset()-1)
	}
	return UnknownReward{Code: code}
}
