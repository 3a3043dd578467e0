// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import "fmt"

// readObjects reads the placed objects. Each object names its template
// by index, and the template's class selects the payload layout.
func (d *decoder) readObjects(templates []ObjectTemplate) []MapObject {
	count := d.u32()
	var objects []MapObject
	for i := uint32(0); i < count && d.ok(); i++ {
		o := MapObject{Position: d.coord(), Template: d.u32()}
		d.skip(objectReservedSize)
		if d.err != nil {
			break
		}
		if int64(o.Template) >= int64(len(templates)) {
			d.fail(fmt.Errorf("object %d: %w: %d of %d", i, ErrBadTemplateIndex, o.Template, len(templates)))
			break
		}
		t := templates[o.Template]
		o.Class = t.Class
		if !o.Class.Known() {
			d.log.Warn("unrecognized object class", "class", uint32(o.Class),
				"sprite", t.Sprite, "offset", d.c.Offset())
		}
		o.Payload = d.readPayload(t)
		objects = append(objects, o)
	}
	return objects
}

// readPayload decodes the class-specific part of an object.
func (d *decoder) readPayload(t ObjectTemplate) ObjectPayload {
	v := d.version
	switch t.Class {
	case ClassEvent:
		e := &Event{Contents: d.readContents()}
		e.AvailableFor = d.u8()
		e.ComputerActivate = d.flag()
		e.RemoveAfterVisit = d.flag()
		d.skip(4)
		return e

	case ClassSign, ClassOceanBottle:
		s := &Sign{Message: d.text()}
		d.skip(4)
		return s

	case ClassHero, ClassRandomHero, ClassPrison:
		return d.readHero()

	case ClassMonster, ClassRandomMonster,
		ClassRandomMonsterL1, ClassRandomMonsterL2, ClassRandomMonsterL3,
		ClassRandomMonsterL4, ClassRandomMonsterL5, ClassRandomMonsterL6,
		ClassRandomMonsterL7:
		return d.readMonster()

	case ClassSeerHut:
		return d.readSeerHut()

	case ClassWitchHut:
		w := &WitchHut{}
		if v.HasWitchHutAbilities() {
			w.Abilities = d.bytes(abilityBitmapSize)
		}
		return w

	case ClassScholar:
		s := &Scholar{BonusType: d.u8(), BonusID: d.u8()}
		d.skip(6)
		return s

	case ClassGarrison, ClassGarrisonVertical:
		g := &Garrison{Owner: d.u8()}
		d.skip(3)
		g.Creatures = d.readCreatureSet(armySlots)
		g.Removable = true
		if v.HasRemovableGarrison() {
			g.Removable = d.flag()
		}
		d.skip(8)
		return g

	case ClassArtifact, ClassRandomArtifact, ClassRandomTreasureArtifact,
		ClassRandomMinorArtifact, ClassRandomMajorArtifact, ClassRandomRelicArtifact,
		ClassSpellScroll:
		a := &ArtifactObject{Guarded: d.readGuarded()}
		if t.Class == ClassSpellScroll {
			spell := d.u32()
			a.Spell = &spell
		}
		if t.Class == ClassArtifact {
			artifact := t.Number
			a.Artifact = &artifact
		}
		return a

	case ClassResource, ClassRandomResource:
		r := &ResourceObject{Guarded: d.readGuarded(), Quantity: d.u32()}
		d.skip(4)
		return r

	case ClassTown, ClassRandomTown:
		return d.readTown()

	case ClassMine, ClassAbandonedMine,
		ClassCreatureGenerator1, ClassCreatureGenerator2,
		ClassCreatureGenerator3, ClassCreatureGenerator4:
		o := &Owned{Owner: d.u8()}
		d.skip(3)
		return o

	case ClassShrineOfMagicIncantation, ClassShrineOfMagicGesture, ClassShrineOfMagicThought:
		s := &Shrine{Spell: d.u8()}
		d.skip(3)
		return s

	case ClassPandorasBox:
		return &PandorasBox{Contents: d.readContents()}

	case ClassGrail:
		return &Grail{Radius: d.u32()}

	case ClassRandomDwelling:
		r := &RandomDwelling{Owner: d.u32(), CastleID: d.u32()}
		r.Castles = d.readLinkedCastles(r.CastleID)
		r.MinLevel = d.u8()
		r.MaxLevel = d.u8()
		return r

	case ClassRandomDwellingLevel:
		r := &RandomDwellingLevel{Owner: d.u32(), CastleID: d.u32()}
		r.Castles = d.readLinkedCastles(r.CastleID)
		return r

	case ClassRandomDwellingFaction:
		return &RandomDwellingFaction{Owner: d.u32(), MinLevel: d.u8(), MaxLevel: d.u8()}

	case ClassQuestGuard:
		return &QuestGuard{Quest: d.readQuest()}

	case ClassShipyard:
		return &Shipyard{Owner: d.u32()}

	case ClassLighthouse:
		return &Lighthouse{Owner: d.u32()}

	case ClassHeroPlaceholder:
		p := &HeroPlaceholder{Owner: d.u8(), HeroID: d.u8()}
		if p.HeroID == noHero {
			power := d.u8()
			p.Power = &power
		}
		return p
	}
	return &Opaque{}
}

func (d *decoder) readMonster() *Monster {
	m := &Monster{}
	if d.version.HasObjectID() {
		id := d.u32()
		m.ID = &id
	}
	m.Count = d.u16()
	m.Disposition = d.u8()
	if d.flag() {
		message := d.text()
		resources := d.resources()
		artifact := d.id(d.version.ArtifactIDWidth())
		m.Message = &message
		m.Resources = &resources
		m.Artifact = &artifact
	}
	m.NeverFlees = d.flag()
	m.NotGrowing = d.flag()
	d.skip(2)
	return m
}

// readSeerHut reads a seer hut. RoE huts only ask for one artifact, with
// 0xFF meaning the hut has no quest.
func (d *decoder) readSeerHut() *SeerHut {
	s := &SeerHut{}
	if d.version.HasQuests() {
		s.Quest = d.readQuest()
	} else if artifact := d.u8(); artifact != noObject {
		s.Quest.Mission = ReturnArtifacts{Artifacts: []uint16{uint16(artifact)}}
	} else {
		s.Quest.Mission = NoMission{}
	}

	if s.Quest.Mission.MissionCode() == MissionNone {
		d.skip(3)
		return s
	}
	s.Reward = d.readReward()
	d.skip(2)
	return s
}

// readLinkedCastles reads the faction mask of a random dwelling that is
// not linked to a town.
func (d *decoder) readLinkedCastles(castleID uint32) *[2]uint8 {
	if castleID != 0 {
		return nil
	}
	return &[2]uint8{d.u8(), d.u8()}
}
