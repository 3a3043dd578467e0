// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The document's union fields are interfaces, which neither JSON nor
// CBOR can describe on their own. Exported documents wrap every variant
// in a {kind, value} envelope instead. Export is one-way: a document is
// always rebuilt by decoding the map bytes.

// cborEncMode uses Core Deterministic Encoding so the same document
// always exports to the same bytes.
var cborEncMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	cborEncMode, err = opts.EncMode()
	if err != nil {
		panic("h3m: CBOR encoder initialization failed: " + err.Error())
	}
}

// variant is the exported form of a union value.
type variant struct {
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

type (
	mapAlias    Map
	objectAlias MapObject
	questAlias  Quest
)

type mapView struct {
	mapAlias
	Victory variant      `json:"victory"`
	Loss    variant      `json:"loss"`
	Objects []objectView `json:"objects"`
}

type objectView struct {
	objectAlias
	ClassName string  `json:"class_name"`
	Payload   variant `json:"payload"`
}

type questView struct {
	questAlias
	Mission variant `json:"mission"`
}

type seerHutView struct {
	Quest  questView `json:"quest"`
	Reward *variant  `json:"reward,omitempty"`
}

func newMapView(m *Map) mapView {
	v := mapView{
		mapAlias: mapAlias(*m),
		Victory:  victoryVariant(m.Victory),
		Loss:     lossVariant(m.Loss),
		Objects:  make([]objectView, 0, len(m.Objects)),
	}
	for _, o := range m.Objects {
		v.Objects = append(v.Objects, objectView{
			objectAlias: objectAlias(o),
			ClassName:   o.Class.String(),
			Payload:     payloadVariant(o.Payload),
		})
	}
	return v
}

func victoryVariant(c VictoryCondition) variant {
	if c == nil {
		return variant{Kind: "none"}
	}
	return variant{Kind: c.VictoryCode().String(), Value: c}
}

func lossVariant(c LossCondition) variant {
	if c == nil {
		return variant{Kind: "none"}
	}
	return variant{Kind: c.LossCode().String(), Value: c}
}

func newQuestView(q Quest) questView {
	v := questView{questAlias: questAlias(q), Mission: variant{Kind: MissionNone.String()}}
	if q.Mission != nil {
		v.Mission = variant{Kind: q.Mission.MissionCode().String(), Value: q.Mission}
	}
	return v
}

func payloadVariant(p ObjectPayload) variant {
	switch p := p.(type) {
	case nil:
		return variant{Kind: Opaque{}.payloadKind()}
	case *SeerHut:
		view := seerHutView{Quest: newQuestView(p.Quest)}
		if p.Reward != nil {
			view.Reward = &variant{Kind: p.Reward.RewardCode().String(), Value: p.Reward}
		}
		return variant{Kind: p.payloadKind(), Value: view}
	case *QuestGuard:
		return variant{Kind: p.payloadKind(), Value: newQuestView(p.Quest)}
	case *Opaque:
		return variant{Kind: p.payloadKind()}
	default:
		return variant{Kind: p.payloadKind(), Value: p}
	}
}

// MarshalJSON encodes the document with tagged variants.
func (m Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(newMapView(&m))
}

// MarshalCBOR encodes the document with tagged variants using Core
// Deterministic Encoding.
func (m Map) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(newMapView(&m))
}

// ExportJSON renders the document as indented JSON.
func ExportJSON(m *Map) ([]byte, error) {
	data, err := json.MarshalIndent(newMapView(m), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}
	return data, nil
}

// ExportCBOR renders the document as deterministic CBOR.
func ExportCBOR(m *Map) ([]byte, error) {
	data, err := cborEncMode.Marshal(newMapView(m))
	if err != nil {
		return nil, fmt.Errorf("export cbor: %w", err)
	}
	return data, nil
}
