// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestExportJSON(t *testing.T) {
	m, err := Decode(sampleMap(VersionSoD).build())
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}
	data, err := ExportJSON(m)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}

	var doc struct {
		Header struct {
			Version string `json:"version"`
			Name    string `json:"name"`
		} `json:"header"`
		Victory variant `json:"victory"`
		Loss    variant `json:"loss"`
		Objects []struct {
			Class     uint32 `json:"class"`
			ClassName string `json:"class_name"`
			Payload   struct {
				Kind  string         `json:"kind"`
				Value map[string]any `json:"value"`
			} `json:"payload"`
		} `json:"objects"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse exported json: %v", err)
	}

	if doc.Header.Version != "SoD" || doc.Header.Name != "Arrogance" {
		t.Errorf("header = %+v", doc.Header)
	}
	if doc.Victory.Kind != "standard" || doc.Loss.Kind != "standard" {
		t.Errorf("conditions = %s, %s", doc.Victory.Kind, doc.Loss.Kind)
	}

	kinds := []string{"sign", "resource", "monster", "seer_hut", "sign", "opaque", "opaque"}
	if len(doc.Objects) != len(kinds) {
		t.Fatalf("got %d objects, want %d", len(doc.Objects), len(kinds))
	}
	for i, kind := range kinds {
		if doc.Objects[i].Payload.Kind != kind {
			t.Errorf("object %d kind = %q, want %q", i, doc.Objects[i].Payload.Kind, kind)
		}
	}
	if doc.Objects[3].ClassName != "seer_hut" || doc.Objects[6].ClassName != "250" {
		t.Errorf("class names = %q, %q", doc.Objects[3].ClassName, doc.Objects[6].ClassName)
	}

	quest, _ := doc.Objects[3].Payload.Value["quest"].(map[string]any)
	mission, _ := quest["mission"].(map[string]any)
	if mission["kind"] != "level" || quest["done_text"] != "Well done" {
		t.Errorf("quest = %v", quest)
	}
	reward, _ := doc.Objects[3].Payload.Value["reward"].(map[string]any)
	if reward["kind"] != "experience" {
		t.Errorf("reward = %v", reward)
	}
}

func TestMapMarshalJSON(t *testing.T) {
	m, err := Decode(sampleMap(VersionAB).build())
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}
	direct, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal map: %v", err)
	}
	indented, err := ExportJSON(m)
	if err != nil {
		t.Fatalf("export json: %v", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, indented); err != nil {
		t.Fatalf("compact json: %v", err)
	}
	if !bytes.Equal(direct, compact.Bytes()) {
		t.Errorf("json.Marshal and ExportJSON disagree")
	}
}

func TestExportCBORDeterministic(t *testing.T) {
	data := sampleMap(VersionSoD).build()
	first, err := Decode(data)
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}
	second, err := Decode(data)
	if err != nil {
		t.Fatalf("decode map: %v", err)
	}

	a, err := ExportCBOR(first)
	if err != nil {
		t.Fatalf("export cbor: %v", err)
	}
	b, err := ExportCBOR(second)
	if err != nil {
		t.Fatalf("export cbor: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("CBOR export is not deterministic")
	}

	var doc map[string]any
	if err := cbor.Unmarshal(a, &doc); err != nil {
		t.Fatalf("parse exported cbor: %v", err)
	}
	header, _ := doc["header"].(map[any]any)
	if header["name"] != "Arrogance" || header["version"] != "SoD" {
		t.Errorf("header = %v", header)
	}
}
