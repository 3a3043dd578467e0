// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suprsokr/go-h3m"
)

// tinyMap returns the smallest RoE map: a 1x1 surface and nothing else.
func tinyMap(name string) []byte {
	var b []byte
	text := func(s string) {
		b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
		b = append(b, s...)
	}

	b = binary.LittleEndian.AppendUint32(b, 0x0E)
	b = append(b, 1)
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = append(b, 0)
	text(name)
	text("A very small map")
	b = append(b, 1)
	for i := 0; i < 8; i++ {
		b = append(b, make([]byte, 2+6)...) // disabled player slots
	}
	b = append(b, 0xFF, 0xFF, 0) // standard victory and loss, no teams
	b = append(b, make([]byte, 16+31)...)
	b = append(b, 0, 0, 0, 0)         // rumors
	b = append(b, make([]byte, 7)...) // one tile
	b = append(b, 0, 0, 0, 0)         // templates
	b = append(b, 0, 0, 0, 0)         // objects
	b = append(b, 0, 0, 0, 0)         // events
	return b
}

// writeMap stores a gzip-wrapped tiny map and returns its path.
func writeMap(t *testing.T, dir, name string) string {
	t.Helper()
	wrapped, err := h3m.Deflate(tinyMap(name), h3m.ContainerGzip)
	if err != nil {
		t.Fatalf("deflate: %v", err)
	}
	path := filepath.Join(dir, name+".h3m")
	if err := os.WriteFile(path, wrapped, 0644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(configEnv, "")
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"--help"}, &stdout, &stderr); err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, c := range commands {
		if !strings.Contains(stderr.String(), c.name) {
			t.Errorf("help does not list %q", c.name)
		}
	}

	stderr.Reset()
	if err := run(nil, &stdout, &stderr); err != nil || !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("no arguments: %v\n%s", err, stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, err := runCommand(t, "frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected an unknown command error, got %v", err)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	if _, err := runCommand(t, "--encoding", "utf-8", "info", "x.h3m"); err == nil {
		t.Errorf("expected an error for a multi-byte encoding")
	}
	if _, err := runCommand(t, "dump", "-f", "xml", "x.h3m"); err == nil {
		t.Errorf("expected an error for a missing map")
	}
}

func TestRunInfoAndVerify(t *testing.T) {
	dir := t.TempDir()
	first := writeMap(t, dir, "Tiny")
	second := writeMap(t, dir, "Small")

	out, err := runCommand(t, "info", first, second)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(out, "Tiny.h3m") || !strings.Contains(out, "RoE") || !strings.Contains(out, "Small") {
		t.Errorf("info output:\n%s", out)
	}

	out, err = runCommand(t, "verify", first, second)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if strings.Count(out, "ok ") != 2 {
		t.Errorf("verify output:\n%s", out)
	}

	broken := filepath.Join(dir, "broken.h3m")
	if err := os.WriteFile(broken, tinyMap("Broken")[:30], 0644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	out, err = runCommand(t, "verify", first, broken)
	if err == nil || !strings.Contains(out, "FAIL "+broken) {
		t.Errorf("verify of a broken map: %v\n%s", err, out)
	}
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()
	path := writeMap(t, dir, "Tiny")

	out, err := runCommand(t, "dump", path)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	var doc struct {
		Header struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"header"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("parse dump: %v", err)
	}
	if doc.Header.Name != "Tiny" || doc.Header.Version != "RoE" {
		t.Errorf("header = %+v", doc.Header)
	}

	cborPath := filepath.Join(dir, "tiny.cbor")
	if _, err := runCommand(t, "dump", "-f", "cbor", "-o", cborPath, path); err != nil {
		t.Fatalf("dump cbor: %v", err)
	}
	if info, err := os.Stat(cborPath); err != nil || info.Size() == 0 {
		t.Errorf("cbor dump missing: %v", err)
	}
}

func TestRunExtractAndTranslate(t *testing.T) {
	dir := t.TempDir()
	path := writeMap(t, dir, "Tiny")

	out, err := runCommand(t, "extract", path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	templatePath := filepath.Join(dir, "Tiny_translations.json")
	if !strings.Contains(out, "2 strings") {
		t.Errorf("extract output: %s", out)
	}
	template, err := h3m.LoadTranslations(templatePath)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if _, ok := template["Tiny"]; !ok || len(template) != 2 {
		t.Errorf("template = %v", template)
	}

	translations := filepath.Join(dir, "de.json")
	if err := os.WriteFile(translations, []byte(`{
		// header
		"Tiny": "Winzig",
	}`), 0644); err != nil {
		t.Fatalf("write translations: %v", err)
	}

	out, err = runCommand(t, "translate", "-t", translations, path)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	translatedPath := filepath.Join(dir, "Tiny_translated.h3m")
	if !strings.Contains(out, "1 strings replaced") {
		t.Errorf("translate output: %s", out)
	}

	f, err := h3m.Open(translatedPath)
	if err != nil {
		t.Fatalf("open translated map: %v", err)
	}
	if f.Container() != h3m.ContainerGzip {
		t.Errorf("translated map lost its gzip container")
	}
	m, err := f.Decode()
	if err != nil {
		t.Fatalf("decode translated map: %v", err)
	}
	if m.Header.Name != "Winzig" {
		t.Errorf("name = %q, want Winzig", m.Header.Name)
	}

	// Merging keeps the finished translation in a fresh template.
	merged := filepath.Join(dir, "merged.json")
	if _, err := runCommand(t, "extract", "--merge", translations, "-o", merged, path); err != nil {
		t.Fatalf("extract with merge: %v", err)
	}
	mergedTemplate, err := h3m.LoadTranslations(merged)
	if err != nil {
		t.Fatalf("load merged template: %v", err)
	}
	if mergedTemplate["Tiny"] != "Winzig" {
		t.Errorf("merged template = %v", mergedTemplate)
	}

	if _, err := runCommand(t, "translate", path); err == nil {
		t.Errorf("expected an error without translation files")
	}
}

func TestRunSnapshotAndRestore(t *testing.T) {
	dir := t.TempDir()
	path := writeMap(t, dir, "Tiny")
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read map: %v", err)
	}

	for _, compression := range []string{"none", "lz4", "zstd"} {
		t.Run(compression, func(t *testing.T) {
			snapPath := filepath.Join(dir, "tiny_"+compression+".h3ms")
			if _, err := runCommand(t, "snapshot", "-c", compression, "-o", snapPath, path); err != nil {
				t.Fatalf("snapshot: %v", err)
			}

			restored := filepath.Join(dir, "restored_"+compression+".h3m")
			out, err := runCommand(t, "restore", "-o", restored, snapPath)
			if err != nil {
				t.Fatalf("restore: %v", err)
			}
			if !strings.Contains(out, "Tiny (RoE)") {
				t.Errorf("restore output: %s", out)
			}

			f, err := h3m.Open(restored)
			if err != nil {
				t.Fatalf("open restored map: %v", err)
			}
			source, err := h3m.Open(path)
			if err != nil {
				t.Fatalf("open source map: %v", err)
			}
			if f.Container() != h3m.ContainerGzip || !bytes.Equal(f.Raw(), source.Raw()) {
				t.Errorf("restored map differs from %d source bytes", len(original))
			}
		})
	}

	if _, err := runCommand(t, "snapshot", "-c", "brotli", path); err == nil {
		t.Errorf("expected an error for an unknown compression")
	}
}

func TestRunRestoreKeepsExistingMap(t *testing.T) {
	dir := t.TempDir()
	path := writeMap(t, dir, "Tiny")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read map: %v", err)
	}

	if _, err := runCommand(t, "snapshot", "-c", "zstd", path); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	snapPath := filepath.Join(dir, "Tiny.h3ms")

	_, err = runCommand(t, "restore", snapPath)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected a refusal to overwrite, got %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read map: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("restore replaced the existing map")
	}

	// An explicit output path may overwrite.
	if _, err := runCommand(t, "restore", "-o", path, snapPath); err != nil {
		t.Fatalf("restore with output: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove map: %v", err)
	}
	if _, err := runCommand(t, "restore", snapPath); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("restored map missing: %v", err)
	}
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeMap(t, dir, "Tiny")

	if err := os.WriteFile(filepath.Join(dir, "glossary.json"), []byte(`{"A very small map": "Eine sehr kleine Karte"}`), 0644); err != nil {
		t.Fatalf("write glossary: %v", err)
	}
	configPath := filepath.Join(dir, "h3m.yaml")
	config := "translate:\n  files: [glossary.json]\n  suffix: _de\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "translate", path)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !strings.Contains(out, "Tiny_de.h3m") {
		t.Errorf("translate output: %s", out)
	}
	f, err := h3m.Open(filepath.Join(dir, "Tiny_de.h3m"))
	if err != nil {
		t.Fatalf("open translated map: %v", err)
	}
	m, err := f.Decode()
	if err != nil {
		t.Fatalf("decode translated map: %v", err)
	}
	if m.Header.Description != "Eine sehr kleine Karte" {
		t.Errorf("description = %q", m.Header.Description)
	}
}
