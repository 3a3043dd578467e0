// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "h3m_config_")
	if err != nil {
		t.Fatalf("create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "h3m.yaml")
	content := `encoding: windows-1252
log:
  level: debug
translate:
  files:
    - glossary.json
    - /abs/extra.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Encoding != "windows-1252" || cfg.Log.Level != "debug" {
		t.Errorf("config = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Log.Format != "text" || cfg.Snapshot.Compression != "zstd" || cfg.Translate.Suffix != "_translated" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	want := []string{filepath.Join(tmpDir, "glossary.json"), "/abs/extra.json"}
	if len(cfg.Translate.Files) != 2 || cfg.Translate.Files[0] != want[0] || cfg.Translate.Files[1] != want[1] {
		t.Errorf("translate files = %v, want %v", cfg.Translate.Files, want)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h3m.yaml")
	if err := os.WriteFile(path, []byte("snapshot:\n  compression: lz4\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configEnv, path)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Snapshot.Compression != "lz4" {
		t.Errorf("compression = %q, want lz4", cfg.Snapshot.Compression)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv(configEnv, "")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Encoding != "windows-1251" {
		t.Errorf("encoding = %q", cfg.Encoding)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding = "utf-8"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Snapshot.Compression = "rar"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"utf-8", "log.level", "log.format", "rar"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q: %v", want, err)
		}
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Log.Format = "json"
	cfg.Log.Level = "info"

	logger, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown", "map", "Arrogance.h3m")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"map":"Arrogance.h3m"`) {
		t.Errorf("log output = %s", out)
	}
}
