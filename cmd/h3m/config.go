// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suprsokr/go-h3m"
)

// configEnv names the environment variable holding the config path. The
// --config flag takes precedence. Without either, defaults apply.
const configEnv = "H3M_CONFIG"

// Config is the h3m tool configuration.
type Config struct {
	// Encoding is the code page of map strings, e.g. "windows-1251".
	Encoding string `yaml:"encoding"`

	Log LogConfig `yaml:"log"`

	Snapshot SnapshotConfig `yaml:"snapshot"`

	Translate TranslateConfig `yaml:"translate"`
}

// LogConfig configures diagnostic output on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: warn
	Level string `yaml:"level"`

	// Format is text or json. Default: text
	Format string `yaml:"format"`
}

// SnapshotConfig configures snapshot writing.
type SnapshotConfig struct {
	// Compression is none, lz4 or zstd. Default: zstd
	Compression string `yaml:"compression"`
}

// TranslateConfig configures the translate command.
type TranslateConfig struct {
	// Files are translation files applied under any given on the command
	// line, lowest priority first. Relative paths are resolved against
	// the config file's directory.
	Files []string `yaml:"files"`

	// Suffix is appended to the map name when no output path is given.
	// Default: _translated
	Suffix string `yaml:"suffix"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Encoding:  "windows-1251",
		Log:       LogConfig{Level: "warn", Format: "text"},
		Snapshot:  SnapshotConfig{Compression: "zstd"},
		Translate: TranslateConfig{Suffix: "_translated"},
	}
}

// LoadConfig loads the config file at path, or the one named by
// H3M_CONFIG when path is empty. Unset fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, file := range cfg.Translate.Files {
		if !filepath.IsAbs(file) {
			cfg.Translate.Files[i] = filepath.Join(dir, file)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if _, err := h3m.LookupEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if _, err := h3m.ParseCompressionTag(c.Snapshot.Compression); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Codec builds the map codec the configuration describes.
func (c *Config) Codec(w io.Writer) (*h3m.Codec, error) {
	enc, err := h3m.LookupEncoding(c.Encoding)
	if err != nil {
		return nil, err
	}
	logger, err := c.Logger(w)
	if err != nil {
		return nil, err
	}
	return &h3m.Codec{Encoding: enc, Logger: logger}, nil
}

// Logger builds the diagnostic logger.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
