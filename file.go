// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package h3m

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is a map file read into memory. Its bytes are unwrapped from the
// container once; decoding and rewriting work on the raw buffer.
type File struct {
	path      string
	container Container
	raw       []byte
	codec     *Codec
}

// Open reads a map file with the default codec.
func Open(path string) (*File, error) {
	return defaultCodec.Open(path)
}

// Open reads a map file. Gzip-wrapped and raw files are both accepted.
func (c *Codec) Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	raw, container, err := Inflate(data)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	c.logger().Debug("map file opened", "path", path, "container", container, "size", len(raw))
	return &File{path: path, container: container, raw: raw, codec: c}, nil
}

// Path returns the path the file was read from.
func (f *File) Path() string { return f.path }

// Container returns the wrapping the file was stored in.
func (f *File) Container() Container { return f.container }

// Raw returns the uncompressed map buffer. It must not be modified.
func (f *File) Raw() []byte { return f.raw }

// Fingerprint returns the fingerprint of the uncompressed map.
func (f *File) Fingerprint() Fingerprint { return FingerprintMap(f.raw) }

// Decode decodes the map.
func (f *File) Decode() (*Map, error) {
	m, err := f.codec.Decode(f.raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return m, nil
}

// Strings returns the distinct translatable strings of the map.
func (f *File) Strings() ([]string, error) {
	texts, err := f.codec.ExtractStrings(f.raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return texts, nil
}

// Snapshot bundles the map bytes and its decoded document.
func (f *File) Snapshot() (*Snapshot, error) {
	m, err := f.Decode()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Source: filepath.Base(f.path), Container: f.container, Raw: f.raw, Map: m}, nil
}

// Translate writes a translated copy of the map to destPath, using the
// same container as the source. It returns the number of strings
// replaced.
func (f *File) Translate(t Translator, destPath string) (int, error) {
	out, n, err := f.codec.Translate(f.raw, t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.path, err)
	}
	wrapped, err := Deflate(out, f.container)
	if err != nil {
		return 0, fmt.Errorf("wrap translated map: %w", err)
	}
	if err := WriteFile(destPath, wrapped); err != nil {
		return 0, err
	}
	f.codec.logger().Info("map translated", "source", f.path, "dest", destPath, "replaced", n)
	return n, nil
}

// WriteFile writes data to path atomically: the bytes go to a temporary
// file in the same directory, which then replaces path. When the rename
// fails, for example across devices, the temporary file is copied.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "h3m_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		if err := copyFile(tempPath, path); err != nil {
			os.Remove(tempPath)
			return fmt.Errorf("save %s: %w", path, err)
		}
		os.Remove(tempPath)
	}
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
