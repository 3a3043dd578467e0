// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/suprsokr/go-h3m"
)

// parseFlags parses command flags. It reports done when help was shown.
func parseFlags(flagSet *pflag.FlagSet, args []string) (done bool, err error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func runInfo(e *env, args []string) error {
	flagSet := newFlagSet(e, "info", "<map>...")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		return fmt.Errorf("info: no maps given")
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tVERSION\tSIZE\tLEVELS\tFINGERPRINT\tNAME")
	var failed int
	for _, path := range flagSet.Args() {
		info, err := codec.ProbeFile(path)
		if err != nil {
			codec.Logger.Error("probe failed", "path", path, "error", err)
			failed++
			continue
		}
		levels := 1
		if info.Header.HasUnderground {
			levels = 2
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", filepath.Base(path), info.Header.Version,
			info.Header.Size, levels, info.Fingerprint.Short(), info.Header.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("info: %d of %d maps could not be read", failed, flagSet.NArg())
	}
	return nil
}

func runDump(e *env, args []string) error {
	var format, output string
	flagSet := newFlagSet(e, "dump", "[flags] <map>")
	flagSet.StringVarP(&format, "format", "f", "json", "output format: json or cbor")
	flagSet.StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("dump: expected one map, got %d", flagSet.NArg())
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	f, err := codec.Open(flagSet.Arg(0))
	if err != nil {
		return err
	}
	m, err := f.Decode()
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json":
		data, err = h3m.ExportJSON(m)
		data = append(data, '\n')
	case "cbor":
		data, err = h3m.ExportCBOR(m)
	default:
		return fmt.Errorf("dump: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	if output == "" {
		_, err = e.stdout.Write(data)
		return err
	}
	return h3m.WriteFile(output, data)
}

func runExtract(e *env, args []string) error {
	var output, merge string
	flagSet := newFlagSet(e, "extract", "[flags] <map>")
	flagSet.StringVarP(&output, "output", "o", "", "template path (default: <map>_translations.json)")
	flagSet.StringVar(&merge, "merge", "", "carry over replacements from this translation file")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("extract: expected one map, got %d", flagSet.NArg())
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	path := flagSet.Arg(0)
	f, err := codec.Open(path)
	if err != nil {
		return err
	}
	texts, err := f.Strings()
	if err != nil {
		return err
	}

	var existing h3m.Translations
	if merge != "" {
		if existing, err = h3m.LoadTranslations(merge); err != nil {
			return err
		}
	}
	template, err := h3m.BuildTemplate(texts, existing)
	if err != nil {
		return err
	}

	if output == "" {
		output = stem(path) + "_translations.json"
	}
	if err := h3m.WriteFile(output, template); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: %d strings\n", output, len(texts))
	return nil
}

func runTranslate(e *env, args []string) error {
	var files []string
	var output string
	flagSet := newFlagSet(e, "translate", "[flags] <map>")
	flagSet.StringSliceVarP(&files, "translations", "t", nil, "translation files, lowest priority first")
	flagSet.StringVarP(&output, "output", "o", "", "output path (default: <map><suffix>.h3m)")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("translate: expected one map, got %d", flagSet.NArg())
	}
	layers := append(append([]string(nil), e.cfg.Translate.Files...), files...)
	if len(layers) == 0 {
		return fmt.Errorf("translate: no translation files given")
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	chain, err := h3m.OpenTranslationChain(layers)
	if err != nil {
		return err
	}
	path := flagSet.Arg(0)
	f, err := codec.Open(path)
	if err != nil {
		return err
	}
	if output == "" {
		output = stem(path) + e.cfg.Translate.Suffix + filepath.Ext(path)
	}
	n, err := f.Translate(chain, output)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: %d strings replaced\n", output, n)
	return nil
}

func runVerify(e *env, args []string) error {
	flagSet := newFlagSet(e, "verify", "<map>...")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		return fmt.Errorf("verify: no maps given")
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	var failed int
	for _, path := range flagSet.Args() {
		if err := verifyMap(codec, path); err != nil {
			fmt.Fprintf(e.stdout, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(e.stdout, "ok   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("verify: %d of %d maps failed", failed, flagSet.NArg())
	}
	return nil
}

// verifyMap mirrors a map and compares the output with the input.
func verifyMap(codec *h3m.Codec, path string) error {
	f, err := codec.Open(path)
	if err != nil {
		return err
	}
	_, out, err := codec.Mirror(f.Raw(), nil)
	if err != nil {
		return err
	}
	if !bytes.Equal(out, f.Raw()) {
		return fmt.Errorf("re-encoded map differs: %s != %s",
			h3m.FingerprintMap(out).Short(), f.Fingerprint().Short())
	}
	return nil
}

func runSnapshot(e *env, args []string) error {
	var output, compression string
	flagSet := newFlagSet(e, "snapshot", "[flags] <map>")
	flagSet.StringVarP(&output, "output", "o", "", "snapshot path (default: <map>.h3ms)")
	flagSet.StringVarP(&compression, "compression", "c", "", "none, lz4 or zstd (overrides config)")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("snapshot: expected one map, got %d", flagSet.NArg())
	}
	if compression == "" {
		compression = e.cfg.Snapshot.Compression
	}
	tag, err := h3m.ParseCompressionTag(compression)
	if err != nil {
		return err
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	path := flagSet.Arg(0)
	f, err := codec.Open(path)
	if err != nil {
		return err
	}
	snap, err := f.Snapshot()
	if err != nil {
		return err
	}
	data, err := h3m.MarshalSnapshot(snap, tag)
	if err != nil {
		return err
	}
	if output == "" {
		output = stem(path) + ".h3ms"
	}
	if err := h3m.WriteFile(output, data); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: %d bytes, map %s\n", output, len(data), f.Fingerprint().Short())
	return nil
}

func runRestore(e *env, args []string) error {
	var output string
	flagSet := newFlagSet(e, "restore", "[flags] <snapshot>")
	flagSet.StringVarP(&output, "output", "o", "", "map path (default: the snapshot's source name)")
	if done, err := parseFlags(flagSet, args); done || err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("restore: expected one snapshot, got %d", flagSet.NArg())
	}
	codec, err := e.cfg.Codec(e.stderr)
	if err != nil {
		return err
	}

	path := flagSet.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	snap, err := codec.UnmarshalSnapshot(data)
	if err != nil {
		return err
	}
	wrapped, err := h3m.Deflate(snap.Raw, snap.Container)
	if err != nil {
		return err
	}
	if output == "" {
		if snap.Source == "" {
			return fmt.Errorf("restore: snapshot has no source name; use --output")
		}
		output = filepath.Join(filepath.Dir(path), filepath.Base(snap.Source))
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("restore: %s already exists; use --output to overwrite it", output)
		}
	}
	if err := h3m.WriteFile(output, wrapped); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s: %s (%s)\n", output, snap.Map.Header.Name, snap.Map.Header.Version)
	return nil
}

// stem returns path without its extension.
func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
