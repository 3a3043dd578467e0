// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

// h3m inspects, translates and snapshots Heroes III map files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every command receives.
type env struct {
	cfg    *Config
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) error
}

var commands = []command{
	{"info", "print the header of one or more maps", runInfo},
	{"dump", "decode a map and write its document as JSON or CBOR", runDump},
	{"extract", "write a translation template with every map string", runExtract},
	{"translate", "replace map strings from translation files", runTranslate},
	{"verify", "check that maps decode and re-encode byte for byte", runVerify},
	{"snapshot", "write a compressed, fingerprinted snapshot of a map", runSnapshot},
	{"restore", "write the map stored in a snapshot", runRestore},
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath, encoding, logLevel string

	flagSet := pflag.NewFlagSet("h3m", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $"+configEnv+")")
	flagSet.StringVar(&encoding, "encoding", "", "code page of map strings (overrides config)")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help || flagSet.NArg() == 0 {
		printHelp(stderr, flagSet)
		return nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if encoding != "" {
		cfg.Encoding = encoding
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	name := flagSet.Arg(0)
	for _, c := range commands {
		if c.name == name {
			return c.run(&env{cfg: cfg, stdout: stdout, stderr: stderr}, flagSet.Args()[1:])
		}
	}
	return fmt.Errorf("unknown command %q (see h3m --help)", name)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `h3m inspects, translates and snapshots Heroes III map files.

Usage:
  h3m [flags] <command> [command flags] <map>...

Commands:
`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, `
Examples:
  # Show the header of every map in a directory
  h3m info maps/*.h3m

  # Create a translation template, then apply it
  h3m extract -o arrogance.json Arrogance.h3m
  h3m translate -t arrogance.json Arrogance.h3m

  # Check that a map survives a decode/encode round trip
  h3m verify Arrogance.h3m

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// newFlagSet returns a flag set for a command.
func newFlagSet(e *env, name, usage string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("h3m "+name, pflag.ContinueOnError)
	flagSet.SetOutput(e.stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage:\n  h3m %s %s\n\nFlags:\n", name, usage)
		flagSet.PrintDefaults()
	}
	return flagSet
}
