// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional cliff.toml or cliff.yaml file that
// tunes logging and color and presets arguments for individual commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/cliff/pkg/naming"
	"gopkg.in/yaml.v3"
)

// Version is the newest config file version this package understands.
const Version = 1

// Names are the file names Discover looks for, in order of preference.
var Names = []string{"cliff.toml", "cliff.yaml", "cliff.yml"}

// Format is a config file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
}

type Config struct {
	Version int `toml:"version,omitempty" yaml:"version,omitempty"`
	// Requires is a semver constraint the running binary must satisfy.
	Requires string             `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Color    string             `toml:"color,omitempty" yaml:"color,omitempty"`
	Log      Log                `toml:"log" yaml:"log"`
	Commands map[string]Command `toml:"commands,omitempty" yaml:"commands,omitempty"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type Log struct {
	Level     string `toml:"level,omitempty" yaml:"level,omitempty"`
	Format    string `toml:"format,omitempty" yaml:"format,omitempty"`
	File      string `toml:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB int    `toml:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
}

// Command holds per-command settings, keyed by command name.
type Command struct {
	// Args are placed before the command's own arguments.
	Args []string `toml:"args,omitempty" yaml:"args,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Version: Version,
		Color:   "auto",
		Log: Log{
			Level:     "info",
			Format:    "auto",
			MaxSizeMB: 10,
		},
	}
}

// Decode reads a config in the given format. Keys missing from the input
// keep their default values; unknown keys are an error.
func Decode(r io.Reader, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path, choosing the format by extension.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the nearest config file in startDir or one of its parents.
// It returns Default when there is none.
func Discover(startDir string) (*Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Find returns the path of the nearest config file, or os.ErrNotExist.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func (c *Config) validate() error {
	if c.Version == 0 {
		c.Version = Version
	}
	if c.Version > Version {
		return fmt.Errorf("config version %d is newer than supported version %d", c.Version, Version)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color: want auto, always or never, got %q", c.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: want debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("log.format: want auto, text or json, got %q", c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must not be negative")
	}
	if c.Requires != "" {
		if _, err := semver.NewConstraint(c.Requires); err != nil {
			return fmt.Errorf("requires: %w", err)
		}
	}
	for name := range c.Commands {
		if naming.CommandPath(name) == "" {
			return fmt.Errorf("commands: %q is not a command name", name)
		}
	}
	return nil
}

// VersionError reports a binary that does not satisfy Config.Requires.
type VersionError struct {
	Path     string
	Requires string
	Version  string
}

func (e *VersionError) Error() string {
	where := "config"
	if e.Path != "" {
		where = e.Path
	}
	return fmt.Sprintf("%s requires cliff %s, running %s", where, e.Requires, e.Version)
}

// CheckVersion verifies that version satisfies the Requires constraint.
func (c *Config) CheckVersion(version string) error {
	if c == nil || c.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("requires: %w", err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}
	if !constraint.Check(v) {
		return &VersionError{Path: c.Path, Requires: c.Requires, Version: v.String()}
	}
	return nil
}

// Presets returns the preset arguments of the named command. Names are
// compared in canonical form, so "config:show" matches "Config/Show".
func (c *Config) Presets(name string) []string {
	if c == nil {
		return nil
	}
	path := naming.CommandPath(name)
	if path == "" {
		return nil
	}
	keys := make([]string, 0, len(c.Commands))
	for key := range c.Commands {
		keys = append(keys, key)
	}
	// Several keys may share a canonical form; the last in sorted order wins.
	slices.Sort(keys)
	var args []string
	for _, key := range keys {
		if naming.CommandPath(key) == path {
			args = c.Commands[key].Args
		}
	}
	return slices.Clone(args)
}

// Encode writes the config in the given format.
func (c *Config) Encode(w io.Writer, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(c)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported config format %q", format)
}
