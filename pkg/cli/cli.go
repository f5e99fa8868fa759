// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"
	"log/slog"
	"slices"

	"github.com/shayne/yargs"
	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/config"
	"github.com/yeetrun/cliff/pkg/tui"
)

// Version is the cliff release, checked against config "requires".
const Version = "0.1.0"

// ProgramName is the root command's name in usage and errors.
const ProgramName = "cliff"

// GlobalFlags are accepted anywhere on the command line and removed before
// command resolution.
type GlobalFlags struct {
	Config   string `flag:"config" help:"Config file (default: nearest cliff.toml or cliff.yaml)"`
	LogLevel string `flag:"log-level" help:"Log level (debug|info|warn|error)"`
	LogFile  string `flag:"log-file" help:"Write logs to a rotated file instead of stderr"`
	NoColor  bool   `flag:"no-color" help:"Disable colored output"`
}

// ParseGlobalFlags removes the global flags from args, wherever they appear,
// and returns them with the remaining arguments in order.
func ParseGlobalFlags(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[GlobalFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// Env is what commands write to and read settings from.
type Env struct {
	Out    io.Writer
	Err    io.Writer
	Config *config.Config
	Color  tui.Colorizer
	Logger *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// CommandInfo describes a built-in command for registration and listings.
// New builds a fresh instance bound to env.
type CommandInfo struct {
	Name        string
	Description string
	Examples    []string
	Aliases     []string
	Hidden      bool
	New         func(env *Env) cliff.Command
}

var commandInfos = []CommandInfo{
	{
		Name:        "demo",
		Description: "Showcase a required, an optional and an empty option",
		Examples: []string{
			"cliff demo --required-option=yes world",
			"cliff demo -e --optional-option=other world",
		},
		New: func(env *Env) cliff.Command { return newDemo(env) },
	},
	{
		Name:        "greet",
		Description: "Greet one or more people",
		Examples:    []string{"cliff greet alice bob", "cliff greet --loud -g=Hi"},
		Aliases:     []string{"hello"},
		New:         func(env *Env) cliff.Command { return &Greet{env: env, Greeting: "Hello"} },
	},
	{
		Name:        "commands",
		Description: "List the available commands",
		Aliases:     []string{"help"},
		New:         func(env *Env) cliff.Command { return &Commands{env: env} },
	},
	{
		Name:        "config",
		Description: "Show which config file is in use",
		New:         func(env *Env) cliff.Command { return &ConfigCommand{env: env} },
	},
	{
		Name:        "config:show",
		Description: "Print the effective configuration",
		Examples:    []string{"cliff config:show --format=yaml"},
		New:         func(env *Env) cliff.Command { return &ConfigShow{env: env, Format: string(config.TOML)} },
	},
}

// registryName maps a command name to the path it is registered under.
// "config" is the default entry of its group.
func registryName(name string) string {
	if name == "config" {
		return "config/" + cliff.DefaultEntry
	}
	return name
}

// CommandInfos returns the built-in commands in display order.
func CommandInfos() []CommandInfo {
	return slices.Clone(commandInfos)
}

// NewRegistry registers every built-in command, aliases included, bound to
// env.
func NewRegistry(env *Env) (*cliff.Registry, error) {
	r := cliff.NewRegistry()
	for _, info := range commandInfos {
		factory := func() cliff.Command { return info.New(env) }
		for _, name := range append([]string{registryName(info.Name)}, info.Aliases...) {
			if err := r.Register(name, factory); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Root is the command every invocation starts from. It only routes; on its
// own it prints usage or the version.
type Root struct {
	Version bool
}

func (r *Root) Fields() []cliff.Field {
	return []cliff.Field{
		cliff.BoolVar(&r.Version, "version", cliff.Usage("Print the version and exit")),
	}
}
