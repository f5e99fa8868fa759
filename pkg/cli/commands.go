// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/config"
)

// Demo echoes how its options were bound.
type Demo struct {
	env *Env

	RequiredOption string
	OptionalOption string
	EmptyOption    bool
}

func newDemo(env *Env) *Demo {
	return &Demo{env: env, OptionalOption: "dummy"}
}

func (d *Demo) Fields() []cliff.Field {
	return []cliff.Field{
		cliff.StringVar(&d.RequiredOption, "requiredOption", cliff.Usage("Required, as it has no default value")),
		cliff.StringVar(&d.OptionalOption, "optionalOption", cliff.Usage("Optional, as it has a default value")),
		cliff.BoolVar(&d.EmptyOption, "emptyOption", cliff.Usage("A switch that takes no value")),
	}
}

func (d *Demo) Params() []cliff.Param {
	return []cliff.Param{cliff.Arg("name")}
}

func (d *Demo) Run(ctx context.Context, args cliff.Args) error {
	out := d.env.Out
	fmt.Fprintf(out, "Great! You called this command for `%s`.\n", args.Get("name"))
	if d.RequiredOption != "" {
		fmt.Fprintf(out, "Our required option was set to `%s`.\n", d.RequiredOption)
	} else {
		fmt.Fprintln(out, "The required option was not set.")
	}
	if d.OptionalOption != "dummy" {
		fmt.Fprintf(out, "Our optional option was overridden with `%s`.\n", d.OptionalOption)
	}
	if d.EmptyOption {
		fmt.Fprintln(out, "The empty option was also set.")
	}
	return nil
}

type Greet struct {
	env *Env

	Loud     bool
	Greeting string
}

func (g *Greet) Fields() []cliff.Field {
	return []cliff.Field{
		cliff.BoolVar(&g.Loud, "loud", cliff.Usage("Shout the greeting")),
		cliff.StringVar(&g.Greeting, "greeting", cliff.Usage("Word to greet with")),
	}
}

func (g *Greet) Params() []cliff.Param {
	return []cliff.Param{cliff.OptionalArgList("names", "world")}
}

func (g *Greet) Run(ctx context.Context, args cliff.Args) error {
	names := args.List("names")
	g.env.logger().Debug("greeting", "names", names, "loud", g.Loud)
	msg := fmt.Sprintf("%s, %s!", g.Greeting, joinNames(names))
	if g.Loud {
		msg = strings.ToUpper(msg)
	}
	_, err := fmt.Fprintln(g.env.Out, msg)
	return err
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// Commands lists the built-in commands.
type Commands struct {
	env *Env
}

func (c *Commands) Fields() []cliff.Field { return nil }
func (c *Commands) Params() []cliff.Param { return nil }

func (c *Commands) Run(ctx context.Context, _ cliff.Args) error {
	return WriteCommands(c.env.Out, CommandInfos(), c.env.Color)
}

// ConfigCommand reports the config file in use.
type ConfigCommand struct {
	env *Env
}

func (c *ConfigCommand) Fields() []cliff.Field { return nil }
func (c *ConfigCommand) Params() []cliff.Param { return nil }

func (c *ConfigCommand) Run(ctx context.Context, _ cliff.Args) error {
	cfg := c.env.Config
	if cfg == nil || cfg.Path == "" {
		_, err := fmt.Fprintln(c.env.Out, "No config file found; using defaults.")
		return err
	}
	fmt.Fprintf(c.env.Out, "Using %s\n", cfg.Path)
	for _, name := range slices.Sorted(maps.Keys(cfg.Commands)) {
		if args := cfg.Commands[name].Args; len(args) > 0 {
			fmt.Fprintf(c.env.Out, "  %s: %s\n", c.env.Color.Command(name), strings.Join(args, " "))
		}
	}
	return nil
}

// ConfigShow prints the effective configuration.
type ConfigShow struct {
	env *Env

	Format string
}

func (c *ConfigShow) Fields() []cliff.Field {
	return []cliff.Field{
		cliff.StringVar(&c.Format, "format", cliff.Usage("Output format (toml|yaml)")),
	}
}

func (c *ConfigShow) Params() []cliff.Param { return nil }

func (c *ConfigShow) Run(ctx context.Context, _ cliff.Args) error {
	format := config.Format(strings.ToLower(c.Format))
	if format != config.TOML && format != config.YAML {
		return fmt.Errorf("unknown format %q, want toml or yaml", c.Format)
	}
	cfg := c.env.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg.Encode(c.env.Out, format)
}
