// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yeetrun/cliff/pkg/cli"
	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/cmdutil"
	"github.com/yeetrun/cliff/pkg/config"
	"github.com/yeetrun/cliff/pkg/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	errColor := tui.NewColorizer(tui.ModeAuto, stderr)

	flags, args, err := cli.ParseGlobalFlags(args)
	if err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitUsage)
	}
	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitFailure)
	}
	if err := cfg.CheckVersion(cli.Version); err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitFailure)
	}

	mode := cfg.Color
	if flags.NoColor {
		mode = tui.ModeNever
	}
	outColor := tui.NewColorizer(mode, stdout)
	errColor = tui.NewColorizer(mode, stderr)

	logOpts := cmdutil.LogOptions{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
		Writer:    stderr,
	}
	if flags.LogLevel != "" {
		logOpts.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		logOpts.File = flags.LogFile
	}
	logger, closer, err := cmdutil.NewLogger(logOpts)
	if err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitUsage)
	}
	defer closer.Close()
	logger.Debug("starting", "version", cli.Version, "config", cfg.Path, "args", args)

	env := &cli.Env{Out: stdout, Err: stderr, Config: cfg, Color: outColor, Logger: logger}
	registry, err := cli.NewRegistry(env)
	if err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitCode(err))
	}
	root := &cli.Root{}
	resolver := &cliff.Resolver{
		Registry: registry,
		Logger:   logger,
		Presets:  cfg.Presets,
	}

	chain, err := resolver.Resolve(cli.ProgramName, root, args)
	var helpErr *cliff.HelpError
	if errors.As(err, &helpErr) {
		if err := writeHelp(stdout, helpErr, outColor); err != nil {
			return fail(stderr, errColor, err, cmdutil.ExitFailure)
		}
		return cmdutil.ExitOK
	}
	if err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitCode(err))
	}

	if chain.Leaf().Command == root {
		if root.Version {
			fmt.Fprintf(stdout, "%s %s\n", cli.ProgramName, cli.Version)
			return cmdutil.ExitOK
		}
		schema, err := cliff.Derive(cli.ProgramName, root)
		if err != nil {
			return fail(stderr, errColor, err, cmdutil.ExitCode(err))
		}
		if err := writeHelp(stdout, &cliff.HelpError{Command: cli.ProgramName, Schema: schema}, outColor); err != nil {
			return fail(stderr, errColor, err, cmdutil.ExitFailure)
		}
		return cmdutil.ExitOK
	}

	if err := chain.Execute(ctx); err != nil {
		return fail(stderr, errColor, err, cmdutil.ExitCode(err))
	}
	return cmdutil.ExitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Discover(wd)
}

func writeHelp(w io.Writer, h *cliff.HelpError, c tui.Colorizer) error {
	if h.Option != "" {
		return cli.WriteOptionHelp(w, h.Schema, h.Option, c)
	}
	if h.Command == cli.ProgramName {
		if err := cli.WriteUsage(w, "", h.Schema, c); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return cli.WriteCommands(w, cli.CommandInfos(), c)
	}
	name := cli.DisplayName(h.Command)
	if err := cli.WriteUsage(w, name, h.Schema, c); err != nil {
		return err
	}
	cli.WriteExamples(w, name)
	return nil
}

func fail(w io.Writer, c tui.Colorizer, err error, code int) int {
	fmt.Fprintf(w, "%s %v\n", c.Error("error:"), err)
	if code == cmdutil.ExitUsage {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", cli.ProgramName)
	}
	return code
}
