// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/config"
	"github.com/yeetrun/cliff/pkg/grammar"
	"github.com/yeetrun/cliff/pkg/tui"
)

func TestParseGlobalFlags(t *testing.T) {
	args := []string{"demo", "--config", "x.toml", "--required-option=yes", "--no-color", "world", "--log-level=debug"}
	flags, rest, err := ParseGlobalFlags(args)
	if err != nil {
		t.Fatalf("ParseGlobalFlags failed: %v", err)
	}
	want := GlobalFlags{Config: "x.toml", LogLevel: "debug", NoColor: true}
	if flags != want {
		t.Errorf("flags = %+v, want %+v", flags, want)
	}
	if diff := cmp.Diff([]string{"demo", "--required-option=yes", "world"}, rest); diff != "" {
		t.Errorf("remaining args mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(&Env{})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	want := []string{"Commands", "Config/Command", "Config/Show", "Demo", "Greet", "Hello", "Help"}
	if diff := cmp.Diff(want, reg.Paths()); diff != "" {
		t.Fatalf("Paths mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"config", "config:show", "hello"} {
		if _, _, ok := reg.Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
}

func execute(t *testing.T, env *Env, args ...string) error {
	t.Helper()
	reg, err := NewRegistry(env)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	chain, err := (&cliff.Resolver{Registry: reg}).Resolve(ProgramName, &Root{}, args)
	if err != nil {
		return err
	}
	return chain.Execute(context.Background())
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	env := &Env{Out: &out}
	if err := execute(t, env, "demo", "--empty-option", "-o=custom", "world"); err != nil {
		t.Fatalf("demo: %v", err)
	}
	want := "Great! You called this command for `world`.\n" +
		"The required option was not set.\n" +
		"Our optional option was overridden with `custom`.\n" +
		"The empty option was also set.\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tt := range tests {
		if got := joinNames(tt.in); got != tt.want {
			t.Errorf("joinNames(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigShow(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Commands = map[string]config.Command{"greet": {Args: []string{"--loud"}}}
	env := &Env{Out: &out, Config: cfg}

	if err := execute(t, env, "config:show", "--format=yaml"); err != nil {
		t.Fatalf("config:show: %v", err)
	}
	got, err := config.Decode(&out, config.YAML)
	if err != nil {
		t.Fatalf("output is not a config: %v\n%s", err, out.String())
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Path = "/etc/cliff.toml"
	cfg.Commands = map[string]config.Command{
		"greet": {Args: []string{"--loud"}},
		"demo":  {Args: []string{"-e"}},
	}
	if err := execute(t, &Env{Out: &out, Config: cfg}, "config"); err != nil {
		t.Fatalf("config: %v", err)
	}
	want := "Using /etc/cliff.toml\n  demo: -e\n  greet: --loud\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestWriteUsage(t *testing.T) {
	s, err := cliff.Derive("Demo", newDemo(&Env{}))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteUsage(&buf, "demo", s, tui.Colorizer{}); err != nil {
		t.Fatalf("WriteUsage: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Usage: cliff demo [options] <name>\n",
		"  -r, --required-option VALUE ",
		"  -o, --optional-option[=VALUE] ",
		`(default "dummy")`,
		"  -e, --empty-option ",
		"--config VALUE",
		"--no-color ",
		"-h, --help",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOptionHelp(t *testing.T) {
	s, err := cliff.Derive("Demo", newDemo(&Env{}))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	for _, name := range []string{"optional-option", "o", "optionalOption", "--optional-option"} {
		var buf bytes.Buffer
		if err := WriteOptionHelp(&buf, s, name, tui.Colorizer{}); err != nil {
			t.Fatalf("WriteOptionHelp(%q): %v", name, err)
		}
		want := "  -o, --optional-option[=VALUE]\n      Optional, as it has a default value (default \"dummy\")\n"
		if got := buf.String(); got != want {
			t.Errorf("WriteOptionHelp(%q) = %q, want %q", name, got, want)
		}
	}

	err = WriteOptionHelp(&bytes.Buffer{}, s, "bogus", tui.Colorizer{})
	var uerr *grammar.UnknownOptionError
	if !errors.As(err, &uerr) || uerr.Flag != "bogus" {
		t.Fatalf("WriteOptionHelp(bogus) error = %v, want UnknownOptionError", err)
	}
}

func TestWriteCommandsSkipsHidden(t *testing.T) {
	var buf bytes.Buffer
	infos := []CommandInfo{
		{Name: "shown", Description: "Visible", Aliases: []string{"s"}},
		{Name: "secret", Description: "Hidden", Hidden: true},
	}
	if err := WriteCommands(&buf, infos, tui.Colorizer{}); err != nil {
		t.Fatalf("WriteCommands: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "shown") || !strings.Contains(out, "(aliases: s)") {
		t.Errorf("visible command missing:\n%s", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("hidden command listed:\n%s", out)
	}
}

func TestOperandUsage(t *testing.T) {
	params := []cliff.Param{
		cliff.Arg("src"),
		cliff.OptionalArg("dst", "."),
	}
	var got []string
	for _, op := range cliff.DeriveOperands(params) {
		got = append(got, operandUsage(op))
	}
	got = append(got,
		operandUsage(cliff.DeriveOperands([]cliff.Param{cliff.ArgList("files")})[0]),
		operandUsage(cliff.DeriveOperands([]cliff.Param{cliff.OptionalArgList("names")})[0]),
	)
	want := []string{"<src>", "[dst]", "<files...>", "[names...]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operand usage mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayName(t *testing.T) {
	for path, want := range map[string]string{
		"Demo":           "demo",
		"Config/Show":    "config:show",
		"Config/Command": "config",
		"Hello":          "hello",
	} {
		if got := DisplayName(path); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", path, got, want)
		}
	}
}
