// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/grammar"
	"github.com/yeetrun/cliff/pkg/tui"
)

// WriteUsage describes the options and operands of one command. name is the
// command as the user typed it, without the program name.
func WriteUsage(w io.Writer, name string, s *cliff.Schema, c tui.Colorizer) error {
	line := []string{ProgramName}
	if name != "" {
		line = append(line, c.Command(name))
	}
	if s.Options.Len() > 0 {
		line = append(line, "[options]")
	}
	for _, op := range s.Operands {
		line = append(line, operandUsage(op))
	}
	fmt.Fprintf(w, "Usage: %s\n", strings.Join(line, " "))

	if s.Options.Len() > 0 {
		fmt.Fprintln(w, "\nOptions:")
		fields := s.Fields()
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, o := range s.Options.All() {
			help := o.Usage
			if def := defaultHint(fields[i]); def != "" {
				help = strings.TrimSpace(help + " " + c.Dim(def))
			}
			fmt.Fprintf(tw, "  %s\t%s\n", c.Flag(optionUsage(o)), help)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return writeGlobalFlags(w, c)
}

// WriteOptionHelp describes the single option of s named by option, which
// may be its long flag, short flag or field name.
func WriteOptionHelp(w io.Writer, s *cliff.Schema, option string, c tui.Colorizer) error {
	f, ok := s.Field(option)
	if !ok {
		return &grammar.UnknownOptionError{Flag: option}
	}
	fields := s.Fields()
	for i, o := range s.Options.All() {
		if fields[i].Name != f.Name {
			continue
		}
		fmt.Fprintf(w, "  %s\n", c.Flag(optionUsage(o)))
		help := o.Usage
		if help == "" {
			help = "No description."
		}
		if def := defaultHint(f); def != "" {
			help += " " + c.Dim(def)
		}
		_, err := fmt.Fprintf(w, "      %s\n", help)
		return err
	}
	return &grammar.UnknownOptionError{Flag: option}
}

func optionUsage(o grammar.OptionSpec) string {
	var b strings.Builder
	if o.Short != "" {
		b.WriteString("-" + o.Short)
		if o.Long != "" {
			b.WriteString(", ")
		}
	} else {
		b.WriteString("    ")
	}
	if o.Long != "" {
		b.WriteString("--" + o.Long)
	}
	switch o.Arity {
	case grammar.Optional:
		b.WriteString("[=VALUE]")
	case grammar.Required:
		b.WriteString(" VALUE")
	case grammar.Multiple:
		b.WriteString(" VALUE...")
	}
	return b.String()
}

func operandUsage(op grammar.OperandSpec) string {
	name := op.Name
	if op.Multiple {
		name += "..."
	}
	if op.Required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}

func defaultHint(f cliff.Field) string {
	switch v := f.Default().(type) {
	case string:
		if v != "" {
			return fmt.Sprintf("(default %q)", v)
		}
	case bool:
		if v {
			return "(default true)"
		}
	case []string:
		if len(v) > 0 {
			return fmt.Sprintf("(default %q)", v)
		}
	}
	return ""
}

// writeGlobalFlags lists GlobalFlags from its struct tags.
func writeGlobalFlags(w io.Writer, c tui.Colorizer) error {
	fmt.Fprintln(w, "\nGlobal options:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	t := reflect.TypeOf(GlobalFlags{})
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		flag := "--" + field.Tag.Get("flag")
		if field.Type.Kind() != reflect.Bool {
			flag += " VALUE"
		}
		fmt.Fprintf(tw, "      %s\t%s\n", c.Flag(flag), field.Tag.Get("help"))
	}
	fmt.Fprintf(tw, "  %s\t%s\n", c.Flag("-h, --help[=OPTION]"), "Show help for a command, or for one of its options")
	return tw.Flush()
}

// WriteCommands lists the visible commands with their descriptions and
// aliases.
func WriteCommands(w io.Writer, infos []CommandInfo, c tui.Colorizer) error {
	fmt.Fprintln(w, "Commands:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		if info.Hidden {
			continue
		}
		desc := info.Description
		if len(info.Aliases) > 0 {
			desc += " " + c.Dim("(aliases: "+strings.Join(info.Aliases, ", ")+")")
		}
		fmt.Fprintf(tw, "  %s\t%s\n", c.Command(info.Name), desc)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nRun '%s <command> --help' for details.\n", ProgramName)
	return nil
}

// WriteExamples prints the examples of the named command, if any.
func WriteExamples(w io.Writer, name string) {
	for _, info := range commandInfos {
		if info.Name != name && !slices.Contains(info.Aliases, name) || len(info.Examples) == 0 {
			continue
		}
		fmt.Fprintln(w, "\nExamples:")
		for _, ex := range info.Examples {
			fmt.Fprintf(w, "  %s\n", ex)
		}
	}
}

// DisplayName turns a canonical command path back into the name a user
// types: "Config/Show" becomes "config:show" and a trailing default entry
// is dropped.
func DisplayName(path string) string {
	path = strings.TrimSuffix(path, "/"+cliff.DefaultEntry)
	return strings.ToLower(strings.ReplaceAll(path, "/", ":"))
}
