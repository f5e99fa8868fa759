// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grammar

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"tailscale.com/util/mak"
)

const (
	// Passed by pflag as the value of an occurrence without one.
	toggleSentinel = "\x00toggle"
	emptySentinel  = "\x00empty"

	// pflag rejects "--=..." as bad syntax, so a long name starting with
	// '=' can never be typed. Short-only options are registered under one.
	internalPrefix = "="
)

// Pflag is the default Tokenizer, backed by github.com/spf13/pflag.
type Pflag struct{}

var _ Tokenizer = Pflag{}

// Tokenize implements Tokenizer.
func (Pflag) Tokenize(options *OptionSet, operands []OperandSpec, args []string, mode Mode) (*Parsed, error) {
	if err := checkOperandLayout(operands); err != nil {
		return nil, err
	}

	parsed, err := tokenize(options, args, mode, false)
	var perr *ParseError
	if mode == Lenient && errors.As(err, &perr) {
		// The arguments may belong to a subcommand that declares one of
		// these flags with another arity. Operands are all a lenient pass
		// needs, so retry without checking values.
		parsed, err = tokenize(options, args, mode, true)
	}
	if err != nil {
		return nil, err
	}
	if mode == Strict {
		if err := checkOperandCount(operands, parsed.Operands); err != nil {
			return nil, err
		}
	}
	return parsed, nil
}

// tokenize runs one pflag pass. When loose is set, toggles accept a value
// and options that need a value may go without one.
func tokenize(options *OptionSet, args []string, mode Mode, loose bool) (*Parsed, error) {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist.UnknownFlags = mode == Lenient

	values := make([]*occurrences, 0, options.Len())
	shorts := make(map[string]bool, options.Len())
	for _, o := range options.All() {
		if len(o.Short) > 1 {
			return nil, fmt.Errorf("option %s: short name %q is more than one character", o.Key(), o.Short)
		}
		if o.Short != "" {
			if shorts[o.Short] {
				return nil, fmt.Errorf("option %s: short name -%s defined twice", o.Key(), o.Short)
			}
			shorts[o.Short] = true
		}
		arity := o.Arity
		if loose && (arity == Required || arity == Multiple) {
			arity = Optional
		}
		v := &occurrences{arity: arity, loose: loose}
		name := o.Long
		if name == "" {
			name = internalPrefix + o.Short
		}
		flag := fs.VarPF(v, name, o.Short, o.Usage)
		switch arity {
		case None:
			flag.NoOptDefVal = toggleSentinel
		case Optional:
			flag.NoOptDefVal = emptySentinel
		}
		if o.Long == "" {
			flag.Hidden = true
		}
		values = append(values, v)
	}
	help := registerHelp(fs, shorts)

	if err := fs.Parse(attachValues(fs, args)); err != nil {
		if mode == Strict && help.requested() {
			return nil, help.request()
		}
		return nil, classify(err)
	}
	if mode == Strict && help.requested() {
		return nil, help.request()
	}

	parsed := &Parsed{Operands: slices.Clone(fs.Args())}
	for i, o := range options.All() {
		if raw := values[i].raw; raw.Count > 0 {
			mak.Set(&parsed.Options, o.Key(), raw)
		}
	}
	return parsed, nil
}

// attachValues rewrites "--opt value" and "-o value" into "--opt=value" and
// "-o=value" for options with an optional value, since pflag only reads
// those after '='. The next argument is taken when it does not start with
// '-'. "-ovalue" becomes "-o=value" as well, also for -h.
func attachValues(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		next, hasNext := "", i+1 < len(args)
		if hasNext {
			next = args[i+1]
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			if strings.Contains(name, "=") {
				break
			}
			switch arityOf(fs.Lookup(name)) {
			case Optional:
				if hasNext && isValue(next) {
					arg += "=" + next
					i++
				}
			case Required, Multiple:
				// The next argument is the value, whatever it looks like.
				if hasNext {
					out = append(out, arg)
					arg = next
					i++
				}
			}
		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				flag := fs.ShorthandLookup(arg[j : j+1])
				if flag == nil {
					break
				}
				last := j == len(arg)-1
				if _, ok := flag.Value.(*helpFlag); ok {
					if !last && arg[j+1] != '=' {
						arg = arg[:j+1] + "=" + arg[j+1:]
					}
					break
				}
				a := arityOf(flag)
				if a == None {
					continue
				}
				switch {
				case a == Optional && !last && arg[j+1] != '=':
					arg = arg[:j+1] + "=" + arg[j+1:]
				case a == Optional && last && hasNext && isValue(next):
					arg += "=" + next
					i++
				case a != Optional && last && hasNext:
					out = append(out, arg)
					arg = next
					i++
				}
				break
			}
		}
		out = append(out, arg)
	}
	return out
}

func arityOf(flag *pflag.Flag) Arity {
	if flag == nil {
		return None
	}
	if v, ok := flag.Value.(*occurrences); ok {
		return v.arity
	}
	return None
}

func isValue(arg string) bool {
	return !strings.HasPrefix(arg, "-")
}

// registerHelp adds hidden -h[OPTION] and --help[=OPTION] flags where the
// grammar does not define them. A strict pass reports them as a
// *HelpRequest; a lenient pass drops them like any unknown option.
func registerHelp(fs *pflag.FlagSet, shorts map[string]bool) *helpFlag {
	var name, short string
	if fs.Lookup("help") == nil {
		name = "help"
	}
	if !shorts["h"] {
		short = "h"
	}
	if name == "" && short == "" {
		return nil
	}
	if name == "" {
		name = internalPrefix + short
	}
	h := &helpFlag{}
	flag := fs.VarPF(h, name, short, "")
	flag.NoOptDefVal = toggleSentinel
	flag.Hidden = true
	return h
}

// helpFlag records a help request and the option it names, if any.
type helpFlag struct {
	count  int
	option string
}

func (h *helpFlag) String() string { return h.option }
func (h *helpFlag) Type() string   { return "" }

func (h *helpFlag) Set(s string) error {
	h.count++
	if s != toggleSentinel {
		h.option = s
	}
	return nil
}

func (h *helpFlag) requested() bool {
	return h != nil && h.count > 0
}

func (h *helpFlag) request() *HelpRequest {
	return &HelpRequest{Option: h.option}
}

// occurrences is the pflag.Value behind every option. It records each
// occurrence instead of interpreting it.
type occurrences struct {
	arity Arity
	loose bool
	raw   RawValue
}

func (o *occurrences) String() string {
	return strings.Join(o.raw.Values, ",")
}

func (o *occurrences) Type() string {
	switch o.arity {
	case None:
		return ""
	case Multiple:
		return "strings"
	default:
		return "string"
	}
}

func (o *occurrences) Set(s string) error {
	switch o.arity {
	case None:
		if s != toggleSentinel && !o.loose {
			return errors.New("option takes no value")
		}
	case Optional:
		if s != emptySentinel {
			o.raw.Values = append(o.raw.Values, s)
		}
	default:
		o.raw.Values = append(o.raw.Values, s)
	}
	o.raw.Count++
	return nil
}

// classify maps pflag's errors onto ours. pflag reports unknown flags only
// through the message text.
func classify(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return &HelpRequest{}
	}
	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return &UnknownOptionError{Flag: name}
	}
	if rest, ok := strings.CutPrefix(msg, "unknown shorthand flag: "); ok {
		// 'x' in -xyz
		if len(rest) >= 3 && rest[0] == '\'' && rest[2] == '\'' {
			return &UnknownOptionError{Flag: "-" + rest[1:2]}
		}
		return &UnknownOptionError{Flag: rest}
	}
	return &ParseError{Err: err}
}

func checkOperandLayout(operands []OperandSpec) error {
	for i, op := range operands {
		if op.Multiple && i != len(operands)-1 {
			return fmt.Errorf("operand %s: %w", op.Name, ErrOperandLayout)
		}
	}
	return nil
}

func checkOperandCount(specs []OperandSpec, got []string) error {
	required := 0
	for _, spec := range specs {
		if spec.Required {
			required++
		}
	}
	variadic := len(specs) > 0 && specs[len(specs)-1].Multiple

	var expected string
	switch {
	case variadic:
		expected = fmt.Sprintf("at least %d", required)
	case required == len(specs):
		expected = fmt.Sprintf("%d", required)
	default:
		expected = fmt.Sprintf("%d-%d", required, len(specs))
	}

	if len(got) < required {
		name := specs[len(got)].Name
		for _, spec := range specs[len(got):] {
			if spec.Required {
				name = spec.Name
				break
			}
		}
		return &OperandError{Operand: name, Missing: true, Expected: expected, Got: len(got)}
	}
	if !variadic && len(got) > len(specs) {
		return &OperandError{Operand: got[len(specs)], Expected: expected, Got: len(got)}
	}
	return nil
}
