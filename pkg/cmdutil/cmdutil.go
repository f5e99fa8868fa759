// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yeetrun/cliff/pkg/cliff"
	"github.com/yeetrun/cliff/pkg/grammar"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Exit statuses returned by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitSoftware = 70
	ExitCanceled = 130
)

// ExitCode maps an error to a process exit status. Mistakes on the command
// line exit with ExitUsage, mistakes in a command's declaration with
// ExitSoftware.
func ExitCode(err error) int {
	var (
		unknown *grammar.UnknownOptionError
		operand *grammar.OperandError
		parse   *grammar.ParseError
		config  *cliff.ConfigurationError
		binding *cliff.TypeBindingError
	)
	switch {
	case err == nil, errors.Is(err, grammar.ErrHelp):
		return ExitOK
	case errors.As(err, &unknown), errors.As(err, &operand), errors.As(err, &parse):
		return ExitUsage
	case errors.As(err, &config), errors.As(err, &binding), errors.Is(err, grammar.ErrOperandLayout):
		return ExitSoftware
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	}
	return ExitFailure
}

// LogOptions configures NewLogger.
type LogOptions struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Format is auto, text or json. Auto picks text on a terminal.
	Format string
	// File, when set, receives the records instead of Writer and is
	// rotated once it grows past MaxSizeMB.
	File      string
	MaxSizeMB int
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// NewLogger builds the process logger. The returned closer releases the log
// file, if any, and must be called before exit.
func NewLogger(opts LogOptions) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	var (
		w      = opts.Writer
		closer io.Closer
	)
	if w == nil {
		w = os.Stderr
	}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: 3,
		}
		w, closer = lj, lj
	}
	if closer == nil {
		closer = nopCloser{}
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch opts.Format {
	case "", "auto":
		if IsTerminal(w) {
			handler = slog.NewTextHandler(w, options)
		} else {
			handler = slog.NewJSONHandler(w, options)
		}
	case "text":
		handler = slog.NewTextHandler(w, options)
	case "json":
		handler = slog.NewJSONHandler(w, options)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	return slog.New(handler), closer, nil
}

// ParseLevel parses a level name. The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
