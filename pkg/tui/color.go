// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color modes accepted by NewColorizer.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Colorizer styles the pieces of CLI output. The zero value prints plain
// text.
type Colorizer struct {
	Enabled bool
}

// NewColorizer resolves mode for output written to w. In auto mode color
// is used only when w is a terminal, NO_COLOR is unset and TERM is neither
// empty nor "dumb".
func NewColorizer(mode string, w io.Writer) Colorizer {
	switch mode {
	case ModeAlways:
		return Colorizer{Enabled: true}
	case ModeNever:
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Error(text string) string   { return c.wrap(text, color.FgRed, color.Bold) }
func (c Colorizer) Warn(text string) string    { return c.wrap(text, color.FgYellow) }
func (c Colorizer) Success(text string) string { return c.wrap(text, color.FgGreen) }
func (c Colorizer) Command(text string) string { return c.wrap(text, color.FgCyan, color.Bold) }
func (c Colorizer) Flag(text string) string    { return c.wrap(text, color.FgYellow) }
func (c Colorizer) Dim(text string) string     { return c.wrap(text, color.FgHiBlack) }

func (c Colorizer) wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || text == "" {
		return text
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(text)
}
