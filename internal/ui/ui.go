// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ui renders the banner and help text of the interactive shell.
// Styling is only applied when the output is a color-capable terminal; test
// result lines are never styled.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	green = lipgloss.Color("76")
	dim   = lipgloss.Color("243")
)

var (
	logoStyle    = lipgloss.NewStyle().Foreground(green)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(green)
)

// Configure selects the color profile.  Output is plain ASCII unless styled
// is true, out is a terminal, and neither NO_COLOR nor TERM=dumb is set.
func Configure(out *os.File, styled bool) {
	if styled && isTerminal(out) && os.Getenv("NO_COLOR") == "" &&
		!strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		lipgloss.SetColorProfile(termenv.ColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

var logo = []string{
	"████████╗██╗  ██╗██████╗ ████████╗██╗    ██████╗ █████╗ █████╗ ██╗███╗   ██╗",
	"╚══██╔══╝██║  ██║██╔══██╗╚══██╔══╝██║    ██╔═══╝██╔═══╝██╔══██╗██║████╗  ██║",
	"   ██║   ██║  ██║██████╔╝   ██║   ██║    ████╗  ██║    ██║  ██║██║██╔██╗ ██║",
	"   ██║   ██║  ██║██╔══██╗   ██║   ██║    ██╔═╝  ██║    ██║  ██║██║██║╚██╗██║",
	"   ██║   ╚█████╔╝██║  ██║   ██║   ██████╗██████╗╚█████╗╚█████╔╝██║██║ ╚████║",
	"   ╚═╝    ╚════╝ ╚═╝  ╚═╝   ╚═╝   ╚═════╝╚═════╝ ╚════╝ ╚════╝ ╚═╝╚═╝  ╚═══╝",
}

// Banner returns the startup banner for the given version string.
func Banner(version string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	for _, line := range logo {
		// Lines are rendered one at a time; lipgloss pads multi-line
		// blocks to a common width.
		b.WriteString(" " + logoStyle.Render(line) + "\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%24s%s\n\n", "", titleStyle.Render("TurtleCoin Test Suite v"+version))
	fmt.Fprintf(&b, "%19s%s\n", "", mutedStyle.Render("Open Sourced Under ISC since 2018"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%13s%s\n\n", "", `Type "help" for information on available commands`)
	return b.String()
}

// Commands of the interactive shell with their descriptions.
var Commands = [][2]string{
	{"test daemon", "tests daemon RPC calls to verify proper operation"},
	{"test service", "tests turtle-service RPC calls to verify proper operation"},
	{"exit", "exits the test suite software"},
}

// Help returns the command list printed by the help command.
func Help() string {
	var b strings.Builder
	b.WriteString("\n" + headingStyle.Render("Available Commands") + "\n\n")
	for _, c := range Commands {
		fmt.Fprintf(&b, "%s: %s\n", c[0], c[1])
	}
	b.WriteString("\n")
	return b.String()
}
