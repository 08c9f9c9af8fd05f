package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the user facing result lines. Colors are only emitted when
// the writer is a terminal.
type Printer struct {
	out          io.Writer
	labelStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)

	return &Printer{
		out:          out,
		labelStyle:   r.NewStyle().Bold(true),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("#50FA7B")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
		mutedStyle:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// CurrentConnection prints the detected provider, "None" when nothing runs.
func (p *Printer) CurrentConnection(profile string) {
	if profile == "" {
		profile = p.mutedStyle.Render("None")
	}
	fmt.Fprintf(p.out, "%s %s\n", p.labelStyle.Render("Current VPN provider:"), profile)
}

// StatusError styles the first line of err only, so multi-line command
// output is printed as is.
func (p *Printer) StatusError(err error) {
	head, detail, found := strings.Cut(err.Error(), "\n")
	fmt.Fprintln(p.out, p.errorStyle.Render(head))
	if found {
		fmt.Fprintln(p.out, detail)
	}
}

func (p *Printer) Switched(profile string) {
	fmt.Fprintln(p.out, p.successStyle.Render("Successfully switched to "+profile))
}

func (p *Printer) WouldSwitch(profile string) {
	fmt.Fprintln(p.out, p.mutedStyle.Render("Dry run: would switch to "+profile))
}

func (p *Printer) SwitchFailed(profile string, err error) {
	fmt.Fprintln(p.out, p.errorStyle.Render("Error switching to "+profile))
	fmt.Fprintln(p.out, err)
}

func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Profiles prints one profile per line, marking active with an asterisk.
func (p *Printer) Profiles(profiles []string, active string) {
	for _, profile := range profiles {
		if active != "" && profile == active {
			fmt.Fprintf(p.out, "* %s\n", p.successStyle.Render(profile))
			continue
		}
		fmt.Fprintf(p.out, "  %s\n", profile)
	}
}
