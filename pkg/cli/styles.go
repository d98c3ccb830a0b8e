package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the text styles used by command output.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Pending lipgloss.Style
	Failure lipgloss.Style
}

// NewStyles returns styles rendered for w. The color profile is detected
// from w; color=false forces plain output.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Heading: r.NewStyle().Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Muted:   r.NewStyle().Faint(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Pending: r.NewStyle().Foreground(lipgloss.Color("214")),
		Failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// PlainStyles returns styles that never emit escape sequences.
func PlainStyles() *Styles {
	return NewStyles(io.Discard, false)
}
