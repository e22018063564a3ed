// Package view renders the recipe book screen and list output for the
// terminal.
package view

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

type Styles struct {
	Title  lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

func NewStyles(color bool) Styles {
	plain := lipgloss.NewStyle()
	if !color {
		return Styles{
			Title:  plain.Bold(true),
			Error:  plain,
			Muted:  plain,
			Header: plain.Padding(0, 1),
			Cell:   plain.Padding(0, 1),
			Border: plain,
		}
	}
	return Styles{
		Title:  plain.Bold(true).Foreground(ColorAccent),
		Error:  plain.Foreground(ColorFail),
		Muted:  plain.Foreground(ColorMuted),
		Header: plain.Bold(true).Foreground(ColorAccent).Padding(0, 1),
		Cell:   plain.Padding(0, 1),
		Border: plain.Foreground(ColorMuted),
	}
}

// StylesFor enables colour only when w is a terminal.
func StylesFor(w io.Writer) Styles {
	if f, ok := w.(*os.File); ok {
		return NewStyles(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	return NewStyles(false)
}
