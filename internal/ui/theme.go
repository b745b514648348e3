package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Primary, Secondary                   lipgloss.Style
	Focus, Cursor                        lipgloss.Style

	StarOff, StarOn string
	CursorMark      string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Focus:     lipgloss.NewStyle().Reverse(true),
			Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),

			StarOff: "✧", StarOn: "✦", CursorMark: "▸",

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		current = Theme{
			Name:      "mono",
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle(),
			Accent:    lipgloss.NewStyle(),
			Success:   lipgloss.NewStyle(),
			Error:     lipgloss.NewStyle(),
			Primary:   lipgloss.NewStyle(),
			Secondary: lipgloss.NewStyle(),
			Focus:     lipgloss.NewStyle().Underline(true),
			Cursor:    lipgloss.NewStyle(),

			StarOff: "( )", StarOn: "(*)", CursorMark: ">",

			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		current = Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Primary:   lipgloss.NewStyle(),
			Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Focus:     lipgloss.NewStyle().Reverse(true),
			Cursor:    lipgloss.NewStyle().Bold(true),

			StarOff: "☆", StarOn: "★", CursorMark: ">",

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Star is the favourite toggle's glyph.
func (t Theme) Star(favourite bool) string {
	if favourite {
		return t.StarOn
	}
	return t.StarOff
}

func (t Theme) FrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
