package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles every renderer pulls from.
type Theme struct {
	Title, Heading, Muted, Error, Success lipgloss.Style
	Header, Cell, Stripe, Selected        lipgloss.Style
	Button, ButtonFocused                 lipgloss.Style
	Border                                lipgloss.Border
	BorderStyle                           lipgloss.Style
	Panel                                 lipgloss.Style
}

// Themes lists the accepted theme names; ThemeByName knows each of them.
var Themes = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names get classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Muted:         lipgloss.NewStyle().Faint(true),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Cell:          lipgloss.NewStyle(),
			Stripe:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Selected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			ButtonFocused: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("10")),
			Border:        lipgloss.RoundedBorder(),
			BorderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title: plain, Heading: plain, Muted: plain, Error: plain, Success: plain,
			Header: plain, Cell: plain, Stripe: plain, Selected: plain,
			Button: plain, ButtonFocused: plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderStyle: plain,
			Panel:       lipgloss.NewStyle().Border(lipgloss.ASCIIBorder()).Padding(0, 1),
		}
	default: // classic
		return Theme{
			Title:         lipgloss.NewStyle().Bold(true),
			Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Muted:         lipgloss.NewStyle().Faint(true),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Header:        lipgloss.NewStyle().Bold(true),
			Cell:          lipgloss.NewStyle(),
			Stripe:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Selected:      lipgloss.NewStyle().Bold(true),
			Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			ButtonFocused: lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:        lipgloss.NormalBorder(),
			BorderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Panel:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		}
	}
}
