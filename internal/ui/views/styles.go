package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Input       lipgloss.Style
	Candidate   lipgloss.Style
	Selected    lipgloss.Style
	Section     lipgloss.Style
	Box         lipgloss.Style
	HelpBox     lipgloss.Style
	Temperature lipgloss.Style
	Conditions  lipgloss.Style
	HighLow     lipgloss.Style
	Warm        lipgloss.Style
	Cold        lipgloss.Style
	Refreshing  lipgloss.Style
	Stale       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Main:     lipgloss.NewStyle().Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Candidate: lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Temperature: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Conditions:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HighLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Warm:        lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
		Cold:        lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Refreshing:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Stale:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
