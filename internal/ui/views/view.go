package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"nimbus/internal/domain"
	"nimbus/internal/ui/input/modes"
)

// Screen names
const (
	ScreenOverview = "overview"
	ScreenDetails  = "details"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen string

	// overview
	SearchInput string
	Query       string
	Candidates  []domain.LocationCandidate
	Cursor      int
	Pending     bool
	Searching   bool

	// details
	Location   domain.SelectedLocation
	Snapshot   *domain.ForecastSnapshot
	Body       string
	Loading    bool
	Refreshing bool
	Stale      bool
	Spinner    string

	ShowHelp  bool
	HelpModel help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	showApparent bool
	showSunTimes bool
}

// NewRenderer creates a new renderer
func NewRenderer(showApparent, showSunTimes bool) *Renderer {
	return &Renderer{
		styles:       NewStyles(),
		showApparent: showApparent,
		showSunTimes: showSunTimes,
	}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var content string
	switch state.Screen {
	case ScreenDetails:
		content = r.renderDetails(state)
	default:
		content = r.renderOverview(state)
	}

	if state.ShowHelp && state.Screen == ScreenDetails {
		return r.renderHelpOverlay(state)
	}
	return r.styles.Main.Render(content)
}

// titleLine renders a title with right-aligned indicators
func (r *Renderer) titleLine(width int, left, right string) string {
	if right == "" {
		return left
	}
	if width <= 0 {
		width = 80
	}
	available := width - 4 // main container padding
	padding := available - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

// pushToBottom pads content so footer lands on the last line
func pushToBottom(content, footer string, height int) string {
	available := height - 2
	if available <= 0 {
		return content + "\n" + footer
	}
	used := lipgloss.Height(content) + lipgloss.Height(footer)
	if gap := available - used; gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + "\n" + footer
}

func (r *Renderer) renderHelpOverlay(state ViewState) string {
	h := state.HelpModel
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("nimbus help"))
	b.WriteString("\n\n")
	b.WriteString(h.View(modes.DetailsKeys))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Press %s or %s to close", "?", "esc")))

	box := r.styles.HelpBox.Render(b.String())
	width, height := state.Width, state.Height
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
