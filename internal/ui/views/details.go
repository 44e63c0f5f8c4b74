package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nimbus/internal/domain"
	"nimbus/internal/forecast"
	"nimbus/internal/ui/input/modes"
	"nimbus/internal/weathercode"
)

const hourColumnWidth = 7

// HeaderHeight and FooterHeight are the lines the details screen uses
// around the scrolling body.
const (
	HeaderHeight = 3
	FooterHeight = 2
)

func (r *Renderer) renderDetails(state ViewState) string {
	var status string
	switch {
	case state.Refreshing:
		status = r.styles.Refreshing.Render(state.Spinner + " Refreshing")
	case state.Loading && state.Snapshot == nil:
		status = r.styles.Refreshing.Render(state.Spinner + " Loading")
	case state.Stale:
		status = r.styles.Stale.Render("stale")
	}

	var b strings.Builder
	b.WriteString(r.titleLine(state.Width, r.styles.Title.Render(state.Location.Name), status))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render(state.Location.Subtitle()))
	b.WriteString("\n\n")
	b.WriteString(state.Body)

	footerParts := []string{state.HelpModel.View(modes.DetailsKeys)}
	if state.Snapshot != nil {
		footerParts = append([]string{"updated " + state.Snapshot.FetchedAt.Format("15:04")}, footerParts...)
	}
	footer := r.styles.Help.Render(strings.Join(footerParts, "  •  "))
	return pushToBottom(b.String(), footer, state.Height)
}

// DetailsBody renders the scrollable part of the details screen: headline,
// daily list and hourly strip.
func (r *Renderer) DetailsBody(s *domain.ForecastSnapshot, width int) string {
	if s == nil {
		return r.styles.Dim.Render("Fetching forecast…")
	}
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(r.renderHeadline(s))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Section.Render("Daily Forecast"))
	b.WriteString("\n")
	b.WriteString(r.styles.Box.Render(r.renderDaily(s)))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Section.Render("Hourly Forecast"))
	b.WriteString("\n")
	b.WriteString(r.styles.Box.Render(r.renderHourly(s, width-4)))
	return b.String()
}

func (r *Renderer) renderHeadline(s *domain.ForecastSnapshot) string {
	h := forecast.Headline(s)

	lines := []string{
		r.styles.Temperature.Render(fmt.Sprintf("%s  %s", h.Icon.Glyph, h.Temperature)),
		r.styles.Conditions.Render(h.Description),
		r.styles.HighLow.Render(h.HighLow),
	}
	if r.showApparent {
		lines = append(lines, r.styles.Dim.Render("Feels like "+h.FeelsLike))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderDaily(s *domain.ForecastSnapshot) string {
	rows := forecast.DailyRows(s.Daily)
	if len(rows) == 0 {
		return r.styles.Dim.Render("No daily data")
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		icon := weathercode.IconPtr(row.Code)
		line := fmt.Sprintf("%-6s %s  %s / %s  %s",
			row.Label,
			icon.Glyph,
			r.styles.Warm.Render(fmt.Sprintf("%4s", forecast.FormatTemp(row.Max))),
			r.styles.Cold.Render(fmt.Sprintf("%-4s", forecast.FormatTemp(row.Min))),
			row.Description())
		if r.showSunTimes {
			line += r.styles.Dim.Render(fmt.Sprintf("  ↑%s ↓%s", forecast.SunTime(row.Sunrise), forecast.SunTime(row.Sunset)))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderHourly lays the 25 hour slots out as columns, wrapping to the width
func (r *Renderer) renderHourly(s *domain.ForecastSnapshot, width int) string {
	slots := forecast.HourlyWindow(s.Hourly)
	if len(slots) == 0 {
		return r.styles.Dim.Render("No hourly data")
	}

	perRow := width / hourColumnWidth
	if perRow < 1 {
		perRow = 1
	}

	col := lipgloss.NewStyle().Width(hourColumnWidth).Align(lipgloss.Center)
	var rows []string
	for start := 0; start < len(slots); start += perRow {
		end := min(start+perRow, len(slots))
		cols := make([]string, 0, end-start)
		for _, slot := range slots[start:end] {
			icon := weathercode.IconPtr(slot.Code)
			cols = append(cols, col.Render(strings.Join([]string{slot.Label, icon.Glyph, slot.Temp()}, "\n")))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(rows, "\n\n")
}
