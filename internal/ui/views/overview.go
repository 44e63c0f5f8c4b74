package views

import (
	"fmt"
	"strings"

	"nimbus/internal/ui/input/modes"
)

func (r *Renderer) renderOverview(state ViewState) string {
	var status string
	switch {
	case state.Searching:
		status = r.styles.Refreshing.Render(state.Spinner + " Searching")
	case state.Pending:
		status = r.styles.Dim.Render("…")
	}

	var b strings.Builder
	b.WriteString(r.titleLine(state.Width, r.styles.Title.Render("nimbus"), status))
	b.WriteString("\n\n")

	inputStyle := r.styles.Input
	if state.Width > 8 {
		inputStyle = inputStyle.Width(state.Width - 8)
	}
	b.WriteString(inputStyle.Render(state.SearchInput))
	b.WriteString("\n\n")
	b.WriteString(r.renderCandidates(state))

	footer := r.styles.Help.Render(state.HelpModel.View(modes.OverviewKeys))
	return pushToBottom(b.String(), footer, state.Height)
}

func (r *Renderer) renderCandidates(state ViewState) string {
	if len(state.Candidates) == 0 {
		switch {
		case state.Query == "":
			return r.styles.Dim.Render("Type a city name to search.")
		case state.Pending || state.Searching:
			return ""
		default:
			return r.styles.Dim.Render(fmt.Sprintf("No places found for %q.", state.Query))
		}
	}

	// keep the cursor row visible when the list is taller than the screen
	visible := state.Height - 12
	if visible < 3 {
		visible = len(state.Candidates)
	}
	start := 0
	if state.Cursor >= visible {
		start = state.Cursor - visible + 1
	}
	end := min(len(state.Candidates), start+visible)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := state.Candidates[i].Label()
		if i == state.Cursor {
			lines = append(lines, r.styles.Selected.Render("▸ "+label))
			continue
		}
		lines = append(lines, r.styles.Candidate.Render(label))
	}
	return strings.Join(lines, "\n")
}
