package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nimbus/internal/ui/input/types"
)

// OverviewMode is the search screen: keys go to the text box unless they
// move the cursor, pick a row or clear the search.
type OverviewMode struct {
	textInput *textinput.Model
}

func NewOverviewMode(ti *textinput.Model) *OverviewMode {
	return &OverviewMode{textInput: ti}
}

func (m *OverviewMode) Name() string {
	return "search"
}

func (m *OverviewMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *OverviewMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *OverviewMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, OverviewKeys.Quit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, OverviewKeys.Cancel):
		return []types.Action{types.CancelSearchAction{}}, true

	case key.Matches(msg, OverviewKeys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, OverviewKeys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, OverviewKeys.Select):
		if ctx.CandidateCount() > 0 {
			return []types.Action{types.SelectLocationAction{Index: ctx.Cursor()}}, true
		}
		// nothing to pick yet, look up what was typed
		return []types.Action{types.FlushSearchAction{}}, true
	}

	// Let the handler feed the key to the text box
	return nil, false
}
