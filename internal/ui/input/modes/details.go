package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"nimbus/internal/ui/input/types"
)

type DetailsMode struct{}

func NewDetailsMode() *DetailsMode {
	return &DetailsMode{}
}

func (m *DetailsMode) Name() string {
	return "forecast"
}

func (m *DetailsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, DetailsKeys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, DetailsKeys.Back):
		// esc closes the help overlay before leaving the screen
		if msg.String() == "esc" && ctx.HelpVisible() {
			return []types.Action{types.ToggleHelpAction{}}, true
		}
		return []types.Action{types.BackAction{}, types.ChangeModeAction{Mode: types.ModeOverview}}, true

	case key.Matches(msg, DetailsKeys.Refresh):
		return []types.Action{types.RefreshAction{}}, true

	case key.Matches(msg, DetailsKeys.Pager):
		if ctx.HasSnapshot() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, true

	case key.Matches(msg, DetailsKeys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	switch msg.String() {
	case "up", "down", "k", "j", "pgup", "pgdown", "home", "end", "ctrl+u", "ctrl+d", " ":
		return []types.Action{types.ScrollAction{Key: msg}}, true
	}
	return nil, false
}
