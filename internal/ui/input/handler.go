package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"nimbus/internal/ui/input/modes"
	"nimbus/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search box of the overview screen
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search for a city"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeOverview,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeOverview] = modes.NewOverviewMode(h.textInput)
	h.modes[types.ModeDetails] = modes.NewDetailsMode()

	return h
}

// HandleKey translates a key into actions. In the overview mode any key the
// mode does not consume edits the search box, and an UpdateTextAction is
// emitted when the text changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if changeMode.Mode == types.ModeOverview {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	if !consumed && h.currentMode == types.ModeOverview {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

// SetMode switches modes without a key press, e.g. after a selection
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeOverview
	}
	return h.currentMode
}

// TextInput returns the search box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetQuery replaces the search box text, e.g. from --query
func (h *Handler) SetQuery(q string) {
	h.textInput.SetValue(q)
	h.textInput.CursorEnd()
}

// ClearQuery empties the search box
func (h *Handler) ClearQuery() {
	h.textInput.Reset()
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeOverview {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
