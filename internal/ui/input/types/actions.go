package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// ScrollAction forwards a key to the details viewport
type ScrollAction struct {
	Key tea.KeyMsg
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// CancelSearchAction clears the query and the candidate list
type CancelSearchAction struct{}

func (a CancelSearchAction) Type() string { return "cancel_search" }

// FlushSearchAction fires a pending lookup without waiting for the debounce
type FlushSearchAction struct{}

func (a FlushSearchAction) Type() string { return "flush_search" }

// SelectLocationAction opens the details screen for a candidate
type SelectLocationAction struct {
	Index int
}

func (a SelectLocationAction) Type() string { return "select_location" }

// BackAction pops the details screen
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
