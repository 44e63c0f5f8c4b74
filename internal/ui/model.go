package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"nimbus/internal/config"
	"nimbus/internal/domain"
	"nimbus/internal/eventbus"
	"nimbus/internal/forecast"
	"nimbus/internal/ui/input"
	inputtypes "nimbus/internal/ui/input/types"
	"nimbus/internal/ui/views"
)

// SearchController is the search state driven by the overview screen
type SearchController interface {
	OnQueryChange(text string)
	Cancel()
	Flush()
	Query() string
	Candidates() []domain.LocationCandidate
	Pending() bool
	Searching() bool
}

// ForecastViewer is the per-location state behind the details screen
type ForecastViewer interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Snapshot() *domain.ForecastSnapshot
	Refreshing() bool
	Loading() bool
	Location() domain.SelectedLocation
	LastError() error
	Close()
}

// ViewerFactory creates the viewer for a newly selected location
type ViewerFactory func(loc domain.SelectedLocation) ForecastViewer

// Options wires the model to its services
type Options struct {
	Config       *config.Config
	Search       SearchController
	NewViewer    ViewerFactory
	Logger       *zap.SugaredLogger
	InitialQuery string
}

// screen is one entry of the navigation stack
type screen struct {
	name   string
	viewer ForecastViewer // nil for the overview
}

// Model is the navigation container: an overview screen with at most one
// details screen pushed on top of it.
type Model struct {
	ctx       context.Context
	cancel    context.CancelFunc
	log       *zap.SugaredLogger
	search    SearchController
	newViewer ViewerFactory

	stack []screen

	width       int
	height      int
	cursor      int
	showHelp    bool
	inPagerMode bool

	help         help.Model
	spinner      spinner.Model
	viewport     viewport.Model
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		ctx:          ctx,
		cancel:       cancel,
		log:          log.Named("ui"),
		search:       opts.Search,
		newViewer:    opts.NewViewer,
		stack:        []screen{{name: views.ScreenOverview}},
		help:         help.New(),
		viewport:     viewport.New(76, 20),
		renderer:     views.NewRenderer(cfg.UISettings.ShowApparent, cfg.UISettings.ShowSunTimes),
		inputHandler: input.New(),
		pager:        NewPager(),
	}
	m.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("51"))),
	)

	if opts.InitialQuery != "" {
		m.inputHandler.SetQuery(opts.InitialQuery)
		m.search.OnQueryChange(opts.InitialQuery)
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputHandler.Init(), m.spinner.Tick)
}

// Close disposes every viewer on the stack and cancels outstanding loads
func (m *Model) Close() {
	for _, s := range m.stack {
		if s.viewer != nil {
			s.viewer.Close()
		}
	}
	m.cancel()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		m.refreshBody()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case forecastLoadedMsg:
		if msg.err != nil {
			m.log.Debugw("forecast command settled with error", "location", msg.location.Name, "refresh", msg.refresh, "error", msg.err)
		}
		m.refreshBody()
		return m, nil

	case spinner.TickMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			// log only; the details screen stays as it was
			m.log.Warnw("pager failed", "error", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit

	case inputtypes.UpdateTextAction:
		m.cursor = 0
		m.search.OnQueryChange(a.Text)
		return nil

	case inputtypes.CancelSearchAction:
		m.cursor = 0
		m.inputHandler.ClearQuery()
		m.search.Cancel()
		return nil

	case inputtypes.FlushSearchAction:
		m.search.Flush()
		return nil

	case inputtypes.NavigateAction:
		m.moveCursor(a.Direction)
		return nil

	case inputtypes.SelectLocationAction:
		return m.selectLocation(a.Index)

	case inputtypes.BackAction:
		m.pop()
		return nil

	case inputtypes.RefreshAction:
		if v := m.currentViewer(); v != nil {
			return m.loadCmd(v, true)
		}
		return nil

	case inputtypes.OpenPagerAction:
		if v := m.currentViewer(); v != nil {
			return m.pagerCmd(forecast.Table(v.Location(), v.Snapshot()))
		}
		return nil

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		return nil

	case inputtypes.ScrollAction:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(a.Key)
		return cmd
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CandidatesUpdatedEvent:
		m.clampCursor()

	case eventbus.SearchFailedEvent:
		m.log.Debugw("search failed", "query", e.Query, "error", e.Err)

	case eventbus.ForecastUpdatedEvent:
		if m.isCurrent(e.Location) {
			m.refreshBody()
		}

	case eventbus.ForecastFailedEvent:
		if m.isCurrent(e.Location) {
			m.refreshBody()
		}

	case eventbus.RefreshStateChangedEvent:
		if m.isCurrent(e.Location) {
			m.refreshBody()
		}
	}
	return nil
}

func (m *Model) selectLocation(index int) tea.Cmd {
	candidates := m.search.Candidates()
	if index < 0 || index >= len(candidates) || m.newViewer == nil {
		return nil
	}

	loc := domain.FromCandidate(candidates[index])
	m.log.Infow("location selected", "name", loc.Name, "lat", loc.Latitude, "lon", loc.Longitude)

	v := m.newViewer(loc)
	m.stack = append(m.stack, screen{name: views.ScreenDetails, viewer: v})
	m.inputHandler.SetMode(inputtypes.ModeDetails, &modelContext{m: m})
	m.showHelp = false
	m.viewport.GotoTop()
	m.refreshBody()
	return m.loadCmd(v, false)
}

// pop leaves the details screen and disposes its viewer
func (m *Model) pop() {
	if len(m.stack) < 2 {
		return
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	if top.viewer != nil {
		top.viewer.Close()
	}
	m.showHelp = false
}

func (m *Model) loadCmd(v ForecastViewer, refresh bool) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		var err error
		if refresh {
			err = v.Refresh(ctx)
		} else {
			err = v.Load(ctx)
		}
		return forecastLoadedMsg{location: v.Location(), refresh: refresh, err: err}
	}
}

// pagerCmd returns a command that shows content using the pager
func (m *Model) pagerCmd(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.pager.Show(content)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{err: err}
	}
}

func (m *Model) moveCursor(direction string) {
	n := len(m.search.Candidates())
	switch direction {
	case "up":
		m.cursor--
	case "down":
		m.cursor++
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = n - 1
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.search.Candidates())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentScreen() screen {
	return m.stack[len(m.stack)-1]
}

func (m *Model) currentViewer() ForecastViewer {
	return m.currentScreen().viewer
}

func (m *Model) isCurrent(loc domain.SelectedLocation) bool {
	v := m.currentViewer()
	return v != nil && v.Location() == loc
}

func (m *Model) resizeViewport() {
	m.viewport.Width = max(m.width-4, 10)
	m.viewport.Height = max(m.height-2-views.HeaderHeight-views.FooterHeight, 3)
}

// refreshBody re-renders the details body into the viewport
func (m *Model) refreshBody() {
	v := m.currentViewer()
	if v == nil {
		return
	}
	m.viewport.SetContent(m.renderer.DetailsBody(v.Snapshot(), m.viewport.Width))
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	cur := m.currentScreen()
	state := views.ViewState{
		Width:     m.width,
		Height:    m.height,
		Screen:    cur.name,
		Spinner:   m.spinner.View(),
		ShowHelp:  m.showHelp,
		HelpModel: m.help,
	}

	if v := cur.viewer; v != nil {
		state.Location = v.Location()
		state.Snapshot = v.Snapshot()
		state.Loading = v.Loading()
		state.Refreshing = v.Refreshing()
		state.Stale = state.Snapshot != nil && v.LastError() != nil
		state.Body = m.viewport.View()
		return state
	}

	state.SearchInput = m.inputHandler.TextInput().View()
	state.Query = m.search.Query()
	state.Candidates = m.search.Candidates()
	state.Cursor = m.cursor
	state.Pending = m.search.Pending()
	state.Searching = m.search.Searching()
	return state
}

// modelContext implements the input Context interface
type modelContext struct {
	m *Model
}

func (c *modelContext) Cursor() int {
	return c.m.cursor
}

func (c *modelContext) CandidateCount() int {
	return len(c.m.search.Candidates())
}

func (c *modelContext) HasSnapshot() bool {
	v := c.m.currentViewer()
	return v != nil && v.Snapshot() != nil
}

func (c *modelContext) HelpVisible() bool {
	return c.m.showHelp
}
