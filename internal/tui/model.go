package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/constellation/internal/render"
	"github.com/garrettladley/constellation/internal/reveal"
	"github.com/garrettladley/constellation/internal/starfield"
	"github.com/garrettladley/constellation/internal/tick"
	"github.com/garrettladley/constellation/internal/tui/components/footer"
	"github.com/garrettladley/constellation/internal/tui/components/sky"
	"github.com/garrettladley/constellation/internal/tui/components/status"
	"github.com/garrettladley/constellation/internal/tui/page/constellation"
	"github.com/garrettladley/constellation/internal/tui/page/launcher"
	"github.com/garrettladley/constellation/internal/tui/page/splash"
	"github.com/garrettladley/constellation/internal/tui/theme"
	"github.com/garrettladley/constellation/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	panelPage
)

const (
	maxSkyCols = 100
	// rows taken by everything on the open panel except the sky itself
	panelChromeRows = 14
	minSkyRows      = 3
)

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	frames  *tick.Loop
	reveals *tick.Loop
	clock   *tick.Loop

	revealTag int
	epoch     time.Time
	sky       *sky.Surface
	skyView   string
	store     status.Indicator
	day       int
}

func New(deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.FrameInterval <= 0 {
		deps.FrameInterval = 33 * time.Millisecond
	}

	return Model{
		page:    splashPage,
		theme:   theme.New(),
		deps:    deps,
		frames:  tick.New(deps.FrameInterval),
		reveals: tick.New(reveal.Interval),
		clock:   tick.New(clockInterval),
		epoch:   deps.Now(),
		store:   status.Indicator{Backend: deps.Store.Name()},
	}
}

func (m *Model) Init() tea.Cmd {
	m.refreshInputs()

	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return splash.TickMsg{}
		}),
		m.clock.Start(),
		pingStoreCmd(m.deps.Ctx, m.deps.Store),
		listenPatternCmd(m.deps.Ctx, m.deps.Watcher),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.resizeSky()
		m.draw()

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case splash.TickMsg:
		m.page = panelPage

	case tick.Msg:
		return m, m.handleTick(msg)

	case StoreStatusMsg:
		m.store = status.Indicator{Checked: true, Healthy: msg.Err == nil, Backend: msg.Backend}
		if msg.Err != nil {
			xslog.FromContext(m.deps.Ctx).WarnContext(m.deps.Ctx, "store ping failed",
				xslog.Backend(msg.Backend),
				xslog.Error(msg.Err))
		}

	case PatternMsg:
		m.applyPattern(msg)
		return m, listenPatternCmd(m.deps.Ctx, m.deps.Watcher)

	case PatternWatchClosedMsg:
		xslog.FromContext(m.deps.Ctx).DebugContext(m.deps.Ctx, "pattern watcher closed")
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	ctx := m.deps.Ctx
	ctrl := m.deps.Controller

	switch key {
	case "q", "ctrl+c":
		m.frames.Stop()
		m.reveals.Stop()
		m.clock.Stop()
		return tea.Quit
	}

	if m.page == splashPage {
		m.page = panelPage
		return nil
	}

	switch key {
	case "enter", "o":
		if ctrl.IsOpen() {
			return nil
		}
		ctrl.Open()
		m.draw()
		return m.frames.Start()

	case "esc", "x":
		if !ctrl.IsOpen() {
			return nil
		}
		ctrl.Close()
		m.frames.Stop()
		m.reveals.Stop()

	case "c":
		if ctrl.IsOpen() {
			ctrl.ToggleConnections(ctx)
		}

	case "r":
		if !ctrl.IsOpen() {
			return nil
		}
		tag, ok := ctrl.Reveal(ctx)
		if !ok {
			return nil
		}
		m.revealTag = tag
		return m.reveals.Start()

	case "R":
		m.reveals.Stop()
		ctrl.ResetAll(ctx)
		return pingStoreCmd(ctx, m.deps.Store)
	}

	return nil
}

func (m *Model) handleTick(msg tick.Msg) tea.Cmd {
	switch msg.ID {
	case m.frames.ID():
		next, ok := m.frames.Accept(msg)
		if !ok {
			return nil
		}
		m.draw()
		return next

	case m.reveals.ID():
		next, ok := m.reveals.Accept(msg)
		if !ok {
			return nil
		}
		if m.deps.Controller.RevealTick(m.deps.Ctx, m.revealTag) {
			m.reveals.Stop()
			return nil
		}
		return next

	case m.clock.ID():
		next, ok := m.clock.Accept(msg)
		if !ok {
			return nil
		}
		m.refreshInputs()
		return next
	}

	return nil
}

// refreshInputs derives the day count and expiry from the clock and hands
// them to the controller, which regenerates only when they changed.
func (m *Model) refreshInputs() {
	now := m.deps.Now()
	days := starfield.DaysSince(m.deps.StartDate, now)

	m.day = days + 1
	m.deps.Controller.SetInputs(
		m.deps.Ctx,
		starfield.StarsToShow(days, m.deps.TotalDays),
		m.deps.Countdown.Expired(now),
	)
}

func (m *Model) applyPattern(msg PatternMsg) {
	ctx := m.deps.Ctx
	logger := xslog.FromContext(ctx)

	if msg.Change.Err != nil {
		logger.WarnContext(ctx, "keeping previous pattern", xslog.Error(msg.Change.Err))
		return
	}

	m.deps.Generator.SetPattern(msg.Change.Pattern.Stars)
	m.deps.Controller.Regenerate(ctx)
	logger.InfoContext(ctx, "pattern reloaded",
		xslog.Count(len(msg.Change.Pattern.Stars)))
}

func (m *Model) resizeSky() {
	cols := min(m.viewportWidth-6, maxSkyCols)
	// braille dots are roughly square, so rows follow the 5:3 logical aspect
	rows := cols * render.Height * 2 / (render.Width * 4)
	rows = max(min(rows, m.viewportHeight-panelChromeRows), minSkyRows)
	cols = max(cols, 1)

	if m.sky != nil {
		if c, r := m.sky.Size(); c == cols && r == rows {
			return
		}
	}
	m.sky = sky.New(cols, rows, m.theme.Background())
}

// draw renders one frame from the controller's current state.
func (m *Model) draw() {
	if m.sky == nil || !m.deps.Controller.IsOpen() {
		return
	}
	elapsed := m.deps.Now().Sub(m.epoch)
	render.Frame(m.sky, m.deps.Controller.Snapshot(float64(elapsed.Milliseconds())))
	m.skyView = m.sky.Render()
}

func (m *Model) pageState() constellation.State {
	ctrl := m.deps.Controller
	return constellation.State{
		Completion:      ctrl.Completion(),
		ShowConnections: ctrl.ShowConnections(),
		Revealing:       ctrl.Revealing(),
		Name:            m.deps.Name,
		Day:             m.day,
		StarsToShow:     ctrl.StarsToShow(),
		TotalDays:       m.deps.TotalDays,
		Store:           m.store,
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses the night sky
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	view.SetContent(m.content())
	return view
}

func (m *Model) content() string {
	switch m.page {
	case splashPage:
		return splash.View(m.theme, m.viewportWidth, m.viewportHeight)

	case panelPage:
		var (
			state  = m.pageState()
			height = m.viewportHeight - 1
			body   string
			hints  string
		)

		if m.deps.Controller.IsOpen() {
			body = constellation.View(m.theme, state, m.skyView, m.viewportWidth, height)
			hints = constellation.KeyHints(state)
		} else {
			body = launcher.View(m.theme, launcher.State{
				Completion:  state.Completion,
				StarsToShow: state.StarsToShow,
				TotalDays:   state.TotalDays,
			}, m.viewportWidth, height)
			hints = "enter open • R reset • q quit"
		}

		return lipgloss.JoinVertical(
			lipgloss.Left,
			body,
			footer.New(m.theme.Muted().Render(hints), m.viewportWidth).Render(),
		)
	}

	return ""
}
