package ui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/alertface/internal/appmsg"
	"github.com/five82/alertface/internal/logtail"
	"github.com/five82/alertface/internal/prefs"
	"github.com/five82/alertface/internal/state"
	"github.com/five82/alertface/internal/watch"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	App       *watch.App
	Clock     *watch.SystemClock
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
}

// Model is the Bubble Tea host for the watch face. Every watch callback runs
// inside Update, so the face sees one event at a time.
type Model struct {
	// Configuration
	ctx       context.Context
	app       *watch.App
	clock     *watch.SystemClock
	store     *state.Store
	prefs     prefs.Prefs
	prefsPath string
	logPath   string
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Link state
	snapshot   state.Snapshot
	sending    bool
	lastResult *appmsg.Result

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	clock := opts.Clock
	if clock == nil {
		clock = &watch.SystemClock{Use24h: opts.Prefs.Is24Hour()}
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		app:         opts.App,
		clock:       clock,
		store:       opts.Store,
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(opts.Prefs.Theme),
		logViewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		minuteTickCmd(time.Now()),
		linkTickCmd(),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case minuteTickMsg:
		m.app.MinuteTick()
		return m, minuteTickCmd(time.Time(msg))

	case deliveryMsg:
		out := appmsg.Outcome(msg)
		m.sending = false
		m.lastResult = &out.Result
		m.app.Deliver(out)
		return m, nil

	case linkTickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.showLogs {
			cmds = append(cmds, loadLogsCmd(m.logPath))
		}
		cmds = append(cmds, linkTickCmd())
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case logLinesMsg:
		m.logLines = msg
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, loadLogsCmd(m.logPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleClock):
		m.clock.Use24h = !m.clock.Use24h
		m.prefs = m.prefs.WithClock24h(m.clock.Use24h)
		m.savePrefs()
		m.app.Refresh()
		return m, nil
	}

	// Only paging reaches the overlay; watch buttons stay live under it.
	if m.showLogs && key.Matches(msg, m.keys.PageUp, m.keys.PageDown) {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}

	if b, ok := m.keys.button(msg); ok {
		delivery := m.app.Click(b)
		if delivery == nil {
			return m, nil
		}
		m.sending = true
		return m, deliveryCmd(m.ctx, delivery)
	}

	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders the watch and the status footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderWatch())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return m.place(b.String())
}

// Messages

type minuteTickMsg time.Time

type linkTickMsg time.Time

type deliveryMsg appmsg.Outcome

type snapshotMsg state.Snapshot

type logLinesMsg []string

// Commands

// untilNextMinute returns the wait from now to the next minute boundary.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

func minuteTickCmd(now time.Time) tea.Cmd {
	return tea.Tick(untilNextMinute(now), func(t time.Time) tea.Msg {
		return minuteTickMsg(t)
	})
}

func linkTickCmd() tea.Cmd {
	return tea.Tick(DefaultUIInterval, func(t time.Time) tea.Msg {
		return linkTickMsg(t)
	})
}

func deliveryCmd(ctx context.Context, delivery appmsg.Delivery) tea.Cmd {
	return func() tea.Msg {
		return deliveryMsg(delivery(ctx))
	}
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logLinesMsg{"log unavailable: " + err.Error()}
		}
		return logLinesMsg(lines)
	}
}

// Run initializes the watch app, runs the Bubble Tea program until it exits,
// and then shuts the app down.
func Run(opts Options) error {
	if opts.App == nil {
		return errors.New("ui: no watch app")
	}
	if err := opts.App.Init(); err != nil {
		return err
	}
	defer opts.App.Deinit()

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
