package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wildwave/internal/audio"
	"github.com/five82/wildwave/internal/detector"
	"github.com/five82/wildwave/internal/logging"
	"github.com/five82/wildwave/internal/prefs"
	"github.com/five82/wildwave/internal/state"
)

// overlay is the panel drawn over the main screen, if any.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayPicker
	overlayLogs
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Detector    detector.Detector
	Logger      *slog.Logger
	ThemeName   string
	PrefsPath   string
	Prefs       prefs.Prefs
	LogPath     string
	InitialFile string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	detector  detector.Detector
	logger    *slog.Logger
	store     *state.Store
	keys      keyMap
	prefsPath string
	prefs     prefs.Prefs
	logPath   string

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	overlay overlay

	// Session state, refreshed from the store after every dispatch
	session     state.Session
	loadSeq     uint64
	initialFile string

	// Widgets
	picker      filepicker.Model
	spinner     spinner.Model
	gauges      []progress.Model
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}
	theme := GetTheme(themeName)

	m := Model{
		ctx:         ctx,
		detector:    opts.Detector,
		logger:      logging.Component(opts.Logger, "ui"),
		store:       &state.Store{},
		keys:        DefaultKeyMap(),
		prefsPath:   opts.PrefsPath,
		prefs:       opts.Prefs,
		logPath:     opts.LogPath,
		theme:       theme,
		initialFile: strings.TrimSpace(opts.InitialFile),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
		),
		logViewport: viewport.New(0, 0),
	}
	m.logViewport.KeyMap = m.keys.viewportKeys()
	m.prefs.Theme = theme.Name
	if m.initialFile != "" {
		m.loadSeq = 1
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.initialFile == "" {
		return nil
	}
	return loadFileCmd(m.loadSeq, m.initialFile)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeGauges()
		m.resizeLogViewport()
		if m.overlay == overlayPicker {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(m.pickerSizeMsg())
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case detectDoneMsg:
		return m.handleDetectDone(msg)

	case spinner.TickMsg:
		// The spinner stops once nothing is in flight.
		if !m.session.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		return m.updateGauges(msg)

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	if m.overlay == overlayPicker {
		return m.updatePicker(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayLogs:
		return m.renderLogs()
	case overlayPicker:
		return m.renderPicker()
	}
	return m.renderMain()
}

// Session returns the current session snapshot.
func (m Model) Session() state.Session {
	return m.session
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A file dropped on the terminal arrives as a bracketed paste.
	if msg.Paste {
		return m.handleDrop(string(msg.Runes))
	}

	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.overlay {
	case overlayHelp:
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	case overlayPicker:
		if key.Matches(msg, m.keys.Escape) {
			m.overlay = overlayNone
			return m, nil
		}
		return m.updatePicker(msg)
	case overlayLogs:
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if token := m.store.InFlight(); token != 0 {
		m.logger.Info("upload aborted on quit", "token", token)
	}
	m.store.Close()
	return m, tea.Quit
}

// dispatch applies ev to the store and refreshes the rendered snapshot.
func (m *Model) dispatch(ev state.Event) state.Effect {
	eff := m.store.Dispatch(ev)
	m.session = m.store.Snapshot()

	switch eff.Kind {
	case state.EffectCancelUpload:
		m.logger.Info("upload superseded", "token", eff.Token)
	case state.EffectDiscarded:
		m.logger.Info("stale response dropped", "token", eff.Token, "latest", m.session.Token())
	}
	if !m.session.HasResult() {
		m.gauges = nil
	}
	return eff
}

func (m Model) loadFile(path string) (Model, tea.Cmd) {
	m.loadSeq++
	return m, loadFileCmd(m.loadSeq, path)
}

func (m Model) handleDrop(text string) (tea.Model, tea.Cmd) {
	path, ok := audio.FromDrop(text)
	if !ok {
		return m, nil
	}
	m.overlay = overlayNone
	m.logger.Debug("file dropped", "path", path)
	return m.loadFile(path)
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	// A later pick or drop supersedes this one.
	if msg.seq != m.loadSeq {
		return m, nil
	}
	if msg.err != nil {
		m.logger.Warn("file rejected", "path", msg.path, "error", msg.err)
		m.dispatch(state.Rejected{Err: msg.err})
		return m, nil
	}

	m.dispatch(state.Selected{File: msg.file})
	m.logger.Info("file selected",
		"file", msg.file.Name,
		"mime", msg.file.MIMEType,
		"bytes", msg.file.Size,
	)
	m.rememberDir(filepath.Dir(msg.file.Path))
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	eff := m.dispatch(state.Submitted{})
	if eff.Kind != state.EffectStartUpload {
		return m, nil
	}
	ctx := m.store.Begin(m.ctx, eff.Token)
	m.logger.Info("upload scheduled", "token", eff.Token, "file", eff.File.Name)
	return m, tea.Batch(detectCmd(ctx, m.detector, eff.Token, eff.File), m.spinner.Tick)
}

func (m Model) handleDetectDone(msg detectDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		eff := m.dispatch(state.Failed{Token: msg.token, Err: msg.err})
		if eff.Kind != state.EffectDiscarded {
			m.logger.Warn("analysis failed", "token", msg.token, "error", msg.err)
		}
		return m, nil
	}

	eff := m.dispatch(state.Succeeded{Token: msg.token, Result: msg.result})
	if eff.Kind == state.EffectDiscarded {
		return m, nil
	}
	m.logger.Info("analysis shown", "token", msg.token, "birds", len(msg.result.Birds))
	return m, m.buildGauges()
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.savePrefs()
	if m.session.HasResult() {
		return m, m.buildGauges()
	}
	return m, nil
}

func (m *Model) rememberDir(dir string) {
	if dir == "" || dir == m.prefs.LastDir {
		return
	}
	m.prefs.LastDir = dir
	m.savePrefs()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Picker

func (m Model) openPicker() (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.AllowedTypes = audio.Extensions()
	fp.CurrentDirectory = m.startDir()
	fp.AutoHeight = true
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Info))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	fp.Styles.DisabledFile = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))

	m.picker = fp
	m.overlay = overlayPicker

	var sizeCmd tea.Cmd
	m.picker, sizeCmd = m.picker.Update(m.pickerSizeMsg())
	return m, tea.Batch(m.picker.Init(), sizeCmd)
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.overlay = overlayNone
		next, loadCmd := m.loadFile(path)
		return next, tea.Batch(cmd, loadCmd)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.overlay = overlayNone
		err := fmt.Errorf("%w: %s", audio.ErrInvalidFileType, filepath.Base(path))
		m.logger.Warn("file rejected", "path", path, "error", err)
		m.loadSeq++
		m.dispatch(state.Rejected{Err: err})
		return m, cmd
	}
	return m, cmd
}

func (m Model) startDir() string {
	if m.prefs.LastDir != "" {
		return m.prefs.LastDir
	}
	if file := m.session.File(); !file.IsZero() {
		return filepath.Dir(file.Path)
	}
	return "."
}

func (m Model) pickerSizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: maxInt(m.height-pickerChromeHeight, pickerMinHeight)}
}

// Logs

func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.overlay = overlayLogs
	m.resizeLogViewport()
	return m, readLogsCmd(m.logPath)
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logErr = msg.err
	m.logLines = msg.lines
	if msg.err != nil {
		m.logger.Warn("read log failed", "error", msg.err)
	}
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m *Model) resizeLogViewport() {
	m.logViewport.Width = maxInt(m.width-4, 10)
	m.logViewport.Height = maxInt(m.height-5, 3)
}

// Gauges

func (m *Model) buildGauges() tea.Cmd {
	cards := resultCards(m.session.Result(), m.theme)
	m.gauges = make([]progress.Model, 0, len(cards))
	cmds := make([]tea.Cmd, 0, len(cards))
	for i, card := range cards {
		m.gauges = append(m.gauges, m.newGauge(card.Color))
		cmds = append(cmds, m.gauges[i].SetPercent(card.Fraction()))
	}
	return tea.Batch(cmds...)
}

func (m Model) newGauge(color string) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(m.gaugeWidth()),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = m.theme.Track
	return bar
}

func (m Model) updateGauges(msg progress.FrameMsg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.gauges))
	for i := range m.gauges {
		next, cmd := m.gauges[i].Update(msg)
		if bar, ok := next.(progress.Model); ok {
			m.gauges[i] = bar
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resizeGauges() {
	w := m.gaugeWidth()
	for i := range m.gauges {
		m.gauges[i].Width = w
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	m := New(opts)
	defer m.store.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
