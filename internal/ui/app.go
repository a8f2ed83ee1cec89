package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/shorty/internal/submission"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *submission.Controller
	APIURL     string
	LogPath    string
	ThemeName  string
	Logger     *zap.Logger
	// Clipboard writes the short URL when the user copies it.
	// Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *submission.Controller
	apiURL     string
	logPath    string
	logger     *zap.Logger
	clipboard  func(string) error

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool
	notice string

	// Form state
	input    textinput.Model
	snapshot submission.Snapshot

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logErr      error
}

const (
	cardMaxWidth   = 76
	logTailLines   = 500
)

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	controller := opts.Controller
	if controller == nil {
		controller = submission.NewController(nil, submission.Options{Logger: logger})
	}

	input := textinput.New()
	input.Placeholder = "https://example.com"
	input.CharLimit = 0 // the service gets the value as typed
	input.Width = cardMaxWidth - 10
	input.Prompt = "› "
	input.Focus()

	m := Model{
		ctx:        ctx,
		controller: controller,
		apiURL:     opts.APIURL,
		logPath:    opts.LogPath,
		logger:     logger,
		clipboard:  write,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(opts.ThemeName),
		input:      input,
		snapshot:   controller.Snapshot(),
	}
	m.applyInputTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = clamp(m.cardWidth()-10, 10, cardMaxWidth)
		if !m.ready {
			m.initLogViewport()
		}
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case submitSettledMsg:
		m.snapshot = m.controller.Settle(submission.Outcome(msg))
		m.syncInput()
		return m, nil

	case redirectDoneMsg:
		if msg.err != nil {
			m.logger.Warn("open short url failed", zap.String("url", msg.url), zap.Error(msg.err))
			m.notice = "Could not open " + msg.url + ": " + msg.err.Error()
			return m, nil
		}
		m.notice = "Opened " + msg.url
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.logger.Warn("copy short url failed", zap.Error(msg.err))
			m.notice = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.notice = "Copied " + msg.url
		return m, nil

	case logsLoadedMsg:
		m.handleLogsLoaded(msg)
		return m, nil
	}

	// Blink and paste messages belong to the text input.
	return m.updateInput(msg)
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
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Escape):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyInputTheme()
		m.notice = "Theme: " + m.theme.Name
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, loadLogsCmd(m.logPath)

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Open):
		if !m.snapshot.HasResult() {
			return m, nil
		}
		return m, redirectCmd(m.controller, m.snapshot.Result)

	case key.Matches(msg, m.keys.Copy):
		if !m.snapshot.HasResult() {
			return m, nil
		}
		return m, copyCmd(m.clipboard, m.snapshot.Result)
	}

	return m.updateInput(msg)
}

// submit starts a request for the current input. Enter on an empty field
// does nothing.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.snapshot.CanSubmit() {
		return m, nil
	}
	attempt, err := m.controller.Begin()
	if err != nil {
		if errors.Is(err, submission.ErrInFlight) {
			m.notice = "Still waiting for the previous request"
		}
		return m, nil
	}
	m.notice = ""
	m.snapshot = m.controller.Snapshot()
	return m, submitCmd(m.ctx, m.controller, attempt)
}

// updateInput forwards msg to the text input and reports edits to the
// controller.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.snapshot = m.controller.OnInputChange(value)
		m.notice = ""
	}
	return m, cmd
}

// syncInput mirrors the controller's input into the text field after the
// controller changed it.
func (m *Model) syncInput() {
	if m.input.Value() != m.snapshot.Input {
		m.input.SetValue(m.snapshot.Input)
	}
}

func (m *Model) applyInputTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.input.Cursor.Style = styles.AccentText
}

func (m Model) cardWidth() int {
	if m.width <= 0 {
		return cardMaxWidth
	}
	return clamp(m.width-4, 20, cardMaxWidth)
}

// Messages

type submitSettledMsg submission.Outcome

type redirectDoneMsg struct {
	url string
	err error
}

type copyDoneMsg struct {
	url string
	err error
}

// Commands

func submitCmd(ctx context.Context, c *submission.Controller, a submission.Attempt) tea.Cmd {
	return func() tea.Msg {
		return submitSettledMsg(c.Resolve(ctx, a))
	}
}

func redirectCmd(c *submission.Controller, url string) tea.Cmd {
	return func() tea.Msg {
		return redirectDoneMsg{url: url, err: c.Redirect()}
	}
}

func copyCmd(write func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{url: url, err: write(url)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a submission controller")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func hostOf(apiURL string) string {
	host := strings.TrimSpace(apiURL)
	host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	return strings.TrimSuffix(host, "/")
}
