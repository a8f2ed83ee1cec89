package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shorty/internal/logtail"
)

type logsLoadedMsg struct {
	lines []string
	err   error
}

// loadLogsCmd reads the tail of the log file off the update loop.
func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsLoadedMsg{}
		}
		raw, err := logtail.Read(path, logTailLines)
		if err != nil {
			return logsLoadedMsg{err: err}
		}
		lines := make([]string, 0, len(raw))
		for _, line := range raw {
			lines = append(lines, logtail.Parse(line).Format())
		}
		return logsLoadedMsg{lines: lines}
	}
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.logViewportSize())
}

func (m *Model) resizeLogViewport() {
	w, h := m.logViewportSize()
	m.logViewport.Width = w
	m.logViewport.Height = h
}

// logViewportSize leaves room for the header, title and footer lines.
func (m Model) logViewportSize() (int, int) {
	return clamp(m.width-2, 10, m.width), clamp(m.height-4, 3, m.height)
}

func (m *Model) handleLogsLoaded(msg logsLoadedMsg) {
	m.logErr = msg.err
	if msg.err != nil {
		m.logViewport.SetContent("")
		return
	}
	if len(msg.lines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().FaintText.Render("Log is empty."))
		return
	}
	m.logViewport.SetContent(strings.Join(msg.lines, "\n"))
	m.logViewport.GotoBottom()
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("Log") + "  " +
		styles.MutedText.Render(truncateMiddle(m.logPath, clamp(m.width-10, 10, 80)))

	body := m.logViewport.View()
	if m.logErr != nil {
		body = styles.DangerText.Render("Could not read log: " + m.logErr.Error())
	}

	hint := styles.FaintText.Render("↑/↓ scroll  •  esc close")
	frame := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width)
	return lipgloss.JoinVertical(lipgloss.Left,
		frame.Render(title),
		body,
		hint,
	)
}
