package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shorty/internal/submission"
)

type stubShortener struct {
	results map[string]string
	err     error
	calls   int
	sent    []string
}

func (s *stubShortener) Shorten(_ context.Context, longURL string) (string, error) {
	s.calls++
	s.sent = append(s.sent, longURL)
	if s.err != nil {
		return "", s.err
	}
	return s.results[longURL], nil
}

func newTestModel(t *testing.T, svc submission.Shortener, opts submission.Options) Model {
	t.Helper()
	m := New(Options{
		Controller: submission.NewController(svc, opts),
		APIURL:     "http://127.0.0.1:8080",
		Clipboard:  func(string) error { return nil },
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

// pressEnter submits and feeds the settled message back into the model.
func pressEnter(t *testing.T, m Model) (Model, bool) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		return m, false
	}
	next, _ = m.Update(cmd())
	return next.(Model), true
}

func TestModel_HappyPath(t *testing.T) {
	svc := &stubShortener{results: map[string]string{"https://example.com": "https://short.ly/abc123"}}
	m := newTestModel(t, svc, submission.Options{})

	m = typeText(t, m, "https://example.com")
	if m.snapshot.Input != "https://example.com" {
		t.Fatalf("controller input = %q, want typed URL", m.snapshot.Input)
	}

	m, sent := pressEnter(t, m)
	if !sent {
		t.Fatalf("enter with input produced no command")
	}
	if m.input.Value() != "" || m.snapshot.Input != "" {
		t.Fatalf("input = %q/%q, want cleared", m.input.Value(), m.snapshot.Input)
	}
	if m.snapshot.Result != "https://short.ly/abc123" {
		t.Fatalf("result = %q, want https://short.ly/abc123", m.snapshot.Result)
	}
	if m.snapshot.Error != "" {
		t.Fatalf("error = %q, want empty", m.snapshot.Error)
	}

	view := m.View()
	if !strings.Contains(view, "https://short.ly/abc123") {
		t.Fatalf("view does not show short url:\n%s", view)
	}
	if !strings.Contains(view, "ctrl+o") {
		t.Fatalf("view does not offer the open action:\n%s", view)
	}
}

func TestModel_NetworkFailure(t *testing.T) {
	m := newTestModel(t, &stubShortener{err: errors.New("Network Error")}, submission.Options{})

	m = typeText(t, m, "not-a-url")
	m, _ = pressEnter(t, m)

	if m.snapshot.Error != "Failed to fetch data: Network Error" {
		t.Fatalf("error = %q, want failure message", m.snapshot.Error)
	}
	if m.snapshot.Result != "" {
		t.Fatalf("result = %q, want empty", m.snapshot.Result)
	}
	if m.input.Value() != "" {
		t.Fatalf("input = %q, want cleared", m.input.Value())
	}
	if !strings.Contains(m.View(), "Failed to fetch data: Network Error") {
		t.Fatalf("view does not show error:\n%s", m.View())
	}
}

func TestModel_EmptyInputBlocksSubmit(t *testing.T) {
	svc := &stubShortener{}
	m := newTestModel(t, svc, submission.Options{})
	before := m.snapshot

	m, sent := pressEnter(t, m)
	if sent {
		t.Fatalf("enter on empty field produced a command")
	}
	if svc.calls != 0 {
		t.Fatalf("shortener called %d times, want 0", svc.calls)
	}
	if m.snapshot != before {
		t.Fatalf("snapshot changed: %#v, want %#v", m.snapshot, before)
	}
}

func TestModel_EditAfterErrorClearsError(t *testing.T) {
	m := newTestModel(t, &stubShortener{err: errors.New("Network Error")}, submission.Options{})
	m = typeText(t, m, "not-a-url")
	m, _ = pressEnter(t, m)

	m = typeText(t, m, "h")
	if m.snapshot.Error != "" {
		t.Fatalf("error = %q, want cleared after edit", m.snapshot.Error)
	}
	if m.snapshot.Input != "h" || m.input.Value() != "h" {
		t.Fatalf("input = %q/%q, want h", m.snapshot.Input, m.input.Value())
	}
	if m.snapshot.Phase != submission.PhaseIdle {
		t.Fatalf("phase = %v, want idle", m.snapshot.Phase)
	}
}

func TestModel_SecondSubmissionOverwritesResult(t *testing.T) {
	svc := &stubShortener{results: map[string]string{
		"https://example.com": "https://short.ly/abc123",
		"https://example.org": "https://short.ly/xyz999",
	}}
	m := newTestModel(t, svc, submission.Options{})

	m = typeText(t, m, "https://example.com")
	m, _ = pressEnter(t, m)
	m = typeText(t, m, "https://example.org")
	if m.snapshot.Result != "https://short.ly/abc123" {
		t.Fatalf("result while typing = %q, want previous result kept", m.snapshot.Result)
	}
	m, _ = pressEnter(t, m)

	if m.snapshot.Result != "https://short.ly/xyz999" {
		t.Fatalf("result = %q, want https://short.ly/xyz999", m.snapshot.Result)
	}
}

func TestModel_EnterWhileWaitingIsIgnored(t *testing.T) {
	svc := &stubShortener{results: map[string]string{"a": "https://short.ly/a"}}
	m := newTestModel(t, svc, submission.Options{})

	m = typeText(t, m, "a")
	next, first := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if first == nil {
		t.Fatalf("first enter produced no command")
	}

	m = typeText(t, m, "b")
	next, second := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if second != nil {
		t.Fatalf("second enter while waiting produced a command")
	}
	if !strings.Contains(m.notice, "Still waiting") {
		t.Fatalf("notice = %q, want waiting notice", m.notice)
	}

	next, _ = m.Update(first())
	m = next.(Model)
	if m.snapshot.Result != "https://short.ly/a" || m.input.Value() != "" {
		t.Fatalf("after settle result=%q input=%q", m.snapshot.Result, m.input.Value())
	}
}

func TestModel_OpenAndCopyRequireResult(t *testing.T) {
	var visited []string
	nav := func(u string) error {
		visited = append(visited, u)
		return nil
	}
	svc := &stubShortener{results: map[string]string{"https://example.com": "https://short.ly/abc123"}}
	m := newTestModel(t, svc, submission.Options{Navigator: nav})

	var copied []string
	m.clipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO}); cmd != nil {
		t.Fatalf("ctrl+o without result produced a command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY}); cmd != nil {
		t.Fatalf("ctrl+y without result produced a command")
	}

	m = typeText(t, m, "https://example.com")
	m, _ = pressEnter(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if cmd == nil {
		t.Fatalf("ctrl+o with result produced no command")
	}
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)
	if len(visited) != 1 || visited[0] != "https://short.ly/abc123" {
		t.Fatalf("navigated to %v, want [https://short.ly/abc123]", visited)
	}
	if !strings.HasPrefix(m.notice, "Opened") {
		t.Fatalf("notice = %q, want Opened...", m.notice)
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd == nil {
		t.Fatalf("ctrl+y with result produced no command")
	}
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)
	if len(copied) != 1 || copied[0] != "https://short.ly/abc123" {
		t.Fatalf("copied %v, want [https://short.ly/abc123]", copied)
	}
	if !strings.HasPrefix(m.notice, "Copied") {
		t.Fatalf("notice = %q, want Copied...", m.notice)
	}
}

func TestModel_RedirectFailureShowsNotice(t *testing.T) {
	nav := func(string) error { return errors.New("no browser") }
	svc := &stubShortener{results: map[string]string{"x": "https://short.ly/x"}}
	m := newTestModel(t, svc, submission.Options{Navigator: nav})

	m = typeText(t, m, "x")
	m, _ = pressEnter(t, m)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)

	if !strings.Contains(m.notice, "no browser") {
		t.Fatalf("notice = %q, want navigator error", m.notice)
	}
	if m.snapshot.Error != "" {
		t.Fatalf("redirect failure leaked into form error: %q", m.snapshot.Error)
	}
}

func TestModel_LongPastedURLSentUnchanged(t *testing.T) {
	long := "https://example.com/?q=" + strings.Repeat("a1b2c3", 500)
	svc := &stubShortener{results: map[string]string{long: "https://short.ly/long"}}
	m := newTestModel(t, svc, submission.Options{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(long), Paste: true})
	m = next.(Model)
	if m.snapshot.Input != long {
		t.Fatalf("controller input has %d bytes, want %d", len(m.snapshot.Input), len(long))
	}

	m, _ = pressEnter(t, m)
	if len(svc.sent) != 1 {
		t.Fatalf("shortener called %d times, want 1", len(svc.sent))
	}
	if svc.sent[0] != long {
		t.Fatalf("shortener received %d bytes, want the pasted %d bytes", len(svc.sent[0]), len(long))
	}
	if m.snapshot.Result != "https://short.ly/long" {
		t.Fatalf("result = %q, want https://short.ly/long", m.snapshot.Result)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, &stubShortener{}, submission.Options{})

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s produced no command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s did not quit", msg.String())
		}
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, &stubShortener{}, submission.Options{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(Model)
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("f1 did not open help")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c in help produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c in help did not quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)
	if m.showHelp {
		t.Fatalf("key did not close help")
	}
	if m.input.Value() != "" {
		t.Fatalf("key closing help leaked into input: %q", m.input.Value())
	}
}

func TestModel_CycleTheme(t *testing.T) {
	m := newTestModel(t, &stubShortener{}, submission.Options{})
	start := m.theme.Name

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	if m.theme.Name != NextTheme(start) {
		t.Fatalf("theme = %q, want %q", m.theme.Name, NextTheme(start))
	}
}

func TestModel_LogOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shorty.log")
	line := `{"level":"info","ts":"2026-10-15T10:00:00Z","msg":"submit","url":"https://example.com"}`
	if err := os.WriteFile(path, []byte(line+"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := New(Options{
		Controller: submission.NewController(&stubShortener{}, submission.Options{}),
		LogPath:    path,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(Model)
	if !m.showLogs || cmd == nil {
		t.Fatalf("ctrl+l did not open logs")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if !strings.Contains(m.View(), "INFO submit url=https://example.com") {
		t.Fatalf("log view missing entry:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.showLogs {
		t.Fatalf("esc did not close logs")
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{Controller: submission.NewController(&stubShortener{}, submission.Options{})})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q, want Loading...", got)
	}
}

func TestRun_RequiresController(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatalf("Run without controller returned nil error")
	}
}
