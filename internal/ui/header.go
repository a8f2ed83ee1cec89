package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shorty/internal/submission"
)

// phaseLabels are the header badge captions.
var phaseLabels = map[submission.Phase]string{
	submission.PhaseIdle:      "IDLE",
	submission.PhaseAwaiting:  "WAITING",
	submission.PhaseSucceeded: "OK",
	submission.PhaseFailed:    "ERROR",
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("shorty", styles.Logo),
		styles.PhaseStyle(m.snapshot.Phase).Render(phaseLabels[m.snapshot.Phase]),
	}

	if host := hostOf(m.apiURL); host != "" {
		limit := 40
		if m.width < 80 {
			limit = 20
		}
		parts = append(parts,
			bg.Render("→", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(host, limit), styles.MutedText))
	}

	if m.snapshot.Attempts > 0 {
		parts = append(parts,
			bg.Render("Sent:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.snapshot.Attempts), styles.Text))
	}
	if m.snapshot.InFlight > 1 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d pending", m.snapshot.InFlight), styles.WarningText))
	}
	if !m.snapshot.LastSettled.IsZero() && m.width >= 80 {
		parts = append(parts, bg.Render(m.snapshot.LastSettled.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, 2))
}

// renderFooter renders key hints and the latest notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var hints []string
	for _, b := range m.keys.formHelp(m.snapshot.HasResult()) {
		h := b.Help()
		hints = append(hints, styles.WarningText.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	line := strings.Join(hints, styles.FaintText.Render("  •  "))

	if m.notice != "" {
		notice := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Info)).
			Render(truncate(m.notice, clamp(m.width-4, 10, 200)))
		line = notice + "\n" + line
	}
	return styles.Footer.Width(m.width).Render(line)
}
