package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders header, form card and footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	card := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderCard())

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := card
	if bodyHeight > lipgloss.Height(card) {
		body = lipgloss.PlaceVertical(bodyHeight, lipgloss.Center, card)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderCard renders the URL field with the latest result and error.
func (m Model) renderCard() string {
	styles := m.theme.Styles()
	width := m.cardWidth()
	inner := width - 6 // border + padding

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Enter your URL"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	if m.snapshot.HasResult() {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Render("Short URL  "))
		b.WriteString(styles.SuccessText.Render(truncateMiddle(m.snapshot.Result, inner-11)))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(
			m.keys.Open.Help().Key + " open  •  " + m.keys.Copy.Help().Key + " copy"))
	}

	if m.snapshot.HasError() {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Width(inner).Render(m.snapshot.Error))
	}

	border := m.theme.Border
	if m.snapshot.HasError() {
		border = m.theme.Danger
	}
	return styles.Card.
		BorderForeground(lipgloss.Color(border)).
		Width(width).
		Render(b.String())
}
