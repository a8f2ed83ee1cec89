package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. Plain letters
// belong to the URL field, so every action sits on a control or function key.
type keyMap struct {
	// Global
	Quit       key.Binding
	Escape     key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding

	// Form
	Submit key.Binding
	Open   key.Binding
	Copy   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay / quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Show log"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Shorten"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Open short URL"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "Copy short URL"),
		),
	}
}

// formHelp lists the bindings shown in the footer.
func (k keyMap) formHelp(hasResult bool) []key.Binding {
	bindings := []key.Binding{k.Submit}
	if hasResult {
		bindings = append(bindings, k.Open, k.Copy)
	}
	return append(bindings, k.Help, k.Quit)
}
