package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Views
	ToggleTab      key.Binding
	FocusCalendar  key.Binding
	ToggleHelp     key.Binding
	Search         key.Binding
	CycleBusiness  key.Binding
	DismissMessage key.Binding

	// Actions
	AddOrder     key.Binding
	ReturnOrder  key.Binding
	DeleteOrder  key.Binding
	RemoveReturn key.Binding
	Refresh      key.Binding

	// Application
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		ToggleTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "orders/returns"),
		),
		FocusCalendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "calendar"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CycleBusiness: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "switch business"),
		),
		DismissMessage: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "dismiss message"),
		),

		AddOrder: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add order"),
		),
		ReturnOrder: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "return order"),
		),
		DeleteOrder: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete order"),
		),
		RemoveReturn: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove return"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleTab, k.AddOrder, k.Search, k.ToggleHelp, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleTab, k.FocusCalendar},
		{k.AddOrder, k.ReturnOrder, k.DeleteOrder, k.RemoveReturn},
		{k.Search, k.CycleBusiness, k.Refresh, k.Quit},
	}
}
