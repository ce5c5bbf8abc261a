package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Close      key.Binding
	PrevFilter key.Binding
	NextFilter key.Binding
	Theme      key.Binding
	Terminal   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Quit       key.Binding

	Submit    key.Binding
	Clear     key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		PrevFilter: key.NewBinding(key.WithKeys("h", "left", "["), key.WithHelp("h/[", "prev filter")),
		NextFilter: key.NewBinding(key.WithKeys("l", "right", "]"), key.WithHelp("l/]", "next filter")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Terminal:   key.NewBinding(key.WithKeys(":", "`"), key.WithHelp(":", "terminal")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpKeys adapts a flat binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) pageHelp() helpKeys {
	return helpKeys{k.Up, k.Down, k.Open, k.NextFilter, k.Theme, k.Terminal, k.Quit}
}

func (k keyMap) overlayHelp() helpKeys {
	return helpKeys{k.Close, k.PageUp, k.PageDown, k.Theme, k.Quit}
}

func (k keyMap) terminalHelp() helpKeys {
	return helpKeys{k.Submit, k.Clear, k.PageUp, k.PageDown, k.ForceQuit}
}
