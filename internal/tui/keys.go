package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the viewer's bindings. It implements help.KeyMap.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Drill    key.Binding
	Category key.Binding
	Back     key.Binding
	Root     key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Drill:    key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "drill down")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "drill category")),
		Back:     key.NewBinding(key.WithKeys("backspace", "left", "h", "esc"), key.WithHelp("⌫", "drill up")),
		Root:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "back to top")),
		Jump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to level"),
		),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drill, k.Back, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Drill, k.Category, k.Back, k.Root, k.Jump},
		{k.Help, k.Quit},
	}
}
