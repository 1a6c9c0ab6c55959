package explore

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	Narrow   key.Binding
	Widen    key.Binding
	Compact  key.Binding
	Medium   key.Binding
	Expanded key.Binding
	Platform key.Binding
	Inspect  key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Narrow: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrow viewport"),
		),
		Widen: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "widen viewport"),
		),
		Compact: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "phone width"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "tablet width"),
		),
		Expanded: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "desktop width"),
		),
		Platform: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next platform"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i", "preview/inspect"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrow, k.Widen, k.Platform, k.Inspect, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrow, k.Widen},
		{k.Compact, k.Medium, k.Expanded},
		{k.Platform, k.Inspect, k.Reload},
		{k.Help, k.Quit},
	}
}
