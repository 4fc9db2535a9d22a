package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"xkcdterm/internal/nav"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Prev    key.Binding
	Random  key.Binding
	Next    key.Binding
	Jump    key.Binding
	Sidebar key.Binding
	Open    key.Binding
	Info    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Prev:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "prev")),
		Random:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "random")),
		Next:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next")),
		Jump:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "go to #")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Random, k.Next, k.Jump, k.Info, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Prev, k.Random, k.Next, k.Jump},
		{k.Sidebar, k.Open, k.Info, k.Help, k.Quit},
	}
}

// request maps a key press onto a navigation request. Jump is returned
// without an id: the id is typed afterwards.
func (k keyMap) request(msg tea.KeyMsg) (nav.Request, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return nav.Request{Kind: nav.Up}, true
	case key.Matches(msg, k.Down):
		return nav.Request{Kind: nav.Down}, true
	case key.Matches(msg, k.Left):
		return nav.Request{Kind: nav.Left}, true
	case key.Matches(msg, k.Right):
		return nav.Request{Kind: nav.Right}, true
	case key.Matches(msg, k.Prev):
		return nav.Request{Kind: nav.Prev}, true
	case key.Matches(msg, k.Random):
		return nav.Request{Kind: nav.Random}, true
	case key.Matches(msg, k.Next):
		return nav.Request{Kind: nav.Next}, true
	case key.Matches(msg, k.Jump):
		return nav.Request{Kind: nav.Jump}, true
	case key.Matches(msg, k.Quit):
		return nav.Request{Kind: nav.Quit}, true
	}
	return nav.Request{}, false
}
