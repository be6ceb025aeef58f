package ui

import "github.com/charmbracelet/bubbles/key"

type gridKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Place    key.Binding
	Erase    key.Binding
	Run      key.Binding
	Next     key.Binding
	AStar    key.Binding
	Dijkstra key.Binding
	BFS      key.Binding
	DFS      key.Binding
	Clear    key.Binding
	Reset    key.Binding
	Back     key.Binding
	Quit     key.Binding
	ShowHelp key.Binding
}

var gridKeys = gridKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Place:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "place")),
	Erase:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "erase")),
	Run:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next algorithm")),
	AStar:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "A*")),
	Dijkstra: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Dijkstra")),
	BFS:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "BFS")),
	DFS:      key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "DFS")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	ShowHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
}

func (k gridKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Erase, k.Run, k.Next, k.Reset, k.ShowHelp}
}

func (k gridKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Erase, k.Clear, k.Reset},
		{k.Run, k.Next, k.AStar, k.Dijkstra, k.BFS, k.DFS},
		{k.Back, k.Quit, k.ShowHelp},
	}
}
