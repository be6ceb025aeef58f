package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var introOptions = []string{"Open Grid", "Run History"}

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Open Grid, 1: Run History
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.selected = (m.selected - 1 + len(introOptions)) % len(introOptions)
		case "right", "l", "tab":
			m.selected = (m.selected + 1) % len(introOptions)
		case "enter":
			selected := m.selected
			return m, func() tea.Msg { return IntroSubmitMsg(selected) }
		}
	}
	return m, nil
}

var pathvizBanner = `
 ┌─┐┌─┐┌┬┐┬ ┬┬  ┬┬┌─┐
 ├─┘├─┤ │ ├─┤└┐┌┘│┌─┘
 ┴  ┴ ┴ ┴ ┴ ┴ └┘ ┴└─┘
`

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("87"))

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString(bannerStyle.Render(pathvizBanner))
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render("A*, Dijkstra, BFS and DFS on a grid you draw"))

	buttons := make([]string, 0, len(introOptions))
	for i, option := range introOptions {
		if i == m.selected {
			buttons = append(buttons, selectedButtonStyle.Render(option))
		} else {
			buttons = append(buttons, buttonStyle.Render(option))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		sb.String(),
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
		faintStyle.Render("(arrows to choose, enter to confirm, q to quit)"),
	)

	// Center the entire view within the terminal
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
