package ui

import (
	"github.com/Mshel/pathviz/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// Cell colors. Every type gets its own color; empty cells use the background.
var cellColors = map[engine.CellType]lipgloss.Color{
	engine.Empty:   lipgloss.Color("235"),
	engine.Wall:    lipgloss.Color("252"),
	engine.Start:   lipgloss.Color("34"),
	engine.End:     lipgloss.Color("160"),
	engine.Visited: lipgloss.Color("63"),
	engine.Path:    lipgloss.Color("226"),
}

// cellWidth is how many terminal columns one grid cell occupies.
const cellWidth = 2

var (
	cellBlocks  = make(map[engine.CellType]string, len(cellColors))
	cursorBlock = make(map[engine.CellType]string, len(cellColors))

	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	noPathStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("87")).Padding(1, 4).Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("87"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 2).
			Margin(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blurredColor)

	selectedButtonStyle = buttonStyle.
				Background(lipgloss.Color("87")).
				Foreground(lipgloss.Color("0")).
				BorderForeground(lipgloss.Color("87"))

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1)

	tableRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

func init() {
	for cellType, color := range cellColors {
		cellBlocks[cellType] = lipgloss.NewStyle().Background(color).Render("  ")
		cursorBlock[cellType] = lipgloss.NewStyle().
			Background(color).
			Foreground(lipgloss.Color("201")).
			Bold(true).
			Render("<>")
	}
}

func renderCell(cellType engine.CellType, underCursor bool) string {
	if underCursor {
		return cursorBlock[cellType]
	}
	return cellBlocks[cellType]
}

// legend lists the colors for the status panel.
func legend() string {
	order := []engine.CellType{engine.Start, engine.End, engine.Wall, engine.Visited, engine.Path, engine.Empty}
	var rendered []string
	for _, cellType := range order {
		rendered = append(rendered, cellBlocks[cellType]+" "+cellType.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
