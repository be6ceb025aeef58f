package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/pathviz/internal/engine"
	"github.com/Mshel/pathviz/internal/history"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const statusPanelWidth = 34

// runSavedMsg reports the outcome of writing a finished run to the history.
type runSavedMsg struct {
	run history.Run
	err error
}

// GridModel is the visualizer screen. It owns one grid and never touches it
// while a runner is in flight.
type GridModel struct {
	ctx       context.Context
	grid      *engine.Grid
	frame     [][]engine.CellType
	cursor    engine.Position
	algorithm engine.Algorithm
	runner    *SearchRunner

	status       string
	lastResult   *engine.SearchResult
	pathNotFound bool
	pendingReset bool

	services Services
	keys     gridKeyMap
	help     help.Model

	ScreenWidth  int
	ScreenHeight int
}

// NewGridModel builds the screen for grid. Runs started from it stop
// delivering frames once ctx is done.
func NewGridModel(ctx context.Context, grid *engine.Grid, services Services, screenWidth int, screenHeight int) GridModel {
	algorithm, err := engine.ParseAlgorithm(services.Config.Algorithm)
	if err != nil && services.Config.Algorithm != "" {
		log.Warn("Unknown default algorithm, using A*", "algorithm", services.Config.Algorithm)
	}

	helpModel := help.New()
	helpModel.Width = statusPanelWidth

	return GridModel{
		ctx:          ctx,
		grid:         grid,
		frame:        grid.Snapshot(),
		algorithm:    algorithm,
		status:       "Place the start cell",
		services:     services,
		keys:         gridKeys,
		help:         helpModel,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GridModel) Init() tea.Cmd { return nil }

// Running reports whether a search is in flight.
func (m GridModel) Running() bool { return m.runner != nil }

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case searchFrameMsg:
		m.frame = msg.frame
		if m.runner == nil {
			return m, nil
		}
		return m, waitForSearchUpdate(m.runner.UpdateChannel)

	case searchDoneMsg:
		return m.finishSearch(msg)

	case runSavedMsg:
		if msg.err != nil {
			log.Warn("Failed to record run", "error", msg.err)
		} else {
			log.Debug("Run recorded", "id", msg.run.ID, "algorithm", msg.run.Algorithm)
		}
		return m, nil

	case tea.MouseMsg:
		if m.Running() || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		var button engine.Button
		switch msg.Button {
		case tea.MouseButtonLeft:
			button = engine.LeftButton
		case tea.MouseButtonRight:
			button = engine.RightButton
		default:
			return m, nil
		}
		position, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.cursor = position
		m.place(position, button)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m GridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ShowHelp) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		return m, func() tea.Msg { return BackToMenuMsg{} }
	}

	if m.Running() {
		// everything else waits for the run, a reset is remembered
		if key.Matches(msg, m.keys.Reset) {
			m.pendingReset = true
			m.status = "Reset queued until the search finishes"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(engine.Position{X: 0, Y: -1})
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(engine.Position{X: 0, Y: 1})
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(engine.Position{X: -1, Y: 0})
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(engine.Position{X: 1, Y: 0})
	case key.Matches(msg, m.keys.Place):
		m.place(m.cursor, engine.LeftButton)
	case key.Matches(msg, m.keys.Erase):
		m.place(m.cursor, engine.RightButton)
	case key.Matches(msg, m.keys.Next):
		m.selectAlgorithm(engine.Algorithms[(int(m.algorithm)+1)%len(engine.Algorithms)])
	case key.Matches(msg, m.keys.AStar):
		m.selectAlgorithm(engine.AStar)
	case key.Matches(msg, m.keys.Dijkstra):
		m.selectAlgorithm(engine.Dijkstra)
	case key.Matches(msg, m.keys.BFS):
		m.selectAlgorithm(engine.BFS)
	case key.Matches(msg, m.keys.DFS):
		m.selectAlgorithm(engine.DFS)
	case key.Matches(msg, m.keys.Clear):
		m.grid.ClearSearch()
		m.frame = m.grid.Snapshot()
		m.lastResult = nil
		m.pathNotFound = false
		m.status = "Search cleared"
	case key.Matches(msg, m.keys.Reset):
		m.reset()
	case key.Matches(msg, m.keys.Run):
		return m.startSearch()
	}
	return m, nil
}

func (m *GridModel) moveCursor(offset engine.Position) {
	next := m.cursor.Add(offset)
	if m.grid.IsValid(next) {
		m.cursor = next
	}
}

func (m *GridModel) place(position engine.Position, button engine.Button) {
	m.grid.PlaceAt(position, button)
	m.frame = m.grid.Snapshot()
	m.status = m.phaseHint()
}

func (m *GridModel) selectAlgorithm(algorithm engine.Algorithm) {
	m.algorithm = algorithm
	m.pathNotFound = false
	m.status = algorithm.String() + " selected"
}

func (m *GridModel) reset() {
	m.grid.Reset()
	m.frame = m.grid.Snapshot()
	m.lastResult = nil
	m.pathNotFound = false
	m.pendingReset = false
	m.status = "Grid reset"
}

func (m GridModel) phaseHint() string {
	switch m.grid.Phase() {
	case engine.AwaitingStart:
		return "Place the start cell"
	case engine.AwaitingEnd:
		return "Place the end cell"
	default:
		return "Draw walls or press enter to search"
	}
}

func (m GridModel) startSearch() (tea.Model, tea.Cmd) {
	if m.grid.Phase() != engine.Ready {
		m.status = "Place start and end first"
		return m, nil
	}

	m.pathNotFound = false
	m.lastResult = nil
	m.status = "Searching with " + m.algorithm.String()
	m.runner = StartSearchRunner(m.ctx, m.grid, m.algorithm, m.services.Config.ExploreDelay, m.services.Config.PathDelay)
	return m, waitForSearchUpdate(m.runner.UpdateChannel)
}

func (m GridModel) finishSearch(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.runner = nil
	m.frame = msg.frame

	var cmd tea.Cmd
	switch {
	case msg.err == nil:
		m.lastResult = &msg.result
		m.status = fmt.Sprintf("Path found in %s", msg.elapsed.Round(time.Millisecond))
		cmd = m.recordRun(msg.result, msg.elapsed)
	case errors.Is(msg.err, engine.ErrNoPath):
		m.lastResult = &msg.result
		m.pathNotFound = true
		m.status = "Search exhausted the grid"
		cmd = m.recordRun(msg.result, msg.elapsed)
	case errors.Is(msg.err, engine.ErrMissingEndpoints):
		m.status = "Place start and end first"
	default:
		log.Error("Search failed", "algorithm", m.algorithm, "error", msg.err)
		m.status = "Search failed"
	}

	if m.pendingReset {
		m.reset()
	}
	return m, cmd
}

func (m GridModel) recordRun(result engine.SearchResult, elapsed time.Duration) tea.Cmd {
	store := m.services.History
	if store == nil {
		return nil
	}
	run := history.Run{
		Algorithm:     result.Algorithm.String(),
		Rows:          m.grid.Rows(),
		Cols:          m.grid.Cols(),
		Found:         result.Found,
		PathLength:    result.Length(),
		ExpandedCells: result.ExpandedCells,
		Duration:      elapsed,
	}
	return func() tea.Msg {
		saved, err := store.SaveRun(run)
		return runSavedMsg{run: saved, err: err}
	}
}

// cellAt maps a terminal coordinate to a grid cell. The map is drawn at the
// top left corner inside a one character border, cellWidth columns per cell.
func (m GridModel) cellAt(screenX, screenY int) (engine.Position, bool) {
	if screenX < 1 || screenY < 1 {
		return engine.Position{}, false
	}
	position := engine.Position{X: (screenX - 1) / cellWidth, Y: screenY - 1}
	return position, m.grid.IsValid(position)
}

func (m GridModel) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderMap()),
		statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel()),
	)
}

func (m GridModel) renderMap() string {
	var sb strings.Builder
	for y, row := range m.frame {
		for x, cellType := range row {
			sb.WriteString(renderCell(cellType, !m.Running() && m.cursor == engine.Position{X: x, Y: y}))
		}
		if y < len(m.frame)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m GridModel) renderStatusPanel() string {
	var sb strings.Builder

	sb.WriteString(headingStyle.Render("ALGORITHM"))
	sb.WriteString("\n")
	for i, algorithm := range engine.Algorithms {
		label := fmt.Sprintf("%d %s", i+1, algorithm)
		if algorithm == m.algorithm {
			sb.WriteString(focusedStyle.Render("▸ " + label))
		} else {
			sb.WriteString(blurredStyle.Render("  " + label))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("GRID"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Size: %dx%d\n", m.grid.Cols(), m.grid.Rows()))
	sb.WriteString(fmt.Sprintf("Cursor: (%d, %d)\n", m.cursor.X, m.cursor.Y))
	sb.WriteString(fmt.Sprintf("Phase: %s\n", m.grid.Phase()))

	sb.WriteString("\n")
	sb.WriteString(headingStyle.Render("STATUS"))
	sb.WriteString("\n")
	sb.WriteString(m.status)
	sb.WriteString("\n")
	if m.lastResult != nil {
		if m.lastResult.Found {
			sb.WriteString(successStyle.Render(fmt.Sprintf("Path length: %d", m.lastResult.Length())))
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Expanded: %d cells\n", m.lastResult.ExpandedCells))
	}
	if m.pathNotFound {
		sb.WriteString(noPathStyle.Render("No path found"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(legend())
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}
