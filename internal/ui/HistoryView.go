package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Mshel/pathviz/internal/history"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const recentRunLimit = 15

type historyLoadedMsg struct {
	runs  []history.Run
	stats []history.AlgorithmStats
	err   error
}

// HistoryModel lists recent runs and per-algorithm averages.
type HistoryModel struct {
	store   RunHistory
	runs    []history.Run
	stats   []history.AlgorithmStats
	loading bool
	err     error

	ScreenWidth  int
	ScreenHeight int
}

func NewHistoryModel(store RunHistory, screenWidth int, screenHeight int) HistoryModel {
	return HistoryModel{
		store:        store,
		loading:      store != nil,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		runs, err := store.GetRecentRuns(recentRunLimit, 0)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		stats, err := store.GetAlgorithmStats()
		return historyLoadedMsg{runs: runs, stats: stats, err: err}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case historyLoadedMsg:
		m.loading = false
		m.runs = msg.runs
		m.stats = msg.stats
		m.err = msg.err
		if msg.err != nil {
			log.Error("Failed to load run history", "error", msg.err)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	var body string
	switch {
	case m.store == nil:
		body = faintStyle.Render("Run history is disabled.")
	case m.loading:
		body = faintStyle.Render("Loading...")
	case m.err != nil:
		body = errorStyle.Render("Could not load run history.")
	case len(m.runs) == 0:
		body = faintStyle.Render("No runs recorded yet.")
	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			m.renderStats(),
			"",
			m.renderRecentRuns(),
		)
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("RUN HISTORY")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to return to the menu.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center, title, body, instruction)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(finalContent),
	)
}

func (m HistoryModel) renderStats() string {
	var tableContent strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		tableHeaderStyle.Width(12).Render("Algorithm"),
		tableHeaderStyle.Width(7).Render("Runs"),
		tableHeaderStyle.Width(8).Render("Found"),
		tableHeaderStyle.Width(10).Render("Avg path"),
		tableHeaderStyle.Width(14).Render("Avg expanded"),
	)
	tableContent.WriteString(header + "\n")

	for _, stat := range m.stats {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			tableRowStyle.Width(12).Render(stat.Algorithm),
			tableRowStyle.Width(7).Render(strconv.Itoa(stat.Runs)),
			tableRowStyle.Width(8).Render(strconv.Itoa(stat.Found)),
			tableRowStyle.Width(10).Render(fmt.Sprintf("%.1f", stat.AvgPathLength)),
			tableRowStyle.Width(14).Render(fmt.Sprintf("%.1f", stat.AvgExpandedCells)),
		)
		tableContent.WriteString(tableBorderStyle.Render(row) + "\n")
	}

	return tableContent.String()
}

func (m HistoryModel) renderRecentRuns() string {
	var tableContent strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		tableHeaderStyle.Width(18).Render("When"),
		tableHeaderStyle.Width(10).Render("Algorithm"),
		tableHeaderStyle.Width(9).Render("Grid"),
		tableHeaderStyle.Width(8).Render("Path"),
		tableHeaderStyle.Width(10).Render("Expanded"),
		tableHeaderStyle.Width(10).Render("Time"),
	)
	tableContent.WriteString(header + "\n")

	for _, run := range m.runs {
		path := noPathStyle.Render("none")
		if run.Found {
			path = strconv.Itoa(run.PathLength)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			tableRowStyle.Width(18).Render(run.CreatedAt.Local().Format("Jan 02 15:04:05")),
			tableRowStyle.Width(10).Render(run.Algorithm),
			tableRowStyle.Width(9).Render(fmt.Sprintf("%dx%d", run.Cols, run.Rows)),
			tableRowStyle.Width(8).Render(path),
			tableRowStyle.Width(10).Render(strconv.Itoa(run.ExpandedCells)),
			tableRowStyle.Width(10).Render(run.Duration.Round(time.Millisecond).String()),
		)
		tableContent.WriteString(tableBorderStyle.Render(row) + "\n")
	}

	return tableContent.String()
}
