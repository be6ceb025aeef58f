package ui

import (
	"context"

	"github.com/Mshel/pathviz/internal/config"
	"github.com/Mshel/pathviz/internal/engine"
	"github.com/Mshel/pathviz/internal/history"
	"github.com/Mshel/pathviz/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GridScreen
	HistoryScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Open Grid, 1 for Run History
type SetupSubmitMsg struct {
	Rows    int
	Cols    int
	Pattern string // empty for no walls
}

type BackToMenuMsg struct{}

// RunHistory is the part of the history service the screens use.
type RunHistory interface {
	SaveRun(run history.Run) (history.Run, error)
	GetRecentRuns(limit, offset int) ([]history.Run, error)
	GetAlgorithmStats() ([]history.AlgorithmStats, error)
}

// Services are shared by every session. History and Patterns may be nil.
type Services struct {
	Config   config.Config
	Patterns *layout.PatternService
	History  RunHistory
}

type ControllerModel struct {
	CurrentScreen Screen
	Services      Services

	// ctx ends with the session that owns this controller
	ctx context.Context

	IntroModel   tea.Model
	SetupModel   tea.Model
	GridModel    tea.Model
	HistoryModel tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(ctx context.Context, services Services, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		ctx:           ctx,
		Services:      services,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewSetupModel(services, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GridScreen:
		if m.GridModel != nil {
			return m.GridModel.View()
		}
		return "Grid Loading..."
	case HistoryScreen:
		if m.HistoryModel != nil {
			return m.HistoryModel.View()
		}
		return "History Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- 1. Global Key Check ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		// q is a regular character while the setup form is typing
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.CurrentScreen != SetupScreen) {
			m.stopSearch()
			return m, tea.Quit
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, m.broadcast(msg)

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			m.SetupModel = NewSetupModel(m.Services, m.ScreenWidth, m.ScreenHeight)
			return m, m.SetupModel.Init()
		}
		m.CurrentScreen = HistoryScreen
		m.HistoryModel = NewHistoryModel(m.Services.History, m.ScreenWidth, m.ScreenHeight)
		return m, m.HistoryModel.Init()

	case SetupSubmitMsg:
		grid, err := engine.NewGrid(msg.Rows, msg.Cols)
		if err != nil {
			log.Error("Could not create grid", "rows", msg.Rows, "cols", msg.Cols, "error", err)
			return m, nil
		}

		if msg.Pattern != "" && m.Services.Patterns != nil {
			placed, err := m.Services.Patterns.Apply(m.ctx, grid, msg.Pattern)
			if err != nil {
				log.Warn("Wall pattern failed", "pattern", msg.Pattern, "error", err)
			} else {
				log.Info("Wall pattern applied", "pattern", msg.Pattern, "walls", placed)
			}
		}

		m.CurrentScreen = GridScreen
		m.GridModel = NewGridModel(m.ctx, grid, m.Services, m.ScreenWidth, m.ScreenHeight)
		return m, m.GridModel.Init()

	case BackToMenuMsg:
		m.stopSearch()
		m.GridModel = nil
		m.HistoryModel = nil
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	default:
		// --- 3. Message Delegation ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
		case GridScreen:
			if m.GridModel != nil {
				m.GridModel, cmd = m.GridModel.Update(msg)
			}
		case HistoryScreen:
			if m.HistoryModel != nil {
				m.HistoryModel, cmd = m.HistoryModel.Update(msg)
			}
		}
	}

	return m, cmd
}

// broadcast forwards a message to every live screen.
func (m *ControllerModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.IntroModel, cmd = m.IntroModel.Update(msg)
	cmds = append(cmds, cmd)
	m.SetupModel, cmd = m.SetupModel.Update(msg)
	cmds = append(cmds, cmd)
	if m.GridModel != nil {
		m.GridModel, cmd = m.GridModel.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.HistoryModel != nil {
		m.HistoryModel, cmd = m.HistoryModel.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m ControllerModel) stopSearch() {
	if grid, ok := m.GridModel.(GridModel); ok && grid.runner != nil {
		grid.runner.Stop()
	}
}
