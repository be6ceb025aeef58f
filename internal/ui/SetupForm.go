package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/pathviz/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noPattern = "none"

const (
	focusRows = iota
	focusCols
	focusPattern
	focusSubmit
	focusCount
)

var (
	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Foreground(focusedColor)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor)
)

// SetupModel is the form that sizes a new grid and picks its wall pattern.
type SetupModel struct {
	rowsInput      textinput.Model
	colsInput      textinput.Model
	patternOptions []string
	patternIndex   int
	focusIndex     int
	err            string
	width          int
	height         int
}

func newNumberInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Width = 5
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func NewSetupModel(services Services, w, h int) SetupModel {
	rows := services.Config.Rows
	if rows <= 0 {
		rows = config.DefaultRows
	}
	cols := services.Config.Cols
	if cols <= 0 {
		cols = config.DefaultCols
	}

	rowsInput := newNumberInput("rows", rows)
	rowsInput.Prompt = "Rows: "
	colsInput := newNumberInput("columns", cols)
	colsInput.Prompt = "Columns: "

	patternOptions := []string{noPattern}
	if services.Patterns != nil {
		patternOptions = append(patternOptions, services.Patterns.Names()...)
	}

	m := SetupModel{
		rowsInput:      rowsInput,
		colsInput:      colsInput,
		patternOptions: patternOptions,
		width:          w,
		height:         h,
	}
	m.setFocus(focusRows)
	return m
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) setFocus(index int) {
	m.focusIndex = (index + focusCount) % focusCount
	m.rowsInput.Blur()
	m.colsInput.Blur()
	m.rowsInput.PromptStyle, m.rowsInput.TextStyle = blurredStyle, blurredStyle
	m.colsInput.PromptStyle, m.colsInput.TextStyle = blurredStyle, blurredStyle

	switch m.focusIndex {
	case focusRows:
		m.rowsInput.Focus()
		m.rowsInput.PromptStyle, m.rowsInput.TextStyle = focusedStyle, focusedStyle
	case focusCols:
		m.colsInput.Focus()
		m.colsInput.PromptStyle, m.colsInput.TextStyle = focusedStyle, focusedStyle
	}
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		case "tab", "down":
			m.setFocus(m.focusIndex + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focusIndex - 1)
			return m, nil
		case "enter":
			if m.focusIndex != focusSubmit {
				m.setFocus(m.focusIndex + 1)
				return m, nil
			}
			submit, err := m.submission()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return submit }
		}

		if m.focusIndex == focusPattern {
			switch msg.String() {
			case "left", "h":
				m.patternIndex = (m.patternIndex - 1 + len(m.patternOptions)) % len(m.patternOptions)
			case "right", "l":
				m.patternIndex = (m.patternIndex + 1) % len(m.patternOptions)
			}
			return m, nil
		}

		// Remaining keys go to the focused text input
		var cmd tea.Cmd
		switch m.focusIndex {
		case focusRows:
			m.rowsInput, cmd = m.rowsInput.Update(msg)
		case focusCols:
			m.colsInput, cmd = m.colsInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// submission validates the form.
func (m SetupModel) submission() (SetupSubmitMsg, error) {
	rows, err := parseDimension("rows", m.rowsInput.Value(), config.MaxRows)
	if err != nil {
		return SetupSubmitMsg{}, err
	}
	cols, err := parseDimension("columns", m.colsInput.Value(), config.MaxCols)
	if err != nil {
		return SetupSubmitMsg{}, err
	}

	pattern := m.patternOptions[m.patternIndex]
	if pattern == noPattern {
		pattern = ""
	}
	return SetupSubmitMsg{Rows: rows, Cols: cols, Pattern: pattern}, nil
}

func parseDimension(name, value string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if n < 1 || n > limit {
		return 0, fmt.Errorf("%s must be between 1 and %d", name, limit)
	}
	return n, nil
}

func (m SetupModel) View() string {
	// Helper to center content within the terminal width
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(titleStyle.Render("NEW GRID")))
	b.WriteString("\n\n")
	b.WriteString(center(m.rowsInput.View()))
	b.WriteString("\n")
	b.WriteString(center(m.colsInput.View()))
	b.WriteString("\n\n")

	patternPrompt := "Wall pattern (use arrows)"
	patternValue := fmt.Sprintf("◀ %s ▶", m.patternOptions[m.patternIndex])
	if m.focusIndex == focusPattern {
		b.WriteString(center(focusedStyle.Render(patternPrompt)))
		b.WriteString("\n")
		b.WriteString(center(focusedStyle.Render(patternValue)))
	} else {
		b.WriteString(center(blurredStyle.Render(patternPrompt)))
		b.WriteString("\n")
		b.WriteString(center(blurredStyle.Render(patternValue)))
	}
	b.WriteString("\n\n")

	submitText := "Create"
	if m.focusIndex == focusSubmit {
		b.WriteString(center(submitButtonStyle.Render(submitText)))
	} else {
		b.WriteString(center(blurredButtonStyle.Render(submitText)))
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(center(errorStyle.Render(m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(faintStyle.Render("(tab/shift+tab to navigate, enter to confirm, esc for menu, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
