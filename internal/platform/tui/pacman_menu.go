package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

// PacmanSelection holds the user's selection from the Pac-Man menu.
type PacmanSelection struct {
	Preset     config.DifficultyPreset
	StartRound int // -1 = preset default, 0+ = specific round
}

// PacmanModeModel lets users choose difficulty and starting round.
type PacmanModeModel struct {
	cursor        int
	roundCursor   int
	inRoundSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     PacmanSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewPacmanModeModel creates a new Pac-Man mode selection model.
func NewPacmanModeModel(width, height int) PacmanModeModel {
	return PacmanModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m PacmanModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PacmanModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PacmanModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inRoundSelect {
		return m.handleRoundSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m PacmanModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // 4 options: New Game, Easy, Hard, Select Round
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // New Game
			m.choosing = false
			m.selection = PacmanSelection{Preset: config.DifficultyNormal, StartRound: -1}
			return m, tea.Quit
		case 1: // Easy
			m.choosing = false
			m.selection = PacmanSelection{Preset: config.DifficultyEasy, StartRound: -1}
			return m, tea.Quit
		case 2: // Hard
			m.choosing = false
			m.selection = PacmanSelection{Preset: config.DifficultyHard, StartRound: -1}
			return m, tea.Quit
		case 3: // Select Round
			m.inRoundSelect = true
			m.roundCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, nil
	}

	return m, nil
}

func (m PacmanModeModel) handleRoundSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	roundCount := pacman.StartRoundCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.roundCursor > 0 {
			m.roundCursor--
		}
	case MenuActionDown:
		if m.roundCursor < roundCount-1 {
			m.roundCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = PacmanSelection{
			Preset:     config.DifficultyNormal,
			StartRound: m.roundCursor,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inRoundSelect = false
	}

	return m, nil
}

// View renders the mode/round selection.
func (m PacmanModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inRoundSelect {
		return m.viewRoundSelect()
	}
	return m.viewModeSelect()
}

func (m PacmanModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P A C - M A N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"New Game",
		"Easy Game (8 lives)",
		"Hard Game (3 lives)",
		"Select Starting Round...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m PacmanModeModel) viewRoundSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STARTING ROUND", m.width))
	b.WriteString("\n\n")

	for i := 0; i < pacman.StartRoundCount(); i++ {
		cursor := "  "
		if i == m.roundCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, pacman.StartRoundLabel(i))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PacmanModeModel) Selected() *PacmanSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m PacmanModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m PacmanModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PacmanModeModel) WantsBack() bool {
	return m.back
}

// RunPacmanModeSelector runs the Pac-Man mode selection and returns the selection.
func RunPacmanModeSelector(cfg core.RuntimeConfig) (*PacmanSelection, core.RuntimeConfig, error) {
	model := NewPacmanModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PacmanModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
