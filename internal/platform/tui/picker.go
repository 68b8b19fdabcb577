package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	snakecore "github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// Selection holds the choices made in the picker.
type Selection struct {
	Mode       snakecore.Mode
	Difficulty config.DifficultyPreset
}

// PickerModel lets users choose who steers and how fast the game runs
// before it starts.
type PickerModel struct {
	modeCursor       int
	difficultyCursor int
	inDifficulty     bool
	width            int
	height           int
	keys             PickerKeyMap
	help             help.Model
	selection        Selection
	choosing         bool
	quitting         bool
}

// NewPickerModel creates a picker with the cursors on the given defaults.
func NewPickerModel(width, height int, mode snakecore.Mode, difficulty config.DifficultyPreset) PickerModel {
	m := PickerModel{
		width:            width,
		height:           height,
		keys:             DefaultPickerKeyMap(),
		help:             help.New(),
		choosing:         true,
		difficultyCursor: 1,
	}
	for i, md := range snakecore.Modes {
		if md == mode {
			m.modeCursor = i
		}
	}
	for i, d := range difficulties {
		if d == difficulty {
			m.difficultyCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor, count := &m.modeCursor, len(snakecore.Modes)
	if m.inDifficulty {
		cursor, count = &m.difficultyCursor, len(difficulties)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if *cursor < count-1 {
			*cursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.inDifficulty = false
	case key.Matches(msg, m.keys.Select):
		if !m.inDifficulty {
			m.inDifficulty = true
			return m, nil
		}
		m.choosing = false
		m.selection = Selection{
			Mode:       snakecore.Modes[m.modeCursor],
			Difficulty: difficulties[m.difficultyCursor],
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current step.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")

	if m.inDifficulty {
		b.WriteString(centerText("Select speed:", m.width))
		b.WriteString("\n\n")
		for i, d := range difficulties {
			b.WriteString(centerText(pickerLine(i == m.difficultyCursor, string(d)), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("Select autopilot:", m.width))
		b.WriteString("\n\n")
		for i, md := range snakecore.Modes {
			line := fmt.Sprintf("%-7s %s", md, md.Description())
			b.WriteString(centerText(pickerLine(i == m.modeCursor, line), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

func pickerLine(selected bool, text string) string {
	if selected {
		return "> " + text
	}
	return "  " + text
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// Selected returns the selection, or nil if still choosing.
func (m PickerModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker runs the picker and returns the selection, or nil if the user
// quit.
func RunPicker(cfg core.RuntimeConfig, mode snakecore.Mode, difficulty config.DifficultyPreset) (*Selection, error) {
	model := NewPickerModel(cfg.ScreenW, cfg.ScreenH, mode, difficulty)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
