package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	SpeedUp    key.Binding
	SlowDown   key.Binding
	Hazard     key.Binding
	Trap       key.Binding
	Food       key.Binding
	Manual     key.Binding
	Help       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SpeedUp, k.SlowDown, k.Restart},
		{k.Hazard, k.Trap, k.Food, k.Manual},
		{k.Help, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("→/d", "right"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "speed up"),
		),
		SlowDown: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "slow down"),
		),
		Hazard: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "hazard-avoiding autopilot"),
		),
		Trap: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trap-avoiding autopilot"),
		),
		Food: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "food-seeking autopilot"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual control"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "p"),
			key.WithHelp("h/p", "help & pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Command translates a key press into a game command. speedFactor is the
// configured interval multiplier for a speed-up; slowing down divides by it.
// ok is false for keys with no game binding.
func (k KeyMap) Command(msg tea.KeyMsg, speedFactor float64) (cmd snake.Command, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return snake.TurnTo{Dir: core.North}, true
	case key.Matches(msg, k.Down):
		return snake.TurnTo{Dir: core.South}, true
	case key.Matches(msg, k.Left):
		return snake.TurnTo{Dir: core.West}, true
	case key.Matches(msg, k.Right):
		return snake.TurnTo{Dir: core.East}, true
	case key.Matches(msg, k.SpeedUp):
		return snake.ChangeSpeed{Factor: speedFactor}, true
	case key.Matches(msg, k.SlowDown):
		if speedFactor <= 0 {
			return nil, false
		}
		return snake.ChangeSpeed{Factor: 1 / speedFactor}, true
	case key.Matches(msg, k.Hazard):
		return snake.SetAutopilot{Mode: core.HazardAvoiding}, true
	case key.Matches(msg, k.Trap):
		return snake.SetAutopilot{Mode: core.TrapAvoiding}, true
	case key.Matches(msg, k.Food):
		return snake.SetAutopilot{Mode: core.FoodSeeking}, true
	case key.Matches(msg, k.Manual):
		return snake.SetAutopilot{Mode: core.Manual}, true
	case key.Matches(msg, k.Help):
		return snake.ToggleHelp{}, true
	case key.Matches(msg, k.Restart):
		return snake.Restart{}, true
	}
	return nil, false
}

// PickerKeyMap defines the key bindings of the start-up mode picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultPickerKeyMap returns the default picker key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "q"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
