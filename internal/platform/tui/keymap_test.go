package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()
	factor := 0.8

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want snake.Command
	}{
		{"w", runeKey("w"), snake.TurnTo{Dir: core.North}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, snake.TurnTo{Dir: core.North}},
		{"s", runeKey("s"), snake.TurnTo{Dir: core.South}},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, snake.TurnTo{Dir: core.South}},
		{"a", runeKey("a"), snake.TurnTo{Dir: core.West}},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, snake.TurnTo{Dir: core.West}},
		{"d", runeKey("d"), snake.TurnTo{Dir: core.East}},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, snake.TurnTo{Dir: core.East}},
		{"e", runeKey("e"), snake.ChangeSpeed{Factor: factor}},
		{"q", runeKey("q"), snake.ChangeSpeed{Factor: 1 / factor}},
		{"f", runeKey("f"), snake.SetAutopilot{Mode: core.HazardAvoiding}},
		{"t", runeKey("t"), snake.SetAutopilot{Mode: core.TrapAvoiding}},
		{"g", runeKey("g"), snake.SetAutopilot{Mode: core.FoodSeeking}},
		{"m", runeKey("m"), snake.SetAutopilot{Mode: core.Manual}},
		{"h", runeKey("h"), snake.ToggleHelp{}},
		{"p", runeKey("p"), snake.ToggleHelp{}},
		{"r", runeKey("r"), snake.Restart{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Command(tt.msg, factor)
			if !ok {
				t.Fatalf("Command(%q) not bound", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Command(%q) = %#v, expected %#v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapUnbound(t *testing.T) {
	keys := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey("x"), runeKey(" "), {Type: tea.KeyEnter}, {Type: tea.KeyEsc}} {
		if cmd, ok := keys.Command(msg, 0.8); ok {
			t.Errorf("Command(%q) = %#v, expected no binding", msg.String(), cmd)
		}
	}
}

func TestKeyMapSlowDownNeedsFactor(t *testing.T) {
	if _, ok := DefaultKeyMap().Command(runeKey("q"), 0); ok {
		t.Error("slow down with a zero factor should not produce a command")
	}
}

func TestKeyMapQuit(t *testing.T) {
	keys := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		if !key.Matches(msg, keys.Quit) {
			t.Errorf("%q should quit", msg.String())
		}
	}
	if key.Matches(runeKey("q"), keys.Quit) {
		t.Error("q slows the game down and must not quit")
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 14 {
		t.Errorf("FullHelp lists %d bindings, expected 14", n)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
