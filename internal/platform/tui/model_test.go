package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/storage"
)

const testInterval = 100 * time.Millisecond

// testRuntime ticks once per move interval.
var testRuntime = core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 10}

func newTestModel(t *testing.T, w, h int, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = w
	cfg.Grid.Height = h
	cfg.Timing.MoveInterval = testInterval

	g, err := snake.New(cfg, snake.WithSeed(1))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewModel(g, store, testRuntime, 0.8, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelInitialFrame(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)

	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("initial frame should show the HUD, got:\n%s", m.View())
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)
	start := time.Now()

	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.game.Snapshot().Round; got != 1 {
		t.Fatalf("Round = %d after the first tick, expected 1", got)
	}

	// Half an interval of wall time is not enough for another move
	m, _ = update(t, m, TickMsg(start.Add(testInterval/2)))
	if got := m.game.Snapshot().Round; got != 1 {
		t.Errorf("Round = %d, expected 1", got)
	}
	m, _ = update(t, m, TickMsg(start.Add(testInterval)))
	if got := m.game.Snapshot().Round; got != 2 {
		t.Errorf("Round = %d, expected 2", got)
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	// 4x1: the first move eats the only food and fills the board
	m := newTestModel(t, 4, 1, store)
	start := time.Now()
	m, _ = update(t, m, TickMsg(start))
	if m.game.State() != snake.StateWon {
		t.Fatalf("State = %v, expected won", m.game.State())
	}
	update(t, m, TickMsg(start.Add(testInterval)))

	scores, err := store.TopScores("manual", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 1 || got.Outcome != "won" || got.Width != 4 || got.Height != 1 || got.Rounds != 1 {
		t.Errorf("unexpected saved run: %+v", got)
	}
	if got.RunID != m.game.RunID() {
		t.Errorf("RunID = %s, expected %s", got.RunID, m.game.RunID())
	}
}

func TestModelHelpPausesAndAnyKeyResumes(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)
	start := time.Now()

	m, _ = update(t, m, runeKey("h"))
	m, _ = update(t, m, TickMsg(start))
	if m.game.State() != snake.StatePaused {
		t.Fatalf("State = %v, expected paused", m.game.State())
	}
	if !strings.Contains(m.View(), "speed up") {
		t.Errorf("help view should list the key bindings, got:\n%s", m.View())
	}

	m, _ = update(t, m, runeKey("x"))
	m, _ = update(t, m, TickMsg(start.Add(time.Millisecond)))
	if m.game.State() != snake.StatePlaying {
		t.Errorf("State = %v, expected an unbound key to resume", m.game.State())
	}
}

func TestModelAutopilotKey(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)

	m, _ = update(t, m, runeKey("t"))
	m, _ = update(t, m, TickMsg(time.Now()))
	if got := m.game.Mode().String(); got != "trap" {
		t.Errorf("Mode = %s, expected trap", got)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 6})
	if m.screen.Width() != 30 || m.screen.Height() != 6 {
		t.Fatalf("screen = %dx%d, expected 30x6", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected the too-small notice, got:\n%s", m.View())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 20, 20, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}
