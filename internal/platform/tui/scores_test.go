package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/torus-snake/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []struct {
		mode  string
		score int
	}{{"trap", 40}, {"trap", 12}, {"food", 25}}
	for _, r := range runs {
		_, err := store.SaveScore(storage.ScoreEntry{
			RunID:   uuid.New(),
			Mode:    r.mode,
			Outcome: "game_over",
			Score:   r.score,
			Width:   20,
			Height:  20,
		})
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	return store
}

func TestScoresModelFiltersByMode(t *testing.T) {
	m := NewScoresModel(seededStore(t), "trap", 120, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 40 {
		t.Fatalf("trap tab scores = %+v", m.scores)
	}

	// Tabs run all, manual, food, hazard, trap; tab wraps to all
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoresModel)
	if m.tabs[m.tabCursor] != allModes || len(m.scores) != 3 {
		t.Errorf("expected the all tab with 3 runs, got %q with %d", m.tabs[m.tabCursor], len(m.scores))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoresModel)
	if m.tabs[m.tabCursor] != "trap" {
		t.Errorf("shift+tab should wrap back to trap, got %q", m.tabs[m.tabCursor])
	}
}

func TestScoresModelView(t *testing.T) {
	m := NewScoresModel(seededStore(t), "", 120, 30)

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Stats", "runs 2", "20x20"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestScoresModelEmpty(t *testing.T) {
	m := NewScoresModel(nil, "manual", 60, 20)

	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("expected the empty message, got:\n%s", m.View())
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || next.(ScoresModel).View() != "" {
		t.Error("q should quit the score table")
	}
}
