package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/storage"
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

var helpTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

// Model is the Bubble Tea model for a running snake game.
type Model struct {
	game        *snake.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	speedFactor float64
	lastTick    time.Time
	savedRun    uuid.UUID // Last run written to the store
	frame       string
	quitting    bool
}

// NewModel creates a model that drives game. store may be nil, in which case
// finished runs are not recorded.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, speedFactor float64, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = true

	m := Model{
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:       store,
		logger:      logger,
		config:      cfg,
		keys:        DefaultKeyMap(),
		help:        h,
		speedFactor: speedFactor,
	}
	m.redraw()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.redraw()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg, m.speedFactor); ok {
		m.game.Handle(cmd)
	} else {
		m.game.Handle(snake.Resume{})
	}
	return m, nil
}

// handleTick advances the game clock by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.game.Update(dt)
	m.recordRun()
	if m.game.Dirty() {
		m.redraw()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run once.
func (m *Model) recordRun() {
	snap := m.game.Snapshot()
	if !snap.State.Finished() || snap.RunID == m.savedRun {
		return
	}
	m.savedRun = snap.RunID
	if m.store == nil || snap.Score == 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:   snap.RunID,
		Mode:    snap.Mode.String(),
		Outcome: snap.State.String(),
		Score:   snap.Score,
		Width:   snap.Width,
		Height:  snap.Height,
		Rounds:  int64(snap.Round),
	})
	switch {
	case errors.Is(err, storage.ErrDuplicateRun):
	case err != nil:
		m.logger.Warn("cannot save score", "err", err)
	default:
		m.logger.Debug("score saved", "run", snap.RunID, "score", snap.Score)
	}
}

func (m *Model) redraw() {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
	m.game.ClearDirty()
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.game.Snapshot().ShowHelp {
		return m.frame
	}

	box := helpBoxStyle.Render(helpTitleStyle.Render("Snake") + "\n\n" +
		m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
		"Press any key to continue")
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the Bubble Tea program for game.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, speedFactor float64, logger *log.Logger) error {
	model := NewModel(game, store, cfg, speedFactor, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
