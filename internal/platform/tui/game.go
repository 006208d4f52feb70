package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/poi5en/termfolio/internal/core"
	"github.com/poi5en/termfolio/internal/registry"
	"github.com/poi5en/termfolio/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// GameModel runs one game on a fixed tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	ticker     ticker
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	standalone bool
	quitting   bool
	exited     bool
	scoreSaved bool
}

// NewGameModel resets game for cfg. In standalone mode leaving the game
// quits the program; otherwise the session takes over.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, standalone bool, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		ticker:     newTicker(cfg.Interval()),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		player:     player,
		standalone: standalone,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return m.ticker.cmd()
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m = m.exit()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m = m.exit()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// restart starts a fresh run under a new tick generation.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.ticker = newTicker(m.config.Interval())
	return m, m.ticker.cmd()
}

// exit stops ticking and records the score of the abandoned run.
func (m GameModel) exit() GameModel {
	m.ticker = m.ticker.stopped()
	m.gameState = m.game.State()
	m.exited = true
	return m.saveScore()
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) GameModel {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.owns(msg) {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		// Restart starts a new ticker.
		m.ticker = m.ticker.stopped()
		m = m.saveScore()
	}
	return m, m.ticker.cmd()
}

// saveScore stores the run's score once. Failures are logged; the game
// carries on without persistence.
func (m GameModel) saveScore() GameModel {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return m
	}
	m.scoreSaved = true
	if m.store == nil {
		return m
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return m
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score)
	if m.gameState.Score > best {
		m.logger.Info("new high score", "game", m.game.ID(), "player", m.player, "score", m.gameState.Score, "previous", best)
	}
	return m
}

// saveScreenshot writes the current frame to ~/.termfolio/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".termfolio", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Exited reports whether the player left the game.
func (m GameModel) Exited() bool { return m.exited }

// IsQuitting reports whether the player asked to end the program.
func (m GameModel) IsQuitting() bool { return m.quitting }

// Score returns the score of the current or last run.
func (m GameModel) Score() int { return m.gameState.Score }
