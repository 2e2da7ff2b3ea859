package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/registry"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize without
// restarting.
type Resizer interface {
	Resize(w, h int)
}

// ConfigApplier is implemented by games that accept reloaded tuning.
type ConfigApplier interface {
	ApplyConfig(cfg config.StarfallConfig)
}

// Options configures a play session.
type Options struct {
	// HoldTicks is how long a key stays held after its last press.
	HoldTicks int
	// Watch reloads this config file on change when non-nil.
	Watch  *config.Watcher
	Logger *log.Logger
}

// ConfigChangedMsg is sent when the watched config file changes.
type ConfigChangedMsg struct {
	Path string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	hold       *KeyHold
	watch      *config.Watcher
	logger     *log.Logger
	tick       int
	sessionID  uuid.UUID
	quitting   bool
	back       bool // Whether the player asked to return to the menu
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		hold:       NewKeyHold(opts.HoldTicks),
		watch:      opts.Watch,
		logger:     opts.Logger,
		sessionID:  uuid.New(),
	}
}

// Init starts the tick loop and the config watch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watch != nil {
		cmds = append(cmds, waitForConfig(m.watch))
	}
	return tea.Batch(cmds...)
}

// Start resets the game for the first session.
func (m *Model) Start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("session started", "game", m.game.ID(), "session", m.sessionID, "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight, core.ActionUp:
		m.hold.Press(action, m.tick)
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleMouse tracks the pointer for the restart affordance.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Pointer.X = msg.X
	m.inputFrame.Pointer.Y = msg.Y
	m.inputFrame.Pointer.Valid = true
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Pointer.Clicked = true
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame, m.tick)
	m.tick++

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Restarted {
		m.sessionID = uuid.New()
		m.scoreSaved = false
		m.hold.Reset()
		m.logger.Info("session restarted", "session", m.sessionID)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished session. Failures are logged and play
// continues.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.Score{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Level:     m.gameState.Level,
		SessionID: m.sessionID,
	})
	if err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Info("score saved", "score", m.gameState.Score, "level", m.gameState.Level, "session", m.sessionID)
}

// handleConfigChanged reloads the watched file and hands it to the game.
func (m Model) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	cfg, err := config.LoadStarfall(msg.Path)
	if err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "err", err)
	} else if applier, ok := m.game.(ConfigApplier); ok {
		applier.ApplyConfig(cfg)
		m.hold = NewKeyHold(cfg.Input.HoldTicks)
		m.logger.Info("config reloaded", "path", msg.Path)
	}
	return m, waitForConfig(m.watch)
}

// waitForConfig blocks on the watcher until the next change.
func waitForConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.Events
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Path: path}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".starfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsMenu reports whether the player left with the back key.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, store, cfg, opts)
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Hover and click on the restart label
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsMenu(), nil
}
