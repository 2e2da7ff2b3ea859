package starfall

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
	"github.com/vovakirdan/starfall/internal/physics"
	"github.com/vovakirdan/starfall/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "starfall"

// RestartLabel is the clickable restart affordance in the HUD.
const RestartLabel = "[Restart]"

// configPath stores the custom config path set via CLI
var configPath string

var (
	gameLogger = log.New(io.Discard)
	bellWriter io.Writer
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// SetBell turns the terminal bell on and rings it on w. With no writer set,
// audio.bell in the config rings it on stderr.
func SetBell(w io.Writer) {
	bellWriter = w
}

// keyState is the engine.Input view of the held actions of the last frame.
type keyState struct {
	down [3]bool
}

func (k *keyState) IsKeyDown(key engine.Key) bool {
	if key < 0 || int(key) >= len(k.down) {
		return false
	}
	return k.down[key]
}

func (k *keyState) update(in core.InputFrame) {
	k.down[engine.KeyLeft] = in.Has(core.ActionLeft)
	k.down[engine.KeyRight] = in.Has(core.ActionRight)
	k.down[engine.KeyUp] = in.Has(core.ActionUp)
}

// hudText keeps the latest text of every HUD surface.
type hudText map[engine.TextID]string

func (h hudText) SetText(id engine.TextID, text string) {
	h[id] = text
}

// Game adapts a Session to registry.Game. It owns the physics world, the
// audio mixer and the HUD the session acts on.
type Game struct {
	cfg     config.StarfallConfig
	next    *config.StarfallConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	events  *engine.Dispatcher
	world   *physics.World
	mixer   *audio.Mixer
	hud     hudText
	keys    *keyState
	session *Session

	hover bool
}

// New creates a new Starfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset builds the engine and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.logger = gameLogger

	starCfg, err := config.LoadStarfall(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
	}
	g.cfg = starCfg
	g.next = nil

	g.events = engine.NewDispatcher()
	g.world = physics.NewWorld(physicsConfig(starCfg), g.events, g.logger.WithPrefix("physics"))
	if g.mixer != nil {
		g.mixer.StopAll()
	}
	g.mixer = audio.NewMixer(g.mixerOptions())
	g.hud = make(hudText)
	g.keys = &keyState{}
	g.hover = false

	host := engine.Host{
		World:  g.world,
		Events: g.events,
		Input:  g.keys,
		Audio:  g.mixer,
		HUD:    g.hud,
	}
	g.session = NewSession(host, starCfg, engine.NewSeededRandom(cfg.Seed), g.logger)
	g.session.Start()
}

func (g *Game) mixerOptions() audio.Options {
	opts := audio.Options{
		BackgroundVolume: g.cfg.Audio.BackgroundVolume,
		Logger:           g.logger.WithPrefix("audio"),
	}
	switch {
	case bellWriter != nil:
		opts.Bell = bellWriter
	case g.cfg.Audio.Bell:
		opts.Bell = os.Stderr
	}
	return opts
}

func physicsConfig(cfg config.StarfallConfig) physics.Config {
	size := func(s config.SpriteSize) core.Vec {
		return core.Vec{X: s.Width, Y: s.Height}
	}
	return physics.Config{
		Width:   cfg.Field.Width,
		Height:  cfg.Field.Height,
		Gravity: cfg.Physics.Gravity,
		Sizes: map[engine.Sprite]core.Vec{
			engine.SpriteGround: size(cfg.Sprites.Ground),
			engine.SpriteStar:   size(cfg.Sprites.Star),
			engine.SpriteDude:   size(cfg.Sprites.Dude),
			engine.SpriteBomb:   size(cfg.Sprites.Bomb),
		},
	}
}

// ApplyConfig queues cfg for the next restart. The running session keeps
// its tuning.
func (g *Game) ApplyConfig(cfg config.StarfallConfig) {
	g.next = &cfg
	if g.logger != nil {
		g.logger.Info("config queued for next restart")
	}
}

// Resize adapts rendering to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restart := g.restartRect()
	g.hover = in.Pointer.Valid && restart.Contains(in.Pointer.X, in.Pointer.Y)

	restarted := false
	if in.Has(core.ActionRestart) || (g.hover && in.Pointer.Clicked) {
		g.restart()
		restarted = true
	}

	g.keys.update(in)
	dt := g.runtime.TickSeconds()
	g.world.Step(dt)
	g.mixer.Advance(dt)

	return core.StepResult{State: g.State(), Restarted: restarted}
}

func (g *Game) restart() {
	if g.next != nil {
		g.cfg = *g.next
		g.next = nil
		g.world.Configure(physicsConfig(g.cfg))
		g.mixer.SetBackgroundVolume(g.cfg.Audio.BackgroundVolume)
		g.session.SetConfig(g.cfg)
		g.logger.Info("config applied")
	}
	g.session.Restart()
}

// restartRect is the screen area of the restart label.
func (g *Game) restartRect() core.Rect {
	w := len(RestartLabel)
	return core.NewRect(g.runtime.ScreenW-w-1, 0, w, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Over(),
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Text returns the current text of a HUD surface.
func (g *Game) Text(id engine.TextID) string {
	return g.hud[id]
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
