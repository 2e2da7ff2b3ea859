// Package starfall implements the gameplay core of a single-screen platformer:
// the player runs and jumps between platforms collecting a wave of stars,
// every cleared wave raises the level and drops one more bomb, and touching
// a bomb ends the session until it is restarted.
//
// The core owns no physics, audio or input of its own. It reacts to events
// delivered by an engine.Dispatcher and acts on the engine through the
// interfaces bundled in engine.Host.
package starfall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/engine"
)

// Status is the session state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is everything a session owns. It is replaced wholesale on restart.
type State struct {
	Score  int
	Level  int
	Status Status

	Player       engine.Body
	Platforms    []engine.Body
	Collectibles []engine.Body
	Hazards      []engine.Body
}

// Session runs one playthrough at a time on top of an engine host.
type Session struct {
	host   engine.Host
	cfg    config.StarfallConfig
	rng    engine.RandomSource
	logger *log.Logger

	state State
	music engine.Handle
}

// NewSession creates a session. Call Start before the first tick.
func NewSession(host engine.Host, cfg config.StarfallConfig, rng engine.RandomSource, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		host:   host,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
	}
}

// State returns the current session state. The body slices are shared with
// the session and must not be modified.
func (s *Session) State() State {
	return s.state
}

func (s *Session) Score() int { return s.state.Score }
func (s *Session) Level() int { return s.state.Level }
func (s *Session) Status() Status { return s.state.Status }
func (s *Session) Over() bool { return s.state.Status == StatusOver }
func (s *Session) Player() engine.Body { return s.state.Player }

// ActiveCollectibles counts the collectibles of the current wave still in play.
func (s *Session) ActiveCollectibles() int {
	n := 0
	for _, c := range s.state.Collectibles {
		if c.Active() {
			n++
		}
	}
	return n
}

// SetConfig replaces the tuning used from the next restart on.
func (s *Session) SetConfig(cfg config.StarfallConfig) {
	s.cfg = cfg
}
