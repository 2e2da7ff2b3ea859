package starfall

import "github.com/vovakirdan/starfall/internal/engine"

// Start sets up the first session.
func (s *Session) Start() {
	s.reset()
	s.logger.Info("session started", "collectibles", len(s.state.Collectibles))
}

// Restart discards the session and builds a new one. It is valid in any
// status.
func (s *Session) Restart() {
	s.stopMusic()
	s.reset()
	s.logger.Info("session restarted")
}

func (s *Session) reset() {
	s.host.World.Reset()
	s.host.Events.Reset()

	s.state = State{Level: 1, Status: StatusRunning}
	s.setup()

	s.music = s.host.Audio.Play(engine.CueBackground)
	s.host.HUD.SetText(engine.TextScore, scoreText(s.state.Score))
	s.host.HUD.SetText(engine.TextLevel, levelText(s.state.Level))
}

// gameOver freezes the field. Score, level and hazards stay for display.
func (s *Session) gameOver() {
	s.state.Status = StatusOver

	s.host.World.PausePhysics()
	s.stopMusic()

	player := s.state.Player
	player.SetTint(engine.TintDeath)
	player.PlayAnimation(engine.AnimTurn, false)
	s.host.Audio.Play(engine.CueDeath)

	s.logger.Info("game over", "score", s.state.Score, "level", s.state.Level)
}

func (s *Session) stopMusic() {
	s.host.Audio.Stop(s.music)
	s.music = engine.NoHandle
}
