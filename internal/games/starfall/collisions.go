package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/engine"
)

// hitHazard ends the session. Repeated contacts are ignored.
func (s *Session) hitHazard(player, hazard engine.Body) {
	if s.state.Status != StatusRunning {
		return
	}
	s.logger.Info("hit hazard", "hazard", hazard.ID(), "score", s.state.Score, "level", s.state.Level)
	s.gameOver()
}

// collect scores one collectible. Clearing the wave advances the level in
// the same call.
func (s *Session) collect(player, star engine.Body) {
	if s.state.Status != StatusRunning || !star.Active() {
		return
	}
	star.Disable()

	s.state.Score += s.cfg.Scoring.CollectPoints
	s.host.HUD.SetText(engine.TextScore, scoreText(s.state.Score))
	s.host.Audio.Play(engine.CueCollect)

	if s.ActiveCollectibles() == 0 {
		s.advanceLevel()
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func levelText(level int) string {
	return fmt.Sprintf("Level: %d", level)
}
