package starfall

import "github.com/vovakirdan/starfall/internal/engine"

// applyInput maps the held keys onto the player once per tick.
// Left wins over right; releasing both stops the run. A jump is an impulse
// and only fires when the player stands on something.
func (s *Session) applyInput() {
	if s.state.Status != StatusRunning || s.state.Player == nil {
		return
	}
	player := s.state.Player
	in := s.host.Input

	switch {
	case in.IsKeyDown(engine.KeyLeft):
		player.SetVelocityX(-s.cfg.Player.RunSpeed)
		player.PlayAnimation(engine.AnimLeft, true)
	case in.IsKeyDown(engine.KeyRight):
		player.SetVelocityX(s.cfg.Player.RunSpeed)
		player.PlayAnimation(engine.AnimRight, true)
	default:
		player.SetVelocityX(0)
		player.PlayAnimation(engine.AnimTurn, false)
	}

	if in.IsKeyDown(engine.KeyUp) && player.Grounded() {
		player.SetVelocityY(-s.cfg.Player.JumpSpeed)
	}
}
