package starfall

import "github.com/vovakirdan/starfall/internal/engine"

// advanceLevel runs when the last collectible of a wave is taken.
func (s *Session) advanceLevel() {
	s.host.Audio.Play(engine.CuePowerUp)

	s.state.Level++
	s.host.HUD.SetText(engine.TextLevel, levelText(s.state.Level))

	s.refillWave()
	hazard := s.spawnHazard()

	s.logger.Info("wave cleared",
		"level", s.state.Level,
		"score", s.state.Score,
		"hazards", len(s.state.Hazards),
		"hazard_x", hazard.Position().X,
	)
}

// refillWave puts every collectible back at the top of its column, each
// with a new bounce.
func (s *Session) refillWave() {
	for i, star := range s.state.Collectibles {
		star.Enable(s.waveX(i), s.cfg.Wave.Y)
		star.SetBounce(s.waveBounce())
	}
}
