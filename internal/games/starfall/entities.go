package starfall

import (
	"github.com/vovakirdan/starfall/internal/engine"
)

// setup builds the fixed layout of a fresh session and registers the
// reactions that drive it. The world and dispatcher must already be empty.
func (s *Session) setup() {
	world := s.host.World

	s.state.Platforms = s.state.Platforms[:0]
	for _, p := range s.cfg.Platforms {
		s.state.Platforms = append(s.state.Platforms,
			world.CreateStatic(engine.GroupPlatform, p.X, p.Y, engine.SpriteGround, p.Scale))
	}

	player := world.CreateDynamic(engine.GroupPlayer, s.cfg.Player.SpawnX, s.cfg.Player.SpawnY, engine.SpriteDude)
	player.SetBounce(s.cfg.Player.Bounce)
	player.SetCollideWorldBounds(true)
	s.state.Player = player

	s.state.Hazards = nil
	s.state.Collectibles = make([]engine.Body, 0, s.cfg.Wave.Count)
	for i := 0; i < s.cfg.Wave.Count; i++ {
		star := world.CreateDynamic(engine.GroupCollectible, s.waveX(i), s.cfg.Wave.Y, engine.SpriteStar)
		star.SetBounce(s.waveBounce())
		s.state.Collectibles = append(s.state.Collectibles, star)
	}

	world.Collide(engine.GroupPlayer, engine.GroupPlatform)
	world.Collide(engine.GroupCollectible, engine.GroupPlatform)
	world.Collide(engine.GroupHazard, engine.GroupPlatform)
	world.Collide(engine.GroupPlayer, engine.GroupHazard)

	events := s.host.Events
	events.OnTick(s.applyInput)
	events.OnContact(engine.GroupPlayer, engine.GroupHazard, s.hitHazard)
	events.OnOverlap(engine.GroupPlayer, engine.GroupCollectible, s.collect)
}

// waveX is the spawn column of the i-th collectible.
func (s *Session) waveX(i int) float64 {
	return s.cfg.Wave.StartX + s.cfg.Wave.StepX*float64(i)
}

func (s *Session) waveBounce() float64 {
	return s.rng.Float(s.cfg.Wave.BounceMin, s.cfg.Wave.BounceMax)
}
