package starfall

import "github.com/vovakirdan/starfall/internal/engine"

// HazardSpawn is where and how fast a new hazard enters the field.
type HazardSpawn struct {
	X, Y   float64
	VX, VY float64
}

// planHazard picks a spawn on the half of the field away from the player.
func (s *Session) planHazard(playerX float64) HazardSpawn {
	half := s.cfg.HalfWidth()
	width := int(s.cfg.Field.Width)

	var x int
	if playerX < half {
		x = s.rng.Intn(int(half), width)
	} else {
		x = s.rng.Intn(0, int(half))
	}

	h := s.cfg.Hazards
	return HazardSpawn{
		X:  float64(x),
		Y:  h.SpawnY,
		VX: float64(s.rng.Intn(h.MinVX, h.MaxVX)),
		VY: h.VY,
	}
}

// spawnHazard adds one hazard to the field. Hazards live until restart.
func (s *Session) spawnHazard() engine.Body {
	plan := s.planHazard(s.state.Player.Position().X)

	hazard := s.host.World.CreateDynamic(engine.GroupHazard, plan.X, plan.Y, engine.SpriteBomb)
	hazard.SetBounce(s.cfg.Hazards.Bounce)
	hazard.SetCollideWorldBounds(true)
	hazard.SetVelocity(plan.VX, plan.VY)
	hazard.SetScale(s.cfg.Hazards.Scale)

	s.state.Hazards = append(s.state.Hazards, hazard)
	s.logger.Debug("hazard spawned", "x", plan.X, "vx", plan.VX)
	return hazard
}
