package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default Starfall configuration.
// It mirrors defaults/starfall.yaml and is used if the embedded file is unreadable.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Field:   FieldConfig{Width: 800, Height: 600},
		Physics: PhysicsConfig{Gravity: 300},
		Player: PlayerConfig{
			SpawnX:    100,
			SpawnY:    450,
			Bounce:    0.2,
			RunSpeed:  160,
			JumpSpeed: 330,
		},
		Platforms: []PlatformConfig{
			{X: 400, Y: 568, Scale: 3},
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
			{X: 750, Y: 220, Scale: 1},
		},
		Wave: WaveConfig{
			Count:     12,
			StartX:    12,
			StepX:     70,
			Y:         0,
			BounceMin: 0.4,
			BounceMax: 0.8,
		},
		Scoring: ScoringConfig{CollectPoints: 10},
		Hazards: HazardConfig{
			SpawnY: 16,
			MinVX:  -200,
			MaxVX:  200,
			VY:     20,
			Bounce: 1,
			Scale:  0.5,
		},
		Sprites: SpriteConfig{
			Ground: SpriteSize{Width: 400, Height: 32},
			Star:   SpriteSize{Width: 24, Height: 22},
			Dude:   SpriteSize{Width: 32, Height: 48},
			Bomb:   SpriteSize{Width: 28, Height: 28},
		},
		Audio: AudioConfig{BackgroundVolume: 0.3},
		Input: InputConfig{HoldTicks: 30},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarfallYAML
}
