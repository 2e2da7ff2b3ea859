// Package config provides YAML-based configuration loading for Starfall.
// Every gameplay constant lives here so the core never hard-codes tuning.
package config

import "fmt"

// StarfallConfig contains all configuration for the Starfall game.
type StarfallConfig struct {
	Field     FieldConfig      `yaml:"field"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Platforms []PlatformConfig `yaml:"platforms"`
	Wave      WaveConfig       `yaml:"wave"`
	Scoring   ScoringConfig    `yaml:"scoring"`
	Hazards   HazardConfig     `yaml:"hazards"`
	Sprites   SpriteConfig     `yaml:"sprites"`
	Audio     AudioConfig      `yaml:"audio"`
	Input     InputConfig      `yaml:"input"`
}

// FieldConfig defines the size of the playfield in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines world-wide physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// PlayerConfig defines the player spawn and movement.
type PlayerConfig struct {
	SpawnX    float64 `yaml:"spawn_x"`
	SpawnY    float64 `yaml:"spawn_y"`
	Bounce    float64 `yaml:"bounce"`
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// PlatformConfig places one static platform.
type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// WaveConfig defines the layout of a collectible wave.
type WaveConfig struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	Y         float64 `yaml:"y"`
	BounceMin float64 `yaml:"bounce_min"`
	BounceMax float64 `yaml:"bounce_max"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	CollectPoints int `yaml:"collect_points"`
}

// HazardConfig defines how hazards are spawned.
type HazardConfig struct {
	SpawnY float64 `yaml:"spawn_y"`
	MinVX  int     `yaml:"min_vx"` // Inclusive
	MaxVX  int     `yaml:"max_vx"` // Exclusive
	VY     float64 `yaml:"vy"`
	Bounce float64 `yaml:"bounce"`
	Scale  float64 `yaml:"scale"`
}

// SpriteSize is the unscaled footprint of a sprite in world units.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteConfig holds the footprint of every sprite.
type SpriteConfig struct {
	Ground SpriteSize `yaml:"ground"`
	Star   SpriteSize `yaml:"star"`
	Dude   SpriteSize `yaml:"dude"`
	Bomb   SpriteSize `yaml:"bomb"`
}

// AudioConfig defines playback parameters.
type AudioConfig struct {
	BackgroundVolume float64 `yaml:"background_volume"`
	Bell             bool    `yaml:"bell"` // Ring the terminal bell on cues
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldTicks is how long a key stays "held" after its last press event.
	// Terminals report presses and auto-repeats, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// HalfWidth returns the x coordinate that splits the field in two.
func (c StarfallConfig) HalfWidth() float64 {
	return c.Field.Width / 2
}

// Validate checks the configuration for values the game cannot run with.
func (c StarfallConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Wave.Count <= 0 {
		return fmt.Errorf("config: wave count must be positive, got %d", c.Wave.Count)
	}
	if c.Wave.BounceMax < c.Wave.BounceMin {
		return fmt.Errorf("config: wave bounce range is inverted [%v, %v)", c.Wave.BounceMin, c.Wave.BounceMax)
	}
	if c.Hazards.MaxVX < c.Hazards.MinVX {
		return fmt.Errorf("config: hazard vx range is inverted [%d, %d)", c.Hazards.MinVX, c.Hazards.MaxVX)
	}
	if c.Scoring.CollectPoints < 0 {
		return fmt.Errorf("config: collect points must not be negative, got %d", c.Scoring.CollectPoints)
	}
	if len(c.Platforms) == 0 {
		return fmt.Errorf("config: at least one platform is required")
	}
	return nil
}
