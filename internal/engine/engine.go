// Package engine defines the contract between the Starfall gameplay core and
// the engine beneath it: bodies, physics control, key polling, audio cues and
// HUD text. The core only talks to these interfaces, so it can run on the
// Chipmunk-backed world in production and on fakes in tests.
package engine

import "github.com/vovakirdan/starfall/internal/core"

//go:generate go tool mockgen -destination=./mocks/engine_mock.go -package=mocks . Audio,HUD

// Body is a positioned, velocity-bearing entity owned by a World.
// It doubles as the sprite handle for tint and animation calls.
type Body interface {
	ID() int
	Group() Group

	Position() core.Vec
	Velocity() core.Vec
	SetVelocity(vx, vy float64)
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)

	// SetBounce sets the restitution used against platforms and world bounds.
	SetBounce(b float64)
	Bounce() float64
	SetScale(s float64)
	Scale() float64
	SetCollideWorldBounds(collide bool)

	// Grounded reports whether the body rests on a supporting surface.
	// The flag is maintained by the world during integration.
	Grounded() bool

	// Active reports whether the body renders and participates in collisions.
	Active() bool
	// Disable hides the body and removes it from collision checks.
	Disable()
	// Enable re-activates the body at (x, y) with zero velocity.
	Enable(x, y float64)

	SetTint(t Tint)
	Tint() Tint
	PlayAnimation(a Animation, loop bool)
	Animation() Animation
}

// World creates bodies and integrates them once per tick.
type World interface {
	CreateStatic(g Group, x, y float64, s Sprite, scale float64) Body
	CreateDynamic(g Group, x, y float64, s Sprite) Body

	// Collide makes bodies of groups a and b block each other. Groups with
	// no collider pass through one another; overlap reactions registered on
	// the dispatcher are reported without blocking.
	Collide(a, b Group)

	// PausePhysics freezes integration for every body until Reset.
	PausePhysics()
	Paused() bool

	// Reset destroys every body and resumes physics.
	Reset()

	// Step runs one tick: tick callbacks, integration, then contact and
	// overlap callbacks.
	Step(dt float64)
}

// Input answers "is this key currently held".
type Input interface {
	IsKeyDown(k Key) bool
}

// Handle identifies one playback started by Audio.Play.
type Handle int

// NoHandle is returned when nothing is playing.
const NoHandle Handle = 0

// Audio plays fire-and-forget sound cues.
type Audio interface {
	Play(c Cue) Handle
	Stop(h Handle)
}

// HUD is the set of read-only text surfaces exposed to the player.
type HUD interface {
	SetText(id TextID, text string)
}

// RandomSource is the only source of randomness used by the core.
// Both methods draw from the half-open range [lo, hi).
type RandomSource interface {
	Intn(lo, hi int) int
	Float(lo, hi float64) float64
}

// Host bundles the engine services a session needs.
type Host struct {
	World  World
	Events *Dispatcher
	Input  Input
	Audio  Audio
	HUD    HUD
}
