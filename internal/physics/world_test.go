package physics

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
)

const dt = 1.0 / 60.0

func testConfig(gravity float64) Config {
	return Config{
		Width:   800,
		Height:  600,
		Gravity: gravity,
		Sizes: map[engine.Sprite]core.Vec{
			engine.SpriteGround: {X: 400, Y: 32},
			engine.SpriteStar:   {X: 24, Y: 22},
			engine.SpriteDude:   {X: 32, Y: 48},
			engine.SpriteBomb:   {X: 28, Y: 28},
		},
	}
}

func newTestWorld(gravity float64) (*World, *engine.Dispatcher) {
	events := engine.NewDispatcher()
	return NewWorld(testConfig(gravity), events, nil), events
}

func TestFallsUnderGravity(t *testing.T) {
	w, _ := newTestWorld(300)
	b := w.CreateDynamic(engine.GroupPlayer, 100, 100, engine.SpriteDude)

	for range 30 {
		w.Step(dt)
	}

	if b.Position().Y <= 100 {
		t.Errorf("body did not fall: y = %v", b.Position().Y)
	}
	if b.Velocity().Y <= 0 {
		t.Errorf("expected downward velocity, got %v", b.Velocity().Y)
	}
}

func TestTickRunsEvenWhenPaused(t *testing.T) {
	w, events := newTestWorld(300)
	b := w.CreateDynamic(engine.GroupPlayer, 100, 100, engine.SpriteDude)
	b.SetVelocity(50, 0)

	ticks := 0
	events.OnTick(func() { ticks++ })

	w.Step(dt)
	w.PausePhysics()
	if !w.Paused() {
		t.Fatal("expected world to be paused")
	}

	pos := b.Position()
	vel := b.Velocity()
	for range 10 {
		w.Step(dt)
	}

	if ticks != 11 {
		t.Errorf("ticks = %d, want 11", ticks)
	}
	if b.Position() != pos {
		t.Errorf("position changed while paused: %v -> %v", pos, b.Position())
	}
	if b.Velocity() != vel {
		t.Errorf("velocity changed while paused: %v -> %v", vel, b.Velocity())
	}
}

func TestGroundedOnPlatform(t *testing.T) {
	w, _ := newTestWorld(300)
	w.CreateStatic(engine.GroupPlatform, 400, 568, engine.SpriteGround, 1)
	player := w.CreateDynamic(engine.GroupPlayer, 400, 500, engine.SpriteDude)
	w.Collide(engine.GroupPlayer, engine.GroupPlatform)

	if player.Grounded() {
		t.Fatal("player should start airborne")
	}
	for range 120 {
		w.Step(dt)
	}

	if !player.Grounded() {
		t.Error("player should rest on the platform")
	}
	// Platform top is at 552, player half-height is 24.
	if y := player.Position().Y; y > 530 {
		t.Errorf("player sank into the platform: y = %v", y)
	}
}

func TestPassThroughWithoutCollider(t *testing.T) {
	w, _ := newTestWorld(300)
	w.CreateStatic(engine.GroupPlatform, 400, 300, engine.SpriteGround, 1)
	b := w.CreateDynamic(engine.GroupHazard, 400, 250, engine.SpriteBomb)

	for range 60 {
		w.Step(dt)
	}

	if b.Position().Y <= 320 {
		t.Errorf("body should fall through an unregistered pair, y = %v", b.Position().Y)
	}
}

func TestWorldBounds(t *testing.T) {
	tests := []struct {
		name    string
		collide bool
	}{
		{"kept inside", true},
		{"falls out", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(300)
			b := w.CreateDynamic(engine.GroupPlayer, 100, 550, engine.SpriteDude)
			b.SetCollideWorldBounds(tt.collide)

			for range 120 {
				w.Step(dt)
			}

			inside := b.Position().Y < 600
			if inside != tt.collide {
				t.Errorf("y = %v, collide = %v", b.Position().Y, tt.collide)
			}
		})
	}
}

func TestWorldBoundsHoldDrivenBody(t *testing.T) {
	tests := []struct {
		name   string
		vx     float64
		ground bool
	}{
		{"right wall", 160, false},
		{"left wall", -160, false},
		{"right wall on ground", 160, true},
		{"left wall on ground", -160, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, events := newTestWorld(300)
			if tt.ground {
				w.CreateStatic(engine.GroupPlatform, 400, 568, engine.SpriteGround, 3)
				w.Collide(engine.GroupPlayer, engine.GroupPlatform)
			}
			b := w.CreateDynamic(engine.GroupPlayer, 700, 300, engine.SpriteDude)
			b.SetBounce(0.2)
			b.SetCollideWorldBounds(true)
			events.OnTick(func() { b.SetVelocityX(tt.vx) })

			for range 300 {
				w.Step(dt)
			}

			p := b.Position()
			if p.X < 16 || p.X > 784 {
				t.Errorf("x = %v, want within [16, 784]", p.X)
			}
			if p.Y < 24 || p.Y > 576 {
				t.Errorf("y = %v, want within [24, 576]", p.Y)
			}
			if tt.ground && p.Y > 497 {
				t.Errorf("player sank into the ground: y = %v", p.Y)
			}
		})
	}
}

func TestDrivenBodyStopsAtPlatformSide(t *testing.T) {
	w, events := newTestWorld(0)
	w.CreateStatic(engine.GroupPlatform, 400, 300, engine.SpriteGround, 1)
	w.Collide(engine.GroupPlayer, engine.GroupPlatform)
	// Platform spans x in [200, 600]; start left of it at the same height.
	b := w.CreateDynamic(engine.GroupPlayer, 150, 300, engine.SpriteDude)
	events.OnTick(func() { b.SetVelocityX(160) })

	for range 120 {
		w.Step(dt)
	}

	if x := b.Position().X; x > 185 {
		t.Errorf("body tunneled into the platform side: x = %v", x)
	}
}

func TestStaticDisableEnable(t *testing.T) {
	w, _ := newTestWorld(300)
	p := w.CreateStatic(engine.GroupPlatform, 400, 300, engine.SpriteGround, 1)
	w.Collide(engine.GroupPlayer, engine.GroupPlatform)
	player := w.CreateDynamic(engine.GroupPlayer, 400, 200, engine.SpriteDude)

	p.Disable()
	for range 60 {
		w.Step(dt)
	}
	if player.Position().Y <= 290 {
		t.Fatalf("player should fall through a disabled platform, y = %v", player.Position().Y)
	}

	player.Enable(400, 200)
	p.Enable(400, 300)
	for range 120 {
		w.Step(dt)
	}
	if !p.Active() {
		t.Error("platform should be active again")
	}
	// Platform top is at 284, player half-height is 24.
	if y := player.Position().Y; y > 262 {
		t.Errorf("player should land on the re-enabled platform, y = %v", y)
	}
}

func TestOverlapReportedOncePerEncounter(t *testing.T) {
	w, events := newTestWorld(0)
	player := w.CreateDynamic(engine.GroupPlayer, 200, 200, engine.SpriteDude)
	star := w.CreateDynamic(engine.GroupCollectible, 200, 200, engine.SpriteStar)

	var got [][2]engine.Body
	events.OnOverlap(engine.GroupPlayer, engine.GroupCollectible, func(a, b engine.Body) {
		got = append(got, [2]engine.Body{a, b})
	})

	w.Step(dt)
	w.Step(dt)

	if len(got) != 1 {
		t.Fatalf("overlaps = %d, want 1", len(got))
	}
	if got[0][0] != player || got[0][1] != star {
		t.Error("overlap bodies not delivered in registered order")
	}
	// Overlaps do not block: both stay where they were.
	if player.Position() != star.Position() {
		t.Errorf("overlapping bodies were pushed apart: %v vs %v", player.Position(), star.Position())
	}
}

func TestDisabledBodyIsNotReported(t *testing.T) {
	w, events := newTestWorld(0)
	w.CreateDynamic(engine.GroupPlayer, 200, 200, engine.SpriteDude)
	star := w.CreateDynamic(engine.GroupCollectible, 200, 200, engine.SpriteStar)

	count := 0
	events.OnOverlap(engine.GroupPlayer, engine.GroupCollectible, func(a, b engine.Body) {
		count++
	})

	star.Disable()
	if star.Active() {
		t.Fatal("star should be inactive")
	}
	w.Step(dt)
	if count != 0 {
		t.Errorf("disabled star reported %d overlaps", count)
	}

	star.Enable(200, 200)
	if !star.Active() || star.Velocity() != (core.Vec{}) {
		t.Fatalf("Enable should activate at rest, got active=%v v=%v", star.Active(), star.Velocity())
	}
	w.Step(dt)
	if count != 1 {
		t.Errorf("re-enabled star overlaps = %d, want 1", count)
	}
}

func TestContactReported(t *testing.T) {
	w, events := newTestWorld(0)
	w.Collide(engine.GroupPlayer, engine.GroupHazard)
	w.CreateDynamic(engine.GroupPlayer, 200, 200, engine.SpriteDude)
	w.CreateDynamic(engine.GroupHazard, 210, 200, engine.SpriteBomb)

	var groups []engine.Group
	events.OnContact(engine.GroupPlayer, engine.GroupHazard, func(a, b engine.Body) {
		groups = append(groups, a.Group(), b.Group())
	})

	w.Step(dt)

	if len(groups) != 2 {
		t.Fatalf("contacts = %d, want 1", len(groups)/2)
	}
	if groups[0] != engine.GroupPlayer || groups[1] != engine.GroupHazard {
		t.Errorf("contact order = %v", groups)
	}
}

func TestResetDuringReaction(t *testing.T) {
	w, events := newTestWorld(0)
	w.CreateDynamic(engine.GroupPlayer, 200, 200, engine.SpriteDude)
	w.CreateDynamic(engine.GroupCollectible, 200, 200, engine.SpriteStar)
	w.CreateDynamic(engine.GroupCollectible, 205, 200, engine.SpriteStar)

	count := 0
	events.OnOverlap(engine.GroupPlayer, engine.GroupCollectible, func(a, b engine.Body) {
		count++
		w.Reset()
	})

	w.Step(dt)

	if count != 1 {
		t.Errorf("reactions after reset = %d, want 1", count)
	}
	if len(w.bodies) != 0 {
		t.Errorf("bodies after reset = %d", len(w.bodies))
	}
}

func TestResetResumesPhysics(t *testing.T) {
	w, _ := newTestWorld(300)
	w.CreateDynamic(engine.GroupPlayer, 100, 100, engine.SpriteDude)
	w.PausePhysics()

	w.Reset()

	if w.Paused() {
		t.Error("Reset should resume physics")
	}
	if len(w.bodies) != 0 {
		t.Errorf("bodies = %d, want 0", len(w.bodies))
	}
	b := w.CreateDynamic(engine.GroupPlayer, 100, 100, engine.SpriteDude)
	if b.ID() <= 1 {
		t.Errorf("ids should keep increasing across resets, got %d", b.ID())
	}
}

func TestScaleAndBounce(t *testing.T) {
	w, _ := newTestWorld(0)
	b := w.CreateDynamic(engine.GroupHazard, 100, 100, engine.SpriteBomb).(*Body)

	b.SetScale(0.5)
	b.SetBounce(1)

	if got := b.Size(); got != (core.Vec{X: 14, Y: 14}) {
		t.Errorf("Size = %v, want 14x14", got)
	}
	if b.Bounce() != 1 || b.Scale() != 0.5 {
		t.Errorf("bounce/scale = %v/%v", b.Bounce(), b.Scale())
	}

	p := w.CreateStatic(engine.GroupPlatform, 400, 568, engine.SpriteGround, 3).(*Body)
	if got := p.Size(); got != (core.Vec{X: 1200, Y: 96}) {
		t.Errorf("platform Size = %v", got)
	}
	p.SetVelocity(10, 10)
	if p.Velocity() != (core.Vec{}) {
		t.Error("static bodies must not move")
	}
}

func TestTintAndAnimation(t *testing.T) {
	w, _ := newTestWorld(0)
	b := w.CreateDynamic(engine.GroupPlayer, 100, 100, engine.SpriteDude).(*Body)

	b.PlayAnimation(engine.AnimLeft, true)
	b.SetTint(engine.TintDeath)

	if b.Animation() != engine.AnimLeft || !b.loop {
		t.Errorf("animation = %v loop=%v", b.Animation(), b.loop)
	}
	if b.Tint() != engine.TintDeath {
		t.Errorf("tint = %v", b.Tint())
	}
}
