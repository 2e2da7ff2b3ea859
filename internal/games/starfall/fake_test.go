package starfall

import (
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
)

// fakeBody records every call the core makes on a body.
type fakeBody struct {
	id     int
	group  engine.Group
	sprite engine.Sprite

	pos, vel core.Vec
	bounce   float64
	scale    float64
	bounds   bool
	grounded bool
	active   bool
	tint     engine.Tint
	anim     engine.Animation
	loop     bool

	velocityWrites int
	tintWrites     int
}

func (b *fakeBody) ID() int { return b.id }
func (b *fakeBody) Group() engine.Group { return b.group }
func (b *fakeBody) Position() core.Vec { return b.pos }
func (b *fakeBody) Velocity() core.Vec { return b.vel }
func (b *fakeBody) Bounce() float64 { return b.bounce }
func (b *fakeBody) Scale() float64 { return b.scale }
func (b *fakeBody) Grounded() bool { return b.grounded }
func (b *fakeBody) Active() bool { return b.active }
func (b *fakeBody) Tint() engine.Tint { return b.tint }
func (b *fakeBody) SetBounce(v float64) { b.bounce = v }
func (b *fakeBody) SetScale(s float64) { b.scale = s }
func (b *fakeBody) Disable() { b.active = false }
func (b *fakeBody) Animation() engine.Animation { return b.anim }

func (b *fakeBody) SetVelocity(vx, vy float64) {
	b.vel = core.Vec{X: vx, Y: vy}
	b.velocityWrites++
}

func (b *fakeBody) SetVelocityX(vx float64) { b.SetVelocity(vx, b.vel.Y) }
func (b *fakeBody) SetVelocityY(vy float64) { b.SetVelocity(b.vel.X, vy) }

func (b *fakeBody) SetCollideWorldBounds(c bool) { b.bounds = c }

func (b *fakeBody) Enable(x, y float64) {
	b.pos = core.Vec{X: x, Y: y}
	b.vel = core.Vec{}
	b.active = true
}

func (b *fakeBody) SetTint(t engine.Tint) {
	b.tint = t
	b.tintWrites++
}

func (b *fakeBody) PlayAnimation(a engine.Animation, loop bool) {
	b.anim = a
	b.loop = loop
}

// fakeWorld integrates nothing but velocity and never detects collisions;
// tests deliver reactions through the dispatcher by hand.
type fakeWorld struct {
	events    *engine.Dispatcher
	bodies    []*fakeBody
	colliders [][2]engine.Group
	paused    bool
	resets    int
	nextID    int
}

func (w *fakeWorld) create(g engine.Group, x, y float64, s engine.Sprite) *fakeBody {
	w.nextID++
	b := &fakeBody{id: w.nextID, group: g, sprite: s, pos: core.Vec{X: x, Y: y}, scale: 1, active: true}
	w.bodies = append(w.bodies, b)
	return b
}

func (w *fakeWorld) CreateStatic(g engine.Group, x, y float64, s engine.Sprite, scale float64) engine.Body {
	b := w.create(g, x, y, s)
	b.scale = scale
	return b
}

func (w *fakeWorld) CreateDynamic(g engine.Group, x, y float64, s engine.Sprite) engine.Body {
	return w.create(g, x, y, s)
}

func (w *fakeWorld) Collide(a, b engine.Group) {
	w.colliders = append(w.colliders, [2]engine.Group{a, b})
}

func (w *fakeWorld) PausePhysics() { w.paused = true }
func (w *fakeWorld) Paused() bool { return w.paused }

func (w *fakeWorld) Reset() {
	w.bodies = nil
	w.colliders = nil
	w.paused = false
	w.resets++
}

func (w *fakeWorld) Step(dt float64) {
	w.events.EmitTick()
	if w.paused {
		return
	}
	for _, b := range w.bodies {
		if b.active {
			b.pos = b.pos.Add(b.vel.Scale(dt))
		}
	}
}

type fakeInput map[engine.Key]bool

func (in fakeInput) IsKeyDown(k engine.Key) bool { return in[k] }

// fakeAudio keeps a log of cues and which handles are still playing.
type fakeAudio struct {
	next    engine.Handle
	played  []engine.Cue
	stopped []engine.Handle
	playing map[engine.Handle]engine.Cue
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{playing: make(map[engine.Handle]engine.Cue)}
}

func (a *fakeAudio) Play(c engine.Cue) engine.Handle {
	a.next++
	a.played = append(a.played, c)
	a.playing[a.next] = c
	return a.next
}

func (a *fakeAudio) Stop(h engine.Handle) {
	a.stopped = append(a.stopped, h)
	delete(a.playing, h)
}

func (a *fakeAudio) count(c engine.Cue) int {
	n := 0
	for _, p := range a.played {
		if p == c {
			n++
		}
	}
	return n
}

func (a *fakeAudio) musicPlaying() bool {
	for _, c := range a.playing {
		if c == engine.CueBackground {
			return true
		}
	}
	return false
}

type fakeHUD map[engine.TextID]string

func (h fakeHUD) SetText(id engine.TextID, text string) { h[id] = text }

// fixedRandom returns the low end of every range unless told otherwise.
type fixedRandom struct {
	ints   []int
	floats []float64
}

func (r *fixedRandom) Intn(lo, hi int) int {
	if len(r.ints) == 0 {
		return lo
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *fixedRandom) Float(lo, hi float64) float64 {
	if len(r.floats) == 0 {
		return lo
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type harness struct {
	session *Session
	world   *fakeWorld
	events  *engine.Dispatcher
	input   fakeInput
	audio   *fakeAudio
	hud     fakeHUD
}

func newHarness(rng engine.RandomSource) *harness {
	events := engine.NewDispatcher()
	h := &harness{
		world:  &fakeWorld{events: events},
		events: events,
		input:  fakeInput{},
		audio:  newFakeAudio(),
		hud:    fakeHUD{},
	}
	host := engine.Host{
		World:  h.world,
		Events: h.events,
		Input:  h.input,
		Audio:  h.audio,
		HUD:    h.hud,
	}
	if rng == nil {
		rng = engine.NewSeededRandom(42)
	}
	h.session = NewSession(host, config.DefaultStarfallConfig(), rng, nil)
	h.session.Start()
	return h
}

func (h *harness) tick() {
	h.world.Step(1.0 / 60)
}

func (h *harness) player() *fakeBody {
	return h.session.Player().(*fakeBody)
}

// collect delivers an overlap between the player and the i-th collectible.
func (h *harness) collect(i int) {
	h.events.EmitOverlap(h.session.Player(), h.session.State().Collectibles[i])
}

func (h *harness) collectWave() {
	for i := range h.session.State().Collectibles {
		h.collect(i)
	}
}

// hit delivers a contact between the player and a hazard. The hazard need
// not be part of the session.
func (h *harness) hit() {
	hazard := &fakeBody{id: 999, group: engine.GroupHazard, active: true}
	h.events.EmitContact(hazard, h.session.Player())
}
