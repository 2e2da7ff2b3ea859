// Package physics implements engine.World on top of the Chipmunk2D port
// github.com/jakecoffman/cp.
//
// Coordinates are y-down: gravity is positive and the field spans
// [0, Width] x [0, Height]. Contacts and overlaps found while the space is
// stepping are buffered and delivered through the dispatcher once the step
// returns, so reactions may freely add and remove bodies.
package physics

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
)

// collisionTypeBounds tags the four world-edge segments.
// Groups use their own numeric value as collision type.
const collisionTypeBounds cp.CollisionType = 64

// penetrationSlop is the overlap left to the Chipmunk solver before a body
// is pushed out of a static body or the field edge.
const penetrationSlop = 0.5

// groundNormal is the minimum vertical component of a contact normal for the
// contact to count as standing on something.
const groundNormal = 0.5

// Config describes the simulated field.
type Config struct {
	Width   float64
	Height  float64
	Gravity float64
	// Sizes maps a sprite to its unscaled footprint.
	Sizes map[engine.Sprite]core.Vec
}

type pairKey struct {
	kind string
	lo   int
	hi   int
}

type pendingPair struct {
	kind string
	a, b *Body
}

// World owns the Chipmunk space and every body in it.
type World struct {
	cfg    Config
	events *engine.Dispatcher
	logger *log.Logger

	space   *cp.Space
	bodies  []*Body
	byShape map[*cp.Shape]*Body
	nextID  int
	paused  bool

	colliders map[[2]engine.Group]bool
	pending   []pendingPair
	seen      map[pairKey]bool
}

// NewWorld creates an empty world that reports reactions to events.
func NewWorld(cfg Config, events *engine.Dispatcher, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:    cfg,
		events: events,
		logger: logger,
	}
	w.Reset()
	return w
}

// Configure replaces the field description. It takes effect at the next Reset.
func (w *World) Configure(cfg Config) {
	w.cfg = cfg
}

// Reset destroys every body, forgets colliders and resumes physics.
func (w *World) Reset() {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: w.cfg.Gravity})

	w.space = space
	w.bodies = nil
	w.byShape = make(map[*cp.Shape]*Body)
	w.colliders = make(map[[2]engine.Group]bool)
	w.pending = nil
	w.seen = make(map[pairKey]bool)
	w.paused = false

	w.buildBounds()
	w.setupHandlers()
	w.logger.Debug("physics world reset", "width", w.cfg.Width, "height", w.cfg.Height)
}

// CreateStatic places an immovable body centred at (x, y).
func (w *World) CreateStatic(g engine.Group, x, y float64, s engine.Sprite, scale float64) engine.Body {
	if scale <= 0 {
		scale = 1
	}
	cpBody := cp.NewStaticBody()
	cpBody.SetPosition(cp.Vector{X: x, Y: y})
	w.space.AddBody(cpBody)

	b := w.newBody(g, s, cpBody, true)
	b.scale = scale
	b.bounce = 1
	b.attachShape()
	return b
}

// CreateDynamic places a gravity-driven body centred at (x, y).
func (w *World) CreateDynamic(g engine.Group, x, y float64, s engine.Sprite) engine.Body {
	cpBody := cp.NewBody(1, math.Inf(1)) // No rotation
	cpBody.SetPosition(cp.Vector{X: x, Y: y})
	w.space.AddBody(cpBody)

	b := w.newBody(g, s, cpBody, false)
	b.attachShape()
	return b
}

func (w *World) newBody(g engine.Group, s engine.Sprite, cpBody *cp.Body, static bool) *Body {
	w.nextID++
	b := &Body{
		world:   w,
		id:      w.nextID,
		group:   g,
		sprite:  s,
		body:    cpBody,
		static:  static,
		active:  true,
		inSpace: true,
		scale:   1,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Collide makes groups a and b block each other.
func (w *World) Collide(a, b engine.Group) {
	w.colliders[[2]engine.Group{a, b}] = true
	w.colliders[[2]engine.Group{b, a}] = true
}

func (w *World) collides(a, b engine.Group) bool {
	return w.colliders[[2]engine.Group{a, b}]
}

// PausePhysics freezes integration until Reset.
func (w *World) PausePhysics() {
	if !w.paused {
		w.logger.Debug("physics paused")
	}
	w.paused = true
}

// Paused reports whether integration is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Step runs the tick callbacks, then integrates and delivers the reactions
// detected during integration. Tick callbacks still run while paused.
func (w *World) Step(dt float64) {
	w.events.EmitTick()
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		b.grounded = false
	}
	w.space.Step(dt)
	w.separate()
	w.flush()
}

// separate pushes dynamic bodies out of the static bodies they block against
// and back inside the field. Chipmunk corrects overlap gradually, which a
// body whose velocity is rewritten every tick can outrun. The inward
// velocity component is reflected scaled by the body's bounce.
func (w *World) separate() {
	var statics []*Body
	for _, b := range w.bodies {
		if b.static && b.active {
			statics = append(statics, b)
		}
	}

	for _, b := range w.bodies {
		if b.static || !b.active {
			continue
		}
		for _, s := range statics {
			if w.collides(b.group, s.group) {
				w.pushOut(b, s)
			}
		}
		if b.collideBounds {
			w.clampToField(b)
		}
	}
}

// pushOut moves b along the axis of least overlap until it no longer
// penetrates s beyond the slop.
func (w *World) pushOut(b, s *Body) {
	p, sp := b.body.Position(), s.body.Position()
	half, shalf := b.Size().Scale(0.5), s.Size().Scale(0.5)

	dx, dy := p.X-sp.X, p.Y-sp.Y
	overlapX := half.X + shalf.X - math.Abs(dx)
	overlapY := half.Y + shalf.Y - math.Abs(dy)
	if overlapX <= penetrationSlop || overlapY <= penetrationSlop {
		return
	}

	v := b.body.Velocity()
	if overlapX < overlapY {
		dir := math.Copysign(1, dx)
		p.X += dir * (overlapX - penetrationSlop)
		if v.X*dir < 0 {
			v.X = -v.X * b.bounce
		}
	} else {
		dir := math.Copysign(1, dy)
		p.Y += dir * (overlapY - penetrationSlop)
		if v.Y*dir < 0 {
			v.Y = -v.Y * b.bounce
		}
		if dir < 0 {
			b.grounded = true
		}
	}
	b.body.SetPosition(p)
	b.body.SetVelocity(v.X, v.Y)
}

// clampToField keeps a bounded body's box inside [0, Width] x [0, Height].
func (w *World) clampToField(b *Body) {
	width, height := w.cfg.Width, w.cfg.Height
	if width <= 0 || height <= 0 {
		return
	}
	p, v := b.body.Position(), b.body.Velocity()
	half := b.Size().Scale(0.5)
	moved := false

	if p.X < half.X {
		p.X, moved = half.X, true
		if v.X < 0 {
			v.X = -v.X * b.bounce
		}
	} else if p.X > width-half.X {
		p.X, moved = width-half.X, true
		if v.X > 0 {
			v.X = -v.X * b.bounce
		}
	}
	if p.Y < half.Y {
		p.Y, moved = half.Y, true
		if v.Y < 0 {
			v.Y = -v.Y * b.bounce
		}
	} else if p.Y > height-half.Y {
		p.Y, moved = height-half.Y, true
		if v.Y > 0 {
			v.Y = -v.Y * b.bounce
		}
	}

	if moved {
		b.body.SetPosition(p)
		b.body.SetVelocity(v.X, v.Y)
	}
}

// flush delivers buffered reactions in detection order. A reaction may
// reset the world, which leaves the remaining pairs stale.
func (w *World) flush() {
	pending := w.pending
	w.pending = nil
	w.seen = make(map[pairKey]bool)

	space := w.space
	for _, p := range pending {
		if w.space != space {
			return
		}
		switch p.kind {
		case engine.KindContact:
			w.events.EmitContact(p.a, p.b)
		case engine.KindOverlap:
			w.events.EmitOverlap(p.a, p.b)
		}
	}
}

func (w *World) queue(kind string, a, b *Body) {
	key := pairKey{kind: kind, lo: a.id, hi: b.id}
	if key.lo > key.hi {
		key.lo, key.hi = key.hi, key.lo
	}
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	w.pending = append(w.pending, pendingPair{kind: kind, a: a, b: b})
}

func (w *World) spriteSize(s engine.Sprite) core.Vec {
	if size, ok := w.cfg.Sizes[s]; ok {
		return size
	}
	return core.Vec{X: 1, Y: 1}
}

func (w *World) buildBounds() {
	width, height := w.cfg.Width, w.cfg.Height
	if width <= 0 || height <= 0 {
		return
	}
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: height}, b: cp.Vector{X: width, Y: height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: height}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetElasticity(1)
		shape.SetCollisionType(collisionTypeBounds)
		w.space.AddShape(shape)
	}
}

var allGroups = []engine.Group{
	engine.GroupPlayer,
	engine.GroupPlatform,
	engine.GroupCollectible,
	engine.GroupHazard,
}

// setupHandlers installs one handler per pair of collision types. Whether a
// pair blocks, overlaps or passes through is decided per call, so Collide and
// dispatcher registrations made after Reset take effect immediately.
func (w *World) setupHandlers() {
	for i, a := range allGroups {
		for _, b := range allGroups[i:] {
			h := w.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
			h.UserData = w
			h.BeginFunc = beginPair
			h.PreSolveFunc = preSolvePair
		}
		h := w.space.NewCollisionHandler(cp.CollisionType(a), collisionTypeBounds)
		h.UserData = w
		h.BeginFunc = beginBounds
		h.PreSolveFunc = preSolvePair
	}
}

func beginPair(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	w, ok := userData.(*World)
	if !ok || w == nil {
		return false
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := w.byShape[shapeA]
	b, okB := w.byShape[shapeB]
	if !okA || !okB {
		return false
	}

	if w.collides(a.group, b.group) {
		if w.events.Contacts(a.group, b.group) {
			w.queue(engine.KindContact, a, b)
		}
		return true
	}
	if w.events.Overlaps(a.group, b.group) {
		w.queue(engine.KindOverlap, a, b)
	}
	// Ignored until the shapes separate.
	return false
}

func beginBounds(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	w, ok := userData.(*World)
	if !ok || w == nil {
		return false
	}
	shapeA, shapeB := arb.Shapes()
	b, found := w.byShape[shapeA]
	if !found {
		b, found = w.byShape[shapeB]
	}
	return found && b.collideBounds
}

// preSolvePair maintains the grounded flag of dynamic bodies resting on
// something below them.
func preSolvePair(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
	w, ok := userData.(*World)
	if !ok || w == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	n := arb.Normal()
	// The normal points from A to B; positive Y means B is below A.
	if a, found := w.byShape[shapeA]; found && !a.static && n.Y > groundNormal {
		a.grounded = true
	}
	if b, found := w.byShape[shapeB]; found && !b.static && -n.Y > groundNormal {
		b.grounded = true
	}
	return true
}
