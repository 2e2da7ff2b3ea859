package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/engine"
)

// Body is a single Chipmunk body with one box shape. It implements
// engine.Body.
type Body struct {
	world  *World
	id     int
	group  engine.Group
	sprite engine.Sprite

	body  *cp.Body
	shape *cp.Shape

	static        bool
	active        bool
	inSpace       bool
	grounded      bool
	collideBounds bool

	bounce float64
	scale  float64

	tint engine.Tint
	anim engine.Animation
	loop bool
}

var _ engine.Body = (*Body)(nil)

func (b *Body) ID() int { return b.id }
func (b *Body) Group() engine.Group { return b.group }
func (b *Body) Static() bool { return b.static }

// Size returns the scaled footprint of the body.
func (b *Body) Size() core.Vec {
	return b.world.spriteSize(b.sprite).Scale(b.scale)
}

func (b *Body) Position() core.Vec {
	p := b.body.Position()
	return core.Vec{X: p.X, Y: p.Y}
}

func (b *Body) Velocity() core.Vec {
	v := b.body.Velocity()
	return core.Vec{X: v.X, Y: v.Y}
}

func (b *Body) SetVelocity(vx, vy float64) {
	if b.static {
		return
	}
	b.body.SetVelocity(vx, vy)
}

func (b *Body) SetVelocityX(vx float64) {
	b.SetVelocity(vx, b.body.Velocity().Y)
}

func (b *Body) SetVelocityY(vy float64) {
	b.SetVelocity(b.body.Velocity().X, vy)
}

// SetBounce sets the restitution of the body's shape. Chipmunk multiplies
// the elasticity of both shapes, and platforms and bounds use 1.
func (b *Body) SetBounce(e float64) {
	b.bounce = e
	if b.shape != nil {
		b.shape.SetElasticity(e)
	}
}

func (b *Body) Bounce() float64 { return b.bounce }

// SetScale resizes the body's shape around its centre.
func (b *Body) SetScale(s float64) {
	if s <= 0 || s == b.scale {
		return
	}
	b.scale = s
	b.detachShape()
	b.attachShape()
}

func (b *Body) Scale() float64 { return b.scale }

func (b *Body) SetCollideWorldBounds(collide bool) {
	b.collideBounds = collide
}

func (b *Body) Grounded() bool { return b.grounded }

func (b *Body) Active() bool { return b.active }

// Disable removes the body from the space. It keeps its last position.
func (b *Body) Disable() {
	if !b.active {
		return
	}
	b.active = false
	b.grounded = false
	if b.inSpace {
		b.world.space.RemoveShape(b.shape)
		if !b.static {
			b.world.space.RemoveBody(b.body)
		}
		b.inSpace = false
	}
}

// Enable puts the body back at (x, y) at rest. A static body only moves
// while it is out of the space, since its shape is indexed when added.
func (b *Body) Enable(x, y float64) {
	b.active = true
	if b.inSpace {
		if !b.static {
			b.body.SetPosition(cp.Vector{X: x, Y: y})
			b.body.SetVelocity(0, 0)
		}
		return
	}

	b.body.SetPosition(cp.Vector{X: x, Y: y})
	if !b.static {
		b.body.SetVelocity(0, 0)
		b.world.space.AddBody(b.body)
	}
	b.world.space.AddShape(b.shape)
	b.inSpace = true
}

func (b *Body) SetTint(t engine.Tint) { b.tint = t }
func (b *Body) Tint() engine.Tint { return b.tint }

func (b *Body) PlayAnimation(a engine.Animation, loop bool) {
	b.anim = a
	b.loop = loop
}

func (b *Body) Animation() engine.Animation { return b.anim }

func (b *Body) attachShape() {
	size := b.Size()
	shape := cp.NewBox(b.body, size.X, size.Y, 0)
	shape.SetFriction(0)
	shape.SetElasticity(b.bounce)
	shape.SetCollisionType(cp.CollisionType(b.group))
	b.shape = shape
	b.world.byShape[shape] = b
	if b.inSpace {
		b.world.space.AddShape(shape)
	}
}

func (b *Body) detachShape() {
	if b.shape == nil {
		return
	}
	if b.inSpace {
		b.world.space.RemoveShape(b.shape)
	}
	delete(b.world.byShape, b.shape)
	b.shape = nil
}
