package engine

import "fmt"

// Channel is the name of an event stream, e.g. "tick" or
// "overlap:player-collectible".
type Channel string

// ChannelTick carries the per-frame callback.
const ChannelTick Channel = "tick"

// Pair kinds.
const (
	KindContact = "contact"
	KindOverlap = "overlap"
)

// PairChannel names the channel for a pairwise reaction between two groups.
func PairChannel(kind string, a, b Group) Channel {
	return Channel(fmt.Sprintf("%s:%s-%s", kind, a, b))
}

// TickFunc runs once per simulated tick.
type TickFunc func()

// PairFunc reacts to two bodies touching. Bodies arrive in the group order
// the handler was registered with.
type PairFunc func(a, b Body)

type pairHandler struct {
	a, b Group
	fn   PairFunc
}

// Dispatcher routes engine events to the reaction functions registered
// against named channels. It is not safe for concurrent use; the engine and
// the core share one goroutine.
type Dispatcher struct {
	tick  []TickFunc
	pairs map[Channel][]pairHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{pairs: make(map[Channel][]pairHandler)}
}

// OnTick registers a per-frame callback.
func (d *Dispatcher) OnTick(fn TickFunc) {
	d.tick = append(d.tick, fn)
}

// OnContact registers fn for blocking collisions between groups a and b.
func (d *Dispatcher) OnContact(a, b Group, fn PairFunc) {
	d.on(KindContact, a, b, fn)
}

// OnOverlap registers fn for non-blocking overlaps between groups a and b.
func (d *Dispatcher) OnOverlap(a, b Group, fn PairFunc) {
	d.on(KindOverlap, a, b, fn)
}

func (d *Dispatcher) on(kind string, a, b Group, fn PairFunc) {
	if d.pairs == nil {
		d.pairs = make(map[Channel][]pairHandler)
	}
	ch := PairChannel(kind, a, b)
	d.pairs[ch] = append(d.pairs[ch], pairHandler{a: a, b: b, fn: fn})
}

// Overlaps reports whether an overlap reaction exists for the two groups,
// in either order.
func (d *Dispatcher) Overlaps(a, b Group) bool {
	return d.has(KindOverlap, a, b)
}

// Contacts reports whether a contact reaction exists for the two groups,
// in either order.
func (d *Dispatcher) Contacts(a, b Group) bool {
	return d.has(KindContact, a, b)
}

func (d *Dispatcher) has(kind string, a, b Group) bool {
	return len(d.pairs[PairChannel(kind, a, b)]) > 0 || len(d.pairs[PairChannel(kind, b, a)]) > 0
}

// EmitTick invokes every tick callback in registration order.
func (d *Dispatcher) EmitTick() {
	for _, fn := range d.tick {
		fn()
	}
}

// EmitContact delivers a contact between x and y to the matching handlers.
func (d *Dispatcher) EmitContact(x, y Body) {
	d.emit(KindContact, x, y)
}

// EmitOverlap delivers an overlap between x and y to the matching handlers.
func (d *Dispatcher) EmitOverlap(x, y Body) {
	d.emit(KindOverlap, x, y)
}

func (d *Dispatcher) emit(kind string, x, y Body) {
	for _, h := range d.pairs[PairChannel(kind, x.Group(), y.Group())] {
		h.fn(x, y)
	}
	if x.Group() == y.Group() {
		return
	}
	// Registered the other way round: swap so the handler sees its own order.
	for _, h := range d.pairs[PairChannel(kind, y.Group(), x.Group())] {
		h.fn(y, x)
	}
}

// Reset drops every registration.
func (d *Dispatcher) Reset() {
	d.tick = nil
	d.pairs = make(map[Channel][]pairHandler)
}
