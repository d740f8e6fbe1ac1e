package system

import "github.com/younwookim/mario/internal/domain/entity"

// contactEpsilon ignores overlaps left behind by floating point push-out so
// an entity resting on a block is not treated as walking into it
const contactEpsilon = 0.01

// CollisionSystem moves entities by their velocity against the frame's
// candidate list. Movement is resolved one axis at a time: blocking
// candidates push the mover out, collidable ones only report contact.
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Process implements entity.CollisionProcessor. Contacts are delivered to
// e.OnCollisionWith after the move completes, in candidate order per axis.
func (s *CollisionSystem) Process(e entity.Entity, dt float64, coObjects []entity.Entity) {
	vx, vy := e.Speed()
	before := e.BoundingBox()

	var events []entity.CollisionEvent
	events = s.moveX(e, vx*dt, coObjects, events)
	events = s.moveY(e, vy*dt, coObjects, events)
	events = s.touch(e, before, vx, vy, coObjects, events)

	for _, ev := range events {
		e.OnCollisionWith(ev)
	}
}

// moveX moves e horizontally and pushes it out of blocking candidates
func (s *CollisionSystem) moveX(e entity.Entity, dx float64, coObjects []entity.Entity, events []entity.CollisionEvent) []entity.CollisionEvent {
	if dx == 0 {
		return events
	}

	x, y := e.Position()
	e.SetPosition(x+dx, y)

	for _, o := range coObjects {
		if !s.blocks(e, o) {
			continue
		}
		box, other := e.BoundingBox(), o.BoundingBox()
		if !penetrates(box, other) {
			continue
		}

		x, y = e.Position()
		if dx > 0 {
			e.SetPosition(x-(box.Right-other.Left), y)
			events = append(events, entity.CollisionEvent{Other: o, Nx: -1})
		} else {
			e.SetPosition(x+(other.Right-box.Left), y)
			events = append(events, entity.CollisionEvent{Other: o, Nx: 1})
		}
	}
	return events
}

// moveY moves e vertically and pushes it out of blocking candidates.
// Landing on top reports Ny < 0.
func (s *CollisionSystem) moveY(e entity.Entity, dy float64, coObjects []entity.Entity, events []entity.CollisionEvent) []entity.CollisionEvent {
	if dy == 0 {
		return events
	}

	x, y := e.Position()
	e.SetPosition(x, y+dy)

	for _, o := range coObjects {
		if !s.blocks(e, o) {
			continue
		}
		box, other := e.BoundingBox(), o.BoundingBox()
		if !penetrates(box, other) {
			continue
		}

		x, y = e.Position()
		if dy > 0 {
			e.SetPosition(x, y-(box.Bottom-other.Top))
			events = append(events, entity.CollisionEvent{Other: o, Ny: -1})
		} else {
			e.SetPosition(x, y+(other.Bottom-box.Top))
			events = append(events, entity.CollisionEvent{Other: o, Ny: 1})
		}
	}
	return events
}

// touch reports overlaps with non-blocking collidable candidates. A contact
// counts as from above when e was clear of the other's top before moving
// down onto it. A stationary overlap reports a zero normal.
func (s *CollisionSystem) touch(e entity.Entity, before entity.Rect, vx, vy float64, coObjects []entity.Entity, events []entity.CollisionEvent) []entity.CollisionEvent {
	box := e.BoundingBox()
	for _, o := range coObjects {
		if !s.candidate(e, o) || o.IsBlocking() || !o.IsCollidable() {
			continue
		}
		other := o.BoundingBox()
		if !box.Overlaps(other) {
			continue
		}

		ev := entity.CollisionEvent{Other: o}
		switch {
		case vy > 0 && before.Bottom <= other.Top+contactEpsilon:
			ev.Ny = -1
		case vy < 0 && before.Top >= other.Bottom-contactEpsilon:
			ev.Ny = 1
		case vx > 0:
			ev.Nx = -1
		case vx < 0:
			ev.Nx = 1
		}
		events = append(events, ev)
	}
	return events
}

func (s *CollisionSystem) candidate(e, o entity.Entity) bool {
	return o != nil && o != e && !o.IsDeleted()
}

func (s *CollisionSystem) blocks(e, o entity.Entity) bool {
	return s.candidate(e, o) && o.IsBlocking()
}

// penetrates is Overlaps with a tolerance on every edge
func penetrates(a, b entity.Rect) bool {
	return a.Left < b.Right-contactEpsilon && b.Left < a.Right-contactEpsilon &&
		a.Top < b.Bottom-contactEpsilon && b.Top < a.Bottom-contactEpsilon
}
