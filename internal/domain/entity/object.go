package entity

// Entity is the capability set every scene object exposes
type Entity interface {
	ID() EntityID
	SetID(id EntityID)
	Kind() Kind
	Name() string
	SetName(name string)

	Position() (x, y float64)
	SetPosition(x, y float64)
	Speed() (vx, vy float64)
	SetSpeed(vx, vy float64)
	State() int
	SetState(state int)

	Delete()
	IsDeleted() bool

	// IsBlocking reports whether movers are pushed out of this entity
	IsBlocking() bool
	// IsCollidable reports whether this entity takes part in collision processing
	IsCollidable() bool

	BoundingBox() Rect
	Update(dt float64, coObjects []Entity)
	Render(r Renderer)
	OnCollisionWith(e CollisionEvent)
}

// Object holds the state shared by all variants. Variants embed it and
// override what they need.
type Object struct {
	id      EntityID
	name    string
	X, Y    float64
	VX, VY  float64
	Nx      int
	state   int
	deleted bool
}

// NewObject creates an object at (x, y) facing right with no state
func NewObject(x, y float64) Object {
	return Object{X: x, Y: y, Nx: 1, state: -1}
}

func (o *Object) ID() EntityID { return o.id }
func (o *Object) SetID(id EntityID) { o.id = id }
func (o *Object) Name() string { return o.name }
func (o *Object) SetName(name string) { o.name = name }
func (o *Object) State() int { return o.state }
func (o *Object) SetState(state int) { o.state = state }
func (o *Object) Delete() { o.deleted = true }
func (o *Object) IsDeleted() bool { return o.deleted }
func (o *Object) IsBlocking() bool { return true }
func (o *Object) IsCollidable() bool { return false }
func (o *Object) Position() (x, y float64) { return o.X, o.Y }
func (o *Object) Speed() (vx, vy float64) { return o.VX, o.VY }

func (o *Object) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
}

func (o *Object) SetSpeed(vx, vy float64) {
	o.VX = vx
	o.VY = vy
}

// Update does nothing for static objects
func (o *Object) Update(dt float64, coObjects []Entity) {}

// OnCollisionWith ignores contacts by default
func (o *Object) OnCollisionWith(e CollisionEvent) {}

// centeredBox returns a w*h box centered on the object
func (o *Object) centeredBox(w, h float64) Rect {
	return Rect{
		Left:   o.X - w/2,
		Top:    o.Y - h/2,
		Right:  o.X + w/2,
		Bottom: o.Y + h/2,
	}
}
