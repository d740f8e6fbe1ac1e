package entity

// EntityID identifies an entity within a scene (never recycled, 0 is "nil")
type EntityID uint32

// Kind tags the concrete variant behind an Entity
type Kind int

const (
	KindPlayer Kind = iota
	KindBrick
	KindGoomba
	KindCoin
	KindPlatform
	KindPortal
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindBrick:
		return "Brick"
	case KindGoomba:
		return "Goomba"
	case KindCoin:
		return "Coin"
	case KindPlatform:
		return "Platform"
	case KindPortal:
		return "Portal"
	default:
		return "Unknown"
	}
}

// ObjectType is the integer type code used in scene files
type ObjectType int

const (
	ObjectTypeMario    ObjectType = 0
	ObjectTypeBrick    ObjectType = 1
	ObjectTypeGoomba   ObjectType = 2
	ObjectTypeCoin     ObjectType = 4
	ObjectTypePlatform ObjectType = 5
	ObjectTypePortal   ObjectType = 50
)

// Rect is an axis-aligned box in world pixels
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the box width
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the box height
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Overlaps reports whether two boxes share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Renderer draws registry-backed visuals in world coordinates.
// Sprites and animations are drawn centered on (x, y).
type Renderer interface {
	DrawSprite(spriteID int, x, y float64)
	DrawAnimation(animID int, x, y float64)
	DrawBox(r Rect)
}

// CollisionEvent describes a contact found by a CollisionProcessor.
// Nx/Ny give the contact normal seen from the moving entity:
// Ny < 0 means it landed on top of Other.
type CollisionEvent struct {
	Other  Entity
	Nx, Ny float64
}

// CollisionProcessor moves an entity by its velocity and reports contacts
// against the frame's candidate list
type CollisionProcessor interface {
	Process(e Entity, dt float64, coObjects []Entity)
}

// SceneSwitcher is implemented by the scene runtime so entities can
// request transitions from inside Update
type SceneSwitcher interface {
	SwitchScene(id int)
	RestartScene()
}

// Input is the directional state read once per frame
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputSource provides the player's input
type InputSource interface {
	Input() Input
}
