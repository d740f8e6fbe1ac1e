package entity

// Animation IDs referenced by the built-in variants. Asset files register
// sequences under these IDs.
const (
	AniBrick         = 10000
	AniCoin          = 11000
	AniGoombaWalking = 5000
	AniGoombaDie     = 5001
)

const (
	brickSize  = 16
	coinWidth  = 10
	coinHeight = 16
)

// Brick is a static blocking block
type Brick struct {
	Object
}

// NewBrick creates a brick centered on (x, y)
func NewBrick(x, y float64) *Brick {
	return &Brick{Object: NewObject(x, y)}
}

func (b *Brick) Kind() Kind { return KindBrick }

func (b *Brick) BoundingBox() Rect { return b.centeredBox(brickSize, brickSize) }

func (b *Brick) Render(r Renderer) { r.DrawAnimation(AniBrick, b.X, b.Y) }

// Coin is a collectible removed on contact with the player
type Coin struct {
	Object
}

// NewCoin creates a coin centered on (x, y)
func NewCoin(x, y float64) *Coin {
	return &Coin{Object: NewObject(x, y)}
}

func (c *Coin) Kind() Kind { return KindCoin }

func (c *Coin) IsBlocking() bool { return false }

func (c *Coin) IsCollidable() bool { return !c.deleted }

func (c *Coin) BoundingBox() Rect { return c.centeredBox(coinWidth, coinHeight) }

func (c *Coin) Render(r Renderer) { r.DrawAnimation(AniCoin, c.X, c.Y) }

// Platform is a horizontal strip of cells drawn from three sprites
type Platform struct {
	Object
	CellWidth    float64
	CellHeight   float64
	Length       int
	SpriteBegin  int
	SpriteMiddle int
	SpriteEnd    int
}

// NewPlatform creates a platform whose first cell is centered on (x, y)
func NewPlatform(x, y, cellWidth, cellHeight float64, length, spriteBegin, spriteMiddle, spriteEnd int) *Platform {
	return &Platform{
		Object:       NewObject(x, y),
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		Length:       length,
		SpriteBegin:  spriteBegin,
		SpriteMiddle: spriteMiddle,
		SpriteEnd:    spriteEnd,
	}
}

func (p *Platform) Kind() Kind { return KindPlatform }

func (p *Platform) BoundingBox() Rect {
	left := p.X - p.CellWidth/2
	top := p.Y - p.CellHeight/2
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + p.CellWidth*float64(p.Length),
		Bottom: top + p.CellHeight,
	}
}

func (p *Platform) Render(r Renderer) {
	if p.Length <= 0 {
		return
	}
	x := p.X
	r.DrawSprite(p.SpriteBegin, x, p.Y)
	x += p.CellWidth
	for i := 1; i < p.Length-1; i++ {
		r.DrawSprite(p.SpriteMiddle, x, p.Y)
		x += p.CellWidth
	}
	if p.Length > 1 {
		r.DrawSprite(p.SpriteEnd, x, p.Y)
	}
}

// Portal switches to SceneID when the player touches it
type Portal struct {
	Object
	Width   float64
	Height  float64
	SceneID int
}

// NewPortal creates a portal spanning (left, top)-(right, bottom)
func NewPortal(left, top, right, bottom float64, sceneID int) *Portal {
	return &Portal{
		Object:  NewObject(left, top),
		Width:   right - left,
		Height:  bottom - top,
		SceneID: sceneID,
	}
}

func (p *Portal) Kind() Kind { return KindPortal }

func (p *Portal) IsBlocking() bool { return false }

func (p *Portal) IsCollidable() bool { return true }

func (p *Portal) BoundingBox() Rect { return p.centeredBox(p.Width, p.Height) }

func (p *Portal) Render(r Renderer) { r.DrawBox(p.BoundingBox()) }
