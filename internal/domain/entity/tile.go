package entity

// Tile is a static grid cell drawn from a tile atlas sprite
type Tile struct {
	Col, Row      int
	Width, Height int
	SpriteID      int
}

// NewTile creates a tile at grid cell (col, row)
func NewTile(col, row, width, height, spriteID int) *Tile {
	return &Tile{Col: col, Row: row, Width: width, Height: height, SpriteID: spriteID}
}

// PixelCenter returns the world position of the tile's center
func (t *Tile) PixelCenter() (x, y float64) {
	x = float64(t.Col*t.Width) + float64(t.Width)/2
	y = float64(t.Row*t.Height) + float64(t.Height)/2
	return x, y
}

// Render draws the tile's sprite
func (t *Tile) Render(r Renderer) {
	x, y := t.PixelCenter()
	r.DrawSprite(t.SpriteID, x, y)
}
