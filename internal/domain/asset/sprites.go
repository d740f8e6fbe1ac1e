package asset

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a rectangle inside a texture atlas.
// Right and Bottom are inclusive pixel coordinates.
type Sprite struct {
	Left, Top     int
	Right, Bottom int
	Texture       *ebiten.Image
}

// Bounds returns the sprite rectangle in image.Rectangle form (exclusive max).
func (s Sprite) Bounds() image.Rectangle {
	return image.Rect(s.Left, s.Top, s.Right+1, s.Bottom+1)
}

// Width returns the sprite width in pixels.
func (s Sprite) Width() int { return s.Right - s.Left + 1 }

// Height returns the sprite height in pixels.
func (s Sprite) Height() int { return s.Bottom - s.Top + 1 }

// Image returns the sub-image of the texture covered by the sprite.
func (s Sprite) Image() *ebiten.Image {
	if s.Texture == nil {
		return nil
	}
	sub, ok := s.Texture.SubImage(s.Bounds()).(*ebiten.Image)
	if !ok {
		return nil
	}
	return sub
}

// Sprites maps sprite IDs to atlas rectangles.
type Sprites struct {
	mu      sync.RWMutex
	sprites map[int]Sprite
}

// NewSprites creates an empty sprite registry.
func NewSprites() *Sprites {
	return &Sprites{sprites: make(map[int]Sprite)}
}

// Add registers a sprite, replacing any previous entry with the same id.
func (s *Sprites) Add(id, left, top, right, bottom int, tex *ebiten.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprites[id] = Sprite{Left: left, Top: top, Right: right, Bottom: bottom, Texture: tex}
}

// Get looks up a sprite by id.
func (s *Sprites) Get(id int) (Sprite, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.sprites[id]
	return sp, ok
}

// Len returns the number of registered sprites.
func (s *Sprites) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sprites)
}
