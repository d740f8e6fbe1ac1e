// Package asset holds the process-wide, ID-keyed stores for textures,
// sprites and animations.
//
// Stores are written while scene assets load and read every frame while
// rendering. Writes are serialized so a reload triggered off the game
// goroutine cannot race a lookup.
package asset

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Textures maps texture IDs to shared images.
type Textures struct {
	mu     sync.RWMutex
	images map[int]*ebiten.Image
}

// NewTextures creates an empty texture store.
func NewTextures() *Textures {
	return &Textures{images: make(map[int]*ebiten.Image)}
}

// Add stores an image under id, replacing any previous one.
func (t *Textures) Add(id int, img *ebiten.Image) {
	if img == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.images[id] = img
}

// Get returns the image for id, or nil when it was never added.
func (t *Textures) Get(id int) *ebiten.Image {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.images[id]
}

// Len returns the number of stored textures.
func (t *Textures) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.images)
}
