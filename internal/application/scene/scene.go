// Package scene defines the Scene interface for game screens.
//
// Each playable level implements the Scene interface to handle its own
// update logic and rendering. Scenes are registered in a Directory under
// the integer IDs that scene files and portals refer to.
package scene

import (
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returning the current scene itself restarts it.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Loads the scene's content.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Releases everything the scene created.
	OnExit()
}

// Directory maps scene IDs to scenes
type Directory struct {
	mu     sync.RWMutex
	scenes map[int]Scene
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{scenes: make(map[int]Scene)}
}

// Register adds or replaces the scene for id
func (d *Directory) Register(id int, s Scene) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scenes[id] = s
}

// Lookup returns the scene registered for id
func (d *Directory) Lookup(id int) (Scene, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.scenes[id]
	return s, ok
}

// IDs returns the registered IDs in ascending order
func (d *Directory) IDs() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]int, 0, len(d.scenes))
	for id := range d.scenes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
