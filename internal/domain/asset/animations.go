package asset

import "sync"

// Frame is one step of an animation.
type Frame struct {
	SpriteID int
	Duration int // milliseconds
}

// Animation is an ordered, looping sequence of frames.
type Animation struct {
	Frames []Frame
}

// Add appends a frame.
func (a *Animation) Add(spriteID, duration int) {
	a.Frames = append(a.Frames, Frame{SpriteID: spriteID, Duration: duration})
}

// FrameAt returns the sprite shown at clockMs when the animation loops
// from time zero. ok is false for an empty animation.
func (a *Animation) FrameAt(clockMs int64) (spriteID int, ok bool) {
	if a == nil || len(a.Frames) == 0 {
		return 0, false
	}

	var total int64
	for _, f := range a.Frames {
		if f.Duration > 0 {
			total += int64(f.Duration)
		}
	}
	if total == 0 {
		return a.Frames[0].SpriteID, true
	}

	t := clockMs % total
	if t < 0 {
		t += total
	}
	for _, f := range a.Frames {
		if f.Duration <= 0 {
			continue
		}
		if t < int64(f.Duration) {
			return f.SpriteID, true
		}
		t -= int64(f.Duration)
	}
	return a.Frames[len(a.Frames)-1].SpriteID, true
}

// Animations maps animation IDs to frame sequences.
type Animations struct {
	mu    sync.RWMutex
	anims map[int]*Animation
}

// NewAnimations creates an empty animation registry.
func NewAnimations() *Animations {
	return &Animations{anims: make(map[int]*Animation)}
}

// Add registers an animation, replacing any previous entry with the same id.
func (a *Animations) Add(id int, anim *Animation) {
	if anim == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.anims[id] = anim
}

// Get looks up an animation by id.
func (a *Animations) Get(id int) (*Animation, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	anim, ok := a.anims[id]
	return anim, ok
}

// Len returns the number of registered animations.
func (a *Animations) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.anims)
}
