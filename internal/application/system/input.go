package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/mario/internal/domain/entity"
)

// KeyBindings lists the keys mapped to each action. Any bound key triggers
// the action.
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings uses WASD with the arrow keys and space as alternates
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
	}
}

// InputSystem reads the keyboard once per call and implements
// entity.InputSource
type InputSystem struct {
	keys        KeyBindings
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// NewInputSystem creates a new input system reading ebiten's keyboard state
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{
		keys:        keys,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Input reports held direction keys and a jump key pressed this tick
func (s *InputSystem) Input() entity.Input {
	return entity.Input{
		Left:  anyKey(s.keys.Left, s.pressed),
		Right: anyKey(s.keys.Right, s.pressed),
		Jump:  anyKey(s.keys.Jump, s.justPressed),
	}
}

func anyKey(keys []ebiten.Key, fn func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
