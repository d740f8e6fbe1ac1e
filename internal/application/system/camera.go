package system

import "github.com/younwookim/mario/internal/domain/entity"

// Camera is the top-left corner of the viewport in world coordinates
type Camera struct {
	X, Y           float64
	ViewportWidth  float64
	ViewportHeight float64
}

// NewCamera creates a camera at the origin
func NewCamera(viewportWidth, viewportHeight float64) *Camera {
	return &Camera{ViewportWidth: viewportWidth, ViewportHeight: viewportHeight}
}

// FollowCamera centers cam on the player. A dead player leaves the camera
// where it was. X is clamped to [0, worldWidth - ViewportWidth/2], never
// below 0; Y is not clamped. A worldWidth of 0 (no tile map) leaves the
// right edge open.
func FollowCamera(cam *Camera, player entity.Entity, worldWidth float64) {
	if cam == nil || player == nil {
		return
	}
	if player.State() == entity.PlayerStateDie {
		return
	}

	px, py := player.Position()
	x := px - cam.ViewportWidth/2
	y := py - cam.ViewportHeight/2

	if worldWidth > 0 && x+cam.ViewportWidth/2 > worldWidth {
		x = worldWidth - cam.ViewportWidth/2
	}
	// the left edge wins when the world is narrower than half the viewport
	if x < 0 {
		x = 0
	}

	cam.X = x
	cam.Y = y
}

// WorldToScreen converts a world position to viewport coordinates
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
