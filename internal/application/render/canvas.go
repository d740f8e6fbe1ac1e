// Package render draws registry-backed sprites and animations onto an ebiten
// screen in world coordinates.
package render

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/mario/internal/application/system"
	"github.com/younwookim/mario/internal/domain/asset"
	"github.com/younwookim/mario/internal/domain/entity"
)

var (
	colorBoxFill   = color.RGBA{R: 255, G: 0, B: 0, A: 48}
	colorBoxStroke = color.RGBA{R: 255, G: 0, B: 0, A: 200}
)

// Canvas implements entity.Renderer for one frame. Unknown sprite and
// animation IDs draw nothing.
type Canvas struct {
	screen  *ebiten.Image
	assets  *asset.Registry
	cam     *system.Camera
	clockMs int64

	// Drawn counts the sprites blitted this frame
	Drawn int
}

// NewCanvas creates a canvas offset by cam. clock is the scene time used to
// pick animation frames.
func NewCanvas(screen *ebiten.Image, assets *asset.Registry, cam *system.Camera, clock time.Duration) *Canvas {
	if cam == nil {
		cam = &system.Camera{}
	}
	return &Canvas{
		screen:  screen,
		assets:  assets,
		cam:     cam,
		clockMs: clock.Milliseconds(),
	}
}

// DrawSprite draws the sprite centered on (x, y)
func (c *Canvas) DrawSprite(spriteID int, x, y float64) {
	sp, ok := c.assets.Sprites.Get(spriteID)
	if !ok || sp.Texture == nil {
		return
	}

	sx, sy := c.cam.WorldToScreen(x, y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		math.Floor(sx-float64(sp.Width())/2),
		math.Floor(sy-float64(sp.Height())/2),
	)
	c.screen.DrawImage(sp.Image(), op)
	c.Drawn++
}

// DrawAnimation draws the animation's current frame centered on (x, y)
func (c *Canvas) DrawAnimation(animID int, x, y float64) {
	anim, ok := c.assets.Animations.Get(animID)
	if !ok {
		return
	}
	spriteID, ok := anim.FrameAt(c.clockMs)
	if !ok {
		return
	}
	c.DrawSprite(spriteID, x, y)
}

// DrawBox draws a translucent outlined rectangle
func (c *Canvas) DrawBox(r entity.Rect) {
	x, y := c.cam.WorldToScreen(r.Left, r.Top)
	w, h := float32(r.Width()), float32(r.Height())
	vector.FillRect(c.screen, float32(x), float32(y), w, h, colorBoxFill, false)
	vector.StrokeRect(c.screen, float32(x), float32(y), w, h, 1.0, colorBoxStroke, false)
}
