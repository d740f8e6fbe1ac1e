package entity

// Goomba states
const (
	GoombaStateWalking = 100
	GoombaStateDie     = 200
)

const (
	goombaWidth     = 16
	goombaHeight    = 14
	goombaDieHeight = 7
)

// GoombaParams configures goomba movement (pixels, seconds)
type GoombaParams struct {
	Gravity    float64
	WalkSpeed  float64
	DieTimeout float64
}

// Goomba walks until it hits a wall and turns around. A stomped goomba
// flattens and deletes itself after DieTimeout.
type Goomba struct {
	Object
	params     GoombaParams
	collision  CollisionProcessor
	dieElapsed float64
}

// NewGoomba creates a walking goomba centered on (x, y)
func NewGoomba(x, y float64, params GoombaParams, collision CollisionProcessor) *Goomba {
	g := &Goomba{
		Object:    NewObject(x, y),
		params:    params,
		collision: collision,
	}
	g.SetState(GoombaStateWalking)
	return g
}

func (g *Goomba) Kind() Kind { return KindGoomba }

func (g *Goomba) IsBlocking() bool { return false }

func (g *Goomba) IsCollidable() bool { return g.state != GoombaStateDie }

func (g *Goomba) BoundingBox() Rect {
	if g.state == GoombaStateDie {
		return g.centeredBox(goombaWidth, goombaDieHeight)
	}
	return g.centeredBox(goombaWidth, goombaHeight)
}

// SetState applies the velocity change that goes with each state
func (g *Goomba) SetState(state int) {
	g.Object.SetState(state)
	switch state {
	case GoombaStateWalking:
		g.VX = -g.params.WalkSpeed
	case GoombaStateDie:
		g.dieElapsed = 0
		g.Y += float64(goombaHeight-goombaDieHeight) / 2
		g.VX = 0
		g.VY = 0
	}
}

func (g *Goomba) Update(dt float64, coObjects []Entity) {
	if g.state == GoombaStateDie {
		g.dieElapsed += dt
		if g.dieElapsed >= g.params.DieTimeout {
			g.Delete()
		}
		return
	}

	g.VY += g.params.Gravity * dt
	if g.collision == nil {
		g.X += g.VX * dt
		g.Y += g.VY * dt
		return
	}
	g.collision.Process(g, dt, coObjects)
}

func (g *Goomba) OnCollisionWith(e CollisionEvent) {
	if !e.Other.IsBlocking() {
		return
	}
	if e.Ny != 0 {
		g.VY = 0
	} else if e.Nx != 0 {
		g.VX = -g.VX
	}
}

func (g *Goomba) Render(r Renderer) {
	if g.state == GoombaStateDie {
		r.DrawAnimation(AniGoombaDie, g.X, g.Y)
		return
	}
	r.DrawAnimation(AniGoombaWalking, g.X, g.Y)
}
