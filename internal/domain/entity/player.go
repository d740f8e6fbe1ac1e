package entity

// Player states
const (
	PlayerStateIdle         = 0
	PlayerStateWalkingRight = 100
	PlayerStateWalkingLeft  = 200
	PlayerStateDie          = 500
)

// Player animation IDs
const (
	AniMarioIdleRight    = 400
	AniMarioIdleLeft     = 401
	AniMarioWalkingRight = 500
	AniMarioWalkingLeft  = 501
	AniMarioJumpRight    = 600
	AniMarioJumpLeft     = 601
	AniMarioDie          = 999
)

const (
	playerWidth  = 12
	playerHeight = 15
)

// PlayerParams configures player movement (pixels, seconds)
type PlayerParams struct {
	Gravity      float64
	WalkSpeed    float64
	JumpSpeed    float64
	DeflectSpeed float64
	DeathLine    float64 // falling below this y kills the player; 0 disables
	DieTimeout   float64 // seconds in the die state before the scene restarts
}

// Player is the scene's controllable entity
type Player struct {
	Object
	params     PlayerParams
	input      InputSource
	collision  CollisionProcessor
	switcher   SceneSwitcher
	onGround   bool
	dieElapsed float64
	restarted  bool
	Coins      int
}

// NewPlayer creates an idle player centered on (x, y). Any collaborator may be nil.
func NewPlayer(x, y float64, params PlayerParams, input InputSource, collision CollisionProcessor, switcher SceneSwitcher) *Player {
	p := &Player{
		Object:    NewObject(x, y),
		params:    params,
		input:     input,
		collision: collision,
		switcher:  switcher,
	}
	p.SetState(PlayerStateIdle)
	return p
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) IsCollidable() bool { return p.state != PlayerStateDie }

// OnGround reports whether the player landed on a blocking entity this frame
func (p *Player) OnGround() bool { return p.onGround }

func (p *Player) BoundingBox() Rect { return p.centeredBox(playerWidth, playerHeight) }

// SetState applies the velocity change that goes with each state. The die
// state is terminal.
func (p *Player) SetState(state int) {
	if p.state == PlayerStateDie {
		return
	}
	p.Object.SetState(state)
	switch state {
	case PlayerStateIdle:
		p.VX = 0
	case PlayerStateWalkingRight:
		p.VX = p.params.WalkSpeed
		p.Nx = 1
	case PlayerStateWalkingLeft:
		p.VX = -p.params.WalkSpeed
		p.Nx = -1
	case PlayerStateDie:
		p.VX = 0
		p.VY = -p.params.DeflectSpeed
		p.dieElapsed = 0
	}
}

func (p *Player) Update(dt float64, coObjects []Entity) {
	if p.state == PlayerStateDie {
		p.updateDead(dt)
		return
	}

	var in Input
	if p.input != nil {
		in = p.input.Input()
	}
	switch {
	case in.Left && !in.Right:
		p.SetState(PlayerStateWalkingLeft)
	case in.Right && !in.Left:
		p.SetState(PlayerStateWalkingRight)
	default:
		p.SetState(PlayerStateIdle)
	}
	if in.Jump && p.onGround {
		p.VY = -p.params.JumpSpeed
	}

	p.VY += p.params.Gravity * dt
	p.onGround = false
	if p.collision != nil {
		p.collision.Process(p, dt, coObjects)
	} else {
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}

	if p.params.DeathLine > 0 && p.Y > p.params.DeathLine {
		p.SetState(PlayerStateDie)
	}
}

func (p *Player) updateDead(dt float64) {
	p.dieElapsed += dt
	p.VY += p.params.Gravity * dt
	p.Y += p.VY * dt

	if p.restarted || p.switcher == nil || p.dieElapsed < p.params.DieTimeout {
		return
	}
	p.restarted = true
	p.switcher.RestartScene()
}

func (p *Player) OnCollisionWith(e CollisionEvent) {
	if e.Other.IsBlocking() {
		if e.Ny != 0 {
			p.VY = 0
			if e.Ny < 0 {
				p.onGround = true
			}
		} else if e.Nx != 0 {
			p.VX = 0
		}
	}

	switch other := e.Other.(type) {
	case *Goomba:
		p.touchGoomba(other, e)
	case *Coin:
		other.Delete()
		p.Coins++
	case *Portal:
		if p.switcher != nil {
			p.switcher.SwitchScene(other.SceneID)
		}
	}
}

func (p *Player) touchGoomba(g *Goomba, e CollisionEvent) {
	if g.State() == GoombaStateDie {
		return
	}
	if e.Ny < 0 {
		g.SetState(GoombaStateDie)
		p.VY = -p.params.DeflectSpeed
		return
	}
	p.SetState(PlayerStateDie)
}

func (p *Player) Render(r Renderer) {
	r.DrawAnimation(p.animation(), p.X, p.Y)
}

func (p *Player) animation() int {
	right := p.Nx >= 0
	switch {
	case p.state == PlayerStateDie:
		return AniMarioDie
	case !p.onGround && p.VY != 0:
		if right {
			return AniMarioJumpRight
		}
		return AniMarioJumpLeft
	case p.VX != 0:
		if right {
			return AniMarioWalkingRight
		}
		return AniMarioWalkingLeft
	default:
		if right {
			return AniMarioIdleRight
		}
		return AniMarioIdleLeft
	}
}
