// Package game adapts the scene directory to ebiten's run loop. It owns the
// active scene and performs every enter/exit between frames.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/application/scene"
)

const defaultDT = 1.0 / 60.0

// Game is the ebiten.Game driving the active scene
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	reloads <-chan struct{}
	log     logrus.FieldLogger
}

// New enters initial and returns a game of the given logical size. The
// fixed step defaults to 60 Hz.
func New(initial scene.Scene, screenW, screenH int, log logrus.FieldLogger) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      defaultDT,
		log:     log,
	}
	g.current.OnEnter()
	return g
}

// Update applies a pending reload, steps the active scene and swaps to the
// scene it returns. A scene returning itself is exited and entered again.
func (g *Game) Update() error {
	select {
	case <-g.reloads:
		g.Reload()
	default:
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}

	if next == g.current {
		g.log.Debug("restarting scene")
	} else {
		g.log.Debug("switching scene")
	}
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical resolution fixed whatever the window size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT changes the fixed step passed to scenes, in seconds
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

func (g *Game) Current() scene.Scene {
	return g.current
}

// Reload exits and re-enters the active scene
func (g *Game) Reload() {
	g.log.Info("reloading scene")
	g.current.OnExit()
	g.current.OnEnter()
}

// WatchReloads polls ch once per Update, before the scene steps
func (g *Game) WatchReloads(ch <-chan struct{}) {
	g.reloads = ch
}
