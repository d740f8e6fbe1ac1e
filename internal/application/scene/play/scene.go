// Package play provides the scene runtime: it builds a scene's entities and
// tiles from its scene file and drives them frame by frame.
package play

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/application/render"
	"github.com/younwookim/mario/internal/application/scene"
	"github.com/younwookim/mario/internal/application/state"
	"github.com/younwookim/mario/internal/application/system"
	"github.com/younwookim/mario/internal/domain/asset"
	"github.com/younwookim/mario/internal/domain/entity"
	"github.com/younwookim/mario/internal/infrastructure/config"
	"github.com/younwookim/mario/internal/infrastructure/scenefile"
)

var colorBG = color.RGBA{156, 252, 240, 255}

// Deps are the collaborators shared by every scene
type Deps struct {
	FS        fs.FS
	Assets    *asset.Registry
	Physics   config.PhysicsConfig
	Input     entity.InputSource
	Collision entity.CollisionProcessor
	Camera    *system.Camera
	Directory *scene.Directory
	TileMap   scenefile.TileMapOptions
	Log       logrus.FieldLogger
}

// Scene is a level loaded from a scene file. It implements scene.Scene,
// scenefile.SceneHandler and entity.SceneSwitcher.
type Scene struct {
	id      int
	path    string
	deps    Deps
	factory *system.ObjectFactory
	log     logrus.FieldLogger

	objects    []entity.Entity
	tiles      []*entity.Tile
	worldWidth float64
	playerID   entity.EntityID
	lastID     entity.EntityID
	next       scene.Scene
	state      state.SceneState
	clock      time.Duration
}

// New creates an unloaded scene reading path from deps.FS
func New(id int, path string, deps Deps) *Scene {
	if deps.Camera == nil {
		deps.Camera = &system.Camera{}
	}
	s := &Scene{
		id:   id,
		path: path,
		deps: deps,
		log:  deps.Log.WithFields(logrus.Fields{"scene": id, "file": path}),
	}
	s.factory = system.NewObjectFactory(deps.Physics, deps.Collision, deps.Input, s)
	return s
}

// ID returns the scene's directory ID
func (s *Scene) ID() int { return s.id }

// State returns the lifecycle state
func (s *Scene) State() state.SceneState { return s.state }

// Objects returns the live entity collection. Callers must not modify it.
func (s *Scene) Objects() []entity.Entity { return s.objects }

// Tiles returns the tiles built from the scene's tile map
func (s *Scene) Tiles() []*entity.Tile { return s.tiles }

// WorldWidth is the tile map width in pixels, 0 without a tile map
func (s *Scene) WorldWidth() float64 { return s.worldWidth }

// Clock is the time simulated since the scene was loaded
func (s *Scene) Clock() time.Duration { return s.clock }

// Load reads the scene file and builds the scene. A file that cannot be
// opened is logged and leaves the scene empty but loaded.
func (s *Scene) Load() {
	if s.state != state.StateUnloaded {
		s.Unload()
	}
	s.playerID = 0
	s.next = nil
	s.clock = 0

	if err := scenefile.LoadScene(s.deps.FS, s.path, s, s.log); err != nil {
		s.log.WithError(err).Error("failed to load scene")
	}
	s.state = state.StateLoaded

	s.log.WithFields(logrus.Fields{
		"objects": len(s.objects),
		"tiles":   len(s.tiles),
	}).Info("scene loaded")
}

// Unload deletes every entity and clears the entity and tile collections
// and the player reference. Safe to call repeatedly.
func (s *Scene) Unload() {
	for _, o := range s.objects {
		if o != nil {
			o.Delete()
		}
	}
	clear(s.objects)
	s.objects = nil
	s.tiles = nil
	s.worldWidth = 0
	s.playerID = 0

	if s.state != state.StateUnloaded {
		s.log.Info("scene unloaded")
	}
	s.state = state.StateUnloaded
}

// LoadAssetFile implements scenefile.SceneHandler
func (s *Scene) LoadAssetFile(path string) {
	if err := scenefile.LoadAssets(s.deps.FS, path, s.deps.Assets, s.log); err != nil {
		s.log.WithError(err).Error("failed to load asset file")
	}
}

// LoadTileMapFile implements scenefile.SceneHandler. Markup objects naming
// the player are spawned at the front of the entity collection.
func (s *Scene) LoadTileMapFile(path string) {
	tm, err := scenefile.LoadTileMap(s.deps.FS, path, s.deps.Assets, s.deps.TileMap, s.log)
	if err != nil {
		s.log.WithError(err).Error("failed to load tile map")
		return
	}

	s.tiles = append(s.tiles, tm.Tiles...)
	s.worldWidth = tm.WorldWidth

	for _, mo := range tm.Objects {
		obj, err := s.factory.CreateNamed(mo, s.Player() != nil)
		if err != nil {
			s.log.WithError(err).WithField("object", mo.Name).Error("failed to create map object")
			continue
		}
		if obj == nil {
			continue
		}
		s.insertFront(obj)
	}
}

// SpawnObject implements scenefile.SceneHandler
func (s *Scene) SpawnObject(tokens []string) {
	obj, err := s.factory.Create(tokens, s.Player() != nil)
	if err != nil {
		entry := s.log.WithError(err).WithField("line", strings.Join(tokens, " "))
		if errors.Is(err, scenefile.ErrMalformedLine) {
			entry.Debug("skipping malformed object line")
		} else {
			entry.Error("failed to create object")
		}
		return
	}
	s.add(obj)
}

func (s *Scene) add(obj entity.Entity) {
	s.adopt(obj)
	s.objects = append(s.objects, obj)
}

func (s *Scene) insertFront(obj entity.Entity) {
	s.adopt(obj)
	s.objects = slices.Insert(s.objects, 0, obj)
}

// adopt assigns the next entity ID and records the player reference
func (s *Scene) adopt(obj entity.Entity) {
	s.lastID++
	obj.SetID(s.lastID)
	if obj.Kind() == entity.KindPlayer {
		s.playerID = obj.ID()
		s.log.WithField("id", obj.ID()).Debug("player created")
	}
}

// Player returns the scene's player, nil when there is none
func (s *Scene) Player() entity.Entity {
	if s.playerID == 0 {
		return nil
	}
	if len(s.objects) > 0 && s.objects[0] != nil && s.objects[0].ID() == s.playerID {
		return s.objects[0]
	}
	for _, o := range s.objects {
		if o != nil && o.ID() == s.playerID {
			return o
		}
	}
	return nil
}

// Update runs one frame (implements scene.Scene). Every entity sees the
// same candidate list: the collection as it was before the frame, minus the
// first slot. An entity may unload the scene from inside its update; the
// frame then ends without camera update or purge.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	if !s.state.CanUpdate() {
		return s.takeNext(), nil
	}
	s.state = state.StateRunning
	s.clock += time.Duration(dt * float64(time.Second))

	var coObjects []entity.Entity
	if len(s.objects) > 1 {
		coObjects = slices.Clone(s.objects[1:])
	}

	for i := 0; i < len(s.objects); i++ {
		s.objects[i].Update(dt, coObjects)
	}

	player := s.Player()
	if player == nil {
		return s.takeNext(), nil
	}

	system.FollowCamera(s.deps.Camera, player, s.worldWidth)
	s.purge()

	return s.takeNext(), nil
}

func (s *Scene) purge() {
	var removed int
	s.objects, removed = PurgeDeleted(s.objects)
	if removed == 0 {
		return
	}
	if s.Player() == nil {
		s.playerID = 0
	}
	s.log.WithField("removed", removed).Debug("purged deleted objects")
}

func (s *Scene) takeNext() scene.Scene {
	next := s.next
	s.next = nil
	return next
}

// SwitchScene implements entity.SceneSwitcher. The scene unloads at once
// and the next Update returns the destination. An unknown destination is
// logged and ignored.
func (s *Scene) SwitchScene(id int) {
	if s.deps.Directory == nil {
		s.log.WithField("to", id).Error("no scene directory")
		return
	}
	next, ok := s.deps.Directory.Lookup(id)
	if !ok {
		s.log.WithField("to", id).Error("unknown scene")
		return
	}
	s.log.WithField("to", id).Info("switching scene")
	s.next = next
	s.Unload()
}

// RestartScene implements entity.SceneSwitcher by switching to itself
func (s *Scene) RestartScene() {
	s.log.Info("restarting scene")
	s.next = s
	s.Unload()
}

// Draw renders tiles, then entities in collection order (implements scene.Scene)
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	canvas := render.NewCanvas(screen, s.deps.Assets, s.deps.Camera, s.clock)
	for _, t := range s.tiles {
		t.Render(canvas)
	}
	for _, o := range s.objects {
		if o != nil {
			o.Render(canvas)
		}
	}

	if p, ok := s.Player().(*entity.Player); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS %d", p.Coins), 4, 4)
	}
}

// OnEnter loads the scene (implements scene.Scene)
func (s *Scene) OnEnter() {
	s.Load()
}

// OnExit unloads the scene (implements scene.Scene)
func (s *Scene) OnExit() {
	s.Unload()
}
