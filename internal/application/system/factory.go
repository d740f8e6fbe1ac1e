package system

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/younwookim/mario/internal/domain/entity"
	"github.com/younwookim/mario/internal/infrastructure/config"
	"github.com/younwookim/mario/internal/infrastructure/scenefile"
)

var (
	// ErrDuplicatePlayer is returned when a scene already holds a player
	ErrDuplicatePlayer = errors.New("player already exists")
	// ErrUnknownObjectType is returned for an unrecognized object code
	ErrUnknownObjectType = errors.New("unknown object type")
)

// playerMarker selects the map objects that become the player
const playerMarker = "Mario"

// minTokens is the token count each object code needs, type and position
// included
var minTokens = map[entity.ObjectType]int{
	entity.ObjectTypeMario:    3,
	entity.ObjectTypeBrick:    3,
	entity.ObjectTypeGoomba:   3,
	entity.ObjectTypeCoin:     3,
	entity.ObjectTypePlatform: 9,
	entity.ObjectTypePortal:   6,
}

// ObjectFactory turns [OBJECTS] lines and map objects into entities
type ObjectFactory struct {
	physics   config.PhysicsConfig
	collision entity.CollisionProcessor
	input     entity.InputSource
	switcher  entity.SceneSwitcher
}

// NewObjectFactory creates a factory. Collaborators are handed to the
// entities that need them and may be nil.
func NewObjectFactory(physics config.PhysicsConfig, collision entity.CollisionProcessor, input entity.InputSource, switcher entity.SceneSwitcher) *ObjectFactory {
	return &ObjectFactory{
		physics:   physics,
		collision: collision,
		input:     input,
		switcher:  switcher,
	}
}

// Create builds the entity described by tokens: an object code, x, y and
// the code's extra parameters. hasPlayer rejects a second player.
func (f *ObjectFactory) Create(tokens []string, hasPlayer bool) (entity.Entity, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%d tokens: %w", len(tokens), scenefile.ErrMalformedLine)
	}

	code, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("object type %q: %w", tokens[0], scenefile.ErrMalformedLine)
	}
	typ := entity.ObjectType(code)

	need, ok := minTokens[typ]
	if !ok {
		return nil, fmt.Errorf("object type %d: %w", code, ErrUnknownObjectType)
	}
	if len(tokens) < need {
		return nil, fmt.Errorf("object type %d needs %d tokens, got %d: %w", code, need, len(tokens), scenefile.ErrMalformedLine)
	}

	nums, err := parseFloats(tokens[1:need])
	if err != nil {
		return nil, err
	}
	x, y := nums[0], nums[1]

	var obj entity.Entity
	switch typ {
	case entity.ObjectTypeMario:
		if hasPlayer {
			return nil, ErrDuplicatePlayer
		}
		obj = f.newPlayer(x, y)
	case entity.ObjectTypeBrick:
		obj = entity.NewBrick(x, y)
	case entity.ObjectTypeGoomba:
		obj = entity.NewGoomba(x, y, f.goombaParams(), f.collision)
	case entity.ObjectTypeCoin:
		obj = entity.NewCoin(x, y)
	case entity.ObjectTypePlatform:
		obj = entity.NewPlatform(x, y, nums[2], nums[3], int(nums[4]), int(nums[5]), int(nums[6]), int(nums[7]))
	case entity.ObjectTypePortal:
		obj = entity.NewPortal(x, y, nums[2], nums[3], int(nums[4]))
	}

	obj.SetPosition(x, y)
	return obj, nil
}

// CreateNamed builds the entity for a tile map object. Only objects whose
// name contains "Mario" produce one (the player); others return nil.
func (f *ObjectFactory) CreateNamed(o scenefile.MapObject, hasPlayer bool) (entity.Entity, error) {
	if !strings.Contains(o.Name, playerMarker) {
		return nil, nil
	}
	if hasPlayer {
		return nil, ErrDuplicatePlayer
	}

	p := f.newPlayer(o.X, o.Y)
	p.SetName(o.Name)
	p.SetPosition(o.X, o.Y)
	return p, nil
}

func (f *ObjectFactory) newPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(x, y, entity.PlayerParams{
		Gravity:      f.physics.Gravity,
		WalkSpeed:    f.physics.WalkSpeed,
		JumpSpeed:    f.physics.JumpSpeed,
		DeflectSpeed: f.physics.DeflectSpeed,
		DeathLine:    f.physics.DeathLine,
		DieTimeout:   f.physics.MarioDieTimeout,
	}, f.input, f.collision, f.switcher)
}

func (f *ObjectFactory) goombaParams() entity.GoombaParams {
	return entity.GoombaParams{
		Gravity:    f.physics.Gravity,
		WalkSpeed:  f.physics.GoombaSpeed,
		DieTimeout: f.physics.GoombaDieTimeout,
	}
}

func parseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, scenefile.ErrMalformedLine)
		}
		out[i] = v
	}
	return out, nil
}
