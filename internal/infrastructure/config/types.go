package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig   `yaml:"display"`
	Physics    PhysicsConfig   `yaml:"physics"`
	Textures   []TextureConfig `yaml:"textures"`
	Scenes     []SceneConfig   `yaml:"scenes"`
	StartScene int             `yaml:"startScene"`
	TileMap    TileMapConfig   `yaml:"tilemap"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsConfig holds movement constants in pixels and seconds
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	WalkSpeed        float64 `yaml:"walkSpeed"`
	JumpSpeed        float64 `yaml:"jumpSpeed"`
	DeflectSpeed     float64 `yaml:"deflectSpeed"`
	GoombaSpeed      float64 `yaml:"goombaSpeed"`
	DeathLine        float64 `yaml:"deathLine"`        // 0 disables falling deaths
	GoombaDieTimeout float64 `yaml:"goombaDieTimeout"` // seconds
	MarioDieTimeout  float64 `yaml:"marioDieTimeout"`  // seconds
}

type TextureConfig struct {
	ID   int    `yaml:"id"`
	Path string `yaml:"path"`
}

type SceneConfig struct {
	ID   int    `yaml:"id"`
	Path string `yaml:"path"`
}

// TileMapConfig selects the atlas texture and the sprite ID range used for
// tiles generated from TMX layers
type TileMapConfig struct {
	TextureID     int `yaml:"textureId"`
	FirstSpriteID int `yaml:"firstSpriteId"`
}

// Scene returns the scene entry with the given id
func (c *GameConfig) Scene(id int) (SceneConfig, bool) {
	for _, s := range c.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return SceneConfig{}, false
}
