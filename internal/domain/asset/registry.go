package asset

// Registry bundles the three stores so they can be injected as one service.
type Registry struct {
	Textures   *Textures
	Sprites    *Sprites
	Animations *Animations
}

// NewRegistry creates a registry with empty stores.
func NewRegistry() *Registry {
	return &Registry{
		Textures:   NewTextures(),
		Sprites:    NewSprites(),
		Animations: NewAnimations(),
	}
}
