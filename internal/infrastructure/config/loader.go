package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem scene and asset paths are resolved against
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadGame loads and validates a game config file
func (l *Loader) LoadGame(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return &cfg, nil
}

// Validate checks the fields the game cannot start without
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate %d", c.Display.Framerate)
	}
	if _, ok := c.Scene(c.StartScene); !ok {
		return fmt.Errorf("start scene %d is not listed", c.StartScene)
	}
	return nil
}
