package main

import (
	"embed"
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/application/game"
	"github.com/younwookim/mario/internal/application/scene"
	"github.com/younwookim/mario/internal/application/scene/play"
	"github.com/younwookim/mario/internal/application/system"
	"github.com/younwookim/mario/internal/domain/asset"
	"github.com/younwookim/mario/internal/infrastructure/config"
	"github.com/younwookim/mario/internal/infrastructure/logger"
	"github.com/younwookim/mario/internal/infrastructure/scenefile"
	"github.com/younwookim/mario/internal/infrastructure/texture"
	"github.com/younwookim/mario/internal/infrastructure/watch"
)

//go:embed assets
var assetsFS embed.FS

func main() {
	// Parse command line flags
	assetsDir := flag.String("assets", "", "Load assets from this directory instead of the embedded set")
	configName := flag.String("config", "game.yaml", "Game config file, relative to the assets root")
	watchFlag := flag.Bool("watch", false, "Reload the current scene when asset files change (needs -assets)")
	flag.Parse()

	log := logger.New()

	loader, err := newLoader(*assetsDir)
	if err != nil {
		log.WithError(err).Fatal("failed to open assets")
	}
	cfg, err := loader.LoadGame(*configName)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	assets := asset.NewRegistry()
	loaded := texture.LoadAll(loader.FS(), cfg.Textures, assets.Textures, log)
	log.WithField("textures", loaded).Info("textures loaded")

	directory, start := buildScenes(cfg, loader.FS(), assets, log)

	g := game.New(start, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, log)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))

	if *watchFlag {
		if *assetsDir == "" {
			log.Warn("-watch needs -assets; hot reload disabled")
		} else {
			w, err := watch.New(log, watchDirs(*assetsDir, cfg)...)
			if err != nil {
				log.WithError(err).Fatal("failed to start file watcher")
			}
			defer func() { _ = w.Close() }()
			g.WatchReloads(w.Reloads())
		}
	}
	log.WithField("scenes", directory.IDs()).Info("starting game")

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*max(cfg.Display.Scale, 1),
		cfg.Display.ScreenHeight*max(cfg.Display.Scale, 1))
	ebiten.SetWindowTitle("Mario")
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("game stopped")
		os.Exit(1)
	}
}

// newLoader reads from dir, or from the embedded assets when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub, "assets"), nil
}

// buildScenes registers one scene per config entry and returns the start scene
func buildScenes(cfg *config.GameConfig, fsys fs.FS, assets *asset.Registry, log logrus.FieldLogger) (*scene.Directory, scene.Scene) {
	directory := scene.NewDirectory()
	deps := play.Deps{
		FS:        fsys,
		Assets:    assets,
		Physics:   cfg.Physics,
		Input:     system.NewInputSystem(system.DefaultKeyBindings()),
		Collision: system.NewCollisionSystem(),
		Camera:    system.NewCamera(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight)),
		Directory: directory,
		TileMap: scenefile.TileMapOptions{
			TextureID:     cfg.TileMap.TextureID,
			FirstSpriteID: cfg.TileMap.FirstSpriteID,
		},
		Log: log,
	}

	for _, sc := range cfg.Scenes {
		directory.Register(sc.ID, play.New(sc.ID, sc.Path, deps))
	}
	start, _ := directory.Lookup(cfg.StartScene)
	return directory, start
}

// watchDirs lists the assets root and every directory holding a configured
// scene or texture
func watchDirs(root string, cfg *config.GameConfig) []string {
	seen := map[string]bool{".": true}
	for _, sc := range cfg.Scenes {
		seen[path.Dir(sc.Path)] = true
	}
	for _, tex := range cfg.Textures {
		seen[path.Dir(tex.Path)] = true
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, filepath.Join(root, filepath.FromSlash(d)))
	}
	sort.Strings(dirs)
	return dirs
}
