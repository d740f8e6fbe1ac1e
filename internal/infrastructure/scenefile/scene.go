package scenefile

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
)

const (
	sceneSectionAssets Section = iota + 1
	sceneSectionTileMap
	sceneSectionObjects
)

// [TITLEMAP] is the header existing scene files use; [TILEMAP] is accepted
// as an alias.
var sceneHeaders = map[string]Section{
	"[ASSETS]":   sceneSectionAssets,
	"[TITLEMAP]": sceneSectionTileMap,
	"[TILEMAP]":  sceneSectionTileMap,
	"[OBJECTS]":  sceneSectionObjects,
}

// SceneHandler receives the data lines of a scene file
type SceneHandler interface {
	// LoadAssetFile is called with the path of each [ASSETS] line
	LoadAssetFile(path string)
	// LoadTileMapFile is called with the path of each [TITLEMAP] line
	LoadTileMapFile(path string)
	// SpawnObject is called with the tokens of each [OBJECTS] line
	SpawnObject(tokens []string)
}

// LoadScene opens a scene file and feeds it to h
func LoadScene(fsys fs.FS, path string, h SceneHandler, log logrus.FieldLogger) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open scene file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	log.WithField("file", path).Info("loading scene")
	if err := ParseScene(f, h); err != nil {
		return fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	log.WithField("file", path).Info("done loading scene")
	return nil
}

// ParseScene dispatches each data line of r to h in file order
func ParseScene(r io.Reader, h SceneHandler) error {
	return scanSections(r, sceneHeaders, func(sec Section, _ int, tokens []string) {
		switch sec {
		case sceneSectionAssets:
			h.LoadAssetFile(tokens[0])
		case sceneSectionTileMap:
			h.LoadTileMapFile(tokens[0])
		case sceneSectionObjects:
			h.SpawnObject(tokens)
		}
	})
}
