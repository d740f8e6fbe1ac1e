// Package texture decodes image files into ebiten textures.
package texture

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/domain/asset"
	"github.com/younwookim/mario/internal/infrastructure/config"
)

// Load decodes the image at path
func Load(fsys fs.FS, path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty texture path")
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadAll loads every configured texture into textures. Failures are logged
// and skipped. Returns the number of textures loaded.
func LoadAll(fsys fs.FS, entries []config.TextureConfig, textures *asset.Textures, log logrus.FieldLogger) int {
	loaded := 0
	for _, e := range entries {
		entry := log.WithFields(logrus.Fields{"texture": e.ID, "file": e.Path})

		img, err := Load(fsys, e.Path)
		if err != nil {
			entry.WithError(err).Error("failed to load texture")
			continue
		}
		textures.Add(e.ID, img)
		loaded++

		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		entry.WithFields(logrus.Fields{"width": w, "height": h}).Debug("loaded texture")
	}
	return loaded
}
