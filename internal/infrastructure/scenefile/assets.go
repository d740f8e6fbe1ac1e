package scenefile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/domain/asset"
)

const (
	assetSectionSprites Section = iota + 1
	assetSectionAnimations
)

var assetHeaders = map[string]Section{
	"[SPRITES]":    assetSectionSprites,
	"[ANIMATIONS]": assetSectionAnimations,
}

// LoadAssets opens an asset file and registers its sprites and animations
func LoadAssets(fsys fs.FS, path string, reg *asset.Registry, log logrus.FieldLogger) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open asset file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	log.WithField("file", path).Info("loading assets")
	if err := ParseAssets(f, reg, log.WithField("file", path)); err != nil {
		return fmt.Errorf("failed to read asset file %s: %w", path, err)
	}
	log.WithField("file", path).Info("done loading assets")
	return nil
}

// ParseAssets reads [SPRITES] and [ANIMATIONS] sections from r.
// Only read errors are returned; bad lines are skipped.
func ParseAssets(r io.Reader, reg *asset.Registry, log logrus.FieldLogger) error {
	return scanSections(r, assetHeaders, func(sec Section, lineNo int, tokens []string) {
		var err error
		switch sec {
		case assetSectionSprites:
			err = parseSprite(tokens, reg)
		case assetSectionAnimations:
			err = parseAnimation(tokens, reg)
		}

		if err == nil {
			return
		}
		entry := log.WithField("line", lineNo).WithError(err)
		if errors.Is(err, ErrMalformedLine) {
			entry.Debug("skipping asset line")
			return
		}
		entry.Error("skipping asset line")
	})
}

// parseSprite handles "id left top right bottom textureId"
func parseSprite(tokens []string, reg *asset.Registry) error {
	if len(tokens) < 6 {
		return ErrMalformedLine
	}
	v, err := atoiAll(tokens[:6])
	if err != nil {
		return err
	}

	id, left, top, right, bottom, texID := v[0], v[1], v[2], v[3], v[4], v[5]
	tex := reg.Textures.Get(texID)
	if tex == nil {
		return fmt.Errorf("texture %d for sprite %d: %w", texID, id, ErrMissingAsset)
	}

	reg.Sprites.Add(id, left, top, right, bottom, tex)
	return nil
}

// parseAnimation handles "animId spriteId frameTime [spriteId frameTime ...]".
// A trailing unpaired token is ignored.
func parseAnimation(tokens []string, reg *asset.Registry) error {
	if len(tokens) < 3 {
		return ErrMalformedLine
	}
	pairs := (len(tokens) - 1) / 2
	v, err := atoiAll(tokens[:1+pairs*2])
	if err != nil {
		return err
	}

	anim := &asset.Animation{}
	for i := 1; i+1 < len(v); i += 2 {
		anim.Add(v[i], v[i+1])
	}

	reg.Animations.Add(v[0], anim)
	return nil
}
