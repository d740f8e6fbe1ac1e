package scenefile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/mario/internal/domain/asset"
	"github.com/younwookim/mario/internal/domain/entity"
)

// TileSet describes the layout of a tile atlas (.tsx root attributes)
type TileSet struct {
	Spacing    int `xml:"spacing,attr"`
	Margin     int `xml:"margin,attr"`
	TileWidth  int `xml:"tilewidth,attr"`
	TileHeight int `xml:"tileheight,attr"`
	Columns    int `xml:"columns,attr"`
}

// MapObject is an entry of a TMX object group
type MapObject struct {
	Name   string
	X, Y   float64
	Width  float64
	Height float64
}

// TileMapOptions selects the atlas texture and the first sprite ID handed
// out to generated tile sprites
type TileMapOptions struct {
	TextureID     int
	FirstSpriteID int
}

// TileMap is the result of loading a TMX document
type TileMap struct {
	Tiles      []*entity.Tile
	Objects    []MapObject
	WorldWidth float64
}

type tmxMap struct {
	Width        int              `xml:"width,attr"`
	TileWidth    int              `xml:"tilewidth,attr"`
	Tilesets     []tmxTilesetRef  `xml:"tileset"`
	Layers       []tmxLayer       `xml:"layer"`
	ObjectGroups []tmxObjectGroup `xml:"objectgroup"`
}

type tmxTilesetRef struct {
	Source string `xml:"source,attr"`
}

type tmxLayer struct {
	Name    string  `xml:"name,attr"`
	Visible *string `xml:"visible,attr"`
	Width   int     `xml:"width,attr"`
	Height  int     `xml:"height,attr"`
	Data    tmxData `xml:"data"`
}

type tmxData struct {
	Encoding string `xml:"encoding,attr"`
	Text     string `xml:",chardata"`
}

type tmxObjectGroup struct {
	Objects []tmxObject `xml:"object"`
}

type tmxObject struct {
	Name    string  `xml:"name,attr"`
	X       float64 `xml:"x,attr"`
	Y       float64 `xml:"y,attr"`
	Width   float64 `xml:"width,attr"`
	Height  float64 `xml:"height,attr"`
	Visible *string `xml:"visible,attr"`
}

// LoadTileMap reads a TMX document, registers one sprite per non-empty cell
// of its first tile layer and returns the resulting tiles and map objects.
// An unreadable document is an error; a layer that cannot be built is logged
// and yields no tiles.
func LoadTileMap(fsys fs.FS, file string, reg *asset.Registry, opts TileMapOptions, log logrus.FieldLogger) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile map %s: %w", file, err)
	}

	var m tmxMap
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse tile map %s: %w", file, err)
	}

	log = log.WithField("file", file)
	tm := &TileMap{
		WorldWidth: float64(m.Width),
		Objects:    mapObjects(&m, log),
	}
	if m.TileWidth > 0 {
		tm.WorldWidth = float64(m.Width * m.TileWidth)
	}

	tiles, err := buildTiles(fsys, path.Dir(file), &m, reg, opts)
	if err != nil {
		log.WithError(err).Error("failed to load tile layer")
		return tm, nil
	}
	tm.Tiles = tiles

	log.WithField("tiles", len(tm.Tiles)).Info("loaded tile map")
	return tm, nil
}

// buildTiles converts the first tile layer. Returns nil tiles and no error
// for an absent or hidden layer.
func buildTiles(fsys fs.FS, dir string, m *tmxMap, reg *asset.Registry, opts TileMapOptions) ([]*entity.Tile, error) {
	if len(m.Layers) == 0 {
		return nil, nil
	}
	layer := &m.Layers[0]
	if layer.hidden() {
		return nil, nil
	}

	grid, err := layer.grid()
	if err != nil {
		return nil, err
	}

	if len(m.Tilesets) == 0 {
		return nil, fmt.Errorf("no tileset reference: %w", ErrMissingAsset)
	}
	ts, err := LoadTileSet(fsys, path.Join(dir, m.Tilesets[0].Source))
	if err != nil {
		return nil, err
	}
	if ts.Columns <= 0 {
		return nil, fmt.Errorf("tileset has %d columns: %w", ts.Columns, ErrMalformedLine)
	}

	tex := reg.Textures.Get(opts.TextureID)
	if tex == nil {
		return nil, fmt.Errorf("tile map texture %d: %w", opts.TextureID, ErrMissingAsset)
	}

	var tiles []*entity.Tile
	spriteID := opts.FirstSpriteID
	for row := 0; row < layer.Height; row++ {
		for col := 0; col < layer.Width; col++ {
			index := grid[row*layer.Width+col]
			if index == 0 {
				continue
			}

			atlasCol, atlasRow := AtlasCell(index, ts.Columns)
			left, top, right, bottom := ts.CellRect(atlasCol, atlasRow)
			reg.Sprites.Add(spriteID, left, top, right, bottom, tex)

			tiles = append(tiles, entity.NewTile(col, row, ts.TileWidth, ts.TileHeight, spriteID))
			spriteID++
		}
	}
	return tiles, nil
}

// hidden reports visible="0". A missing attribute means visible.
func (l *tmxLayer) hidden() bool {
	if l.Visible == nil {
		return false
	}
	v, err := strconv.Atoi(strings.TrimSpace(*l.Visible))
	return err == nil && v == 0
}

// grid parses the CSV payload into width*height tile indices
func (l *tmxLayer) grid() ([]int, error) {
	if l.Data.Encoding != "" && l.Data.Encoding != "csv" {
		return nil, fmt.Errorf("layer %q: unsupported encoding %q", l.Name, l.Data.Encoding)
	}

	cells := strings.Split(strings.TrimSpace(l.Data.Text), ",")
	if len(cells) != l.Width*l.Height {
		return nil, fmt.Errorf("layer %q has %d cells, want %dx%d: %w",
			l.Name, len(cells), l.Width, l.Height, ErrMalformedLine)
	}

	grid := make([]int, len(cells))
	for i, c := range cells {
		n, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return nil, fmt.Errorf("layer %q cell %d: %w", l.Name, i, ErrMalformedLine)
		}
		grid[i] = n
	}
	return grid, nil
}

// mapObjects flattens the object groups. Objects carrying a visible
// attribute are dropped whatever its value.
func mapObjects(m *tmxMap, log logrus.FieldLogger) []MapObject {
	var out []MapObject
	for _, group := range m.ObjectGroups {
		for _, o := range group.Objects {
			if o.Visible != nil {
				log.WithField("object", o.Name).Debug("skipping object with visible attribute")
				continue
			}
			out = append(out, MapObject{
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			})
		}
	}
	return out
}

// LoadTileSet reads a .tsx tileset descriptor
func LoadTileSet(fsys fs.FS, file string) (*TileSet, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("tileset %s: %w", file, ErrMissingAsset)
		}
		return nil, fmt.Errorf("failed to read tileset %s: %w", file, err)
	}

	var ts TileSet
	if err := xml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("failed to parse tileset %s: %w", file, err)
	}
	return &ts, nil
}

// AtlasCell maps a 1-based tile index to a 0-based atlas (column, row).
// An index that is an exact multiple of columns maps to column == columns,
// matching the tile sets this loader was written against.
func AtlasCell(index, columns int) (col, row int) {
	if index%columns > 0 {
		return index%columns - 1, index / columns
	}
	return columns, index/columns - 1
}

// CellRect returns the inclusive pixel rectangle of an atlas cell
func (ts *TileSet) CellRect(col, row int) (left, top, right, bottom int) {
	left = ts.Margin + col*(ts.TileWidth+ts.Spacing)
	top = ts.Margin + row*(ts.TileHeight+ts.Spacing)
	right = left + ts.TileWidth - 1
	bottom = top + ts.TileHeight - 1
	return left, top, right, bottom
}
