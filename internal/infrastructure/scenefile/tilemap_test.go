package scenefile

import (
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTileSet = `<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="world" tilewidth="16" tileheight="16" spacing="1" margin="2" tilecount="32" columns="8">
 <image source="tiles.png" width="138" height="70"/>
</tileset>`

func testMap(layer string, objects string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="3" height="2" tilewidth="16" tileheight="16">
 <tileset firstgid="1" source="world.tsx"/>
 ` + layer + `
 <objectgroup id="2" name="objects">` + objects + `</objectgroup>
</map>`
}

const testLayer = `<layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
1,0,8,
9,16,0
</data>
 </layer>`

func TestAtlasCell(t *testing.T) {
	tests := []struct {
		index, columns int
		wantCol        int
		wantRow        int
	}{
		{1, 8, 0, 0},
		{7, 8, 6, 0},
		{8, 8, 8, 0}, // exact multiple maps to the sentinel column
		{9, 8, 0, 1},
		{16, 8, 8, 1},
		{17, 8, 0, 2},
		{3, 1, 1, 2},
	}

	for _, tt := range tests {
		col, row := AtlasCell(tt.index, tt.columns)
		assert.Equal(t, tt.wantCol, col, "column of %d/%d", tt.index, tt.columns)
		assert.Equal(t, tt.wantRow, row, "row of %d/%d", tt.index, tt.columns)
	}
}

func TestTileSet_CellRect(t *testing.T) {
	ts := &TileSet{Spacing: 1, Margin: 2, TileWidth: 16, TileHeight: 16, Columns: 8}

	l, tp, r, b := ts.CellRect(0, 0)
	assert.Equal(t, []int{2, 2, 17, 17}, []int{l, tp, r, b})

	l, tp, r, b = ts.CellRect(2, 1)
	assert.Equal(t, []int{36, 19, 51, 34}, []int{l, tp, r, b})
}

func TestLoadTileMap(t *testing.T) {
	fsys := fstest.MapFS{
		"scenes/world.tmx": {Data: []byte(testMap(testLayer, ""))},
		"scenes/world.tsx": {Data: []byte(testTileSet)},
	}
	reg := newTestRegistry(30)
	log, _ := test.NewNullLogger()

	tm, err := LoadTileMap(fsys, "scenes/world.tmx", reg, TileMapOptions{TextureID: 30, FirstSpriteID: 9000}, log)
	require.NoError(t, err)

	assert.Equal(t, 48.0, tm.WorldWidth)
	require.Len(t, tm.Tiles, 4)

	// row-major order, empty cells skipped, sprite IDs consecutive
	wantCells := [][3]int{{0, 0, 9000}, {2, 0, 9001}, {0, 1, 9002}, {1, 1, 9003}}
	for i, want := range wantCells {
		tile := tm.Tiles[i]
		assert.Equal(t, want[0], tile.Col)
		assert.Equal(t, want[1], tile.Row)
		assert.Equal(t, want[2], tile.SpriteID)
		assert.Equal(t, 16, tile.Width)
		assert.Equal(t, 16, tile.Height)
	}

	// index 8 -> sentinel column 8, row 0
	sp, ok := reg.Sprites.Get(9001)
	require.True(t, ok)
	assert.Equal(t, 2+8*17, sp.Left)
	assert.Equal(t, 2, sp.Top)
	assert.Equal(t, sp.Left+15, sp.Right)
	assert.Same(t, reg.Textures.Get(30), sp.Texture)

	// index 9 -> column 0, row 1
	sp, ok = reg.Sprites.Get(9002)
	require.True(t, ok)
	assert.Equal(t, 2, sp.Left)
	assert.Equal(t, 19, sp.Top)
}

func TestLoadTileMap_LayerProblemsYieldNoTiles(t *testing.T) {
	tests := []struct {
		name    string
		layer   string
		tileset bool
		texture bool
		logged  bool
	}{
		{
			name:    "hidden layer",
			layer:   `<layer width="3" height="2" visible="0"><data encoding="csv">1,1,1,1,1,1</data></layer>`,
			tileset: true,
			texture: true,
		},
		{
			name:    "no layer",
			layer:   "",
			tileset: true,
			texture: true,
		},
		{
			name:    "cell count mismatch",
			layer:   `<layer width="3" height="2"><data encoding="csv">1,1,1</data></layer>`,
			tileset: true,
			texture: true,
			logged:  true,
		},
		{
			name:    "non-numeric cell",
			layer:   `<layer width="3" height="2"><data encoding="csv">1,a,1,1,1,1</data></layer>`,
			tileset: true,
			texture: true,
			logged:  true,
		},
		{
			name:    "missing tileset",
			layer:   testLayer,
			tileset: false,
			texture: true,
			logged:  true,
		},
		{
			name:    "missing texture",
			layer:   testLayer,
			tileset: true,
			texture: false,
			logged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"scenes/world.tmx": {Data: []byte(testMap(tt.layer, ""))},
			}
			if tt.tileset {
				fsys["scenes/world.tsx"] = &fstest.MapFile{Data: []byte(testTileSet)}
			}
			reg := newTestRegistry()
			if tt.texture {
				reg = newTestRegistry(30)
			}
			log, hook := test.NewNullLogger()

			tm, err := LoadTileMap(fsys, "scenes/world.tmx", reg, TileMapOptions{TextureID: 30, FirstSpriteID: 1}, log)
			require.NoError(t, err, "layer problems do not fail the map")

			assert.Empty(t, tm.Tiles)
			assert.Equal(t, 0, reg.Sprites.Len())
			if tt.logged {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			} else {
				for _, e := range hook.AllEntries() {
					assert.NotEqual(t, logrus.ErrorLevel, e.Level)
				}
			}
		})
	}
}

func TestLoadTileMap_Objects(t *testing.T) {
	objects := `
  <object id="1" name="Mario" x="32" y="100" width="16" height="16"/>
  <object id="2" name="Hidden" x="1" y="1" width="16" height="16" visible="0"/>
  <object id="3" name="Shown" x="2" y="2" width="16" height="16" visible="1"/>
  <object id="4" name="Pipe" x="64.5" y="80" width="32" height="48"/>`
	fsys := fstest.MapFS{
		"world.tmx": {Data: []byte(testMap("", objects))},
	}
	log, _ := test.NewNullLogger()

	tm, err := LoadTileMap(fsys, "world.tmx", newTestRegistry(), TileMapOptions{}, log)
	require.NoError(t, err)

	// any visible attribute drops the object, whatever its value
	require.Len(t, tm.Objects, 2)
	assert.Equal(t, MapObject{Name: "Mario", X: 32, Y: 100, Width: 16, Height: 16}, tm.Objects[0])
	assert.Equal(t, "Pipe", tm.Objects[1].Name)
	assert.Equal(t, 64.5, tm.Objects[1].X)
}

func TestLoadTileMap_DocumentErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmx": {Data: []byte("<map><layer>")},
	}
	log, _ := test.NewNullLogger()

	_, err := LoadTileMap(fsys, "missing.tmx", newTestRegistry(), TileMapOptions{}, log)
	assert.Error(t, err)

	_, err = LoadTileMap(fsys, "bad.tmx", newTestRegistry(), TileMapOptions{}, log)
	assert.Error(t, err)
}

func TestLoadTileSet(t *testing.T) {
	fsys := fstest.MapFS{"world.tsx": {Data: []byte(testTileSet)}}

	ts, err := LoadTileSet(fsys, "world.tsx")
	require.NoError(t, err)
	assert.Equal(t, TileSet{Spacing: 1, Margin: 2, TileWidth: 16, TileHeight: 16, Columns: 8}, *ts)

	_, err = LoadTileSet(fsys, "other.tsx")
	assert.ErrorIs(t, err, ErrMissingAsset)
}
