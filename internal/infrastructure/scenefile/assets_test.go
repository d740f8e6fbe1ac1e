package scenefile

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mario/internal/domain/asset"
)

func newTestRegistry(textureIDs ...int) *asset.Registry {
	reg := asset.NewRegistry()
	for _, id := range textureIDs {
		reg.Textures.Add(id, ebiten.NewImage(64, 64))
	}
	return reg
}

func TestParseAssets_Sprites(t *testing.T) {
	reg := newTestRegistry(0)
	log, _ := test.NewNullLogger()

	src := `# mario sprites
[SPRITES]
10001	246	154	259	181	0
10002 275 154 290 181 0
`
	require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

	sp, ok := reg.Sprites.Get(10001)
	require.True(t, ok)
	assert.Equal(t, asset.Sprite{Left: 246, Top: 154, Right: 259, Bottom: 181, Texture: reg.Textures.Get(0)}, sp)
	assert.Equal(t, 2, reg.Sprites.Len())
}

func TestParseAssets_ShortSpriteLinesAreSkipped(t *testing.T) {
	lines := []string{
		"1",
		"1 2",
		"1 2 3",
		"1 2 3 4",
		"1 2 3 4 5",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			reg := newTestRegistry(5)
			log, hook := test.NewNullLogger()

			src := "[SPRITES]\n" + line + "\n"
			require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

			assert.Equal(t, 0, reg.Sprites.Len())
			assert.Empty(t, hook.AllEntries(), "short lines are skipped silently")
		})
	}
}

func TestParseAssets_MissingTextureLogsAndContinues(t *testing.T) {
	reg := newTestRegistry(0)
	log, hook := test.NewNullLogger()

	src := `[SPRITES]
1 0 0 15 15 99
2 0 0 15 15 0
`
	require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

	_, ok := reg.Sprites.Get(1)
	assert.False(t, ok)
	_, ok = reg.Sprites.Get(2)
	assert.True(t, ok, "parsing continues after a missing texture")

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.ErrorIs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), ErrMissingAsset)
}

func TestParseAssets_Animations(t *testing.T) {
	tests := []struct {
		line       string
		wantFrames int
	}{
		{"400 10001 100", 1},
		{"500 10001 100 10002 100", 2},
		{"501 10011 100 10012 100 10013 100", 3},
		{"502 1 100 2", 1}, // unpaired trailing token
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			reg := newTestRegistry()
			log, _ := test.NewNullLogger()

			src := "[ANIMATIONS]\n" + tt.line + "\n"
			require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

			tokens := strings.Fields(tt.line)
			anim, ok := reg.Animations.Get(atoiMust(t, tokens[0]))
			require.True(t, ok)
			assert.Len(t, anim.Frames, tt.wantFrames)
			assert.Equal(t, (len(tokens)-1)/2, len(anim.Frames))
			assert.Equal(t, atoiMust(t, tokens[1]), anim.Frames[0].SpriteID)
		})
	}
}

func TestParseAssets_ShortAnimationLinesAreSkipped(t *testing.T) {
	reg := newTestRegistry()
	log, _ := test.NewNullLogger()

	src := "[ANIMATIONS]\n400\n401 10001\n"
	require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

	assert.Equal(t, 0, reg.Animations.Len())
}

func TestParseAssets_UnknownSectionIgnoresData(t *testing.T) {
	reg := newTestRegistry(0)
	log, _ := test.NewNullLogger()

	src := `[SPRITES]
1 0 0 15 15 0
[SOUNDS]
2 0 0 15 15 0
[ANIMATIONS]
10 1 100
`
	require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

	assert.Equal(t, 1, reg.Sprites.Len())
	assert.Equal(t, 1, reg.Animations.Len())
}

func TestParseAssets_NonNumericTokens(t *testing.T) {
	reg := newTestRegistry(0)
	log, hook := test.NewNullLogger()

	src := "[SPRITES]\nabc 0 0 15 15 0\n[ANIMATIONS]\n10 x 100\n"
	require.NoError(t, ParseAssets(strings.NewReader(src), reg, log))

	assert.Equal(t, 0, reg.Sprites.Len())
	assert.Equal(t, 0, reg.Animations.Len())
	assert.Empty(t, hook.AllEntries(), "malformed lines log below info")
}

func TestLoadAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"textures/mario.txt": {Data: []byte("[SPRITES]\n1 0 0 15 15 0\r\n")},
	}
	reg := newTestRegistry(0)
	log, _ := test.NewNullLogger()

	require.NoError(t, LoadAssets(fsys, "textures/mario.txt", reg, log))
	assert.Equal(t, 1, reg.Sprites.Len())

	err := LoadAssets(fsys, "textures/missing.txt", reg, log)
	assert.Error(t, err)
}

func atoiMust(t *testing.T, s string) int {
	t.Helper()
	v, err := atoiAll([]string{s})
	require.NoError(t, err)
	return v[0]
}
