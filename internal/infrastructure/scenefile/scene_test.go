package scenefile

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) LoadAssetFile(path string) {
	h.calls = append(h.calls, "assets "+path)
}

func (h *recordingHandler) LoadTileMapFile(path string) {
	h.calls = append(h.calls, "map "+path)
}

func (h *recordingHandler) SpawnObject(tokens []string) {
	h.calls = append(h.calls, "object "+strings.Join(tokens, ","))
}

func TestParseScene_Dispatch(t *testing.T) {
	src := `# scene 1
[ASSETS]
textures/mario.txt
textures/enemies.txt

[TITLEMAP]
scenes/world-1-1.tmx
[OBJECTS]
# type x y
0	120	10
5 90 136 16 15 16 51000 52000 53000
[SETTINGS]
ignored line
[TILEMAP]
scenes/world-1-2.tmx
`
	h := &recordingHandler{}
	require.NoError(t, ParseScene(strings.NewReader(src), h))

	assert.Equal(t, []string{
		"assets textures/mario.txt",
		"assets textures/enemies.txt",
		"map scenes/world-1-1.tmx",
		"object 0,120,10",
		"object 5,90,136,16,15,16,51000,52000,53000",
		"map scenes/world-1-2.tmx",
	}, h.calls)
}

func TestParseScene_DataBeforeHeaderIgnored(t *testing.T) {
	h := &recordingHandler{}
	require.NoError(t, ParseScene(strings.NewReader("0 1 2\n[OBJECTS]\n2 3 4\n"), h))

	assert.Equal(t, []string{"object 2,3,4"}, h.calls)
}

func TestLoadScene(t *testing.T) {
	fsys := fstest.MapFS{"scenes/s.txt": {Data: []byte("[OBJECTS]\r\n1 16 16\r\n")}}
	log, _ := test.NewNullLogger()

	h := &recordingHandler{}
	require.NoError(t, LoadScene(fsys, "scenes/s.txt", h, log))
	assert.Equal(t, []string{"object 1,16,16"}, h.calls)

	assert.Error(t, LoadScene(fsys, "scenes/none.txt", h, log))
}
