package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/f3rmion/dinocompare/internal/dataset"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTiles(t *testing.T) []dino.Tile {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)

	h := dino.Human{Name: "Ann", Feet: 5, Inches: 6, Weight: 150, Diet: "omnivor"}
	tiles, err := dino.GenerateTiles(ds.WithNonComparable([]string{"Pigeon"}).Entries(), h, dino.NewRand(1))
	require.NoError(t, err)
	return tiles
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestHTML_MarkupContract(t *testing.T) {
	tiles := testTiles(t)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, tiles, Options{}))
	out := buf.String()

	assert.Equal(t, 9, strings.Count(out, `class="grid-item"`))
	assert.Equal(t, 9, strings.Count(out, "<h3>"))
	// Only the eight dinosaur tiles get a fact paragraph.
	assert.Equal(t, 8, strings.Count(out, "<p>"))

	assert.Contains(t, out, `src="images/triceratops.png"`)
	assert.Contains(t, out, `src="images/human.png"`)
	assert.Contains(t, out, "<h3>Ann</h3>")
	assert.Contains(t, out, "<p>All birds are dinosaurs.</p>")
}

func TestHTML_EscapesNames(t *testing.T) {
	tiles := []dino.Tile{dino.HumanTile(dino.Human{Name: "<b>Ann</b>"})}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, tiles, Options{ImagesDir: "static/img"}))

	assert.NotContains(t, buf.String(), "<b>Ann</b>")
	assert.Contains(t, buf.String(), `src="static/img/human.png"`)
}

func TestText(t *testing.T) {
	tiles := testTiles(t)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tiles))
	out := buf.String()

	assert.Contains(t, out, "[4] Ann\n")
	assert.Contains(t, out, "[8] Pigeon: All birds are dinosaurs.")
	assert.Equal(t, 2, strings.Count(out, "\n\n"))
}

func TestJSON(t *testing.T) {
	tiles := testTiles(t)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, tiles))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 9)

	assert.Equal(t, "human", decoded[4]["kind"])
	assert.Equal(t, "human", decoded[4]["image_key"])
	_, hasFact := decoded[4]["fact"]
	assert.False(t, hasFact)
	assert.Equal(t, "tyrannosaurus rex", decoded[1]["image_key"])
}

func TestWrite_Dispatch(t *testing.T) {
	tiles := testTiles(t)
	for _, f := range []Format{FormatText, FormatJSON, FormatHTML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, tiles, Options{}))
		assert.NotEmpty(t, buf.String(), "format %s", f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, Format("pdf"), tiles, Options{}))
}
