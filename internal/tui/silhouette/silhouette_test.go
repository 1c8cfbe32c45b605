package silhouette

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, key string, fill func(x, y int) color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}

	f, err := os.Create(filepath.Join(dir, key+".png"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func assertShape(t *testing.T, art string, cols, rows int) {
	t.Helper()
	lines := strings.Split(art, "\n")
	require.Len(t, lines, rows)
	for _, l := range lines {
		assert.Equal(t, cols, utf8.RuneCountInString(l))
	}
}

func TestRender_TransparentImage(t *testing.T) {
	dir := t.TempDir()
	// Left half opaque, right half transparent.
	writePNG(t, dir, "rex", func(x, y int) color.NRGBA {
		if x < 20 {
			return color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		}
		return color.NRGBA{}
	})

	r, err := NewRenderer(dir, "")
	require.NoError(t, err)

	art := r.Render("rex", "Rex", 10, 5)
	assertShape(t, art, 10, 5)

	for _, l := range strings.Split(art, "\n") {
		runes := []rune(l)
		assert.Equal(t, "█████", string(runes[:5]))
		assert.Equal(t, "     ", string(runes[5:]))
	}
}

func TestRender_OpaqueImageTreatsDarkAsInk(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "human", func(x, y int) color.NRGBA {
		if y < 20 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})

	r, err := NewRenderer(dir, "")
	require.NoError(t, err)

	art := r.Render("human", "Ann", 4, 4)
	lines := strings.Split(art, "\n")
	assert.Equal(t, "████", lines[0])
	assert.Equal(t, "    ", lines[3])
}

func TestRender_FallsBackToGlyph(t *testing.T) {
	r, err := NewRenderer(t.TempDir(), "")
	require.NoError(t, err)

	art := r.Render("missing", "stegosaurus", 12, 6)
	assertShape(t, art, 12, 6)
	assert.True(t, strings.ContainsAny(art, "█▀▄"))
}

func TestRender_Cached(t *testing.T) {
	r, err := NewRenderer("", "")
	require.NoError(t, err)

	first := r.Render("a", "Alpha", 8, 4)
	second := r.Render("a", "Alpha", 8, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CacheSize())

	r.Render("a", "Alpha", 6, 3)
	assert.Equal(t, 2, r.CacheSize())
}

func TestRender_ZeroSize(t *testing.T) {
	r, err := NewRenderer("", "")
	require.NoError(t, err)
	assert.Empty(t, r.Render("a", "Alpha", 0, 3))
}

func TestNewRenderer_BadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0644))

	_, err := NewRenderer("", path)
	assert.Error(t, err)

	_, err = NewRenderer("", filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestInitial(t *testing.T) {
	assert.Equal(t, 'S', initial("stegosaurus"))
	assert.Equal(t, 'A', initial("  ann"))
	assert.Equal(t, '?', initial(""))
}
