// Package silhouette renders tile images as block art using half-block characters.
package silhouette

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype/truetype"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// threshold is the brightness above which a pixel counts as "on".
const threshold = uint8(40)

// Renderer turns <key>.png files into half-block art, falling back to the
// label's initial when no image exists.
type Renderer struct {
	imagesDir string
	face      font.Face
	cache     *gocache.Cache
}

// NewRenderer creates a renderer reading images from imagesDir. When fontPath
// names a TrueType font it is used for the fallback glyphs, otherwise a
// built-in bitmap face is used.
func NewRenderer(imagesDir, fontPath string) (*Renderer, error) {
	face := font.Face(basicfont.Face7x13)
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font: %w", err)
		}
		face = truetype.NewFace(f, &truetype.Options{Size: 64, DPI: 72})
	}

	return &Renderer{
		imagesDir: imagesDir,
		face:      face,
		cache:     gocache.New(gocache.NoExpiration, 0),
	}, nil
}

// Render returns cols x rows of block art for the tile with the given image key.
func (r *Renderer) Render(key, label string, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	cacheKey := fmt.Sprintf("%s|%s|%dx%d", key, label, cols, rows)
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.(string)
	}

	art := r.renderImage(key, cols, rows)
	if art == "" {
		art = r.renderGlyph(label, cols, rows)
	}

	r.cache.Set(cacheKey, art, gocache.NoExpiration)
	return art
}

// CacheSize returns the number of memoized renderings.
func (r *Renderer) CacheSize() int {
	return r.cache.ItemCount()
}

// renderImage loads <imagesDir>/<key>.png. It returns "" when the file is
// missing or unreadable.
func (r *Renderer) renderImage(key string, cols, rows int) string {
	if r.imagesDir == "" || key == "" {
		return ""
	}

	img, err := imaging.Open(filepath.Join(r.imagesDir, key+".png"))
	if err != nil {
		return ""
	}

	scaled := imaging.Resize(img, cols, rows*2, imaging.Box)
	return imageToHalfBlocks(mask(scaled), cols, rows)
}

// mask converts an image to a grayscale mask where bright means "ink".
// Images with transparency use their alpha channel; opaque images treat
// dark pixels as ink.
func mask(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	transparent := false
	for y := b.Min.Y; y < b.Max.Y && !transparent; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A < 0xff {
				transparent = true
				break
			}
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			var v uint8
			if transparent {
				v = c.A
			} else {
				lum := color.GrayModel.Convert(c).(color.Gray).Y
				v = 0xff - lum
			}
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: v})
		}
	}
	return out
}

// renderGlyph draws the first letter of label and scales it to the target size.
func (r *Renderer) renderGlyph(label string, cols, rows int) string {
	ch := initial(label)

	bounds, _, ok := r.face.GlyphBounds(ch)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 1
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(padding-bounds.Min.X.Floor(), padding-bounds.Min.Y.Floor()),
	}
	d.DrawString(string(ch))

	return imageToHalfBlocks(scaleDown(srcImg, cols, rows*2), cols, rows)
}

func initial(label string) rune {
	for _, c := range label {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return unicode.ToUpper(c)
		}
	}
	return '?'
}

// scaleDown scales a grayscale image using area averaging. Sources smaller
// than the target are stretched by nearest neighbour.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := int(float64(dx+1) * xRatio)
			sy2 := int(float64(dy+1) * yRatio)

			if sx2 <= sx1 {
				sx2 = sx1 + 1
			}
			if sy2 <= sy1 {
				sy2 = sy1 + 1
			}
			if sx2 > srcWidth {
				sx2 = srcWidth
			}
			if sy2 > srcHeight {
				sy2 = srcHeight
			}

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	b := img.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}
