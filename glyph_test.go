package iconize

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// missingFont points to a font file which is guaranteed not to exist.
func missingFont(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.ttf")
}

func TestGlyph_FallbackOnMissingFont(t *testing.T) {
	assert := assert.New(t)

	for _, size := range iconSizes {
		p := &Processor{Size: size, Mode: GlyphText, Glyph: "A", FontPath: missingFont(t)}

		img, err := p.Render()
		assert.NoError(err, "a font load failure should be recovered with the builtin face")
		assert.Equal(size, img.Bounds().Dx())
		assert.Equal(size, img.Bounds().Dy())
	}
}

func TestGlyph_CornersTransparent(t *testing.T) {
	assert := assert.New(t)

	size := 64
	p := &Processor{Size: size, Mode: GlyphText, Glyph: "A", FontPath: missingFont(t)}
	img, err := p.Render()
	assert.NoError(err)

	for _, pt := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		assert.Equal(uint8(0), img.NRGBAAt(pt[0], pt[1]).A)
	}
}

func TestGlyph_CenteredOnInkedBox(t *testing.T) {
	assert := assert.New(t)

	size := 64
	p := &Processor{Size: size, Mode: GlyphText, Glyph: "A", FontPath: missingFont(t)}
	img, err := p.Render()
	assert.NoError(err)

	minX, minY, maxX, maxY := inkBounds(img)
	assert.Less(minX, maxX, "the glyph should leave some ink on the canvas")

	// The inked bounding box is centered, the advance box is not.
	cx := float64(minX+maxX+1) / 2
	cy := float64(minY+maxY+1) / 2
	assert.InDelta(float64(size)/2, cx, 2)
	assert.InDelta(float64(size)/2, cy, 2)
}

func TestGlyph_DefaultGlyph(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Size: 48, Mode: GlyphText, FontPath: missingFont(t)}
	img, err := p.Render()
	assert.NoError(err)
	assert.Equal(48, img.Bounds().Dx())
}

func TestGlyph_Deterministic(t *testing.T) {
	assert := assert.New(t)

	fontPath := missingFont(t)
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		p := &Processor{Size: 48, Mode: GlyphText, Glyph: "A", FontPath: fontPath}
		img, err := p.Render()
		assert.NoError(err)

		var buf bytes.Buffer
		assert.NoError(png.Encode(&buf, img))
		outputs = append(outputs, buf.Bytes())
	}
	assert.True(bytes.Equal(outputs[0], outputs[1]))
}

// inkBounds returns the bounding box of the pixels with non-zero alpha.
func inkBounds(img *image.NRGBA) (minX, minY, maxX, maxY int) {
	b := img.Bounds()
	minX, minY = b.Max.X, b.Max.Y
	maxX, maxY = -1, -1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY
}
