package iconize

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

var iconSizes = []int{16, 48, 128}

func TestRender_VectorDimensions(t *testing.T) {
	for _, size := range iconSizes {
		p := &Processor{Size: size, Mode: VectorShapes}

		img, err := p.Render()
		assert.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestRender_VectorCornersTransparent(t *testing.T) {
	assert := assert.New(t)

	for _, size := range iconSizes {
		p := &Processor{Size: size, Mode: VectorShapes}

		img, err := p.Render()
		assert.NoError(err)

		for _, pt := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			assert.Equal(uint8(0), img.NRGBAAt(pt[0], pt[1]).A,
				"corner (%d,%d) at size %d should be fully transparent", pt[0], pt[1], size)
		}
	}
}

// The disc color must show up right inside the scaled margin, where neither
// the train body nor the wheels paint over it.
func TestRender_VectorDiscColorAtMargin(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Size: 16, Mode: VectorShapes}
	img, err := p.Render()
	assert.NoError(err)

	blue := color.NRGBA{R: 26, G: 82, B: 118, A: 255}
	assert.Equal(blue, img.NRGBAAt(1, 8))
	assert.Equal(blue, img.NRGBAAt(8, 1))
}

func TestRender_VectorTrainColors(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Size: 128, Mode: VectorShapes}
	img, err := p.Render()
	assert.NoError(err)

	// Disc left of the body, body above the windows, first window,
	// middle wheel and the track bar which paints over the wheel bottoms.
	assert.Equal(discBlue, img.NRGBAAt(8, 64))
	assert.Equal(bodyWhite, img.NRGBAAt(70, 48))
	assert.Equal(discBlue, img.NRGBAAt(30, 60))
	assert.Equal(wheelGray, img.NRGBAAt(35, 88))
	assert.Equal(railGray, img.NRGBAAt(64, 95))
}

func TestRender_Deterministic(t *testing.T) {
	assert := assert.New(t)

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		p := &Processor{Size: 48, Mode: VectorShapes}
		img, err := p.Render()
		assert.NoError(err)

		var buf bytes.Buffer
		assert.NoError(png.Encode(&buf, img))
		outputs = append(outputs, buf.Bytes())
	}
	assert.True(bytes.Equal(outputs[0], outputs[1]), "two identical renders should produce byte-identical PNG output")
}

func TestRender_InvalidSize(t *testing.T) {
	p := &Processor{Size: 0, Mode: VectorShapes}
	_, err := p.Render()
	assert.Error(t, err)
}

func TestRender_UnsupportedMode(t *testing.T) {
	p := &Processor{Size: 16, Mode: Mode("gradient")}
	_, err := p.Render()
	assert.Error(t, err)
}

func TestResample_FromBaseImage(t *testing.T) {
	assert := assert.New(t)

	base, err := (&Processor{Size: 48, Mode: VectorShapes}).Render()
	assert.NoError(err)

	for _, size := range []int{16, 128} {
		res := Resample(base, size)
		assert.Equal(size, res.Bounds().Dx())
		assert.Equal(size, res.Bounds().Dy())

		// The resampled image should carry real content, not a uniform fill.
		distinct := map[color.NRGBA]struct{}{}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				distinct[res.NRGBAAt(x, y)] = struct{}{}
			}
		}
		assert.Greater(len(distinct), 1)
	}
}

func TestRender_BaseSizeResampling(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Size: 16, BaseSize: 48, Mode: VectorShapes}
	img, err := p.Render()
	assert.NoError(err)
	assert.Equal(16, img.Bounds().Dx())
	assert.Equal(16, img.Bounds().Dy())
}
