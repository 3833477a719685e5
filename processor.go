package iconize

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/iconize/imop"
)

// Mode selects the drawing strategy used to produce the icon.
type Mode string

const (
	// VectorShapes rasterizes the shape list in a fixed, pre-defined order.
	VectorShapes Mode = "vector"
	// GlyphText draws a single Unicode glyph centered on the canvas.
	GlyphText Mode = "glyph"
)

// Rendering defaults.
const (
	// DefaultGlyph is the glyph drawn when none is provided.
	DefaultGlyph = "🚂"
	// DefaultFontScale is the glyph point size expressed as a fraction of the icon size.
	DefaultFontScale = 0.85
)

// Processor options
type Processor struct {
	Size       int
	Mode       Mode
	Shapes     []Shape
	Glyph      string
	FontPath   string
	FontScale  float64
	GlyphColor color.NRGBA
	BaseSize   int
}

// Render produces the icon raster at the requested size on a fully
// transparent canvas. When BaseSize is set to a different size the icon is
// first rendered once at the base size and then resampled, which keeps the
// visual appearance consistent across an icon set.
func (p *Processor) Render() (*image.NRGBA, error) {
	if p.Size <= 0 {
		return nil, fmt.Errorf("invalid icon size: %d", p.Size)
	}

	if p.BaseSize > 0 && p.BaseSize != p.Size {
		base := *p
		base.Size = p.BaseSize
		base.BaseSize = 0

		img, err := base.Render()
		if err != nil {
			return nil, err
		}
		return Resample(img, p.Size), nil
	}

	switch p.Mode {
	case GlyphText:
		return p.renderGlyph()
	case VectorShapes, "":
		return p.renderShapes()
	default:
		return nil, fmt.Errorf("unsupported rendering mode: %s", p.Mode)
	}
}

// renderShapes fills the draw operations in order onto a transparent canvas.
// Later operations paint over earlier ones, so the window cut-outs are plain
// fills in the background color on top of the train body.
func (p *Processor) renderShapes() (*image.NRGBA, error) {
	shapes := p.Shapes
	if shapes == nil {
		shapes = TrainShapes()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))
	op := imop.InitOp()
	op.Set(imop.SrcOver)

	for i := range shapes {
		sh := &shapes[i]
		op.DrawMask(canvas, sh.Fill, sh.Mask(p.Size))
	}
	return canvas, nil
}

// Resample derives a size x size icon from an already rendered base image
// using Lanczos filtering. The base image can be reused across calls to
// produce every size of an icon set from a single render.
func Resample(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
