package iconize

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const fontDPI = 72

// emojiFontPaths lists where the platform color emoji font usually lives.
var emojiFontPaths = map[string][]string{
	"darwin": {
		"/System/Library/Fonts/Apple Color Emoji.ttc",
	},
	"linux": {
		"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
		"/usr/share/fonts/noto-emoji/NotoColorEmoji.ttf",
		"/usr/share/fonts/google-noto-emoji/NotoColorEmoji.ttf",
	},
	"windows": {
		`C:\Windows\Fonts\seguiemj.ttf`,
	},
}

// renderGlyph draws the glyph centered on a transparent canvas. The glyph is
// centered on its inked bounding box rather than on the nominal advance box,
// which keeps narrow glyphs visually centered.
func (p *Processor) renderGlyph() (*image.NRGBA, error) {
	glyph := p.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}
	scale := p.FontScale
	if scale <= 0 {
		scale = DefaultFontScale
	}
	points := scale * float64(p.Size)

	face, err := p.loadFace(points)
	if err != nil {
		// A missing or unparsable font is substituted with the builtin
		// face. The load failure is deliberately not surfaced.
		face, err = builtinFace(points)
		if err != nil {
			return nil, err
		}
	}
	defer face.Close()

	canvas := image.NewNRGBA(image.Rect(0, 0, p.Size, p.Size))

	bounds, _ := font.BoundString(face, glyph)
	gw := (bounds.Max.X - bounds.Min.X).Ceil()
	gh := (bounds.Max.Y - bounds.Min.Y).Ceil()

	col := p.GlyphColor
	if col == (color.NRGBA{}) {
		col = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.P(
			(p.Size-gw)/2-bounds.Min.X.Floor(),
			(p.Size-gh)/2-bounds.Min.Y.Floor(),
		),
	}
	d.DrawString(glyph)

	return canvas, nil
}

// loadFace opens the configured font file or, when no path is set, probes
// the known platform emoji font locations. It returns the first face which
// loads without error.
func (p *Processor) loadFace(points float64) (font.Face, error) {
	paths := emojiFontPaths[runtime.GOOS]
	if p.FontPath != "" {
		paths = []string{p.FontPath}
	}

	var lastErr error = fmt.Errorf("no font candidates for %s", runtime.GOOS)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		fnt, err := parseFont(data, path)
		if err != nil {
			lastErr = err
			continue
		}
		face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    points,
			DPI:     fontDPI,
			Hinting: font.HintingNone,
		})
		if err != nil {
			lastErr = err
			continue
		}
		return face, nil
	}
	return nil, lastErr
}

// parseFont parses a single font or the first font of a collection.
func parseFont(data []byte, path string) (*opentype.Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	default:
		return opentype.Parse(data)
	}
}

// builtinFace is the last resort of the font fallback chain.
func builtinFace(points float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    points,
		DPI:     fontDPI,
		Hinting: font.HintingNone,
	})
}
