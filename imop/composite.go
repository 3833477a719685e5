// Package imop implements the Porter-Duff composition operators the icon
// renderer paints with. The image/draw core package implements only the
// source and source-over-destination operators and neither one can paint a
// uniform fill through a separate coverage mask in place, which is how the
// anti-aliased shape layers are applied onto the icon canvas.
package imop

import (
	"image"
	"image/color"

	"github.com/esimov/iconize/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
)

// Composite holds the currently active composition operator.
type Composite struct {
	current string
	ops     []string
}

func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
		},
	}
}

// Set activates one of the supported composition operators.
// Unsupported operator names leave the current one untouched.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// DrawMask paints the fill color through the coverage mask onto dst using
// the active operator. The source alpha at each pixel is the fill alpha
// attenuated by the mask coverage; dst and mask must be of equal size.
func (op *Composite) DrawMask(dst *image.NRGBA, fill color.NRGBA, mask *image.Alpha) {
	dx, dy := dst.Bounds().Dx(), dst.Bounds().Dy()

	rsn := float64(fill.R) / 255
	gsn := float64(fill.G) / 255
	bsn := float64(fill.B) / 255
	fan := float64(fill.A) / 255

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			cov := float64(mask.AlphaAt(x, y).A) / 255
			if cov == 0 && op.current != Copy {
				continue
			}
			asn := fan * cov

			d := dst.NRGBAAt(x, y)
			rbn := float64(d.R) / 255
			gbn := float64(d.G) / 255
			bbn := float64(d.B) / 255
			abn := float64(d.A) / 255

			// The composition formulas operate on premultiplied values.
			var rn, gn, bn, an float64
			switch op.current {
			case Copy:
				rn = rsn * asn
				gn = gsn * asn
				bn = bsn * asn
				an = asn
			case SrcOver:
				rn = rsn*asn + rbn*abn*(1-asn)
				gn = gsn*asn + gbn*abn*(1-asn)
				bn = bsn*asn + bbn*abn*(1-asn)
				an = asn + abn*(1-asn)
			case DstOver:
				rn = rbn*abn + rsn*asn*(1-abn)
				gn = gbn*abn + gsn*asn*(1-abn)
				bn = bbn*abn + bsn*asn*(1-abn)
				an = abn + asn*(1-abn)
			}

			// Back to straight alpha for the NRGBA destination.
			if an > 0 {
				rn, gn, bn = rn/an, gn/an, bn/an
			}

			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}
