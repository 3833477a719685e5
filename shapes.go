package iconize

import (
	"image"
	"image/color"

	"github.com/esimov/iconize/utils"
	"golang.org/x/image/vector"
)

// refSize is the reference grid the built-in artwork is authored on.
// Shape coordinates are scaled by size/refSize at rasterization time.
const refSize = 128.0

type ShapeType string

const (
	Ellipse     ShapeType = "ellipse"
	Rect        ShapeType = "rect"
	RoundedRect ShapeType = "rounded_rect"
	Polygon     ShapeType = "polygon"
)

// Point is a polygon vertex in reference grid coordinates.
type Point struct {
	X, Y float64
}

// Shape is a single fill operation expressed in reference grid coordinates.
// The bounding box (X0,Y0)-(X1,Y1) positions the ellipse, rect and rounded
// rect types; Points is used by polygons and Radius by the rounded corners.
type Shape struct {
	Type   ShapeType
	X0, Y0 float64
	X1, Y1 float64
	Radius float64
	Points []Point
	Fill   color.NRGBA
}

// Train icon palette.
var (
	discBlue  = color.NRGBA{R: 26, G: 82, B: 118, A: 255}
	bodyWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	wheelGray = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	railGray  = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
)

// TrainShapes returns the built-in train artwork as an ordered fill list:
// background disc, body, front wedge, window cut-outs, wheels and track.
func TrainShapes() []Shape {
	shapes := []Shape{
		{Type: Ellipse, X0: 4, Y0: 4, X1: 124, Y1: 124, Fill: discBlue},
		{Type: RoundedRect, X0: 18, Y0: 45, X1: 100, Y1: 85, Radius: 8, Fill: bodyWhite},
		{Type: Polygon, Points: []Point{{100, 45}, {115, 55}, {115, 75}, {100, 85}}, Fill: bodyWhite},
	}

	for i := 0; i < 4; i++ {
		left := 26 + float64(i)*14
		shapes = append(shapes, Shape{
			Type: RoundedRect, X0: left, Y0: 52, X1: left + 10, Y1: 68, Radius: 2, Fill: discBlue,
		})
	}

	for _, cx := range []float64{35, 58, 82} {
		shapes = append(shapes, Shape{
			Type: Ellipse, X0: cx - 7, Y0: 81, X1: cx + 7, Y1: 95, Fill: wheelGray,
		})
	}

	return append(shapes, Shape{Type: Rect, X0: 10, Y0: 94, X1: 118, Y1: 97, Fill: railGray})
}

// circleKappa is the control point distance, relative to the radius,
// of the cubic Bezier segments approximating a quarter circle.
const circleKappa = 0.5522847498

// Mask rasterizes the shape to an anti-aliased coverage mask of
// size x size pixels, scaling the reference coordinates by size/refSize.
func (sh *Shape) Mask(size int) *image.Alpha {
	s := float64(size) / refSize
	z := vector.NewRasterizer(size, size)

	switch sh.Type {
	case Ellipse:
		ellipsePath(z, sh.X0*s, sh.Y0*s, sh.X1*s, sh.Y1*s)
	case Rect:
		rectPath(z, sh.X0*s, sh.Y0*s, sh.X1*s, sh.Y1*s)
	case RoundedRect:
		roundedRectPath(z, sh.X0*s, sh.Y0*s, sh.X1*s, sh.Y1*s, sh.Radius*s)
	case Polygon:
		polygonPath(z, sh.Points, s)
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// ellipsePath builds the ellipse inscribed into the bounding box
// out of four cubic Bezier quadrants.
func ellipsePath(z *vector.Rasterizer, x0, y0, x1, y1 float64) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*circleKappa, ry*circleKappa

	z.MoveTo(float32(cx+rx), float32(cy))
	z.CubeTo(float32(cx+rx), float32(cy+ky), float32(cx+kx), float32(cy+ry), float32(cx), float32(cy+ry))
	z.CubeTo(float32(cx-kx), float32(cy+ry), float32(cx-rx), float32(cy+ky), float32(cx-rx), float32(cy))
	z.CubeTo(float32(cx-rx), float32(cy-ky), float32(cx-kx), float32(cy-ry), float32(cx), float32(cy-ry))
	z.CubeTo(float32(cx+kx), float32(cy-ry), float32(cx+rx), float32(cy-ky), float32(cx+rx), float32(cy))
	z.ClosePath()
}

func rectPath(z *vector.Rasterizer, x0, y0, x1, y1 float64) {
	z.MoveTo(float32(x0), float32(y0))
	z.LineTo(float32(x1), float32(y0))
	z.LineTo(float32(x1), float32(y1))
	z.LineTo(float32(x0), float32(y1))
	z.ClosePath()
}

// roundedRectPath builds a rectangle with quarter ellipse corners.
// The corner radius is clamped to the half of the shorter edge.
func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float64) {
	if r <= 0 {
		rectPath(z, x0, y0, x1, y1)
		return
	}
	if max := utils.Min(x1-x0, y1-y0) / 2; r > max {
		r = max
	}
	k := r * circleKappa

	z.MoveTo(float32(x0+r), float32(y0))
	z.LineTo(float32(x1-r), float32(y0))
	z.CubeTo(float32(x1-r+k), float32(y0), float32(x1), float32(y0+r-k), float32(x1), float32(y0+r))
	z.LineTo(float32(x1), float32(y1-r))
	z.CubeTo(float32(x1), float32(y1-r+k), float32(x1-r+k), float32(y1), float32(x1-r), float32(y1))
	z.LineTo(float32(x0+r), float32(y1))
	z.CubeTo(float32(x0+r-k), float32(y1), float32(x0), float32(y1-r+k), float32(x0), float32(y1-r))
	z.LineTo(float32(x0), float32(y0+r))
	z.CubeTo(float32(x0), float32(y0+r-k), float32(x0+r-k), float32(y0), float32(x0+r), float32(y0))
	z.ClosePath()
}

func polygonPath(z *vector.Rasterizer, points []Point, s float64) {
	if len(points) < 3 {
		return
	}
	z.MoveTo(float32(points[0].X*s), float32(points[0].Y*s))
	for _, pt := range points[1:] {
		z.LineTo(float32(pt.X*s), float32(pt.Y*s))
	}
	z.ClosePath()
}
