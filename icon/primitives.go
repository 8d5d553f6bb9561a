package icon

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Primitive is a single vector drawing operation on the 16x16 grid.
// Coordinates are inclusive pixel bounding boxes, so FillRect{2, 6, 14, 14}
// covers pixel columns 2 through 14.
type Primitive interface {
	draw(dc *gg.Context)
}

type FillRect struct {
	X0, Y0, X1, Y1 int
	Color          color.RGBA
}

type FillEllipse struct {
	X0, Y0, X1, Y1 int
	Color          color.RGBA
}

type Line struct {
	X0, Y0, X1, Y1 int
	Color          color.RGBA
}

// Arc strokes part of the ellipse inscribed in the bounding box, from Start
// to End in degrees, clockwise from three o'clock.
type Arc struct {
	X0, Y0, X1, Y1 int
	Start, End     float64
	Color          color.RGBA
}

func (p FillRect) draw(dc *gg.Context) {
	dc.SetColor(p.Color)
	dc.DrawRectangle(float64(p.X0), float64(p.Y0), float64(p.X1-p.X0+1), float64(p.Y1-p.Y0+1))
	dc.Fill()
}

func (p FillEllipse) draw(dc *gg.Context) {
	cx, cy, rx, ry := boxEllipse(p.X0, p.Y0, p.X1, p.Y1)
	dc.SetColor(p.Color)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()
}

func (p Line) draw(dc *gg.Context) {
	dc.SetColor(p.Color)
	dc.SetLineWidth(1)
	dc.DrawLine(float64(p.X0)+0.5, float64(p.Y0)+0.5, float64(p.X1)+0.5, float64(p.Y1)+0.5)
	dc.Stroke()
}

func (p Arc) draw(dc *gg.Context) {
	cx, cy, rx, ry := boxEllipse(p.X0, p.Y0, p.X1, p.Y1)
	dc.SetColor(p.Color)
	dc.SetLineWidth(1)
	dc.DrawEllipticalArc(cx, cy, rx, ry, gg.Radians(p.Start), gg.Radians(p.End))
	dc.Stroke()
}

func boxEllipse(x0, y0, x1, y1 int) (cx, cy, rx, ry float64) {
	cx = float64(x0+x1+1) / 2
	cy = float64(y0+y1+1) / 2
	rx = float64(x1-x0+1) / 2
	ry = float64(y1-y0+1) / 2
	return cx, cy, rx, ry
}
