// Package icon renders the stylized radio favicon: a gray body with a
// speaker, two knob pairs, two antennas and two green signal arcs on a slate
// background.
package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Size is the edge length of the base canvas.
const Size = 16

var (
	Background = color.RGBA{R: 45, G: 55, B: 72, A: 255}
	Body       = color.RGBA{R: 74, G: 85, B: 104, A: 255}
	Speaker    = color.RGBA{R: 26, G: 32, B: 44, A: 255}
	Accent     = color.RGBA{R: 113, G: 128, B: 150, A: 255}
	Signal     = color.RGBA{R: 72, G: 187, B: 120, A: 255}
)

// Sequence is the ordered drawing plan for the icon. Later primitives
// overwrite earlier ones, so the body rectangle goes first and the details
// paint over it.
func Sequence() []Primitive {
	return []Primitive{
		FillRect{2, 6, 14, 14, Body},
		FillEllipse{4, 8, 8, 12, Speaker},
		FillEllipse{10, 7, 12, 9, Accent},
		FillEllipse{12, 7, 14, 9, Accent},
		FillEllipse{10, 11, 12, 13, Accent},
		FillEllipse{12, 11, 14, 13, Accent},
		Line{3, 6, 2, 2, Accent},
		Line{13, 6, 14, 2, Accent},
		Arc{1, 3, 5, 7, 0, 90, Signal},
		Arc{11, 3, 15, 7, 90, 180, Signal},
	}
}

// Render replays the drawing sequence onto a fresh canvas and returns the
// fully painted 16x16 base image.
func Render() *image.RGBA {
	dc := gg.NewContext(Size, Size)
	dc.SetColor(Background)
	dc.Clear()
	for _, p := range Sequence() {
		p.draw(dc)
	}
	return dc.Image().(*image.RGBA)
}
