package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// Upscale resamples src to a size x size square with the Catmull-Rom kernel.
func Upscale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
