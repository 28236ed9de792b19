package output

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render down by the given integer
// factor with CatmullRom filtering. A factor below 2 returns the image
// unchanged.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx()/factor, bounds.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
