package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
)

// ErrColorOutOfRange is returned when a pixel channel outside [0, 1]
// reaches the framebuffer and clamping is disabled.
var ErrColorOutOfRange = errors.New("output: color channel out of range")

// ErrFrameOverflow is returned when more rows are written than the
// framebuffer was sized for.
var ErrFrameOverflow = errors.New("output: too many rows for frame dimensions")

// Framebuffer quantizes incoming rows of linear [0, 1] RGB values into an
// 8-bit image. It implements the renderer's PixelSink. By default a
// channel outside [0, 1] is rejected with the offending pixel and value;
// with Clamp set the value is clamped instead, so one bad pixel does not
// abort a long render.
type Framebuffer struct {
	width  int
	height int
	rows   int
	img    *image.NRGBA

	// Clamp forces out-of-range channels into [0, 1] instead of
	// rejecting the row.
	Clamp bool
}

// NewFramebuffer creates a framebuffer for a width x height image
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// WriteRow quantizes one full image row. Rows arrive top to bottom.
func (f *Framebuffer) WriteRow(row []core.Vec3) error {
	if f.rows >= f.height {
		return fmt.Errorf("%w: %dx%d", ErrFrameOverflow, f.width, f.height)
	}
	if len(row) != f.width {
		return fmt.Errorf("output: row has %d pixels, frame is %d wide", len(row), f.width)
	}

	y := f.rows
	for x, pixel := range row {
		r, err := f.quantize(pixel.X, x, y)
		if err != nil {
			return err
		}
		g, err := f.quantize(pixel.Y, x, y)
		if err != nil {
			return err
		}
		b, err := f.quantize(pixel.Z, x, y)
		if err != nil {
			return err
		}
		f.img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
	}

	f.rows++
	return nil
}

func (f *Framebuffer) quantize(channel float64, x, y int) (uint8, error) {
	if channel < 0 || channel > 1 {
		if !f.Clamp {
			return 0, fmt.Errorf("%w: %g at pixel (%d, %d)", ErrColorOutOfRange, channel, x, y)
		}
		channel = max(0, min(1, channel))
	}
	return uint8(255.999 * channel), nil
}

// Complete reports whether every row has been written
func (f *Framebuffer) Complete() bool {
	return f.rows == f.height
}

// Image returns the quantized image. The frame must be complete.
func (f *Framebuffer) Image() (*image.NRGBA, error) {
	if !f.Complete() {
		return nil, fmt.Errorf("output: frame incomplete, %d of %d rows written", f.rows, f.height)
	}
	return f.img, nil
}
