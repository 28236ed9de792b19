package output

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// EncodePPM writes the image as a plain-text (P3) netpbm file
func EncodePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("output: writing PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(buffered, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("output: writing PPM pixels: %w", err)
			}
		}
	}

	return buffered.Flush()
}

// Encode writes the image in the format implied by the file extension:
// .ppm, .png, .webp or .tga
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".ppm":
		return EncodePPM(w, img)
	case ".png":
		return png.Encode(w, img)
	case ".webp":
		return nativewebp.Encode(w, img, nil)
	case ".tga":
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("output: unsupported image format %q", ext)
	}
}

// WriteFile creates (or truncates) the file at path and encodes the image
// into it, picking the format from the extension
func WriteFile(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", path, err)
	}
	defer file.Close()

	return Encode(file, img, filepath.Ext(path))
}
