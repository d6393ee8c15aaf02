package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Pad embeds buf centered in a square canvas sized so that
// max(width,height)/newSize equals targetRatio, modulo the ceil
// rounding of newSize. The original pixels are copied, never
// resampled, so the source survives bit-exact inside the output.
func Pad(buf image.Image, targetRatio float64, fill color.NRGBA) (*image.NRGBA, error) {
	if targetRatio <= 0 || targetRatio > 1 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidRatio, targetRatio)
	}

	b := buf.Bounds()
	long := b.Dx()
	if b.Dy() > long {
		long = b.Dy()
	}

	newSize := int(math.Ceil(float64(long) / targetRatio))

	canvas := imaging.New(newSize, newSize, fill)

	x, y := CenterOffset(newSize, newSize, b.Dx(), b.Dy())

	return Paste(canvas, buf, x, y), nil
}
