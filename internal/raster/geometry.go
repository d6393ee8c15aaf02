package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to exactly width x height with Lanczos resampling.
// Aspect ratio is the caller's responsibility.
func Resize(img image.Image, width int, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// CenterOffset returns the top-left position that centers an innerW x
// innerH region inside an outerW x outerH canvas. Floor division, so
// odd remainders bias toward the top-left pixel.
func CenterOffset(outerW int, outerH int, innerW int, innerH int) (int, int) {
	return (outerW - innerW) / 2, (outerH - innerH) / 2
}

// Paste copies src onto dst at (x, y) without blending. Out-of-bounds
// source pixels are clipped.
func Paste(dst image.Image, src image.Image, x int, y int) *image.NRGBA {
	return imaging.Paste(dst, src, image.Pt(x, y))
}

// Overlay composites src onto dst at (x, y) using src's alpha channel
// as the blend mask. Out-of-bounds source pixels are clipped.
func Overlay(dst image.Image, src image.Image, x int, y int) *image.NRGBA {
	return imaging.Overlay(dst, src, image.Pt(x, y), 1.0)
}
