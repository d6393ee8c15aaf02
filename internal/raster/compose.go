package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Compose scales fg so its longer side equals canvasSize*targetRatio
// (shrink-only, the original resolution is never exceeded), fills a
// square canvas with bg, and overlays the scaled foreground centered,
// blending through its alpha channel. With MaskCircle the filled
// canvas is additionally clipped to the inscribed circle, leaving the
// corners fully transparent for round launcher variants.
func Compose(fg image.Image, bg color.NRGBA, targetRatio float64, canvasSize int, mask MaskShape) (*image.NRGBA, error) {
	if targetRatio <= 0 || targetRatio > 1 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidRatio, targetRatio)
	}

	if canvasSize <= 0 {
		return nil, fmt.Errorf("%w: canvas %d", ErrInvalidDimension, canvasSize)
	}

	target := int(float64(canvasSize) * targetRatio)

	// Fit never upscales, matching the shrink-only clamp.
	scaled := imaging.Fit(fg, target, target, imaging.Lanczos)

	canvas := imaging.New(canvasSize, canvasSize, bg)

	sb := scaled.Bounds()
	x, y := CenterOffset(canvasSize, canvasSize, sb.Dx(), sb.Dy())

	out := Overlay(canvas, scaled, x, y)

	if mask == MaskCircle {
		return applyCircleMask(out)
	}

	return out, nil
}

func applyCircleMask(canvas *image.NRGBA) (*image.NRGBA, error) {
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()

	maskCtx := gg.NewContext(w, h)
	maskCtx.DrawEllipse(float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	maskCtx.Fill()

	dc := gg.NewContext(w, h)
	if err := dc.SetMask(maskCtx.AsMask()); err != nil {
		return nil, err
	}
	dc.DrawImage(canvas, 0, 0)

	return imaging.Clone(dc.Image()), nil
}
