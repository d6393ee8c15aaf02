package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ostia/icon-processor/go/internal/testutil"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 0x40,
				A: uint8(128 + (x+y)%128),
			})
		}
	}

	return img
}

func TestPadLosslessEmbedding(t *testing.T) {
	t.Parallel()

	src := gradient(60, 40)

	out, err := Pad(src, 0.6, color.NRGBA{})
	testutil.IsNil(t, err, "pad succeeds")

	// ceil(60 / 0.6) == 100, always square
	testutil.Assert(t, 100, out.Bounds().Dx(), "width")
	testutil.Assert(t, 100, out.Bounds().Dy(), "height")

	x, y := CenterOffset(100, 100, 60, 40)
	testutil.Assert(t, 20, x, "x offset")
	testutil.Assert(t, 30, y, "y offset")

	// the source region is pixel identical, semi-transparent pixels included
	for sy := 0; sy < 40; sy++ {
		for sx := 0; sx < 60; sx++ {
			if src.NRGBAAt(sx, sy) != out.NRGBAAt(x+sx, y+sy) {
				t.Fatalf("pixel (%d,%d) altered by padding", sx, sy)
			}
		}
	}

	// the border is the fill color
	testutil.Assert(t, color.NRGBA{}, out.NRGBAAt(0, 0), "corner transparent")
	testutil.Assert(t, color.NRGBA{}, out.NRGBAAt(99, 99), "corner transparent")
}

func TestPadRatioProperty(t *testing.T) {
	t.Parallel()

	for _, ratio := range []float64{0.55, 0.6, 0.65, 1.0} {
		out, err := Pad(gradient(123, 77), ratio, color.NRGBA{})
		testutil.IsNil(t, err, "pad succeeds")

		size := out.Bounds().Dx()
		testutil.Assert(t, size, out.Bounds().Dy(), "square output")

		got := float64(123) / float64(size)
		if got > ratio || ratio-got > 0.02 {
			t.Fatalf("ratio %f: long side / size = %f out of tolerance", ratio, got)
		}
	}
}

func TestPadInvalidRatio(t *testing.T) {
	t.Parallel()

	for _, ratio := range []float64{0, -0.5, 1.5} {
		_, err := Pad(gradient(10, 10), ratio, color.NRGBA{})
		if !errors.Is(err, ErrInvalidRatio) {
			t.Fatalf("ratio %f: expected ErrInvalidRatio, got %v", ratio, err)
		}
	}
}

func TestPadColoredFill(t *testing.T) {
	t.Parallel()

	fill := color.NRGBA{R: 1, G: 131, B: 253, A: 255}

	out, err := Pad(gradient(50, 50), 0.5, fill)
	testutil.IsNil(t, err, "pad succeeds")

	testutil.Assert(t, 100, out.Bounds().Dx(), "size")
	testutil.Assert(t, fill, out.NRGBAAt(0, 0), "fill corner")
}
