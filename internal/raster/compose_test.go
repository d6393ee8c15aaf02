package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ostia/icon-processor/go/internal/testutil"
)

var bgBlue = color.NRGBA{R: 1, G: 131, B: 253, A: 255}

func TestComposeNoMask(t *testing.T) {
	t.Parallel()

	fg := imaging.New(1024, 1024, color.NRGBA{R: 255, A: 255})

	out, err := Compose(fg, bgBlue, 0.6, 512, MaskNone)
	testutil.IsNil(t, err, "compose succeeds")

	testutil.Assert(t, 512, out.Bounds().Dx(), "canvas width")
	testutil.Assert(t, 512, out.Bounds().Dy(), "canvas height")

	// opaque background means no transparent pixels anywhere
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			if out.NRGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d,%d) has alpha %d", x, y, out.NRGBAAt(x, y).A)
			}
		}
	}

	// foreground is scaled to 307 and centered at offset 102
	testutil.Assert(t, bgBlue, out.NRGBAAt(50, 50), "background outside foreground")
	testutil.Assert(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(256, 256), "foreground center")
}

func TestComposeCircleMask(t *testing.T) {
	t.Parallel()

	fg := imaging.New(1024, 1024, color.NRGBA{R: 255, A: 255})

	out, err := Compose(fg, bgBlue, 0.6, 512, MaskCircle)
	testutil.IsNil(t, err, "compose succeeds")

	testutil.Assert(t, uint8(0), out.NRGBAAt(0, 0).A, "corner outside the circle is transparent")
	testutil.Assert(t, uint8(0), out.NRGBAAt(511, 0).A, "corner outside the circle is transparent")
	testutil.Assert(t, uint8(0), out.NRGBAAt(0, 511).A, "corner outside the circle is transparent")
	testutil.Assert(t, uint8(0), out.NRGBAAt(511, 511).A, "corner outside the circle is transparent")
	testutil.Assert(t, uint8(255), out.NRGBAAt(256, 256).A, "center is opaque")
}

func TestComposeShrinkOnly(t *testing.T) {
	t.Parallel()

	// 100x100 source with a 0.6 ratio on a 512 canvas would want 307,
	// but the foreground is never upscaled past its own resolution.
	fg := imaging.New(100, 100, color.NRGBA{R: 255, A: 255})

	out, err := Compose(fg, bgBlue, 0.6, 512, MaskNone)
	testutil.IsNil(t, err, "compose succeeds")

	// centered 100x100 region starts at (206,206)
	testutil.Assert(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(206, 206), "foreground top-left")
	testutil.Assert(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(305, 305), "foreground bottom-right")
	testutil.Assert(t, bgBlue, out.NRGBAAt(150, 150), "would be foreground if upscaled")
	testutil.Assert(t, bgBlue, out.NRGBAAt(205, 205), "just outside the pasted region")
}

func TestComposeInvalidRatio(t *testing.T) {
	t.Parallel()

	fg := imaging.New(10, 10, color.NRGBA{A: 255})

	for _, ratio := range []float64{0, -1, 1.01} {
		_, err := Compose(fg, bgBlue, ratio, 512, MaskNone)
		if !errors.Is(err, ErrInvalidRatio) {
			t.Fatalf("ratio %f: expected ErrInvalidRatio, got %v", ratio, err)
		}
	}

	_, err := Compose(fg, bgBlue, 0.6, 0, MaskNone)
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestComposeTransparentForegroundKeepsBackground(t *testing.T) {
	t.Parallel()

	// fully transparent foreground leaves the solid canvas untouched
	fg := imaging.New(256, 256, color.NRGBA{})

	out, err := Compose(fg, bgBlue, 0.5, 64, MaskNone)
	testutil.IsNil(t, err, "compose succeeds")

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			testutil.Assert(t, bgBlue, out.NRGBAAt(x, y), "background pixel")
		}
	}
}
