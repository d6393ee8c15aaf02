package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/ostia/icon-processor/go/internal/testutil"
)

var fallbackGray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}

func fillRange(img *image.NRGBA, from, to int, c color.NRGBA) {
	w := img.Bounds().Dx()
	for i := from; i < to; i++ {
		img.SetNRGBA(i%w, i/w, c)
	}
}

func TestDominantColorBlueMajority(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fillRange(img, 0, 60, color.NRGBA{B: 255, A: 255})
	fillRange(img, 60, 100, color.NRGBA{R: 255, A: 255})

	got := DominantColor(img, BlueDominant, fallbackGray)
	testutil.Assert(t, color.NRGBA{B: 255, A: 255}, got, "pure blue wins")
}

func TestDominantColorFallback(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fillRange(img, 0, 100, color.NRGBA{R: 255, A: 255})

	got := DominantColor(img, BlueDominant, fallbackGray)
	testutil.Assert(t, fallbackGray, got, "no match returns the fallback")
}

func TestDominantColorTieBreak(t *testing.T) {
	t.Parallel()

	// two blues with equal counts: first encountered in scan order wins
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	fillRange(img, 0, 50, color.NRGBA{B: 255, A: 255})
	fillRange(img, 50, 100, color.NRGBA{B: 200, A: 255})

	got := DominantColor(img, BlueDominant, fallbackGray)
	testutil.Assert(t, color.NRGBA{B: 255, A: 255}, got, "scan order tie break")
}

func TestBlueDominant(t *testing.T) {
	t.Parallel()

	testutil.Assert(t, true, BlueDominant(0, 0, 255), "pure blue")
	testutil.Assert(t, false, BlueDominant(255, 0, 0), "pure red")
	testutil.Assert(t, false, BlueDominant(0, 0, 100), "too dark")
	testutil.Assert(t, false, BlueDominant(200, 200, 200), "gray is not dominant")
	testutil.Assert(t, true, BlueDominant(1, 131, 253), "brand blue")
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := ParseHex("#0183fd")
	testutil.IsNil(t, err, "hex parses")
	testutil.Assert(t, color.NRGBA{R: 1, G: 131, B: 253, A: 255}, c, "parsed channels")
	testutil.Assert(t, "#0183fd", Hex(c), "formats back")

	_, err = ParseHex("not-a-color")
	if err == nil {
		t.Fatal("expected parse error")
	}
}
