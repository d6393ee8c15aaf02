package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Predicate filters pixels considered by DominantColor.
type Predicate func(r uint8, g uint8, b uint8) bool

// BlueDominant keeps pixels where blue clearly outweighs the other
// channels. This is the shipped filter for auto-deriving a brand
// background from a mostly-blue logo.
func BlueDominant(r uint8, g uint8, b uint8) bool {
	return b > r && b > g && b > 100
}

// DominantColor returns the most frequent RGB triple among the pixels
// satisfying pred. Ties go to the color encountered first in scan
// order, which keeps the result deterministic. When no pixel matches,
// fallback is returned; color selection never fails.
func DominantColor(img image.Image, pred Predicate, fallback color.NRGBA) color.NRGBA {
	buf := imaging.Clone(img)
	b := buf.Bounds()

	counts := map[[3]uint8]int{}
	order := make([][3]uint8, 0, 16)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := buf.PixOffset(x, y)
			r, g, bl := buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2]

			if !pred(r, g, bl) {
				continue
			}

			k := [3]uint8{r, g, bl}
			if counts[k] == 0 {
				order = append(order, k)
			}
			counts[k]++
		}
	}

	best := fallback
	bestCount := 0

	for _, k := range order {
		if counts[k] > bestCount {
			bestCount = counts[k]
			best = color.NRGBA{R: k[0], G: k[1], B: k[2], A: 255}
		}
	}

	return best
}

// ParseHex reads a #rrggbb string into an opaque NRGBA.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}

	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats a color as #rrggbb, dropping alpha.
func Hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
