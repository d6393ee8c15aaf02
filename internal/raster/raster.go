// Package raster holds the geometric and color primitives the icon
// pipeline is built from. Every transform returns a fresh *image.NRGBA,
// inputs are never mutated.
package raster

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidRatio     = errors.New("invalid ratio")
)

type MaskShape int32

const (
	MaskNone MaskShape = iota
	MaskCircle
)

func (m MaskShape) String() string {
	switch m {
	case MaskNone:
		return "NONE"
	case MaskCircle:
		return "CIRCLE"
	default:
		return fmt.Sprintf("UNKNOWN TYPE %d", m)
	}
}
