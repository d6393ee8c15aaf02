package instance

import "image"

type ImageCodec interface {
	// Decode reads a single still image, returning the format name.
	Decode(data []byte) (image.Image, string, error)
	// DecodeFrames reads every frame of a multi-frame icon container.
	DecodeFrames(data []byte) ([]image.Image, error)
	// EncodePNG writes a lossless PNG: decoding the returned bytes
	// reproduces pixel values exactly.
	EncodePNG(img image.Image) ([]byte, error)
}
