package codec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/ostia/icon-processor/go/internal/instance"
	ico "github.com/sergeymakinen/go-ico"
)

type Instance struct{}

func New() instance.ImageCodec {
	return &Instance{}
}

func (Instance) Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed at decode image: %w", err)
	}

	return img, format, nil
}

func (Instance) DecodeFrames(data []byte) ([]image.Image, error) {
	frames, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed at decode ico: %w", err)
	}

	return frames, nil
}

func (Instance) EncodePNG(img image.Image) ([]byte, error) {
	buf := bytes.Buffer{}
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed at encode png: %w", err)
	}

	return buf.Bytes(), nil
}
