package container

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/h2non/filetype/matchers"
	"github.com/h2non/filetype/types"
	"github.com/ostia/icon-processor/go/internal/testutil"
	ico "github.com/sergeymakinen/go-ico"
)

type testCase struct {
	Name         string
	Data         []byte
	ExpectedType types.Type
}

func sample() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	return img
}

func makeCases(t *testing.T) []testCase {
	img := sample()

	pngBuf := bytes.Buffer{}
	testutil.IsNil(t, png.Encode(&pngBuf, img), "png encodes")

	jpegBuf := bytes.Buffer{}
	testutil.IsNil(t, jpeg.Encode(&jpegBuf, img, nil), "jpeg encodes")

	icoBuf := bytes.Buffer{}
	testutil.IsNil(t, ico.Encode(&icoBuf, img), "ico encodes")

	return []testCase{
		{Name: "png", Data: pngBuf.Bytes(), ExpectedType: matchers.TypePng},
		{Name: "jpeg", Data: jpegBuf.Bytes(), ExpectedType: matchers.TypeJpeg},
		{Name: "ico", Data: icoBuf.Bytes(), ExpectedType: matchers.TypeIco},
		{Name: "garbage", Data: []byte{0x00, 0x01, 0x02, 0x03}, ExpectedType: types.Unknown},
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	for _, c := range makeCases(t) {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			testutil.Assert(t, c.ExpectedType, Match(c.Data), c.Name)
		})
	}
}
