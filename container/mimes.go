package container

import "github.com/h2non/filetype/matchers"

var (
	MimePNG  = matchers.TypePng.MIME.Value
	MimeJPEG = matchers.TypeJpeg.MIME.Value
	MimeICO  = matchers.TypeIco.MIME.Value
)
