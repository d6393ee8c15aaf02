package global

import "github.com/ostia/icon-processor/go/internal/instance"

type Instances struct {
	S3         instance.S3
	FileStore  instance.FileStore
	Codec      instance.ImageCodec
	Prometheus instance.Prometheus
}
