package s3

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/ostia/icon-processor/go/internal/instance"
)

type MockInstance struct {
	mtx   sync.Mutex
	files map[string]map[string][]byte
}

func NewMock(ctx context.Context, files map[string]map[string][]byte) (instance.S3, error) {
	if files == nil {
		files = map[string]map[string][]byte{}
	}

	return &MockInstance{
		files: files,
	}, nil
}

func (i *MockInstance) UploadFile(ctx context.Context, input *s3manager.UploadInput) error {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return err
	}

	i.mtx.Lock()
	defer i.mtx.Unlock()

	bucket := i.files[aws.StringValue(input.Bucket)]
	if bucket == nil {
		bucket = map[string][]byte{}
		i.files[aws.StringValue(input.Bucket)] = bucket
	}

	bucket[aws.StringValue(input.Key)] = data

	return nil
}

func (i *MockInstance) DownloadFile(ctx context.Context, w io.WriterAt, input *awss3.GetObjectInput) error {
	i.mtx.Lock()
	defer i.mtx.Unlock()

	bucket, ok := i.files[aws.StringValue(input.Bucket)]
	if !ok {
		return fmt.Errorf("unknown bucket: %s", aws.StringValue(input.Bucket))
	}

	data, ok := bucket[aws.StringValue(input.Key)]
	if !ok {
		return fmt.Errorf("unknown key: %s", aws.StringValue(input.Key))
	}

	_, err := w.WriteAt(data, 0)

	return err
}

func (i *MockInstance) ListBuckets(ctx context.Context) (*awss3.ListBucketsOutput, error) {
	return &awss3.ListBucketsOutput{}, nil
}
