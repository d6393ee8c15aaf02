package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/ostia/icon-processor/go/internal/instance"
)

type Options struct {
	Region      string
	Endpoint    string
	AccessToken string
	SecretKey   string
}

type Instance struct {
	s3         *awss3.S3
	downloader *s3manager.Downloader
	uploader   *s3manager.Uploader
}

func New(ctx context.Context, o Options) (instance.S3, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(o.Region),
		Endpoint:         aws.String(o.Endpoint),
		Credentials:      credentials.NewStaticCredentials(o.AccessToken, o.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	return &Instance{
		s3:         awss3.New(sess),
		downloader: s3manager.NewDownloader(sess),
		uploader:   s3manager.NewUploader(sess),
	}, nil
}

func (i *Instance) UploadFile(ctx context.Context, input *s3manager.UploadInput) error {
	_, err := i.uploader.UploadWithContext(ctx, input)

	return err
}

func (i *Instance) DownloadFile(ctx context.Context, w io.WriterAt, input *awss3.GetObjectInput) error {
	_, err := i.downloader.DownloadWithContext(ctx, w, input)

	return err
}

func (i *Instance) ListBuckets(ctx context.Context) (*awss3.ListBucketsOutput, error) {
	return i.s3.ListBucketsWithContext(ctx, &awss3.ListBucketsInput{})
}
