package source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// S3Options configures the S3 client. Credentials come from the default
// AWS chain (environment, shared config, instance role).
type S3Options struct {
	Region    string `yaml:"region,omitempty" env:"REGION"`
	Endpoint  string `yaml:"endpoint,omitempty" env:"ENDPOINT"`
	PathStyle bool   `yaml:"path_style,omitempty" env:"PATH_STYLE"`
}

// ObjectGetter is the subset of the S3 client used by S3Source.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a document from an S3-compatible bucket.
type S3Source struct {
	Bucket string
	Key    string

	opts   S3Options
	once   sync.Once
	client ObjectGetter
	err    error
}

// ParseS3URI parses s3://bucket/key.
func ParseS3URI(uri string, opts S3Options) (*S3Source, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, wferrors.NewValidationError("source", "invalid s3 URI", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, wferrors.NewValidationError("source", "s3 URI must be s3://bucket/key", nil)
	}
	return &S3Source{Bucket: u.Host, Key: key, opts: opts}, nil
}

// NewS3Source creates an S3Source around an existing client.
func NewS3Source(client ObjectGetter, bucket, key string) *S3Source {
	s := &S3Source{Bucket: bucket, Key: key, client: client}
	s.once.Do(func() {})
	return s
}

// Fetch implements Source.
func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, wferrors.NewFetchError(s.String(), err)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(s.Bucket), Key: aws.String(s.Key)})
	if err != nil {
		return nil, wferrors.NewFetchError(s.String(), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentSize))
	if err != nil {
		return nil, wferrors.NewFetchError(s.String(), err)
	}
	return data, nil
}

func (s *S3Source) getClient(ctx context.Context) (ObjectGetter, error) {
	s.once.Do(func() {
		region := s.opts.Region
		if region == "" {
			region = "us-east-1"
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			s.err = fmt.Errorf("load aws config: %w", err)
			return
		}
		s.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			if s.opts.PathStyle {
				o.UsePathStyle = true
			}
			if s.opts.Endpoint != "" {
				o.BaseEndpoint = aws.String(s.opts.Endpoint)
			}
		})
	})
	return s.client, s.err
}

func (s *S3Source) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}
