package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mentorlink/mentor-booking-api/internal/config"
)

// Uploader pushes profile photos to an S3-compatible bucket.
type Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
	region     string
}

// NewUploader returns nil when no bucket is configured; photo upload is an
// optional feature of the deployment.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimSuffix(cfg.S3PublicBase, "/"),
		region:     cfg.S3Region,
	}
}

func (u *Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.publicBase != "" {
		return u.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
