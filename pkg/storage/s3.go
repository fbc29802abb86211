// Package storage uploads files to blob storage and hands back public URLs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/techdayconf/techday-backend/internal/config"
)

// Uploader represents a blob storage backend
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Uploader uploads to an S3 bucket
type S3Uploader struct {
	uploader      *s3manager.Uploader
	bucket        string
	publicBaseURL string
}

// NewS3Uploader creates a new S3Uploader. Returns an error when the bucket
// is not configured so callers can degrade the upload endpoint to 503.
func NewS3Uploader(cfg *config.Config) (*S3Uploader, error) {
	if cfg.Storage.Bucket == "" {
		return nil, errors.New("storage bucket is not configured")
	}
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Storage.Region),
	})
	if err != nil {
		return nil, err
	}
	base := cfg.Storage.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Storage.Bucket, cfg.Storage.Region)
	}
	return &S3Uploader{
		uploader:      s3manager.NewUploader(sess),
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// Upload stores the body under key and returns its public URL
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return u.publicBaseURL + "/" + key, nil
}
