package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	appconfig "go-planner-api/core/config"
	"go-planner-api/core/logger"
	"go-planner-api/core/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores uploaded files on S3 and returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error)
}

type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(cfg appconfig.AWSConfig) (Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("AWS_S3_BUCKET is not configured")
	}

	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})

	return &s3Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.Region,
	}, nil
}

func (u *s3Uploader) Upload(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error) {
	key := path.Join(prefix, utils.GenerateID()+"-"+filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:Upload:PutObject:Error", "error", err, "key", key)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	logger.Info("Storage:Upload:Success", "key", key)
	return url, nil
}
