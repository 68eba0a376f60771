// Package storage keeps partner logo images on an S3-compatible bucket
// (R2 or any other provider with a custom endpoint).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	appconfig "insure-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type LogoStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewLogoStore builds a store from config. Returns an error when storage
// is not configured; callers treat that as "upload disabled".
func NewLogoStore(cfg *appconfig.Config) (*LogoStore, error) {
	st := cfg.Storage
	if st.Endpoint == "" || st.Bucket == "" || st.AccessKey == "" {
		return nil, fmt.Errorf("object storage not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.AccessKey,
			st.SecretKey,
			"",
		)),
		awsconfig.WithRegion(st.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(st.Endpoint)
	})

	return &LogoStore{
		client:        client,
		bucket:        st.Bucket,
		publicBaseURL: strings.TrimRight(st.PublicBaseURL, "/"),
	}, nil
}

// UploadLogo stores a logo image under logos/<companyID><ext> and returns
// its public URL.
func (s *LogoStore) UploadLogo(ctx context.Context, companyID, ext, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("logos/%s%s", companyID, ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}
