package remote

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/jonathan/resume-craft/internal/types"
)

// objectAPI is the part of *s3.Client the backend uses.
type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the S3 backend. Endpoint and static credentials are only
// needed for S3-compatible stores (R2, MinIO).
type S3Config struct {
	Bucket    string
	Region    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Backend stores each user's document as one JSON object.
type S3Backend struct {
	client objectAPI
	bucket string
	prefix string
}

// NewS3Backend creates an S3-backed remote.
func NewS3Backend(ctx context.Context, cfg S3Config) (*S3Backend, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3Backend(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3Backend(client objectAPI, bucket, prefix string) *S3Backend {
	return &S3Backend{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
	}
}

// Fetch downloads the user's document or returns ErrNotFound.
func (b *S3Backend) Fetch(ctx context.Context, userID string) (*types.ResumeData, error) {
	raw, err := b.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

// Merge reads the current object, merges data over it and writes it back.
// S3 has no conditional merge, so concurrent writers are last-write-wins.
func (b *S3Backend) Merge(ctx context.Context, userID string, data types.ResumeData) error {
	incoming, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	existing, err := b.get(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	merged, err := mergeDocuments(existing, incoming)
	if err != nil {
		return err
	}

	key := b.ObjectKey(userID)
	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(merged),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put object bucket=%s key=%s: %w", b.bucket, key, err)
	}
	return nil
}

// ObjectKey returns the object key for a user. The user id is hashed so it is
// always a safe path segment.
func (b *S3Backend) ObjectKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	key := "resumes/" + hex.EncodeToString(sum[:]) + ".json"
	if b.prefix == "" {
		return key
	}
	return b.prefix + "/" + key
}

func (b *S3Backend) get(ctx context.Context, userID string) ([]byte, error) {
	key := b.ObjectKey(userID)
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("s3 get object bucket=%s key=%s: %w", b.bucket, key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read object key=%s: %w", key, err)
	}
	return raw, nil
}

func isNotFound(err error) bool {
	var noKey *s3types.NoSuchKey
	if errors.As(err, &noKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
