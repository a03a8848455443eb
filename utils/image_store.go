package utils

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// StoredObject is one blob as seen by ListPrefix.
type StoredObject struct {
	Key          string
	LastModified time.Time
}

// ImageStore is durable blob storage. Put returns a dereferenceable URL;
// ListPrefix and Delete exist for the orphan sweep.
type ImageStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	ListPrefix(ctx context.Context, prefix string) ([]StoredObject, error)
	Delete(ctx context.Context, key string) error
	URLFor(key string) string
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3ImageStore struct {
	api     s3API
	bucket  string
	baseURL string // CloudFront distribution in front of the bucket
}

func NewS3ImageStore(region, bucket, baseURL string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}
	return &S3ImageStore{
		api:     s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// NewS3ImageStoreWithAPI wires a custom API client, used by tests.
func NewS3ImageStoreWithAPI(api s3API, bucket, baseURL string) *S3ImageStore {
	return &S3ImageStore{api: api, bucket: bucket, baseURL: baseURL}
}

func (s *S3ImageStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return s.URLFor(key), nil
}

func (s *S3ImageStore) ListPrefix(ctx context.Context, prefix string) ([]StoredObject, error) {
	var out []StoredObject
	var token *string
	for {
		page, err := s.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 prefix %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			o := StoredObject{Key: aws.ToString(obj.Key)}
			if obj.LastModified != nil {
				o.LastModified = *obj.LastModified
			}
			out = append(out, o)
		}
		if page.IsTruncated == nil || !*page.IsTruncated {
			return out, nil
		}
		token = page.NextContinuationToken
	}
}

func (s *S3ImageStore) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete S3 object %s: %w", key, err)
	}
	return nil
}

func (s *S3ImageStore) URLFor(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
