package dao

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/tabula/tabula/internal/aws"
	"github.com/tabula/tabula/internal/model1"
)

// DefaultS3PageSize is the number of keys requested per page.
const DefaultS3PageSize = 100

// S3 object columns.
const (
	S3ColKey          = "key"
	S3ColSize         = "size"
	S3ColStorageClass = "storage_class"
	S3ColModified     = "last_modified"
)

// S3Lister lists bucket objects; *s3.Client satisfies it.
type S3Lister interface {
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Source pages through a bucket listing using continuation tokens as cursors.
type S3Source struct {
	client   S3Lister
	schema   *model1.Schema
	bucket   string
	prefix   string
	pageSize int32
}

// NewS3Source returns a source listing bucket/prefix one level deep.
func NewS3Source(client S3Lister, schema *model1.Schema, bucket, prefix string, pageSize int32) (*S3Source, error) {
	if bucket == "" {
		return nil, ErrNoBucket
	}
	for _, id := range []string{S3ColKey, S3ColSize, S3ColStorageClass, S3ColModified} {
		if !schema.Has(id) {
			return nil, fmt.Errorf("s3 schema missing %q: %w", id, model1.ErrUnknownColumn)
		}
	}
	if pageSize <= 0 {
		pageSize = DefaultS3PageSize
	}

	return &S3Source{
		client:   client,
		schema:   schema,
		bucket:   bucket,
		prefix:   prefix,
		pageSize: pageSize,
	}, nil
}

// Load implements Source.
func (s *S3Source) Load(ctx context.Context, cursor string) (Page, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:    &s.bucket,
		Delimiter: sdkaws.String("/"),
		MaxKeys:   &s.pageSize,
	}
	if s.prefix != "" {
		input.Prefix = &s.prefix
	}
	if cursor != "" {
		input.ContinuationToken = &cursor
	}

	output, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		if ctx.Err() != nil {
			return Page{}, ctx.Err()
		}
		return Page{}, aws.WrapAWSError(err, "list objects")
	}

	var page Page
	for _, prefix := range output.CommonPrefixes {
		if prefix.Prefix == nil {
			continue
		}
		rec, err := s.folderRecord(*prefix.Prefix)
		if err != nil {
			return Page{}, err
		}
		page.Items = append(page.Items, rec)
	}
	for _, obj := range output.Contents {
		rec, err := s.objectRecord(obj)
		if err != nil {
			return Page{}, err
		}
		page.Items = append(page.Items, rec)
	}

	if sdkaws.ToBool(output.IsTruncated) {
		page.Cursor = sdkaws.ToString(output.NextContinuationToken)
	}

	return page, nil
}

func (s *S3Source) objectRecord(obj types.Object) (model1.Record, error) {
	key := sdkaws.ToString(obj.Key)
	fields := map[string]model1.Value{
		S3ColKey:          model1.Str(displayName(key, s.prefix)),
		S3ColStorageClass: model1.Str(string(obj.StorageClass)),
	}
	if obj.Size != nil {
		fields[S3ColSize] = model1.Num(float64(*obj.Size))
	}
	if obj.LastModified != nil {
		fields[S3ColModified] = model1.Str(obj.LastModified.UTC().Format(time.RFC3339))
	}

	return s.schema.NewRecord(key, fields)
}

func (s *S3Source) folderRecord(prefix string) (model1.Record, error) {
	return s.schema.NewRecord(prefix, map[string]model1.Value{
		S3ColKey:          model1.Str(displayName(prefix, s.prefix)),
		S3ColStorageClass: model1.Str("PRE"),
	})
}

func displayName(key, prefix string) string {
	name := strings.TrimPrefix(key, prefix)
	if name == "" {
		return key
	}
	return name
}
