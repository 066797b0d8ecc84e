package dao

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabula/tabula/internal/model1"
)

var objectSchema = model1.MustSchema(model1.Header{
	{ID: S3ColKey, Name: "Key", Attrs: model1.Attrs{RowHeader: true}},
	{ID: S3ColSize, Name: "Size", Attrs: model1.Attrs{Kind: model1.KindNumber}},
	{ID: S3ColStorageClass, Name: "Storage Class"},
	{ID: S3ColModified, Name: "Age"},
})

func ptr[T any](v T) *T {
	return &v
}

type fakeLister struct {
	inputs []*s3.ListObjectsV2Input
	out    map[string]*s3.ListObjectsV2Output
	err    error
}

func (f *fakeLister) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	token := ""
	if in.ContinuationToken != nil {
		token = *in.ContinuationToken
	}
	return f.out[token], nil
}

func TestNewS3Source(t *testing.T) {
	_, err := NewS3Source(&fakeLister{}, objectSchema, "", "", 0)
	assert.ErrorIs(t, err, ErrNoBucket)

	_, err = NewS3Source(&fakeLister{}, peopleSchema, "bucket", "", 0)
	assert.ErrorIs(t, err, model1.ErrUnknownColumn)

	s, err := NewS3Source(&fakeLister{}, objectSchema, "bucket", "", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(DefaultS3PageSize), s.pageSize)
}

func TestS3Source_Load(t *testing.T) {
	modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := fakeLister{out: map[string]*s3.ListObjectsV2Output{
		"": {
			CommonPrefixes: []types.CommonPrefix{{Prefix: ptr("logs/2024/")}},
			Contents: []types.Object{{
				Key:          ptr("logs/app.log"),
				Size:         ptr(int64(2048)),
				StorageClass: types.ObjectStorageClassStandard,
				LastModified: &modified,
			}},
			IsTruncated:           ptr(true),
			NextContinuationToken: ptr("tok"),
		},
		"tok": {
			Contents:    []types.Object{{Key: ptr("logs/zz.log")}},
			IsTruncated: ptr(false),
		},
	}}
	s, err := NewS3Source(&l, objectSchema, "bucket", "logs/", 10)
	require.NoError(t, err)

	p, err := s.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "tok", p.Cursor)
	assert.Equal(t, []string{"logs/2024/", "logs/app.log"}, pageKeys(p))

	name, _ := p.Items[0].Get(S3ColKey)
	assert.Equal(t, "2024/", name.String())
	class, _ := p.Items[0].Get(S3ColStorageClass)
	assert.Equal(t, "PRE", class.String())

	size, _ := p.Items[1].Get(S3ColSize)
	assert.Equal(t, model1.Num(2048), size)
	mod, _ := p.Items[1].Get(S3ColModified)
	assert.Equal(t, "2024-03-01T12:00:00Z", mod.String())

	in := l.inputs[0]
	assert.Equal(t, "bucket", *in.Bucket)
	assert.Equal(t, "logs/", *in.Prefix)
	assert.Equal(t, "/", *in.Delimiter)
	assert.Equal(t, int32(10), *in.MaxKeys)
	assert.Nil(t, in.ContinuationToken)

	p, err = s.Load(context.Background(), p.Cursor)
	require.NoError(t, err)
	assert.Equal(t, "", p.Cursor)
	assert.Equal(t, []string{"logs/zz.log"}, pageKeys(p))
	assert.Equal(t, "tok", *l.inputs[1].ContinuationToken)
}

func TestS3Source_LoadError(t *testing.T) {
	l := fakeLister{err: &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"}}
	s, err := NewS3Source(&l, objectSchema, "bucket", "", 0)
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket does not exist")
}
