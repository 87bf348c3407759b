package records

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func objectInput(bucket, key string) interface{} {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Bucket == bucket && *in.Key == key
	})
}

func TestS3Source_Load(t *testing.T) {
	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, objectInput("users-bucket", "listing/data.json")).
		Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"users":[{"name":"Ann"}]}`)),
		}, nil)

	src := S3Source{Client: client, Bucket: "users-bucket", Key: "listing/data.json"}
	collection, err := NewAccessor(src).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, collection.Users, 1)
	assert.Equal(t, "Ann", collection.Users[0]["name"])
	assert.Equal(t, "s3://users-bucket/listing/data.json", src.Name())
	client.AssertExpectations(t)
}

func TestS3Source_NoSuchKey(t *testing.T) {
	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "The specified key does not exist."})

	src := S3Source{Client: client, Bucket: "users-bucket", Key: "missing.json"}
	_, err := NewAccessor(src).Load(context.Background())

	var readErr *ResourceReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "s3://users-bucket/missing.json", readErr.Resource)
	assert.Contains(t, err.Error(), "NoSuchKey")

	var apiErr smithy.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestS3Source_MalformedObject(t *testing.T) {
	client := new(MockS3Client)
	client.On("GetObject", mock.Anything, mock.Anything).
		Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"users":`)),
		}, nil)

	_, err := NewAccessor(S3Source{Client: client, Bucket: "b", Key: "k"}).Load(context.Background())

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
