package records

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3GetObjectAPI is the part of the S3 client used by S3Source.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the resource from a single S3 object.
type S3Source struct {
	Client S3GetObjectAPI
	Bucket string
	Key    string
}

func (s S3Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

func (s S3Source) ReadAll(ctx context.Context) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%s: %w", apiErr.ErrorCode(), err)
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
