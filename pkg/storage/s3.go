package storage

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/s3io"
)

type S3Engine struct {
	client s3iface.S3API
}

var _ Engine = (*S3Engine)(nil)

func NewS3() *S3Engine {
	return &S3Engine{}
}

// NewS3WithClient is used by tests to substitute a fake S3 API.
func NewS3WithClient(client s3iface.S3API) *S3Engine {
	return &S3Engine{client: client}
}

func (s *S3Engine) Get(ctx context.Context, u *URI) (Reader, error) {
	if s.client == nil {
		// Runs without s3 operands never touch AWS configuration.
		client, err := s3io.NewClient(nil)
		if err != nil {
			return nil, err
		}
		s.client = client
	}
	r, err := s3io.NewReader(ctx, u.String(), s.client)
	if err != nil {
		return nil, wrapErr(err)
	}
	return r, nil
}

func wrapErr(err error) error {
	var reqerr awserr.RequestFailure
	if errors.As(err, &reqerr) && reqerr.StatusCode() == http.StatusNotFound {
		return cuterr.ErrNotFound()
	}
	return err
}
