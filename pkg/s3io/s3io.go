// Package s3io reads objects from S3 for s3:// input operands.
package s3io

import (
	"errors"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var ErrInvalidS3Path = errors.New("path is not a valid s3 location")

func IsS3Path(path string) bool {
	_, _, err := parsePath(path)
	return err == nil
}

func parsePath(path string) (bucket, key string, err error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", ErrInvalidS3Path
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// NewClient returns an S3 client configured from cfg, if not nil, and the
// usual AWS environment and shared config files.
func NewClient(cfg *aws.Config) (s3iface.S3API, error) {
	opts := session.Options{SharedConfigState: session.SharedConfigEnable}
	if cfg != nil {
		opts.Config = *cfg
	}
	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}
