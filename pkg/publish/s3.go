// Package publish uploads built site output to S3-compatible storage.
package publish

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/draftml-dev/draftml/internal/errors"
)

// Publisher uploads the contents of a directory to an S3 bucket.
type Publisher struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates a publisher for the given bucket. prefix is prepended to
// every object key ("" for the bucket root).
func New(client *s3.Client, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// NewClient constructs an S3 client for the region using credentials
// from the standard AWS environment variables.
func NewClient(region string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: envCredentials(),
	})
}

// envCredentials reads AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY /
// AWS_SESSION_TOKEN from the environment.
func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("P001", errors.CategoryPublish,
				"AWS credentials not found in environment").
				WithSuggestion("set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "draftml environment",
		}, nil
	})
}

// Publish walks dir and uploads every regular file, keyed by its
// path relative to dir. It returns the number of uploaded objects.
func (p *Publisher) Publish(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		key := p.Key(filepath.ToSlash(rel))
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(ContentTypeFor(path)),
		})
		if err != nil {
			return errors.Wrap(err, "P002", errors.CategoryPublish,
				"upload failed for "+key)
		}

		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

// Key returns the object key for a file path relative to the
// publish root.
func (p *Publisher) Key(rel string) string {
	prefix := strings.Trim(p.prefix, "/")
	rel = strings.TrimPrefix(rel, "/")
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}

// ContentTypeFor guesses a Content-Type from the file extension,
// defaulting to application/octet-stream.
func ContentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
