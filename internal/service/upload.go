package service

import (
	"context"
	"fmt"
	"io"
	"time"

	a "gtnotes/notes-api/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const minMultipartSize = 12 << 20

const keyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FileStorage is the part of the object store the handlers need. Note
// rows only ever hold the opaque key this returns, never file bytes
type FileStorage interface {
	Upload(ctx context.Context, f io.Reader, size int64, contentType string) (key string, err error)
	PresignGet(ctx context.Context, key, downloadName string) (string, error)
}

// Uploader stores note files in S3 under generated keys and hands out
// short-lived presigned URLs for downloads
type Uploader struct {
	S3      *a.S3Client
	Presign *s3.PresignClient
}

func NewUploader(s *a.S3Client) *Uploader {
	return &Uploader{
		S3:      s,
		Presign: s3.NewPresignClient(s.C),
	}
}

// Upload should be used with a file that was already validated. Large
// files go through the multipart uploader, the rest through a plain
// PutObject
func (u *Uploader) Upload(ctx context.Context, f io.Reader, size int64, contentType string) (string, error) {
	id, err := gonanoid.Generate(keyCharset, 16)
	if err != nil {
		return "", fmt.Errorf("failed to generate object key, %w", err)
	}
	key := id + ".pdf"

	ctx, cancel := context.WithDeadline(ctx, time.Now().Add(time.Minute))
	defer cancel()

	objectInput := &s3.PutObjectInput{
		Bucket:        u.S3.Bucket,
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}

	if size > minMultipartSize {
		uploader := manager.NewUploader(u.S3.C, func(u *manager.Uploader) {
			u.Concurrency = 5
			u.PartSize = 6 << 20
		})

		_, err = uploader.Upload(ctx, objectInput)
	} else {
		_, err = u.S3.C.PutObject(ctx, objectInput)
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3, %w", err)
	}

	zap.L().Debug("Uploaded note file", zap.String("key", key), zap.Int64("size", size))

	return key, nil
}

// PresignGet returns a URL the client can fetch the file from directly,
// valid for 15 minutes
func (u *Uploader) PresignGet(ctx context.Context, key, downloadName string) (string, error) {
	req, err := u.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     u.S3.Bucket,
		Key:                        aws.String(key),
		ResponseContentDisposition: aws.String(fmt.Sprintf("inline; filename=%q", downloadName)),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign file URL, %w", err)
	}

	return req.URL, nil
}
