package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"ats-backend/config"
)

// Object key prefixes per document kind.
const (
	ResumePrefix  = "resumes"
	JobDescPrefix = "job-descriptions"
	ReceiptPrefix = "receipts"
)

type Provider interface {
	UploadResume(ctx context.Context, file []byte, fileName, contentType string) (key string, url string, err error)
	UploadJobDesc(ctx context.Context, file []byte, fileName, contentType string) (key string, url string, err error)
	UploadReceipt(ctx context.Context, file []byte, fileName, contentType string) (key string, url string, err error)
	GetPublicURL(key string) string
	Remove(ctx context.Context, keys []string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, file []byte, fileName, contentType string) (string, string, error) {
	return i.upload(ctx, ResumePrefix, file, fileName, contentType)
}

func (i impl) UploadJobDesc(ctx context.Context, file []byte, fileName, contentType string) (string, string, error) {
	return i.upload(ctx, JobDescPrefix, file, fileName, contentType)
}

func (i impl) UploadReceipt(ctx context.Context, file []byte, fileName, contentType string) (string, string, error) {
	return i.upload(ctx, ReceiptPrefix, file, fileName, contentType)
}

func (i impl) upload(ctx context.Context, prefix string, file []byte, fileName, contentType string) (string, string, error) {
	if len(file) == 0 {
		return "", "", errors.New("file is empty")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("%s/%s_%s", prefix, uuid.NewString(), sanitizeFileName(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, key,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", errors.Wrap(err, "file upload error")
	}
	return key, i.GetPublicURL(key), nil
}

func (i impl) GetPublicURL(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(config.Conf.S3.PublicEndpoint, "/"), config.Conf.S3.BucketName, key)
}

func (i impl) Remove(ctx context.Context, keys []string) error {
	for _, key := range keys {
		err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, key, minio.RemoveObjectOptions{})
		if err != nil {
			log.WithError(err).WithField("key", key).Error("file remove error")
			return errors.Wrap(err, "file remove error")
		}
	}
	return nil
}

func sanitizeFileName(fileName string) string {
	name := path.Base(fileName)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return name
}
