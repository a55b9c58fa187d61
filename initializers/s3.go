package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "ats-backend/lib/file-storage"
	s3client "ats-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}

	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket")
	}

	filestorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
