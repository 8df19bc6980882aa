package minio_storage

import (
	"context"
	"net/url"
	"time"
)

// VideoStorage issues presigned GET URLs for lesson videos. Uploads go
// through the authoring pipeline, not this service, so this side is
// read-only.
type VideoStorage struct {
	storage      *MinioStorage
	bucket       string
	presignedTTL time.Duration
}

func NewVideoStorage(storage *MinioStorage, bucketName string, presignedTTL time.Duration) *VideoStorage {
	return &VideoStorage{storage: storage, bucket: bucketName, presignedTTL: presignedTTL}
}

func (s *VideoStorage) GetVideoURL(ctx context.Context, objectKey string) (string, error) {
	reqParams := make(url.Values)
	u, err := s.storage.client.PresignedGetObject(
		ctx,
		s.bucket,
		objectKey,
		s.presignedTTL,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
