package minio_storage

import (
	"context"
	"net/url"
	"time"
)

type LogoStorage struct {
	storage      *MinioStorage
	bucket       string
	presignedTTL time.Duration
}

func NewLogoStorage(storage *MinioStorage, bucketName string, presignedTTL time.Duration) *LogoStorage {
	return &LogoStorage{storage: storage, bucket: bucketName, presignedTTL: presignedTTL}
}

func (s *LogoStorage) GetLogoURL(ctx context.Context, objectKey string) (string, error) {
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
