// Package storage provides object storage for product and delivery photos.
package storage

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/petalia/backend/internal/application/catalog"
)

// StubObjectStorage returns deterministic URLs without touching a bucket.
// Use it for development when no S3-compatible backend is configured.
type StubObjectStorage struct {
	BaseURL string
}

// NewStubObjectStorage creates a StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
	}
}

// Ensure StubObjectStorage implements ObjectStorageService
var _ catalogapp.ObjectStorageService = (*StubObjectStorage)(nil)

// PresignUpload returns a stub upload URL
func (s *StubObjectStorage) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/upload/" + key, nil
}

// PresignDownload returns a stub download URL
func (s *StubObjectStorage) PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	return s.BaseURL + "/download/" + key, nil
}
