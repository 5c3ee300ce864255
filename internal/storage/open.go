package storage

import (
	"context"
	"fmt"
)

const (
	BackendR2     = "r2"
	BackendMinIO  = "minio"
	BackendMemory = "memory"
)

// Open returns the store for backend. MinIO buckets are created on first use;
// R2 buckets are provisioned out of band.
func Open(ctx context.Context, backend string, cfg *Config) (Storage, error) {
	switch backend {
	case BackendR2:
		return NewS3Storage(ctx, cfg)
	case BackendMinIO:
		s, err := NewMinIOStorage(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure bucket: %w", err)
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
