package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/nmc-egov/civic-portal-api/pkg/config"
)

// ObjectStorage persists uploaded attachments and returns the stable URL or
// path that is stored verbatim on the owning record.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// New builds the configured storage driver. The *LocalStorage return value is
// non-nil only for the local driver; it backs the signed download route.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, *LocalStorage, error) {
	switch cfg.Driver {
	case "s3":
		store, err := NewS3Storage(ctx, S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			PathStyle:     cfg.S3PathStyle,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case "", "local":
		local, err := NewLocalStorage(cfg.LocalDir, NewSignedURLSigner(cfg.SignedURLSecret, cfg.SignedURLTTL))
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
