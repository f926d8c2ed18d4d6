// Package blob stores uploaded property images and hands back retrievable
// URLs. The storage medium and naming scheme are this package's concern
// only.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store uploads raw image bytes and returns a URL the image can be fetched
// from.
type Store interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

// DiskStore writes images under a local directory and serves them from a
// base URL path.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// Upload writes the bytes under a fresh uuid filename.
func (s *DiskStore) Upload(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
